package calendar

// DateMarking describes how a single day is drawn in the month view.
type DateMarking struct {
	HasEvents  bool   `json:"hasEvents"`
	IsSelected bool   `json:"isSelected"`
	IsToday    bool   `json:"isToday"`
	DotColor   string `json:"dotColor,omitempty"`
}

// MarkDates builds the month view annotations. Each date with events gets a
// dot in the colour of the last event on that date. The selected date and
// today are always present, even without events. Empty selected or today
// values are skipped.
func MarkDates(events []Event, selected, today string) map[string]DateMarking {
	marked := make(map[string]DateMarking, len(events)+2)
	for _, e := range events {
		m := marked[e.Date]
		m.HasEvents = true
		m.DotColor = e.Color
		marked[e.Date] = m
	}
	if selected != "" {
		m := marked[selected]
		m.IsSelected = true
		marked[selected] = m
	}
	if today != "" {
		m := marked[today]
		m.IsToday = true
		marked[today] = m
	}
	return marked
}
