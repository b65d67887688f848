package calendar

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

const defaultEventDuration = time.Hour

type ICSOptions struct {
	ProductID    string
	CalendarName string
	// Location is the zone the wall-clock date and time of events are in.
	Location *time.Location
	// Duration is the length given to exported events, which only carry a start time.
	Duration time.Duration
}

func (o ICSOptions) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

func (o ICSOptions) duration() time.Duration {
	if o.Duration <= 0 {
		return defaultEventDuration
	}
	return o.Duration
}

// StartTime combines the date and time of e in loc.
func (e Event) StartTime(loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, e.Date+" "+e.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("event %s has invalid date/time %q %q: %w", e.ID, e.Date, e.Time, err)
	}
	return start, nil
}

// ExportICS renders events as an iCalendar feed, one VEVENT per event.
func ExportICS(events []Event, opts ICSOptions, now time.Time) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	if opts.ProductID != "" {
		cal.SetProductId(opts.ProductID)
	}
	if opts.CalendarName != "" {
		cal.SetXWRCalName(opts.CalendarName)
	}
	cal.SetXWRTimezone(opts.location().String())

	for _, e := range events {
		start, err := e.StartTime(opts.location())
		if err != nil {
			return "", err
		}
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(now)
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(opts.duration()))
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Color != "" {
			ve.SetProperty(ical.ComponentPropertyColor, e.Color)
		}
	}
	return cal.Serialize(), nil
}
