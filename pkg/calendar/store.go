package calendar

import (
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store owns the events of one board. Reads return copies, so callers can
// never change the collection other than through Add and Delete.
type Store struct {
	mu     sync.RWMutex
	events []Event
	newID  func() string
}

func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Add appends a new event built from fields and returns it. Input is assumed
// to be validated already.
func (s *Store) Add(fields EventFields) Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := Event{
		ID:          s.newID(),
		Title:       fields.Title,
		Date:        fields.Date,
		Time:        fields.Time,
		Description: fields.Description,
		Color:       fields.Color,
	}
	s.events = append(s.events, event)
	return event
}

// Delete removes the event with the given id. Unknown ids are ignored; the
// returned bool tells whether anything was removed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.events)
	s.events = slices.DeleteFunc(s.events, func(e Event) bool {
		return e.ID == id
	})
	return len(s.events) != before
}

// All returns the events in insertion order.
func (s *Store) All() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// SortedByDate returns all events ordered by date. Events on the same date
// keep their insertion order.
func (s *Store) SortedByDate() []Event {
	events := s.All()
	slices.SortStableFunc(events, func(a, b Event) int {
		return strings.Compare(a.Date, b.Date)
	})
	return events
}

// ForDate returns the events on date in insertion order.
func (s *Store) ForDate(date string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Event, 0)
	for _, e := range s.events {
		if e.Date == date {
			result = append(result, e)
		}
	}
	return result
}

// MarkedDates annotates every date of the store for the calendar view.
func (s *Store) MarkedDates(selected, today string) map[string]DateMarking {
	return MarkDates(s.All(), selected, today)
}
