package shopping

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Store owns the shopping list of one board. All reads hand out copies.
type Store struct {
	mu    sync.RWMutex
	items []Item
	newID func() string
}

func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Add appends a not yet completed item and returns it.
func (s *Store) Add(fields ItemFields) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:       s.newID(),
		Name:     fields.Name,
		Quantity: fields.Quantity,
		AddedBy:  fields.AddedBy,
	}
	s.items = append(s.items, item)
	return item
}

// Delete removes the item with id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(i Item) bool {
		return i.ID == id
	})
	return len(s.items) != before
}

// Toggle flips the completed flag of the item with id. The second result is
// false when there is no such item.
func (s *Store) Toggle(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.items, func(i Item) bool {
		return i.ID == id
	})
	if idx < 0 {
		return Item{}, false
	}
	s.items[idx].Completed = !s.items[idx].Completed
	return s.items[idx], true
}

// ClearCompleted drops all completed items, keeping the order of the rest,
// and returns how many were removed together with the summary left behind.
func (s *Store) ClearCompleted() (int, CompletionSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(i Item) bool {
		return i.Completed
	})
	return before - len(s.items), summarize(s.items)
}

func (s *Store) All() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Snapshot returns the items and their summary as of the same moment.
func (s *Store) Snapshot() ([]Item, CompletionSummary) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), summarize(s.items)
}

func (s *Store) Summary() CompletionSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return summarize(s.items)
}

func summarize(items []Item) CompletionSummary {
	summary := CompletionSummary{Total: len(items)}
	for _, i := range items {
		if i.Completed {
			summary.Completed++
		}
	}
	return summary
}
