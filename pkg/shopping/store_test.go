package shopping

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore numbers ids 1, 2, 3... so examples read like the UI data.
func newTestStore() *Store {
	store := NewStore()
	next := 0
	store.newID = func() string {
		next++
		return strconv.Itoa(next)
	}
	return store
}

func names(items []Item) []string {
	result := make([]string, 0, len(items))
	for _, i := range items {
		result = append(result, i.Name)
	}
	return result
}

func TestStore_Add(t *testing.T) {
	store := NewStore()

	item := store.Add(ItemFields{Name: "Milch", Quantity: "2 Liter", AddedBy: "Mama"})

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Milch", item.Name)
	assert.Equal(t, "2 Liter", item.Quantity)
	assert.Equal(t, "Mama", item.AddedBy)
	assert.False(t, item.Completed)
	assert.Equal(t, []Item{item}, store.All())
}

func TestStore_IdsAreUnique(t *testing.T) {
	store := NewStore()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		item := store.Add(ItemFields{Name: "Brot"})
		require.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore()
	store.Add(ItemFields{Name: "Milch"})
	store.Add(ItemFields{Name: "Brot"})

	assert.True(t, store.Delete("1"))
	assert.False(t, store.Delete("1"))
	assert.False(t, store.Delete("42"))

	assert.Equal(t, []string{"Brot"}, names(store.All()))
}

func TestStore_Toggle(t *testing.T) {
	store := newTestStore()
	store.Add(ItemFields{Name: "Milch"})
	store.Add(ItemFields{Name: "Brot"})

	item, ok := store.Toggle("2")
	require.True(t, ok)
	assert.True(t, item.Completed)
	assert.True(t, store.All()[1].Completed)
	assert.False(t, store.All()[0].Completed)

	item, ok = store.Toggle("2")
	require.True(t, ok)
	assert.False(t, item.Completed, "toggling twice restores the original state")
}

func TestStore_ToggleUnknownId(t *testing.T) {
	store := newTestStore()
	store.Add(ItemFields{Name: "Milch"})
	before := store.All()

	_, ok := store.Toggle("42")

	assert.False(t, ok)
	assert.Equal(t, before, store.All())
}

func TestStore_ClearCompleted(t *testing.T) {
	store := newTestStore()
	store.Add(ItemFields{Name: "Milch"})
	store.Add(ItemFields{Name: "Brot"})
	store.Toggle("2")

	removed, summary := store.ClearCompleted()

	assert.Equal(t, 1, removed)
	assert.Equal(t, CompletionSummary{Completed: 0, Total: 1}, summary)
	assert.Equal(t, []Item{{ID: "1", Name: "Milch"}}, store.All())
}

func TestStore_ClearCompletedIsIdempotent(t *testing.T) {
	store := newTestStore()
	for _, name := range []string{"Milch", "Brot", "Eier", "Butter", "Käse"} {
		store.Add(ItemFields{Name: name})
	}
	store.Toggle("1")
	store.Toggle("3")
	store.Toggle("5")

	removed, _ := store.ClearCompleted()
	assert.Equal(t, 3, removed)
	once := store.All()
	removed, _ = store.ClearCompleted()
	assert.Equal(t, 0, removed)

	assert.Equal(t, once, store.All())
	assert.Equal(t, []string{"Brot", "Butter"}, names(once))
	for _, item := range once {
		assert.False(t, item.Completed)
	}
}

func TestStore_Summary(t *testing.T) {
	store := newTestStore()
	assert.Equal(t, CompletionSummary{}, store.Summary())

	store.Add(ItemFields{Name: "Milch"})
	store.Add(ItemFields{Name: "Brot"})
	store.Add(ItemFields{Name: "Eier"})
	store.Toggle("1")
	store.Toggle("3")

	summary := store.Summary()
	assert.Equal(t, CompletionSummary{Completed: 2, Total: 3}, summary)
	assert.LessOrEqual(t, summary.Completed, summary.Total)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	store := newTestStore()
	store.Add(ItemFields{Name: "Milch"})

	items := store.All()
	items[0].Completed = true
	items[0].Name = "changed"

	assert.Equal(t, []Item{{ID: "1", Name: "Milch"}}, store.All())
}

func TestStore_SnapshotSummaryMatchesItems(t *testing.T) {
	store := newTestStore()
	for _, name := range []string{"Milch", "Brot", "Eier", "Butter"} {
		store.Add(ItemFields{Name: name})
	}

	var wg sync.WaitGroup
	for _, id := range []string{"1", "2", "3", "4"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				store.Toggle(id)
			}
		}()
	}
	mismatches := 0
	for range 200 {
		items, summary := store.Snapshot()
		completed := 0
		for _, i := range items {
			if i.Completed {
				completed++
			}
		}
		if summary != (CompletionSummary{Completed: completed, Total: len(items)}) {
			mismatches++
		}
	}
	wg.Wait()

	assert.Zero(t, mismatches)
	items, summary := store.Snapshot()
	assert.Len(t, items, 4)
	assert.Equal(t, CompletionSummary{Completed: 0, Total: 4}, summary, "each item was toggled an even number of times")
}
