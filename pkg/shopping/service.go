package shopping

import (
	"context"
	"errors"
	"fmt"

	"github.com/klokku/familyhub/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

var ErrItemNotFound = errors.New("shopping item not found")

// StoreProvider resolves the shopping list of the board the request belongs to.
type StoreProvider func(ctx context.Context) (*Store, error)

type Service interface {
	AddItem(ctx context.Context, fields ItemFields) (Item, error)
	DeleteItem(ctx context.Context, id string) error
	ToggleItem(ctx context.Context, id string) (Item, error)
	ClearCompleted(ctx context.Context) (int, CompletionSummary, error)
	ListItems(ctx context.Context) ([]Item, CompletionSummary, error)
	CompletionSummary(ctx context.Context) (CompletionSummary, error)
}

type ServiceImpl struct {
	stores        StoreProvider
	eventBus      *event_bus.EventBus
	defaultMember string
}

func NewService(stores StoreProvider, eventBus *event_bus.EventBus, defaultMember string) *ServiceImpl {
	return &ServiceImpl{stores: stores, eventBus: eventBus, defaultMember: defaultMember}
}

func (s *ServiceImpl) AddItem(ctx context.Context, fields ItemFields) (Item, error) {
	fields = fields.Normalize(s.defaultMember)
	if err := fields.Validate(); err != nil {
		return Item{}, err
	}

	store, err := s.stores(ctx)
	if err != nil {
		return Item{}, fmt.Errorf("failed to get shopping list: %w", err)
	}
	item := store.Add(fields)

	s.publish(ctx, event_bus.ShoppingItemAddedType, event_bus.ShoppingItemAdded{
		ID:       item.ID,
		Name:     item.Name,
		Quantity: item.Quantity,
		AddedBy:  item.AddedBy,
	})
	return item, nil
}

func (s *ServiceImpl) DeleteItem(ctx context.Context, id string) error {
	store, err := s.stores(ctx)
	if err != nil {
		return fmt.Errorf("failed to get shopping list: %w", err)
	}
	if store.Delete(id) {
		s.publish(ctx, event_bus.ShoppingItemDeletedType, event_bus.ShoppingItemDeleted{ID: id})
	}
	return nil
}

func (s *ServiceImpl) ToggleItem(ctx context.Context, id string) (Item, error) {
	store, err := s.stores(ctx)
	if err != nil {
		return Item{}, fmt.Errorf("failed to get shopping list: %w", err)
	}
	item, ok := store.Toggle(id)
	if !ok {
		return Item{}, fmt.Errorf("toggle %s: %w", id, ErrItemNotFound)
	}

	s.publish(ctx, event_bus.ShoppingItemToggledType, event_bus.ShoppingItemToggled{
		ID:        item.ID,
		Name:      item.Name,
		Completed: item.Completed,
	})
	return item, nil
}

func (s *ServiceImpl) ClearCompleted(ctx context.Context) (int, CompletionSummary, error) {
	store, err := s.stores(ctx)
	if err != nil {
		return 0, CompletionSummary{}, fmt.Errorf("failed to get shopping list: %w", err)
	}
	removed, summary := store.ClearCompleted()
	if removed > 0 {
		s.publish(ctx, event_bus.ShoppingItemsClearedType, event_bus.ShoppingItemsCleared{
			Removed:   removed,
			Remaining: summary.Total,
		})
	}
	return removed, summary, nil
}

// ListItems returns the items in insertion order along with a summary that
// matches exactly those items.
func (s *ServiceImpl) ListItems(ctx context.Context) ([]Item, CompletionSummary, error) {
	store, err := s.stores(ctx)
	if err != nil {
		return nil, CompletionSummary{}, fmt.Errorf("failed to get shopping list: %w", err)
	}
	items, summary := store.Snapshot()
	return items, summary, nil
}

func (s *ServiceImpl) CompletionSummary(ctx context.Context) (CompletionSummary, error) {
	store, err := s.stores(ctx)
	if err != nil {
		return CompletionSummary{}, fmt.Errorf("failed to get shopping list: %w", err)
	}
	return store.Summary(), nil
}

// publish notifies subscribers. The change is already applied, so a failing
// subscriber is only logged.
func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Errorf("failed to publish %s: %v", eventType, err)
	}
}
