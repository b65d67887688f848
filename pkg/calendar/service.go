package calendar

import (
	"context"
	"fmt"

	"github.com/klokku/familyhub/internal/event_bus"
	"github.com/klokku/familyhub/internal/utils"
	log "github.com/sirupsen/logrus"
)

// StoreProvider resolves the event store of the board the request belongs to.
type StoreProvider func(ctx context.Context) (*Store, error)

type Service interface {
	AddEvent(ctx context.Context, fields EventFields) (Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListSortedByDate(ctx context.Context) ([]Event, error)
	ListForDate(ctx context.Context, date string) ([]Event, error)
	// MarkedDates annotates the month view, using the service clock for today.
	MarkedDates(ctx context.Context, selected string) (map[string]DateMarking, error)
	ExportICS(ctx context.Context) (string, error)
}

type ServiceImpl struct {
	stores       StoreProvider
	eventBus     *event_bus.EventBus
	clock        utils.Clock
	defaultColor string
	ics          ICSOptions
}

func NewService(stores StoreProvider, eventBus *event_bus.EventBus, clock utils.Clock, defaultColor string, ics ICSOptions) *ServiceImpl {
	return &ServiceImpl{
		stores:       stores,
		eventBus:     eventBus,
		clock:        clock,
		defaultColor: defaultColor,
		ics:          ics,
	}
}

func (s *ServiceImpl) AddEvent(ctx context.Context, fields EventFields) (Event, error) {
	fields = fields.Normalize(s.defaultColor)
	if err := fields.Validate(); err != nil {
		return Event{}, err
	}

	store, err := s.stores(ctx)
	if err != nil {
		return Event{}, fmt.Errorf("failed to get event store: %w", err)
	}
	event := store.Add(fields)
	log.Debugf("added event %s on %s", event.ID, event.Date)

	err = s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.CalendarEventAddedType, event_bus.CalendarEventAdded{
		ID:    event.ID,
		Title: event.Title,
		Date:  event.Date,
		Time:  event.Time,
		Color: event.Color,
	}))
	if err != nil {
		// the event is stored already, subscribers only observe
		log.Errorf("failed to publish event added notification: %v", err)
	}
	return event, nil
}

func (s *ServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	store, err := s.stores(ctx)
	if err != nil {
		return fmt.Errorf("failed to get event store: %w", err)
	}
	if !store.Delete(id) {
		log.Debugf("event %s not found, nothing to delete", id)
		return nil
	}

	err = s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.CalendarEventDeletedType, event_bus.CalendarEventDeleted{ID: id}))
	if err != nil {
		log.Errorf("failed to publish event deleted notification: %v", err)
	}
	return nil
}

func (s *ServiceImpl) ListSortedByDate(ctx context.Context) ([]Event, error) {
	store, err := s.stores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get event store: %w", err)
	}
	return store.SortedByDate(), nil
}

func (s *ServiceImpl) ListForDate(ctx context.Context, date string) ([]Event, error) {
	store, err := s.stores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get event store: %w", err)
	}
	return store.ForDate(date), nil
}

func (s *ServiceImpl) MarkedDates(ctx context.Context, selected string) (map[string]DateMarking, error) {
	store, err := s.stores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get event store: %w", err)
	}
	today := s.clock.Now().In(s.ics.location()).Format(DateLayout)
	if selected == "" {
		selected = today
	}
	return store.MarkedDates(selected, today), nil
}

func (s *ServiceImpl) ExportICS(ctx context.Context) (string, error) {
	store, err := s.stores(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get event store: %w", err)
	}
	return ExportICS(store.SortedByDate(), s.ics, s.clock.Now())
}
