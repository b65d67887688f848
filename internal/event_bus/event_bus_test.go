package event_bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_RunsHandlersInSubscriptionOrder(t *testing.T) {
	bus := NewEventBus()
	var order []int
	for i := 1; i <= 5; i++ {
		bus.Subscribe(ShoppingItemAddedType, func(e Event) error {
			order = append(order, i)
			return nil
		})
	}

	require.NoError(t, bus.Publish(NewEvent(context.Background(), ShoppingItemAddedType, ShoppingItemAdded{ID: "1"})))

	assert.Equal(t, []int{1, 2, 3, 4, 5}, order)
}

func TestPublish_OnlyMatchingType(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	bus.Subscribe(ShoppingItemDeletedType, func(e Event) error {
		calls++
		return nil
	})

	require.NoError(t, bus.Publish(NewEvent(context.Background(), ShoppingItemAddedType, nil)))

	assert.Equal(t, 0, calls)
}

func TestSubscribeTyped(t *testing.T) {
	bus := NewEventBus()
	var got []ShoppingItemToggled
	SubscribeTyped(bus, ShoppingItemToggledType, func(e EventT[ShoppingItemToggled]) error {
		got = append(got, e.Data)
		return nil
	})

	require.NoError(t, bus.Publish(NewEvent(context.Background(), ShoppingItemToggledType, ShoppingItemToggled{ID: "1", Completed: true})))
	// wrong payload type is skipped
	require.NoError(t, bus.Publish(NewEvent(context.Background(), ShoppingItemToggledType, "not a payload")))
	require.NoError(t, bus.Publish(NewEvent(context.Background(), ShoppingItemToggledType, nil)))

	assert.Equal(t, []ShoppingItemToggled{{ID: "1", Completed: true}}, got)
}

func TestUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	unsubscribe := bus.Subscribe(CalendarEventAddedType, func(e Event) error {
		calls++
		return nil
	})
	other := 0
	bus.Subscribe(CalendarEventAddedType, func(e Event) error {
		other++
		return nil
	})

	unsubscribe()
	unsubscribe()
	require.NoError(t, bus.Publish(NewEvent(context.Background(), CalendarEventAddedType, nil)))

	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, other)
}

func TestPublish_CollectsErrorsAndPanics(t *testing.T) {
	bus := NewEventBus()
	errBoom := errors.New("boom")
	reached := false
	bus.Subscribe(CalendarEventDeletedType, func(e Event) error {
		return errBoom
	})
	bus.Subscribe(CalendarEventDeletedType, func(e Event) error {
		panic("handler exploded")
	})
	bus.Subscribe(CalendarEventDeletedType, func(e Event) error {
		reached = true
		return nil
	})

	err := bus.Publish(NewEvent(context.Background(), CalendarEventDeletedType, CalendarEventDeleted{ID: "1"}))

	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "handler exploded")
	assert.True(t, reached)
}

func TestPublish_CancelledContext(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	bus.Subscribe(CalendarEventAddedType, func(e Event) error {
		calls++
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := bus.Publish(NewEvent(ctx, CalendarEventAddedType, nil))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestEvent_ContextDefaultsToBackground(t *testing.T) {
	assert.NotNil(t, Event{}.Context())
	assert.NotNil(t, EventT[int]{}.Context())
}
