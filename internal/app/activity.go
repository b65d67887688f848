package app

import (
	"context"

	"github.com/klokku/familyhub/internal/event_bus"
	"github.com/klokku/familyhub/internal/session"
	log "github.com/sirupsen/logrus"
)

// SubscribeActivityLog logs every change made on any board.
func SubscribeActivityLog(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped(bus, event_bus.CalendarEventAddedType, func(e event_bus.EventT[event_bus.CalendarEventAdded]) error {
		activity(e).WithFields(log.Fields{"event": e.Data.ID, "date": e.Data.Date}).Infof("Termin %q eingetragen", e.Data.Title)
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.CalendarEventDeletedType, func(e event_bus.EventT[event_bus.CalendarEventDeleted]) error {
		activity(e).WithField("event", e.Data.ID).Info("Termin gelöscht")
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.ShoppingItemAddedType, func(e event_bus.EventT[event_bus.ShoppingItemAdded]) error {
		activity(e).WithFields(log.Fields{"item": e.Data.ID, "addedBy": e.Data.AddedBy}).Infof("%q auf die Einkaufsliste gesetzt", e.Data.Name)
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.ShoppingItemDeletedType, func(e event_bus.EventT[event_bus.ShoppingItemDeleted]) error {
		activity(e).WithField("item", e.Data.ID).Info("Eintrag gelöscht")
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.ShoppingItemToggledType, func(e event_bus.EventT[event_bus.ShoppingItemToggled]) error {
		entry := activity(e).WithFields(log.Fields{"item": e.Data.ID, "completed": e.Data.Completed})
		if e.Data.Completed {
			entry.Infof("%q abgehakt", e.Data.Name)
		} else {
			entry.Infof("%q wieder offen", e.Data.Name)
		}
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.ShoppingItemsClearedType, func(e event_bus.EventT[event_bus.ShoppingItemsCleared]) error {
		activity(e).WithFields(log.Fields{"removed": e.Data.Removed, "remaining": e.Data.Remaining}).Info("Erledigte Einträge entfernt")
		return nil
	})
}

type contextual interface {
	Context() context.Context
}

func activity(e contextual) *log.Entry {
	entry := log.WithField("component", "activity")
	if boardId, err := session.CurrentBoardId(e.Context()); err == nil {
		entry = entry.WithField("board", boardId)
	}
	return entry
}
