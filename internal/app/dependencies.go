package app

import (
	"github.com/klokku/familyhub/internal/config"
	"github.com/klokku/familyhub/internal/event_bus"
	"github.com/klokku/familyhub/internal/session"
	"github.com/klokku/familyhub/internal/utils"
	"github.com/klokku/familyhub/pkg/calendar"
	"github.com/klokku/familyhub/pkg/locale"
	"github.com/klokku/familyhub/pkg/shopping"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	EventBus *event_bus.EventBus
	Boards   *session.Registry
	Locale   locale.Locale

	CalendarService calendar.Service
	CalendarHandler *calendar.Handler

	ShoppingService shopping.Service
	ShoppingHandler *shopping.Handler

	FamilyHandler *FamilyHandler
	BoardHandler  *BoardHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application, clock utils.Clock) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Clock = clock
	deps.EventBus = event_bus.NewEventBus()
	deps.Boards = session.NewRegistry(clock)
	SubscribeActivityLog(deps.EventBus)

	loc, err := locale.ForLanguage(cfg.Locale.Language)
	if err != nil {
		return nil, err
	}
	deps.Locale = loc

	tz, err := cfg.Calendar.Location()
	if err != nil {
		return nil, err
	}
	deps.CalendarService = calendar.NewService(session.EventStore, deps.EventBus, clock, cfg.Family.DefaultColor(), calendar.ICSOptions{
		ProductID:    "-//familyhub//Familienkalender//DE",
		CalendarName: cfg.Calendar.Name,
		Location:     tz,
		Duration:     cfg.Calendar.EventDuration,
	})
	deps.CalendarHandler = calendar.NewHandler(deps.CalendarService, deps.Locale)

	deps.ShoppingService = shopping.NewService(session.ShoppingStore, deps.EventBus, cfg.Family.DefaultMember())
	deps.ShoppingHandler = shopping.NewHandler(deps.ShoppingService)

	deps.FamilyHandler = NewFamilyHandler(cfg.Family, deps.Locale)
	deps.BoardHandler = NewBoardHandler(deps.Boards)

	return deps, nil
}
