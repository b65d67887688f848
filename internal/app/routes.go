package app

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	// Form pickers, independent of any board
	r.HandleFunc("/api/config/family", deps.FamilyHandler.GetFamily).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(BoardMiddleware(deps.Boards))

	// Board
	api.HandleFunc("/board", deps.BoardHandler.DiscardBoard).Methods("DELETE")

	// Calendar
	api.HandleFunc("/calendar/event", deps.CalendarHandler.GetEvents).Methods("GET")
	api.HandleFunc("/calendar/event", deps.CalendarHandler.CreateEvent).Methods("POST")
	api.HandleFunc("/calendar/event/{eventId}", deps.CalendarHandler.DeleteEvent).Methods("DELETE")
	api.HandleFunc("/calendar/marked", deps.CalendarHandler.GetMarkedDates).Methods("GET")
	api.HandleFunc("/calendar/events.ics", deps.CalendarHandler.ExportICS).Methods("GET")

	// Shopping list
	api.HandleFunc("/shopping/item", deps.ShoppingHandler.ListItems).Methods("GET")
	api.HandleFunc("/shopping/item", deps.ShoppingHandler.CreateItem).Methods("POST")
	api.HandleFunc("/shopping/item", deps.ShoppingHandler.ClearCompleted).Queries("completed", "true").Methods("DELETE")
	api.HandleFunc("/shopping/item/{itemId}", deps.ShoppingHandler.DeleteItem).Methods("DELETE")
	api.HandleFunc("/shopping/item/{itemId}/toggle", deps.ShoppingHandler.ToggleItem).Methods("PATCH")
	api.HandleFunc("/shopping/summary", deps.ShoppingHandler.GetSummary).Methods("GET")
}
