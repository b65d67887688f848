package calendar

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/klokku/familyhub/internal/rest"
	log "github.com/sirupsen/logrus"
)

// DateLabeler renders dates for display.
type DateLabeler interface {
	FormatDate(date string) (string, error)
	MonthTitle(year int, month time.Month) string
}

type Handler struct {
	calendar Service
	labels   DateLabeler
}

type EventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
}

type DayDTO struct {
	Date       string     `json:"date"`
	DateLabel  string     `json:"dateLabel"`
	MonthTitle string     `json:"monthTitle"`
	Events     []EventDTO `json:"events"`
}

func NewHandler(s Service, labels DateLabeler) *Handler {
	return &Handler{calendar: s, labels: labels}
}

// validationMessages are the texts the add form shows for rejected input.
var validationMessages = map[error]string{
	ErrTitleRequired: "Bitte gib einen Titel ein",
	ErrInvalidDate:   "Bitte wähle ein gültiges Datum.",
	ErrInvalidTime:   "Bitte wähle eine gültige Uhrzeit.",
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		h.getEventsForDate(w, r, date)
		return
	}
	log.Trace("Listing events sorted by date")

	events, err := h.calendar.ListSortedByDate(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, eventsToDTO(events))
}

func (h *Handler) getEventsForDate(w http.ResponseWriter, r *http.Request, date string) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "'date' must be in YYYY-MM-DD format")
		return
	}
	label, err := h.labels.FormatDate(date)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date format", err.Error())
		return
	}

	events, err := h.calendar.ListForDate(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, DayDTO{
		Date:       date,
		DateLabel:  label,
		MonthTitle: h.labels.MonthTitle(day.Year(), day.Month()),
		Events:     eventsToDTO(events),
	})
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	event, err := h.calendar.AddEvent(r.Context(), dtoToFields(dto))
	if err != nil {
		for validationErr, message := range validationMessages {
			if errors.Is(err, validationErr) {
				rest.WriteError(w, http.StatusBadRequest, message, err.Error())
				return
			}
		}
		log.Errorf("failed to add event: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, eventToDTO(event))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["eventId"]
	if err := h.calendar.DeleteEvent(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetMarkedDates(w http.ResponseWriter, r *http.Request) {
	selected := r.URL.Query().Get("selected")
	if selected != "" {
		if _, err := h.labels.FormatDate(selected); err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid selected date format", "'selected' must be in YYYY-MM-DD format")
			return
		}
	}

	marked, err := h.calendar.MarkedDates(r.Context(), selected)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, marked)
}

func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	feed, err := h.calendar.ExportICS(r.Context())
	if err != nil {
		log.Errorf("failed to export calendar: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=familienkalender.ics")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(feed)); err != nil {
		log.Errorf("failed to write calendar: %v", err)
	}
}

func eventsToDTO(events []Event) []EventDTO {
	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}
	return dtos
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
		Color:       e.Color,
	}
}

func dtoToFields(dto EventDTO) EventFields {
	return EventFields{
		Title:       dto.Title,
		Date:        dto.Date,
		Time:        dto.Time,
		Description: dto.Description,
		Color:       dto.Color,
	}
}
