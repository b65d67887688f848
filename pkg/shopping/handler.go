package shopping

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/klokku/familyhub/internal/rest"
	log "github.com/sirupsen/logrus"
)

type ItemDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity,omitempty"`
	Completed bool   `json:"completed"`
	AddedBy   string `json:"addedBy"`
}

type ListDTO struct {
	Items   []ItemDTO         `json:"items"`
	Summary CompletionSummary `json:"summary"`
}

type ClearedDTO struct {
	Removed int               `json:"removed"`
	Summary CompletionSummary `json:"summary"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	log.Trace("Listing shopping items")
	items, summary, err := h.service.ListItems(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ListDTO{Items: itemsToDTO(items), Summary: summary})
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var dto ItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	item, err := h.service.AddItem(r.Context(), ItemFields{
		Name:     dto.Name,
		Quantity: dto.Quantity,
		AddedBy:  dto.AddedBy,
	})
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			rest.WriteError(w, http.StatusBadRequest, "Bitte gib einen Artikel ein", err.Error())
			return
		}
		log.Errorf("failed to add shopping item: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, itemToDTO(item))
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["itemId"]
	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["itemId"]
	item, err := h.service.ToggleItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Item not found", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, itemToDTO(item))
}

func (h *Handler) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	removed, summary, err := h.service.ClearCompleted(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Debugf("cleared %d completed items", removed)
	rest.WriteJSON(w, http.StatusOK, ClearedDTO{Removed: removed, Summary: summary})
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.CompletionSummary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, summary)
}

func itemsToDTO(items []Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, i := range items {
		dtos = append(dtos, itemToDTO(i))
	}
	return dtos
}

func itemToDTO(i Item) ItemDTO {
	return ItemDTO{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Completed: i.Completed,
		AddedBy:   i.AddedBy,
	}
}
