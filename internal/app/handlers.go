package app

import (
	"net/http"

	"github.com/klokku/familyhub/internal/config"
	"github.com/klokku/familyhub/internal/rest"
	"github.com/klokku/familyhub/internal/session"
	"github.com/klokku/familyhub/pkg/locale"
	log "github.com/sirupsen/logrus"
)

type FamilyDTO struct {
	Members       []string `json:"members"`
	Palette       []string `json:"palette"`
	MonthNames    []string `json:"monthNames"`
	DayNames      []string `json:"dayNames"`
	DayNamesShort []string `json:"dayNamesShort"`
	Today         string   `json:"today"`
}

// FamilyHandler serves what the add forms offer in their pickers, and the
// locale the calendar view renders with.
type FamilyHandler struct {
	dto FamilyDTO
}

func NewFamilyHandler(family config.Family, loc locale.Locale) *FamilyHandler {
	return &FamilyHandler{dto: FamilyDTO{
		Members:       family.Members,
		Palette:       family.Palette,
		MonthNames:    loc.MonthNames[:],
		DayNames:      loc.DayNames[:],
		DayNamesShort: loc.DayNamesShort[:],
		Today:         loc.Today,
	}}
}

func (h *FamilyHandler) GetFamily(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, h.dto)
}

type BoardHandler struct {
	boards *session.Registry
}

func NewBoardHandler(boards *session.Registry) *BoardHandler {
	return &BoardHandler{boards}
}

// DiscardBoard drops the current board together with its events and items.
func (h *BoardHandler) DiscardBoard(w http.ResponseWriter, r *http.Request) {
	boardId, err := session.CurrentBoardId(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.boards.Discard(boardId)
	log.Infof("board %s discarded", boardId)
	w.WriteHeader(http.StatusNoContent)
}
