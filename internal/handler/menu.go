package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tableorder/internal/menu"
)

// MenuHandler serves the read-only menu catalog.
type MenuHandler struct {
	svc menu.Service
}

func NewMenuHandler(svc menu.Service) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// ListByStore returns a store's orderable menus.
func (h *MenuHandler) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.ParseInt(chi.URLParam(r, "storeID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	menus, err := h.svc.ListByStore(r.Context(), storeID)
	if err != nil {
		respondWithMappedError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, menus)
}

// GetByID returns a single menu, including soft-deleted ones for historical
// order display.
func (h *MenuHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid menu id")
		return
	}

	m, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, m)
}
