package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tableorder/internal/table"
)

// TableHandler manages table session lifecycle.
type TableHandler struct {
	sessions *table.Sessions
}

func NewTableHandler(sessions *table.Sessions) *TableHandler {
	return &TableHandler{sessions: sessions}
}

// StartSession opens a new ordering session on a table and returns its token.
func (h *TableHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.ParseInt(chi.URLParam(r, "tableID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid table id")
		return
	}

	token, err := h.sessions.Start(r.Context(), tableID)
	if err != nil {
		respondWithMappedError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{"session_id": token})
}

// EndSession closes the table's active session.
func (h *TableHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.ParseInt(chi.URLParam(r, "tableID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid table id")
		return
	}

	if err := h.sessions.End(r.Context(), tableID); err != nil {
		respondWithMappedError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
