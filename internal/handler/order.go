package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tableorder/internal/order"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderBody struct {
	SessionID string              `json:"session_id"`
	Items     []order.RequestItem `json:"items"`
}

// Create handles the creation of a new order for a table.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.ParseInt(chi.URLParam(r, "storeID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid store id")
		return
	}
	tableID, err := strconv.ParseInt(chi.URLParam(r, "tableID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid table id")
		return
	}

	var body createOrderBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.Create(r.Context(), order.CreateRequest{
		StoreID:   storeID,
		TableID:   tableID,
		SessionID: body.SessionID,
		Items:     body.Items,
	})
	if err != nil {
		respondWithMappedError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, view)
}

// GetByID handles retrieving an order by its id.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	view, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// GetBySession lists a session's orders, newest first.
func (h *OrderHandler) GetBySession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		respondWithError(w, http.StatusBadRequest, "session id is required")
		return
	}

	views, err := h.svc.GetBySession(r.Context(), sessionID)
	if err != nil {
		respondWithMappedError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, views)
}

// GetRecent lists a store's most recent orders. The limit query parameter is
// optional; the service clamps it.
func (h *OrderHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.ParseInt(chi.URLParam(r, "storeID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid store id")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	views, err := h.svc.GetRecent(r.Context(), storeID, limit)
	if err != nil {
		respondWithMappedError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, views)
}
