package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"tableorder/internal/menu"
	"tableorder/internal/order"
	"tableorder/internal/table"
)

// respondWithError sends a JSON error body.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("handler: failed to write JSON response")
	}
}

// mapErrorToStatusCode keeps "your request was invalid" distinct from "the
// system failed": anything outside the business error set is a 500.
func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, table.ErrNotFound),
		errors.Is(err, menu.ErrNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, table.ErrSessionNotActive),
		errors.Is(err, table.ErrSessionMismatch),
		errors.Is(err, table.ErrSessionInProgress),
		errors.Is(err, order.ErrMenuUnavailable),
		errors.Is(err, order.ErrSequenceExhausted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondWithMappedError hides internal failure details behind a generic
// message while business errors keep their own text.
func respondWithMappedError(w http.ResponseWriter, err error) {
	code := mapErrorToStatusCode(err)
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Msg("handler: internal error")
		respondWithError(w, code, "internal server error")
		return
	}
	respondWithError(w, code, err.Error())
}
