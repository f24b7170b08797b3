package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sanket-kogekar/uniblox-server/internal/service"
	"github.com/sanket-kogekar/uniblox-server/internal/store"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondServiceError maps every typed core error to a stable HTTP status
// and machine-readable code.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
	case errors.Is(err, store.ErrInvalidItem):
		respondError(w, http.StatusBadRequest, "invalid_item", err.Error())
	case errors.Is(err, store.ErrCartFull):
		respondError(w, http.StatusBadRequest, "cart_full", err.Error())
	case errors.Is(err, store.ErrItemNotInCart):
		respondError(w, http.StatusNotFound, "item_not_in_cart", err.Error())
	case errors.Is(err, store.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "order_not_found", err.Error())
	case errors.Is(err, store.ErrInvalidCode):
		respondError(w, http.StatusBadRequest, "invalid_discount_code", err.Error())
	case errors.Is(err, store.ErrCodeNotFound):
		respondError(w, http.StatusNotFound, "discount_code_not_found", err.Error())
	case errors.Is(err, store.ErrCodeExpired):
		respondError(w, http.StatusBadRequest, "discount_code_expired", err.Error())
	case errors.Is(err, store.ErrCodeAlreadyUsed):
		respondError(w, http.StatusConflict, "discount_code_used", err.Error())
	default:
		log.Error().Err(err).Msg("unexpected error")
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
