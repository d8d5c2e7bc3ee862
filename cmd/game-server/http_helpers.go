package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"rps-arena/internal/app/arena"
	"rps-arena/internal/captcha"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeHTTPError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]any{"error": code})
}

// writeArenaError maps service errors onto HTTP statuses. Unknown errors are
// logged and reported as an internal failure without leaking detail.
func writeArenaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, arena.ErrEmptyName), errors.Is(err, arena.ErrInvalidChoice):
		writeHTTPError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, arena.ErrInvalidSession):
		writeHTTPError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, arena.ErrSessionConflict):
		writeHTTPError(w, http.StatusConflict, err.Error())
	case errors.Is(err, arena.ErrTooManyStarts), errors.Is(err, arena.ErrTooFast), errors.Is(err, arena.ErrTooManyMoves):
		writeHTTPError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, captcha.ErrVerificationFailed):
		writeHTTPError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, arena.ErrStoreFailure):
		writeHTTPError(w, http.StatusInternalServerError, err.Error())
	default:
		log.Error().Err(err).Msg("unhandled handler error")
		writeHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeHTTPError(w, http.StatusBadRequest, "invalid_json")
		return false
	}
	return true
}
