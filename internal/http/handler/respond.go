package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"louvor/internal/apperr"
	"louvor/internal/logger"
)

const msgJSONInvalido = "JSON inválido"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError translates a typed domain error verbatim into its status and
// message list; anything else becomes a generic 500 with no internal detail.
func writeError(w http.ResponseWriter, log *logger.Logger, err error, fallback string) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		writeJSON(w, ae.Status, map[string]any{"errors": ae.Messages})
		return
	}
	log.Error("request failed", "err", err)
	writeJSON(w, http.StatusInternalServerError, map[string]any{"errors": []string{fallback}})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.BadRequest(msgJSONInvalido)
	}
	return nil
}
