package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/skisyula/jobify-be/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError is the single place errors become HTTP responses. Typed errors
// carry their own status and client-safe message; anything else is logged
// and reported as a 500 without detail.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("Unhandled error")
	}
	writeJSON(w, status, map[string]string{"msg": apperr.Message(err)})
}
