package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"grub-pool/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Message: message})
}

// respondError maps a service error onto the response taxonomy: field-level
// 400 for validation failures, 404 for missing entities, and a generic 500
// for everything else. Internal detail never reaches the caller.
func respondError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	if ve, ok := model.AsValidation(err); ok {
		logger.Warn().Int("field_errors", len(ve.Fields)).Msg("validation failed")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Message: "Invalid request data",
			Errors:  ve.Fields,
		})
		return
	}

	if model.IsNotFound(err) {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Message: err.Error()})
		return
	}

	logger.Error().Err(err).Msg(fallback)
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Message: fallback})
}

// pathID extracts an integer path variable registered with the router.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
