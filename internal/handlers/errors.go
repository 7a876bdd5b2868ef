package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"fizzquiz/internal/game"
	"fizzquiz/internal/service"
	"fizzquiz/internal/validation"
)

// errorResponse is the JSON body returned for every error
type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Error().Err(err).Msg("failed to encode response")
		}
	}
}

// writeError maps a service error to an HTTP status and JSON error body
func writeError(w http.ResponseWriter, err error) {
	status, errType := classifyError(err)

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Msg("request rejected")
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	writeJSON(w, status, errorResponse{
		StatusCode: status,
		Type:       errType,
		Message:    message,
	})
}

func classifyError(err error) (int, string) {
	var verr validation.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, "ValidationError"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "NotFound"
	case errors.Is(err, service.ErrQuestionAnswered):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, game.ErrNegativeNumber), errors.Is(err, game.ErrTooManyRules):
		return http.StatusBadRequest, "BadRequest"
	case errors.Is(err, service.ErrGameNameTaken), errors.Is(err, service.ErrUsernameTaken):
		return http.StatusBadRequest, "BadRequest"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, service.ErrInvalidState):
		return http.StatusInternalServerError, "InvalidState"
	default:
		return http.StatusInternalServerError, "InternalServerError"
	}
}

// writeBadRequest reports a malformed request body or parameter
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		StatusCode: http.StatusBadRequest,
		Type:       "BadRequest",
		Message:    message,
	})
}

// writeUnauthorized reports a missing or invalid bearer token
func writeUnauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, errorResponse{
		StatusCode: http.StatusUnauthorized,
		Type:       "Unauthorized",
		Message:    message,
	})
}
