package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fitchallengeAPI/internal/apperror"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithServiceError maps a service error to a status code. Anything
// outside the taxonomy is a 500 with a generic body; the cause is logged
// server-side and never sent to the client.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, apperror.ErrUnauthenticated):
			respondWithError(w, http.StatusUnauthorized, appErr.Message)
		case errors.Is(err, apperror.ErrForbidden):
			respondWithError(w, http.StatusForbidden, appErr.Message)
		case errors.Is(err, apperror.ErrNotFound):
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case errors.Is(err, apperror.ErrConflict):
			respondWithError(w, http.StatusConflict, appErr.Message)
		case errors.Is(err, apperror.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		default:
			log.Printf("Unhandled service error: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	log.Printf("Unhandled service error: %v", err)
	respondWithError(w, http.StatusInternalServerError, "Internal server error")
}
