package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fitchallengeAPI/internal/types/account"
	"fitchallengeAPI/services"
)

// LegacyAuthHandler serves the pre-Firebase /register and /login routes.
// They are kept for old clients and bypass the bearer middleware entirely.
type LegacyAuthHandler struct {
	authService *services.LegacyAuthService
}

func NewLegacyAuthHandler(authService *services.LegacyAuthService) *LegacyAuthHandler {
	return &LegacyAuthHandler{
		authService: authService,
	}
}

func (h *LegacyAuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req account.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.Register(ctx, &req); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "User registered successfully"})
}

func (h *LegacyAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req account.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.Login(ctx, &req); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}
