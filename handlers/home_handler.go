package handlers

import (
	"context"
	"net/http"
	"time"

	"fitchallengeAPI/services"
)

type HomeHandler struct {
	homeService *services.HomeService
}

func NewHomeHandler(homeService *services.HomeService) *HomeHandler {
	return &HomeHandler{
		homeService: homeService,
	}
}

// GetLatest serves the combined home feed. It is open: the mobile app shows
// it before sign-in.
func (h *HomeHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	content, err := h.homeService.LatestContent(ctx)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, content)
}
