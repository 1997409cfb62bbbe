package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/techconnect-india/backend/internal/domain"
)

// matchService defines the minimal interface needed by MatchHandler.
type matchService interface {
	FindRandom(ctx context.Context) (*domain.User, error)
	FindByCity(ctx context.Context, city string) (*domain.User, error)
}

// MatchHandler serves counterpart matching endpoints.
type MatchHandler struct {
	svc matchService
	log *slog.Logger
}

// NewMatchHandler creates a MatchHandler.
func NewMatchHandler(svc matchService, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{svc: svc, log: logger.With("handler", "match")}
}

type matchByCityRequest struct {
	City string `json:"city"`
}

// matchResponse exposes only what a counterpart needs to see; no
// subscription or quota fields leak across users.
type matchResponse struct {
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	City   string   `json:"city"`
	Skills []string `json:"skills"`
}

// Random handles POST /v1/match/random.
func (h *MatchHandler) Random(w http.ResponseWriter, r *http.Request) {
	match, err := h.svc.FindRandom(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponse(match))
}

// ByCity handles POST /v1/match/city.
func (h *MatchHandler) ByCity(w http.ResponseWriter, r *http.Request) {
	var req matchByCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	match, err := h.svc.FindByCity(r.Context(), req.City)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponse(match))
}

func toMatchResponse(u *domain.User) matchResponse {
	return matchResponse{
		Email:  u.Email,
		Name:   u.Name,
		City:   u.City,
		Skills: u.Skills,
	}
}
