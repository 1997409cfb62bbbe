package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/techconnect-india/backend/internal/domain"
	"github.com/techconnect-india/backend/internal/service/user"
)

// userService defines the minimal interface needed by ProfileHandler.
type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

// ProfileHandler serves the authenticated user's profile endpoints.
type ProfileHandler struct {
	svc userService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc userService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type updateProfileRequest struct {
	City   *string   `json:"city,omitempty"`
	Skills *[]string `json:"skills,omitempty"`
}

type userResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	Skills         []string  `json:"skills"`
	Subscription   string    `json:"subscription"`
	SubscriptionID *string   `json:"subscriptionId,omitempty"`
	Plan           *string   `json:"plan,omitempty"`
	MessageCount   int       `json:"messageCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Get handles GET /v1/me.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PATCH /v1/me.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		City:   req.City,
		Skills: req.Skills,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func toUserResponse(u *domain.User) userResponse {
	var plan *string
	if u.SubscriptionPlan != nil {
		p := u.SubscriptionPlan.String()
		plan = &p
	}
	return userResponse{
		ID:             u.ID.String(),
		Email:          u.Email,
		Name:           u.Name,
		City:           u.City,
		Skills:         u.Skills,
		Subscription:   u.Subscription.String(),
		SubscriptionID: u.SubscriptionID,
		Plan:           plan,
		MessageCount:   u.MessageCount,
		CreatedAt:      u.CreatedAt,
	}
}
