package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/techconnect-india/backend/internal/domain"
	"github.com/techconnect-india/backend/internal/service/billing"
)

// billingService defines the minimal interface needed by BillingHandler.
type billingService interface {
	Plans() []domain.Plan
	Subscribe(ctx context.Context, planID domain.PlanID) (*billing.Checkout, error)
	Verify(ctx context.Context) (*domain.User, error)
}

// BillingHandler serves subscription endpoints.
type BillingHandler struct {
	svc billingService
	log *slog.Logger
}

// NewBillingHandler creates a BillingHandler.
func NewBillingHandler(svc billingService, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{svc: svc, log: logger.With("handler", "billing")}
}

type planResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	DurationDays int    `json:"durationDays"`
}

type subscribeRequest struct {
	Plan string `json:"plan"`
}

type checkoutResponse struct {
	SubscriptionID string       `json:"subscriptionId"`
	PaymentURL     string       `json:"paymentUrl"`
	Plan           planResponse `json:"plan"`
}

// Plans handles GET /v1/billing/plans.
func (h *BillingHandler) Plans(w http.ResponseWriter, r *http.Request) {
	plans := h.svc.Plans()

	out := make([]planResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanResponse(p))
	}

	writeJSON(w, http.StatusOK, map[string][]planResponse{"plans": out})
}

// Subscribe handles POST /v1/billing/subscribe.
func (h *BillingHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	checkout, err := h.svc.Subscribe(r.Context(), domain.PlanID(req.Plan))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, checkoutResponse{
		SubscriptionID: checkout.SubscriptionID,
		PaymentURL:     checkout.PaymentURL,
		Plan:           toPlanResponse(checkout.Plan),
	})
}

// Verify handles POST /v1/billing/verify.
func (h *BillingHandler) Verify(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Verify(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func toPlanResponse(p domain.Plan) planResponse {
	return planResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Price:        p.Price,
		DurationDays: p.DurationDays,
	}
}
