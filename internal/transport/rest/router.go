package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Match   *MatchHandler
	Chat    *ChatHandler
	Billing *BillingHandler
	Health  *HealthHandler
}

// NewRouter builds the HTTP route table. Authentication is enforced by
// the Auth middleware upstream; handlers for protected routes reject
// anonymous requests through the services' context checks.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /v1/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /v1/me", h.Profile.Get)
	mux.HandleFunc("PATCH /v1/me", h.Profile.Update)

	mux.HandleFunc("POST /v1/match/random", h.Match.Random)
	mux.HandleFunc("POST /v1/match/city", h.Match.ByCity)

	mux.HandleFunc("POST /v1/chat/{email}", h.Chat.Send)
	mux.HandleFunc("GET /v1/chat/{email}", h.Chat.Conversation)

	mux.HandleFunc("GET /v1/billing/plans", h.Billing.Plans)
	mux.HandleFunc("POST /v1/billing/subscribe", h.Billing.Subscribe)
	mux.HandleFunc("POST /v1/billing/verify", h.Billing.Verify)

	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
