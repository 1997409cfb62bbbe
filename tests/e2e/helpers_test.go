//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/techconnect-india/backend/internal/adapter/payment"
	"github.com/techconnect-india/backend/internal/adapter/postgres"
	messagerepo "github.com/techconnect-india/backend/internal/adapter/postgres/message"
	reportrepo "github.com/techconnect-india/backend/internal/adapter/postgres/report"
	tokenrepo "github.com/techconnect-india/backend/internal/adapter/postgres/token"
	userrepo "github.com/techconnect-india/backend/internal/adapter/postgres/user"
	authpkg "github.com/techconnect-india/backend/internal/auth"
	"github.com/techconnect-india/backend/internal/config"
	authsvc "github.com/techconnect-india/backend/internal/service/auth"
	"github.com/techconnect-india/backend/internal/service/billing"
	"github.com/techconnect-india/backend/internal/service/chat"
	"github.com/techconnect-india/backend/internal/service/gate"
	"github.com/techconnect-india/backend/internal/service/match"
	usersvc "github.com/techconnect-india/backend/internal/service/user"
	"github.com/techconnect-india/backend/internal/transport/middleware"
	"github.com/techconnect-india/backend/internal/transport/rest"
	"github.com/techconnect-india/backend/migrations"
)

// verifiedResume passes the automatic skill scan (5+ known technologies).
const verifiedResume = "Backend engineer with Python, Django, PostgreSQL, Docker and Kubernetes experience."

// testEnv bundles the running HTTP server and its dependencies.
type testEnv struct {
	server     *httptest.Server
	gateway    *fakeGateway
	pool       *pgxpool.Pool
	httpClient *http.Client
}

// setupTestServer connects to TEST_DATABASE_DSN, applies migrations,
// wipes tables, and starts the full HTTP stack against it. Tests are
// skipped when no database is provided.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping e2e tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	require.NoError(t, postgres.Migrate(ctx, dsn, migrations.FS))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	// Each test starts from a clean slate.
	_, err = pool.Exec(ctx, "TRUNCATE users, refresh_tokens, messages, toxic_reports CASCADE")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authCfg := config.AuthConfig{
		JWTSecret:       "e2e-test-secret-with-enough-entropy",
		JWTIssuer:       "techconnect-e2e",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 720 * time.Hour,
		BcryptCost:      4,
	}
	chatCfg := config.ChatConfig{
		FreeMessageLimit:  50,
		ConversationLimit: 100,
		MaxMessageLength:  2000,
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	messages := messagerepo.New(pool)
	reports := reportrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	gw := newFakeGateway(t)

	jwtManager := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, txManager, jwtManager, authCfg)
	userService := usersvc.NewService(logger, users)
	matchService := match.NewService(logger, users)
	gateService := gate.NewService(logger, nil, reports, chatCfg.FreeMessageLimit)
	chatService := chat.NewService(logger, users, messages, gateService, chatCfg)
	billingService := billing.NewService(logger, users,
		payment.NewWithURL(gw.server.URL, "rzp_test", "secret", logger))

	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Profile: rest.NewProfileHandler(userService, logger),
		Match:   rest.NewMatchHandler(matchService, logger),
		Chat:    rest.NewChatHandler(chatService, logger),
		Billing: rest.NewBillingHandler(billingService, logger),
		Health:  rest.NewHealthHandler(pool, "e2e"),
	}

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Auth(authService),
	)(rest.NewRouter(handlers))

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &testEnv{
		server:     server,
		gateway:    gw,
		pool:       pool,
		httpClient: server.Client(),
	}
}

// ---------------------------------------------------------------------------
// Fake payment gateway.
// ---------------------------------------------------------------------------

// fakeGateway mimics the subscription endpoints. Status transitions are
// driven by tests through the status field.
type fakeGateway struct {
	server *httptest.Server
	status string
}

func newFakeGateway(t *testing.T) *fakeGateway {
	t.Helper()

	gw := &fakeGateway{status: "created"}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /subscriptions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id":"sub_e2e_1","status":%q,"short_url":"https://rzp.test/pay/sub_e2e_1"}`, gw.status)
	})
	mux.HandleFunc("GET /subscriptions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":%q,"status":%q,"short_url":"https://rzp.test/pay/sub_e2e_1"}`, r.PathValue("id"), gw.status)
	})

	gw.server = httptest.NewServer(mux)
	t.Cleanup(gw.server.Close)
	return gw
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.httpClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

// registerUser creates an account via the public endpoint and returns
// the access and refresh tokens.
func (e *testEnv) registerUser(t *testing.T, email, city string) (access, refresh string) {
	t.Helper()

	resp, body := e.do(t, http.MethodPost, "/v1/auth/register", "", map[string]any{
		"email":      email,
		"name":       "E2E User",
		"password":   "correct horse battery",
		"city":       city,
		"resumeText": verifiedResume,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register %s: %v", email, body)

	access, _ = body["accessToken"].(string)
	refresh, _ = body["refreshToken"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	return access, refresh
}

// markPaid flips the user's subscription tier directly in the database,
// bypassing the gateway flow.
func (e *testEnv) markPaid(t *testing.T, email string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := e.pool.Exec(ctx, "UPDATE users SET subscription = 'paid' WHERE email = $1", email)
	require.NoError(t, err)
}
