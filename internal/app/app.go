package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/techconnect-india/backend/internal/adapter/moderation"
	"github.com/techconnect-india/backend/internal/adapter/payment"
	"github.com/techconnect-india/backend/internal/adapter/postgres"
	messagerepo "github.com/techconnect-india/backend/internal/adapter/postgres/message"
	reportrepo "github.com/techconnect-india/backend/internal/adapter/postgres/report"
	tokenrepo "github.com/techconnect-india/backend/internal/adapter/postgres/token"
	userrepo "github.com/techconnect-india/backend/internal/adapter/postgres/user"
	authtoken "github.com/techconnect-india/backend/internal/auth"
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

// Run is the application entry point. It loads configuration, applies
// database migrations, wires repositories, services and transport, and
// serves HTTP until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	messages := messagerepo.New(pool)
	reports := reportrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services.
	jwtManager := authtoken.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users)
	matchService := match.NewService(logger, users)

	var gateService *gate.Service
	if cfg.Moderation.OpenAIAPIKey != "" {
		gateService = gate.NewService(logger, moderation.New(cfg.Moderation.OpenAIAPIKey), reports, cfg.Chat.FreeMessageLimit)
	} else {
		logger.Warn("moderation endpoint disabled, using local deny-list only")
		gateService = gate.NewService(logger, nil, reports, cfg.Chat.FreeMessageLimit)
	}

	chatService := chat.NewService(logger, users, messages, gateService, cfg.Chat)
	billingService := billing.NewService(logger, users, payment.New(cfg.Payment.KeyID, cfg.Payment.KeySecret, logger))

	// Transport.
	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Profile: rest.NewProfileHandler(userService, logger),
		Match:   rest.NewMatchHandler(matchService, logger),
		Chat:    rest.NewChatHandler(chatService, logger),
		Billing: rest.NewBillingHandler(billingService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		rateLimiter.Limit(cfg.Server.RateLimit),
		middleware.Auth(authService),
	)(rest.NewRouter(handlers))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
