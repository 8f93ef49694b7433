// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/civicvoice/civicvoice-backend/internal/adapter/postgres"
	activityrepo "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/activity"
	catalogrepo "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/catalog"
	complaintrepo "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/complaint"
	engagementrepo "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/engagement"
	sessionrepo "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/session"
	statsrepo "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/stats"
	userrepo "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/user"
	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/config"
	authsvc "github.com/civicvoice/civicvoice-backend/internal/service/auth"
	complaintsvc "github.com/civicvoice/civicvoice-backend/internal/service/complaint"
	engagementsvc "github.com/civicvoice/civicvoice-backend/internal/service/engagement"
	statssvc "github.com/civicvoice/civicvoice-backend/internal/service/stats"
	usersvc "github.com/civicvoice/civicvoice-backend/internal/service/user"
	"github.com/civicvoice/civicvoice-backend/internal/transport/middleware"
	"github.com/civicvoice/civicvoice-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database pool, wires the services, and serves HTTP until
// the context is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	catalog := catalogrepo.New(pool)
	complaints := complaintrepo.New(pool)
	engagement := engagementrepo.New(pool)
	activity := activityrepo.New(pool)
	sessions := sessionrepo.New(pool)
	stats := statsrepo.New(pool)

	jwtm := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, sessions, catalog, jwtm, cfg.Auth)
	complaintService := complaintsvc.NewService(logger, complaints, catalog, activity, txm)
	engagementService := engagementsvc.NewService(logger, engagement, complaints, activity, txm)
	userService := usersvc.NewService(logger, users, catalog, sessions, txm, cfg.Auth)
	statsService := statssvc.NewService(logger, stats, users)

	router := rest.NewRouter(rest.Handlers{
		Auth:       rest.NewAuthHandler(authService, logger),
		Complaints: rest.NewComplaintHandler(complaintService, logger),
		Engagement: rest.NewEngagementHandler(engagementService, logger),
		Profile:    rest.NewProfileHandler(userService, logger),
		Catalog:    rest.NewCatalogHandler(catalog, logger),
		Admin:      rest.NewAdminHandler(complaintService, userService, statsService, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
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

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
