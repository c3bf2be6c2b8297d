package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"

	"github.com/nutrisync/nutrisync/internal/client/wearable"
	"github.com/nutrisync/nutrisync/internal/config"
	"github.com/nutrisync/nutrisync/internal/migrations/postgres"
	"github.com/nutrisync/nutrisync/internal/plan"
	"github.com/nutrisync/nutrisync/internal/recipe"
	xredis "github.com/nutrisync/nutrisync/internal/redis"
	"github.com/nutrisync/nutrisync/internal/repository"
	"github.com/nutrisync/nutrisync/internal/server"
	"github.com/nutrisync/nutrisync/internal/server/handler"
	servermw "github.com/nutrisync/nutrisync/internal/server/middleware"
	"github.com/nutrisync/nutrisync/internal/storage"
	"github.com/nutrisync/nutrisync/internal/xhttp/middleware"
	"github.com/nutrisync/nutrisync/internal/xslog"
	"github.com/nutrisync/nutrisync/internal/xsync"
)

const (
	keyPort        = "port"
	keyGracePeriod = "grace_period"

	shutdownGracePeriod = 2 * time.Second
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	pool, err := initPostgres(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize postgres: %w", err)
	}
	defer pool.Close()

	backend, err := initBackend(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage backend: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.ErrorContext(ctx, "failed to close backend", xslog.Error(err))
		}
	}()

	// Database layer
	repo := repository.New(pool)

	// Services
	client := wearable.New(
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.WearableToken}),
		wearable.WithBaseURL(cfg.WearableURL),
		wearable.WithTimeout(cfg.HTTPTimeout),
		wearable.WithLogger(logger),
	)
	syncService := xsync.NewService(client, xsync.Repos{
		Profiles: repo.Profiles,
		Samples:  repo.Samples,
		Metrics:  repo.Metrics,
	}, backend, logger)
	fetcher := xsync.NewFetcher(syncService, logger)
	planService := plan.NewService(recipe.Seed(), repo.Plans, logger)

	// Handlers
	planHandler := handler.NewPlan(repo.Profiles, fetcher, planService)
	recoveryHandler := handler.NewRecovery(repo.Samples, planService)
	profileHandler := handler.NewProfile(repo.Profiles)
	metricsHandler := handler.NewMetrics(fetcher)
	healthHandler := handler.NewHealth(backend)

	mux := http.NewServeMux()

	// API routes - protected by the IP rate limiter
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("POST /api/v1/users/{id}/plan", servermw.UserContext(planHandler.HandleGenerate))
	apiMux.HandleFunc("GET /api/v1/users/{id}/plan", servermw.UserContext(planHandler.HandleLatest))
	apiMux.HandleFunc("GET /api/v1/users/{id}/recovery", servermw.UserContext(recoveryHandler.HandleStatus))
	apiMux.HandleFunc("GET /api/v1/users/{id}/profile", servermw.UserContext(profileHandler.HandleGet))
	apiMux.HandleFunc("PUT /api/v1/users/{id}/profile", servermw.UserContext(profileHandler.HandlePut))
	apiMux.HandleFunc("GET /api/v1/users/{id}/metrics", servermw.UserContext(metricsHandler.HandleGet))
	apiWrapped := middleware.Chain(apiMux,
		servermw.RateLimitWithBackend(backend),
	)
	mux.Handle("/api/v1/", apiWrapped)

	mux.HandleFunc("GET /healthz", healthHandler.HandleCheck)

	wrapped := middleware.Chain(mux,
		middleware.Recovery,
		middleware.Logging,
		middleware.Logger(logger),
		middleware.ShutdownContext,
		middleware.RequestID(),
		middleware.ClientSessionID,
		middleware.SecurityHeaders,
		middleware.Gzip,
	)

	shutdownCoordinator := server.NewShutdownCoordinator(shutdownGracePeriod)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return shutdownCoordinator.BaseContext()
		},
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.InfoContext(ctx, "starting server",
			xslog.Version(),
			slog.String(keyPort, cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "server error", xslog.Error(err))
		}
	}()

	<-done
	logger.InfoContext(ctx, "shutdown signal received, initiating graceful shutdown")

	// cancel base context and give in-flight requests the grace period
	shutdownCoordinator.InitiateShutdown()
	logger.InfoContext(ctx, "grace period complete, shutting down server",
		slog.Duration(keyGracePeriod, shutdownGracePeriod))

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

func initPostgres(ctx context.Context, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	logger.InfoContext(ctx, "initializing PostgreSQL")

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := postgres.Apply(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return pool, nil
}

// initBackend prefers the Redis backend and falls back to the
// in-process one when no Redis URL is configured.
func initBackend(ctx context.Context, cfg config.Config, logger *slog.Logger) (storage.Backend, error) {
	if cfg.RedisURL == "" {
		logger.InfoContext(ctx, "no redis URL configured, using in-memory backend")
		perSec := float64(cfg.RateLimitPerMinute) / 60.0
		return storage.NewMemoryBackend(perSec, cfg.RateLimitPerMinute), nil
	}

	logger.InfoContext(ctx, "initializing Redis backend")
	redisClient, err := xredis.New(ctx, xredis.Config{URL: cfg.RedisURL})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis client: %w", err)
	}
	return storage.NewRedisBackend(storage.RedisConfig{Client: redisClient}, cfg.RateLimitPerMinute)
}
