package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Mamlesh45/Myntra-Clone/internal/catalog"
	"github.com/Mamlesh45/Myntra-Clone/internal/config"
	handler "github.com/Mamlesh45/Myntra-Clone/internal/handler/http"
	"github.com/Mamlesh45/Myntra-Clone/internal/notify"
	"github.com/Mamlesh45/Myntra-Clone/internal/repository"
	"github.com/Mamlesh45/Myntra-Clone/internal/repository/memory"
	redisrepo "github.com/Mamlesh45/Myntra-Clone/internal/repository/redis"
	"github.com/Mamlesh45/Myntra-Clone/internal/service"
	"github.com/Mamlesh45/Myntra-Clone/pkg/health"
)

// App wires together all dependencies and runs the storefront server.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	rdb        *redis.Client
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Session storage backend. Memory is the default; redis keeps sessions
	// across restarts and shares them between replicas.
	var (
		repo repository.SessionRepository
		rdb  *redis.Client
	)
	switch cfg.SessionBackend {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)
		repo = redisrepo.NewSessionRepository(rdb, cfg.SessionTTLDuration())
	default:
		repo = memory.NewSessionRepository(cfg.SessionTTLDuration())
		logger.Info("using in-memory session storage")
	}

	// Build the dependency graph.
	cat := catalog.New(cfg.CatalogSize)
	notifier := notify.NewCenter(cfg.NotifyDismissDuration())
	storefrontService := service.NewStorefrontService(repo, cat, notifier, logger, nil)

	// Health checks.
	healthHandler := health.NewHandler()
	if rdb != nil {
		healthHandler.Register("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	// HTTP router.
	router := handler.NewRouter(storefrontService, healthHandler, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		rdb:        rdb,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("application shutdown complete")
	return nil
}
