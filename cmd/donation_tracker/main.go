package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/donation_tracker/internal/backup"
	"github.com/SscSPs/donation_tracker/internal/core/store"
	"github.com/SscSPs/donation_tracker/internal/handlers"
	"github.com/SscSPs/donation_tracker/internal/middleware"
	"github.com/SscSPs/donation_tracker/internal/platform/config"
	"github.com/SscSPs/donation_tracker/internal/platform/logging"
	"github.com/SscSPs/donation_tracker/internal/platform/metrics"
	"github.com/SscSPs/donation_tracker/internal/repositories/database/sqldb"
	"github.com/SscSPs/donation_tracker/pkg/database"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := cfg.Options()
	if cfg.RunMigrations {
		logger.Info("Running database migrations...", slog.String("driver", string(opts.Driver)))
		if err := database.Migrate(opts, logger); err != nil {
			return err
		}
	}

	h, err := database.Open(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := h.Close(); cerr != nil {
			logger.Error("Error closing database", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Database connection established.", slog.String("driver", string(h.Driver)))

	prom := metrics.NewPrometheus()
	repos := sqldb.NewRepositoryProvider(h.DB, h.Driver, prom)
	stores := store.NewContainer(repos, store.WithRecorder(prom))

	var backups *backup.Manager
	target, err := backup.NewTarget(ctx, cfg.Backup)
	if err != nil {
		return err
	}
	if target != nil {
		backups = backup.NewManager(h.DB, h.Driver, target, cfg.Backup.Prefix)
		logger.Info("Backups enabled", slog.String("target", target.Name()))
	}

	limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(limiter),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, handlers.Dependencies{
		Stores:  stores,
		Backups: backups,
		Metrics: prom.Handler(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
