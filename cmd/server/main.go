package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tyzox-be/internal/config"
	"tyzox-be/internal/db"
	"tyzox-be/internal/idempotency"
	"tyzox-be/internal/logger"
	"tyzox-be/internal/middleware"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var (
	initDBFunc      = db.InitDB
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	keys, err := newIdempotencyStore(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer keys.Close()

	limiter := middleware.NewRateLimiter(middleware.LimiterOptions{
		InternalKey:  cfg.InternalKey,
		StrictRoutes: strictRoutes,
	})
	defer limiter.Close()

	router := newServer(cfg, database, keys, limiter)

	addr := ":" + cfg.AppPort
	logger.L().Info("HTTP server listening", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
	return startServerFunc(addr, router)
}

// newIdempotencyStore uses Redis when REDIS_ADDR is set so duplicate
// checkouts are caught across instances; otherwise keys live in memory.
func newIdempotencyStore(ctx context.Context, cfg *config.Config) (idempotency.Store, error) {
	if cfg.RedisAddr == "" {
		return idempotency.NewMemoryStore(time.Minute), nil
	}
	return idempotency.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword)
}

// startServer serves until SIGINT/SIGTERM, then drains in-flight requests.
func startServer(addr string, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
