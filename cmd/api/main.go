package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpx "github.com/endoforge/appforge/internal/http"
	"github.com/endoforge/appforge/internal/repository/redisstore"
	"github.com/endoforge/appforge/internal/service/auth"
	"github.com/endoforge/appforge/internal/service/blueprint"
	"github.com/endoforge/appforge/internal/service/evidence"
	"github.com/endoforge/appforge/pkg/config"
	"github.com/endoforge/appforge/pkg/logger"
)

func main() {
	cfg := config.LoadAPIConfig()
	log := logger.New("api", slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := redisstore.New(cfg.StoreRedisAddr, cfg.StoreRedisPass, cfg.StoreRedisDB, log)
	if err != nil {
		log.Error("failed to connect to store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	authSvc := auth.New(store, store, log, cfg)
	evidenceSvc := evidence.New(log)
	blueprintSvc := blueprint.New(log)

	var limiter httpx.RateLimiter
	if addr := strings.TrimSpace(cfg.RateLimitRedisAddr); addr != "" {
		redisLimiter, err := httpx.NewRedisRateLimiter(addr, cfg.RateLimitRedisPass, cfg.RateLimitRedisDB, log)
		if err != nil {
			log.Warn("redis rate limiter unavailable, falling back to in-memory", "error", err)
		} else {
			limiter = redisLimiter
		}
	}
	if limiter == nil {
		limiter = httpx.NewMemoryRateLimiter()
	}

	router := httpx.NewRouter(log, authSvc, evidenceSvc, blueprintSvc, limiter, store.Ping)
	defer router.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errorCh := make(chan error, 1)
	go func() {
		log.Info("api server starting", "addr", cfg.Addr)
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		log.Info("api server stopped")
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}
