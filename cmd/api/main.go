package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	"github.com/BruksfildServices01/salon-api/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-api/internal/db"
	"github.com/BruksfildServices01/salon-api/internal/logger"
	"github.com/BruksfildServices01/salon-api/internal/routes"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	rdb := newRedis(cfg, log)
	if rdb != nil {
		defer rdb.Close()
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Audit:  auditDispatcher,
		Redis:  rdb,
	})

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET not set, API authentication disabled")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	// depois do Shutdown nenhum handler dispara mais eventos
	auditDispatcher.Close()
}

// newRedis devolve nil quando REDIS_URL não está definido ou é inválido.
func newRedis(cfg *config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn("invalid REDIS_URL, rate limiting disabled", zap.Error(err))
		return nil
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, rate limiter will fail open", zap.Error(err))
	}

	return rdb
}
