// Package main runs the seminar portal auth and admin HTTP server with
// graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seminar-portal/backend/config"
	"github.com/seminar-portal/backend/internal/auth"
	"github.com/seminar-portal/backend/internal/middleware"
	"github.com/seminar-portal/backend/internal/tenant"
	"github.com/seminar-portal/backend/pkg/redis"
	"github.com/seminar-portal/backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if cfg.Admin.JWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET not set, admin login disabled")
	}

	ctx := context.Background()

	// Lockout state prefers Redis so the attempt budget holds across
	// instances; without it the server falls back to process-local tracking.
	var lockouts auth.LockoutStore
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			logger.Warn("redis unavailable, using in-memory lockout store", zap.Error(err))
		} else {
			defer rdb.Close()
			lockouts = auth.NewRedisLockoutStore(rdb.Client)
		}
	}
	if lockouts == nil {
		store := auth.NewMemoryLockoutStore()
		defer store.Close()
		lockouts = store
	}

	resolver := tenant.NewResolver(cfg)
	jwtService := auth.NewJWTService(cfg.Admin.JWTSecret, cfg.Admin.ExpireHours)
	guard := auth.NewGuard(resolver, lockouts, cfg.Admin.Password)

	secureCookie := gin.Mode() == gin.ReleaseMode
	authHandler := auth.NewHandler(guard, jwtService, cfg.Admin, secureCookie, logger)
	tenantHandler := tenant.NewHandler(resolver)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	authGroup := router.Group("/auth")
	{
		authGroup.POST("", authHandler.Login)
		authGroup.DELETE("", authHandler.Logout)
		authGroup.GET("/session", authHandler.Session)
		authGroup.GET("/tenants", authHandler.Tenants)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth(jwtService))
	{
		admin.GET("/:tenant/config", middleware.RequireTenantScope(), tenantHandler.Get)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
