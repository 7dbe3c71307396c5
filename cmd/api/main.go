package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	"go-jobboard-backend/internal/delivery/http/middleware"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// @title           Job Quest API
// @version         1.0
// @description     Job board backend: jobs, applications and users behind cookie based sessions.
// @host            localhost:5000
// @BasePath        /
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Environment)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "store", cfg.StoreDriver)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	secLog := security.NewSecurityLogger("jobboard-backend", cfg.Environment)
	defer secLog.Sync()

	// 3. Setup Store
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := openStores(startupCtx, cfg)
	cancelStartup()
	if err != nil {
		logger.Log.Error("Failed to connect to store", "error", err)
		os.Exit(1)
	}

	// 4. Setup Rate Limiter (Redis optional)
	redisCtx, cancelRedis := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := redis.New(redisCtx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	cancelRedis()
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Info("Redis not configured, rate limiting in memory")
	case err != nil:
		logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
		redisClient = nil
	default:
		defer redisClient.Close()
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	limiter := middleware.NewRateLimiter(redisClient, secLog)
	go limiter.RunCleanup(appCtx, 5*time.Minute)

	// 5. Setup UseCases
	jobUC := usecase.NewJobUsecase(store.jobs)
	applicationUC := usecase.NewApplicationUsecase(store.applications)
	userUC := usecase.NewUserUsecase(store.users)
	healthUC := usecase.NewHealthUsecase(store.pinger)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		UserUC:        userUC,
		HealthUC:      healthUC,
		Tokens:        auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL),
		RateLimiter:   limiter,
		SecLog:        secLog,
		Config:        cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	if err := store.close(ctx); err != nil {
		logger.Log.Error("Store close failed", "error", err)
	}

	logger.Log.Info("Server exiting")
}
