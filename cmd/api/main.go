package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kingrain94/dashboard-config-api/docs"
	"github.com/kingrain94/dashboard-config-api/internal/api"
	"github.com/kingrain94/dashboard-config-api/internal/config"
	"github.com/kingrain94/dashboard-config-api/internal/middleware"
	"github.com/kingrain94/dashboard-config-api/internal/repository/gormstore"
	"github.com/kingrain94/dashboard-config-api/internal/service"
	"github.com/kingrain94/dashboard-config-api/pkg/logger"
	"github.com/kingrain94/dashboard-config-api/pkg/utils"
)

// @title           Dashboard Config API
// @version         1.0
// @description     User theme preferences and dashboard layouts.

// @host      localhost:10000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewLogger(cfg.Environment, cfg.LogLevel)
	defer appLogger.Sync()

	dbConfig := config.DefaultDatabaseConfig()
	db, err := dbConfig.Open()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer config.CloseDatabase(db)

	if err := gormstore.Migrate(db); err != nil {
		appLogger.Fatal("Failed to migrate schema", err)
	}
	appLogger.Infof("Database ready (driver=%s)", dbConfig.Driver)

	// Redis backs rate limiting only; without it requests are not limited.
	var redisClient *redis.Client
	if cfg.RateLimitEnabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err = config.DefaultRedisConfig().GetClient(ctx)
		cancel()
		if err != nil {
			appLogger.Warnf("Redis unavailable, rate limiting disabled: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	repo := gormstore.NewRepository(db, utils.NewMonotonicClock())

	// Initialize services
	preferenceService := service.NewPreferenceService(repo, appLogger)
	dashboardService := service.NewDashboardService(repo, appLogger)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	if !cfg.AuthEnabled() {
		appLogger.Warn("JWT_SECRET_KEY is empty, API routes are unauthenticated")
	}

	server := api.NewServer(
		preferenceService,
		dashboardService,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		cfg,
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(appLogger))

	// Swagger documentation endpoint
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", api.Health)

	// Setup API routes
	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
}
