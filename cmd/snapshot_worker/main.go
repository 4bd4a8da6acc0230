package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/dashboard-config-api/internal/config"
	"github.com/kingrain94/dashboard-config-api/internal/repository/gormstore"
	"github.com/kingrain94/dashboard-config-api/internal/service"
	"github.com/kingrain94/dashboard-config-api/internal/worker"
	"github.com/kingrain94/dashboard-config-api/pkg/logger"
	"github.com/kingrain94/dashboard-config-api/pkg/utils"
)

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

	db, err := config.DefaultDatabaseConfig().Open()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer config.CloseDatabase(db)

	dashboardService := service.NewDashboardService(
		gormstore.NewRepository(db, utils.NewMonotonicClock()),
		appLogger,
	)

	s3Config := config.DefaultS3Config()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	s3Client, err := s3Config.GetClient(ctx)
	cancel()
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}

	snapshotWorker := worker.NewSnapshotWorker(
		dashboardService,
		s3Client,
		s3Config,
		appLogger,
		cfg.SnapshotInterval,
	)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	snapshotWorker.Start()

	<-sigChan
	appLogger.Info("Shutting down snapshot worker...")
	snapshotWorker.Stop()
}
