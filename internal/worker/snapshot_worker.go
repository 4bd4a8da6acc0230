package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/dashboard-config-api/internal/config"
	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/pkg/logger"
)

// LayoutSource is satisfied by service.DashboardService.
type LayoutSource interface {
	ListLayouts(ctx context.Context) ([]domain.DashboardLayout, error)
}

// ObjectPutter is the subset of *s3.Client the worker uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type layoutSnapshot struct {
	TakenAt        time.Time                `json:"taken_at"`
	DashboardCount int                      `json:"dashboard_count"`
	Dashboards     []domain.DashboardLayout `json:"dashboards"`
}

// SnapshotWorker periodically exports every dashboard layout to S3 as one JSON document.
type SnapshotWorker struct {
	source       LayoutSource
	s3Client     ObjectPutter
	s3Config     *config.S3Config
	logger       *logger.Logger
	interval     time.Duration
	now          func() time.Time
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewSnapshotWorker(
	source LayoutSource,
	s3Client ObjectPutter,
	s3Config *config.S3Config,
	logger *logger.Logger,
	interval time.Duration,
) *SnapshotWorker {
	return &SnapshotWorker{
		source:       source,
		s3Client:     s3Client,
		s3Config:     s3Config,
		logger:       logger,
		interval:     interval,
		now:          time.Now,
		shutdownChan: make(chan struct{}),
	}
}

func (w *SnapshotWorker) Start() {
	w.logger.Info("Starting snapshot worker", zap.Duration("interval", w.interval))

	w.waitGroup.Add(1)
	go w.run()
}

func (w *SnapshotWorker) Stop() {
	w.logger.Info("Stopping snapshot worker...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("Snapshot worker stopped")
}

func (w *SnapshotWorker) run() {
	defer w.waitGroup.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), w.interval)
			if _, err := w.RunOnce(ctx); err != nil {
				w.logger.Error("Failed to write layout snapshot", err)
			}
			cancel()
		}
	}
}

// RunOnce reads all layouts and uploads them, returning the object key.
func (w *SnapshotWorker) RunOnce(ctx context.Context) (string, error) {
	layouts, err := w.source.ListLayouts(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read layouts: %w", err)
	}

	takenAt := w.now().UTC()
	body, err := json.MarshalIndent(layoutSnapshot{
		TakenAt:        takenAt,
		DashboardCount: len(layouts),
		Dashboards:     layouts,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := w.objectKey(takenAt)
	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"taken-at":        takenAt.Format(time.RFC3339),
			"dashboard-count": strconv.Itoa(len(layouts)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot to S3: %w", err)
	}

	w.logger.Info("Uploaded layout snapshot",
		zap.String("bucket", w.s3Config.BucketName),
		zap.String("key", key),
		zap.Int("dashboards", len(layouts)))
	return key, nil
}

func (w *SnapshotWorker) objectKey(takenAt time.Time) string {
	name := fmt.Sprintf("%s_%s.json", takenAt.Format("2006-01-02_15-04-05"), uuid.NewString())
	return path.Join(w.s3Config.KeyPrefix, name)
}
