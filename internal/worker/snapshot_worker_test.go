package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/dashboard-config-api/internal/config"
	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/pkg/logger"
)

type MockLayoutSource struct {
	mock.Mock
}

func (m *MockLayoutSource) ListLayouts(ctx context.Context) ([]domain.DashboardLayout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DashboardLayout), args.Error(1)
}

type recordingPutter struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (r *recordingPutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if r.err != nil {
		return nil, r.err
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	r.inputs = append(r.inputs, params)
	r.bodies = append(r.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func newTestWorker(source LayoutSource, putter ObjectPutter) *SnapshotWorker {
	w := NewSnapshotWorker(source, putter, &config.S3Config{
		BucketName: "snapshots",
		KeyPrefix:  "dashboards/snapshots",
	}, logger.NewNop(), time.Minute)
	w.now = func() time.Time { return time.Date(2024, 3, 9, 8, 30, 0, 0, time.UTC) }
	return w
}

func TestSnapshotWorker_RunOnceUploadsLayouts(t *testing.T) {
	// Arrange
	ctx := context.Background()
	source := new(MockLayoutSource)
	source.On("ListLayouts", ctx).Return([]domain.DashboardLayout{{
		Dashboard:  domain.Dashboard{ID: 1, Name: "Ops", IsActive: true},
		Components: []domain.DashboardComponent{{ID: 3, DashboardID: 1, Title: "CPU", Width: 4, Height: 3}},
	}}, nil)
	putter := &recordingPutter{}

	// Act
	key, err := newTestWorker(source, putter).RunOnce(ctx)

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "dashboards/snapshots/2024-03-09_08-30-00_"))
	assert.True(t, strings.HasSuffix(key, ".json"))

	require.Len(t, putter.inputs, 1)
	assert.Equal(t, "snapshots", aws.ToString(putter.inputs[0].Bucket))
	assert.Equal(t, key, aws.ToString(putter.inputs[0].Key))
	assert.Equal(t, "1", putter.inputs[0].Metadata["dashboard-count"])

	var snapshot layoutSnapshot
	require.NoError(t, json.Unmarshal(putter.bodies[0], &snapshot))
	assert.Equal(t, 1, snapshot.DashboardCount)
	assert.Equal(t, "CPU", snapshot.Dashboards[0].Components[0].Title)
}

func TestSnapshotWorker_KeysAreUniquePerRun(t *testing.T) {
	ctx := context.Background()
	source := new(MockLayoutSource)
	source.On("ListLayouts", ctx).Return([]domain.DashboardLayout{}, nil)
	w := newTestWorker(source, &recordingPutter{})

	first, err := w.RunOnce(ctx)
	require.NoError(t, err)
	second, err := w.RunOnce(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSnapshotWorker_SourceErrorSkipsUpload(t *testing.T) {
	// Arrange
	ctx := context.Background()
	source := new(MockLayoutSource)
	source.On("ListLayouts", ctx).Return(nil, errors.New("store unavailable"))
	putter := &recordingPutter{}

	// Act
	_, err := newTestWorker(source, putter).RunOnce(ctx)

	// Assert
	assert.ErrorContains(t, err, "failed to read layouts")
	assert.Empty(t, putter.inputs)
}

func TestSnapshotWorker_UploadError(t *testing.T) {
	ctx := context.Background()
	source := new(MockLayoutSource)
	source.On("ListLayouts", ctx).Return([]domain.DashboardLayout{}, nil)

	_, err := newTestWorker(source, &recordingPutter{err: errors.New("access denied")}).RunOnce(ctx)

	assert.ErrorContains(t, err, "access denied")
}

func TestSnapshotWorker_StartStop(t *testing.T) {
	source := new(MockLayoutSource)
	source.On("ListLayouts", mock.Anything).Return([]domain.DashboardLayout{}, nil).Maybe()
	w := NewSnapshotWorker(source, &recordingPutter{}, &config.S3Config{BucketName: "b"}, logger.NewNop(), time.Hour)

	w.Start()
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
