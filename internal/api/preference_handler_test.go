package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/dashboard-config-api/internal/api/dto"
	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/internal/repository"
	"github.com/kingrain94/dashboard-config-api/internal/service"
)

type PreferenceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPreferenceService
	handler     *PreferenceHandler
}

type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) Create(ctx context.Context, userID string, theme *domain.Theme) (*domain.UserPreference, error) {
	args := m.Called(ctx, userID, theme)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPreference), args.Error(1)
}

func (m *MockPreferenceService) Get(ctx context.Context, userID string) (*domain.UserPreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPreference), args.Error(1)
}

func (m *MockPreferenceService) Update(ctx context.Context, userID string, theme domain.Theme) (*domain.UserPreference, error) {
	args := m.Called(ctx, userID, theme)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPreference), args.Error(1)
}

func (m *MockPreferenceService) UpsertTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.ThemeResponse, error) {
	args := m.Called(ctx, userID, theme)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThemeResponse), args.Error(1)
}

func (s *PreferenceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockPreferenceService)
	s.handler = NewPreferenceHandler(s.mockService)

	s.router.POST("/preferences", s.handler.CreatePreference)
	s.router.GET("/preferences/:user_id", s.handler.GetPreference)
	s.router.PUT("/preferences/:user_id", s.handler.UpdatePreference)
	s.router.PUT("/preferences/:user_id/theme", s.handler.UpsertTheme)
}

func TestPreferenceHandler(t *testing.T) {
	suite.Run(t, new(PreferenceHandlerTestSuite))
}

func (s *PreferenceHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PreferenceHandlerTestSuite) TestCreatePreference_Success() {
	// Arrange
	now := time.Now().UTC()
	dark := domain.ThemeDark
	expected := &domain.UserPreference{ID: 1, UserID: "u1", Theme: dark, CreatedAt: now, UpdatedAt: now}
	s.mockService.On("Create", mock.Anything, "u1", &dark).Return(expected, nil)

	// Act
	w := s.do(http.MethodPost, "/preferences", map[string]any{"user_id": "u1", "theme": "dark"})

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.PreferenceResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("u1", response.UserID)
	s.Equal("dark", response.Theme)
	s.mockService.AssertExpectations(s.T())
}

func (s *PreferenceHandlerTestSuite) TestCreatePreference_Duplicate() {
	// Arrange
	s.mockService.On("Create", mock.Anything, "u1", (*domain.Theme)(nil)).Return(nil, service.ErrDuplicateUser)

	// Act
	w := s.do(http.MethodPost, "/preferences", map[string]any{"user_id": "u1"})

	// Assert
	s.Equal(http.StatusConflict, w.Code)
}

func (s *PreferenceHandlerTestSuite) TestCreatePreference_InvalidTheme() {
	w := s.do(http.MethodPost, "/preferences", map[string]any{"user_id": "u1", "theme": "sepia"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PreferenceHandlerTestSuite) TestGetPreference_AbsentReturnsNull() {
	// Arrange
	s.mockService.On("Get", mock.Anything, "first-timer").Return(nil, nil)

	// Act
	w := s.do(http.MethodGet, "/preferences/first-timer", nil)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Equal("null", w.Body.String())
}

func (s *PreferenceHandlerTestSuite) TestUpdatePreference_NotFound() {
	// Arrange
	s.mockService.On("Update", mock.Anything, "ghost", domain.ThemeDark).Return(nil, service.ErrPreferenceNotFound)

	// Act
	w := s.do(http.MethodPut, "/preferences/ghost", map[string]any{"theme": "dark"})

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(service.ErrPreferenceNotFound.Error(), response.Error)
}

func (s *PreferenceHandlerTestSuite) TestUpsertTheme_Success() {
	// Arrange
	updated := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.mockService.On("UpsertTheme", mock.Anything, "u1", domain.ThemeLight).
		Return(&domain.ThemeResponse{Theme: domain.ThemeLight, UpdatedAt: updated}, nil)

	// Act
	w := s.do(http.MethodPut, "/preferences/u1/theme", map[string]any{"theme": "light"})

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"theme":"light","updated_at":"2024-05-01T10:00:00Z"}`, w.Body.String())
}

func (s *PreferenceHandlerTestSuite) TestUpsertTheme_StoreUnavailable() {
	// Arrange
	storeErr := &repository.StoreError{Sentinel: repository.ErrStoreUnavailable, Cause: context.DeadlineExceeded}
	s.mockService.On("UpsertTheme", mock.Anything, "u1", domain.ThemeDark).Return(nil, storeErr)

	// Act
	w := s.do(http.MethodPut, "/preferences/u1/theme", map[string]any{"theme": "dark"})

	// Assert
	s.Equal(http.StatusServiceUnavailable, w.Code)
}
