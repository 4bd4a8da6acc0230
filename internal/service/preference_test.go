package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/internal/mocks"
	"github.com/kingrain94/dashboard-config-api/internal/repository"
	"github.com/kingrain94/dashboard-config-api/pkg/logger"
)

type PreferenceServiceTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockPreference *mocks.PreferenceRepository
	service        *PreferenceService
}

func (s *PreferenceServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockPreference = new(mocks.PreferenceRepository)

	s.mockRepo.On("Preference").Return(s.mockPreference)

	s.service = NewPreferenceService(s.mockRepo, logger.NewNop())
}

func TestPreferenceService(t *testing.T) {
	suite.Run(t, new(PreferenceServiceTestSuite))
}

func (s *PreferenceServiceTestSuite) TestCreate_DefaultsToLightTheme() {
	// Arrange
	ctx := context.Background()
	now := time.Now().UTC()
	expected := &domain.UserPreference{ID: 1, UserID: "u1", Theme: domain.ThemeLight, CreatedAt: now, UpdatedAt: now}

	s.mockPreference.On("Insert", ctx, mock.MatchedBy(func(p *domain.UserPreference) bool {
		return p.UserID == "u1" && p.Theme == domain.ThemeLight
	})).Return(expected, nil)

	// Act
	pref, err := s.service.Create(ctx, "u1", nil)

	// Assert
	s.NoError(err)
	s.Equal(expected, pref)
	s.mockPreference.AssertExpectations(s.T())
}

func (s *PreferenceServiceTestSuite) TestCreate_DuplicateUser() {
	// Arrange
	ctx := context.Background()
	theme := domain.ThemeDark
	storeErr := &repository.StoreError{Sentinel: repository.ErrConstraintViolation, Cause: errors.New("UNIQUE constraint failed")}

	s.mockPreference.On("Insert", ctx, mock.AnythingOfType("*domain.UserPreference")).Return(nil, storeErr)

	// Act
	pref, err := s.service.Create(ctx, "u1", &theme)

	// Assert
	s.Nil(pref)
	s.ErrorIs(err, ErrDuplicateUser)
	s.mockPreference.AssertExpectations(s.T())
}

func (s *PreferenceServiceTestSuite) TestCreate_RejectsUnknownTheme() {
	// Arrange
	theme := domain.Theme("sepia")

	// Act
	pref, err := s.service.Create(context.Background(), "u1", &theme)

	// Assert
	s.Nil(pref)
	s.ErrorIs(err, ErrInvalidInput)
	s.mockPreference.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *PreferenceServiceTestSuite) TestGet_AbsentIsNotAnError() {
	// Arrange
	ctx := context.Background()
	s.mockPreference.On("FindByUserID", ctx, "first-timer").Return(nil, nil)

	// Act
	pref, err := s.service.Get(ctx, "first-timer")

	// Assert
	s.NoError(err)
	s.Nil(pref)
}

func (s *PreferenceServiceTestSuite) TestUpdate_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockPreference.On("UpdateTheme", ctx, "ghost", domain.ThemeDark).Return(nil, nil)

	// Act
	pref, err := s.service.Update(ctx, "ghost", domain.ThemeDark)

	// Assert
	s.Nil(pref)
	s.ErrorIs(err, ErrPreferenceNotFound)
	s.mockPreference.AssertNotCalled(s.T(), "UpsertTheme", mock.Anything, mock.Anything, mock.Anything)
	s.mockPreference.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *PreferenceServiceTestSuite) TestUpsertTheme_ReturnsNarrowProjection() {
	// Arrange
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	stored := &domain.UserPreference{ID: 7, UserID: "u1", Theme: domain.ThemeDark, CreatedAt: created, UpdatedAt: updated}

	s.mockPreference.On("UpsertTheme", ctx, "u1", domain.ThemeDark).Return(stored, nil)

	// Act
	resp, err := s.service.UpsertTheme(ctx, "u1", domain.ThemeDark)

	// Assert
	s.NoError(err)
	s.Equal(&domain.ThemeResponse{Theme: domain.ThemeDark, UpdatedAt: updated}, resp)
}

func (s *PreferenceServiceTestSuite) TestUpsertTheme_StoreUnavailablePropagates() {
	// Arrange
	ctx := context.Background()
	storeErr := &repository.StoreError{Sentinel: repository.ErrStoreUnavailable, Cause: context.DeadlineExceeded}
	s.mockPreference.On("UpsertTheme", ctx, "u1", domain.ThemeLight).Return(nil, storeErr).Once()

	// Act
	resp, err := s.service.UpsertTheme(ctx, "u1", domain.ThemeLight)

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, ErrStoreUnavailable)
	s.ErrorIs(err, context.DeadlineExceeded)
	s.mockPreference.AssertNumberOfCalls(s.T(), "UpsertTheme", 1)
}

func (s *PreferenceServiceTestSuite) TestUpsertTheme_RequiresUserID() {
	resp, err := s.service.UpsertTheme(context.Background(), "", domain.ThemeDark)

	s.Nil(resp)
	s.ErrorIs(err, ErrInvalidInput)
	s.Contains(fmt.Sprint(err), "user_id")
}
