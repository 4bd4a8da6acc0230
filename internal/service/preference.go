package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/internal/repository"
	"github.com/kingrain94/dashboard-config-api/pkg/logger"
)

type PreferenceService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewPreferenceService(repo repository.Repository, logger *logger.Logger) *PreferenceService {
	return &PreferenceService{repo: repo, logger: logger}
}

// Create stores the first preference for userID. A nil theme stores DefaultTheme.
func (s *PreferenceService) Create(ctx context.Context, userID string, theme *domain.Theme) (*domain.UserPreference, error) {
	selected := domain.DefaultTheme
	if theme != nil {
		selected = *theme
	}
	if err := validatePreference(userID, selected); err != nil {
		return nil, err
	}

	pref, err := s.repo.Preference().Insert(ctx, &domain.UserPreference{
		UserID: userID,
		Theme:  selected,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConstraintViolation) {
			s.logger.Warn("Preference already exists", zap.String("user_id", userID))
			return nil, ErrDuplicateUser
		}
		s.logger.Error("Failed to create preference", err, zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}

	return pref, nil
}

// Get returns nil without an error for a user that has never stored a preference.
func (s *PreferenceService) Get(ctx context.Context, userID string) (*domain.UserPreference, error) {
	pref, err := s.repo.Preference().FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get preference", err, zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return pref, nil
}

// Update changes the theme of an existing preference and never creates one.
func (s *PreferenceService) Update(ctx context.Context, userID string, theme domain.Theme) (*domain.UserPreference, error) {
	if err := validatePreference(userID, theme); err != nil {
		return nil, err
	}

	pref, err := s.repo.Preference().UpdateTheme(ctx, userID, theme)
	if err != nil {
		s.logger.Error("Failed to update preference", err, zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to update preference: %w", err)
	}
	if pref == nil {
		s.logger.Info("Preference not found for update", zap.String("user_id", userID))
		return nil, ErrPreferenceNotFound
	}

	return pref, nil
}

// UpsertTheme creates or updates the preference atomically and returns only the
// stored theme and its timestamp.
func (s *PreferenceService) UpsertTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.ThemeResponse, error) {
	if err := validatePreference(userID, theme); err != nil {
		return nil, err
	}

	pref, err := s.repo.Preference().UpsertTheme(ctx, userID, theme)
	if err != nil {
		s.logger.Error("Failed to upsert theme", err, zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to upsert theme: %w", err)
	}

	return &domain.ThemeResponse{
		Theme:     pref.Theme,
		UpdatedAt: pref.UpdatedAt,
	}, nil
}

func validatePreference(userID string, theme domain.Theme) error {
	if userID == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if !domain.IsValidTheme(string(theme)) {
		return fmt.Errorf("%w: unsupported theme %q", ErrInvalidInput, theme)
	}
	return nil
}
