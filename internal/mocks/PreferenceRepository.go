package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
)

// PreferenceRepository is a mock type for the PreferenceRepository type
type PreferenceRepository struct {
	mock.Mock
}

func (_m *PreferenceRepository) Insert(ctx context.Context, pref *domain.UserPreference) (*domain.UserPreference, error) {
	ret := _m.Called(ctx, pref)
	return preferenceOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *PreferenceRepository) FindByUserID(ctx context.Context, userID string) (*domain.UserPreference, error) {
	ret := _m.Called(ctx, userID)
	return preferenceOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *PreferenceRepository) UpdateTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.UserPreference, error) {
	ret := _m.Called(ctx, userID, theme)
	return preferenceOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *PreferenceRepository) UpsertTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.UserPreference, error) {
	ret := _m.Called(ctx, userID, theme)
	return preferenceOrNil(ret.Get(0)), ret.Error(1)
}

func preferenceOrNil(v any) *domain.UserPreference {
	if v == nil {
		return nil
	}
	return v.(*domain.UserPreference)
}
