package repository

import (
	"context"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
)

// Lookups return (nil, nil) when no record matches; absence is not an error.

//go:generate mockery --name PreferenceRepository --output ../mocks
type PreferenceRepository interface {
	Insert(ctx context.Context, pref *domain.UserPreference) (*domain.UserPreference, error)
	FindByUserID(ctx context.Context, userID string) (*domain.UserPreference, error)
	UpdateTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.UserPreference, error)
	UpsertTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.UserPreference, error)
}

//go:generate mockery --name DashboardRepository --output ../mocks
type DashboardRepository interface {
	Insert(ctx context.Context, dashboard *domain.Dashboard) (*domain.Dashboard, error)
	FindByID(ctx context.Context, id uint) (*domain.Dashboard, error)
	List(ctx context.Context) ([]domain.Dashboard, error)
	Update(ctx context.Context, id uint, update domain.DashboardUpdate) (*domain.Dashboard, error)
	// DeleteCascade removes the dashboard and its components atomically and
	// returns the number of removed records, 0 when the dashboard did not exist.
	DeleteCascade(ctx context.Context, id uint) (int64, error)
}

//go:generate mockery --name ComponentRepository --output ../mocks
type ComponentRepository interface {
	// Insert fails with ErrParentNotFound when the dashboard is gone by the time
	// the insert runs.
	Insert(ctx context.Context, component *domain.DashboardComponent) (*domain.DashboardComponent, error)
	FindByID(ctx context.Context, id uint) (*domain.DashboardComponent, error)
	ListByDashboard(ctx context.Context, dashboardID uint) ([]domain.DashboardComponent, error)
	Update(ctx context.Context, id uint, update domain.ComponentUpdate) (*domain.DashboardComponent, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Preference() PreferenceRepository
	Dashboard() DashboardRepository
	Component() ComponentRepository
}
