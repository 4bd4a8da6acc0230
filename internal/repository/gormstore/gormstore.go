package gormstore

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/internal/repository"
	"github.com/kingrain94/dashboard-config-api/pkg/utils"
)

type gormRepository struct {
	preferenceRepo repository.PreferenceRepository
	dashboardRepo  repository.DashboardRepository
	componentRepo  repository.ComponentRepository
}

// NewRepository builds the three entity families on one connection and one
// clock, so timestamps stay comparable across families.
func NewRepository(db *gorm.DB, clock utils.Clock) repository.Repository {
	return &gormRepository{
		preferenceRepo: NewPreferenceRepository(db, clock),
		dashboardRepo:  NewDashboardRepository(db, clock),
		componentRepo:  NewComponentRepository(db, clock),
	}
}

func (r *gormRepository) Preference() repository.PreferenceRepository {
	return r.preferenceRepo
}

func (r *gormRepository) Dashboard() repository.DashboardRepository {
	return r.dashboardRepo
}

func (r *gormRepository) Component() repository.ComponentRepository {
	return r.componentRepo
}

// Migrate creates or updates the tables, indexes and constraints for every
// entity family.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.UserPreference{},
		&domain.Dashboard{},
		&domain.DashboardComponent{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
