package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/internal/repository"
	"github.com/kingrain94/dashboard-config-api/pkg/utils"
)

type ComponentRepository struct {
	store recordStore[domain.DashboardComponent]
}

func NewComponentRepository(db *gorm.DB, clock utils.Clock) *ComponentRepository {
	return &ComponentRepository{store: recordStore[domain.DashboardComponent]{db: db, clock: clock}}
}

// Insert holds a share lock on the parent dashboard while the component is
// written, so a concurrent cascade delete either waits for it or wins outright.
func (r *ComponentRepository) Insert(ctx context.Context, component *domain.DashboardComponent) (*domain.DashboardComponent, error) {
	now := r.store.clock.Now()
	component.CreatedAt = now
	component.UpdatedAt = now
	component.Config = domain.NormalizeConfig(component.Config)

	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parents []uint
		if err := lockRow(tx, lockForShare).
			Model(&domain.Dashboard{}).
			Where("id = ?", component.DashboardID).
			Limit(1).
			Pluck("id", &parents).Error; err != nil {
			return err
		}
		if len(parents) == 0 {
			return &repository.StoreError{Sentinel: repository.ErrParentNotFound}
		}

		return tx.Create(component).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return component, nil
}

func (r *ComponentRepository) FindByID(ctx context.Context, id uint) (*domain.DashboardComponent, error) {
	return r.store.find(ctx, r.store.db, "id", id)
}

func (r *ComponentRepository) ListByDashboard(ctx context.Context, dashboardID uint) ([]domain.DashboardComponent, error) {
	components := make([]domain.DashboardComponent, 0)
	if err := r.store.db.WithContext(ctx).
		Where("dashboard_id = ?", dashboardID).
		Order("position_y ASC, position_x ASC, id ASC").
		Find(&components).Error; err != nil {
		return nil, translateError(err)
	}
	return components, nil
}

func (r *ComponentRepository) Update(ctx context.Context, id uint, update domain.ComponentUpdate) (*domain.DashboardComponent, error) {
	return r.store.update(ctx, "id", id, update.Columns())
}

func (r *ComponentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.store.db.WithContext(ctx).Delete(&domain.DashboardComponent{}, id)
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}
