package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
	"github.com/kingrain94/dashboard-config-api/pkg/utils"
)

type DashboardRepository struct {
	store recordStore[domain.Dashboard]
}

func NewDashboardRepository(db *gorm.DB, clock utils.Clock) *DashboardRepository {
	return &DashboardRepository{store: recordStore[domain.Dashboard]{db: db, clock: clock}}
}

func (r *DashboardRepository) Insert(ctx context.Context, dashboard *domain.Dashboard) (*domain.Dashboard, error) {
	now := r.store.clock.Now()
	dashboard.CreatedAt = now
	dashboard.UpdatedAt = now

	if err := r.store.insert(ctx, dashboard); err != nil {
		return nil, err
	}
	return dashboard, nil
}

func (r *DashboardRepository) FindByID(ctx context.Context, id uint) (*domain.Dashboard, error) {
	return r.store.find(ctx, r.store.db, "id", id)
}

func (r *DashboardRepository) List(ctx context.Context) ([]domain.Dashboard, error) {
	dashboards := make([]domain.Dashboard, 0)
	if err := r.store.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&dashboards).Error; err != nil {
		return nil, translateError(err)
	}
	return dashboards, nil
}

func (r *DashboardRepository) Update(ctx context.Context, id uint, update domain.DashboardUpdate) (*domain.Dashboard, error) {
	return r.store.update(ctx, "id", id, update.Columns())
}

// DeleteCascade removes the components first and the dashboard second inside one
// transaction. When the dashboard does not exist nothing is removed.
func (r *DashboardRepository) DeleteCascade(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		children := tx.Where("dashboard_id = ?", id).Delete(&domain.DashboardComponent{})
		if children.Error != nil {
			return children.Error
		}

		parent := tx.Delete(&domain.Dashboard{}, id)
		if parent.Error != nil {
			return parent.Error
		}
		if parent.RowsAffected == 0 {
			removed = 0
			return nil
		}

		removed = parent.RowsAffected + children.RowsAffected
		return nil
	})
	if err != nil {
		return 0, translateError(err)
	}
	return removed, nil
}
