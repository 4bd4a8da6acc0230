package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
)

// DashboardRepository is a mock type for the DashboardRepository type
type DashboardRepository struct {
	mock.Mock
}

func (_m *DashboardRepository) Insert(ctx context.Context, dashboard *domain.Dashboard) (*domain.Dashboard, error) {
	ret := _m.Called(ctx, dashboard)
	return dashboardOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *DashboardRepository) FindByID(ctx context.Context, id uint) (*domain.Dashboard, error) {
	ret := _m.Called(ctx, id)
	return dashboardOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *DashboardRepository) List(ctx context.Context) ([]domain.Dashboard, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Dashboard
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Dashboard)
	}
	return r0, ret.Error(1)
}

func (_m *DashboardRepository) Update(ctx context.Context, id uint, update domain.DashboardUpdate) (*domain.Dashboard, error) {
	ret := _m.Called(ctx, id, update)
	return dashboardOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *DashboardRepository) DeleteCascade(ctx context.Context, id uint) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func dashboardOrNil(v any) *domain.Dashboard {
	if v == nil {
		return nil
	}
	return v.(*domain.Dashboard)
}
