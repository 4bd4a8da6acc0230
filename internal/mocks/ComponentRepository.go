package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
)

// ComponentRepository is a mock type for the ComponentRepository type
type ComponentRepository struct {
	mock.Mock
}

func (_m *ComponentRepository) Insert(ctx context.Context, component *domain.DashboardComponent) (*domain.DashboardComponent, error) {
	ret := _m.Called(ctx, component)
	return componentOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *ComponentRepository) FindByID(ctx context.Context, id uint) (*domain.DashboardComponent, error) {
	ret := _m.Called(ctx, id)
	return componentOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *ComponentRepository) ListByDashboard(ctx context.Context, dashboardID uint) ([]domain.DashboardComponent, error) {
	ret := _m.Called(ctx, dashboardID)
	var r0 []domain.DashboardComponent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.DashboardComponent)
	}
	return r0, ret.Error(1)
}

func (_m *ComponentRepository) Update(ctx context.Context, id uint, update domain.ComponentUpdate) (*domain.DashboardComponent, error) {
	ret := _m.Called(ctx, id, update)
	return componentOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *ComponentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func componentOrNil(v any) *domain.DashboardComponent {
	if v == nil {
		return nil
	}
	return v.(*domain.DashboardComponent)
}
