package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/dashboard-config-api/internal/repository"
)

// Repository is a mock type for the Repository type
type Repository struct {
	mock.Mock
}

func (_m *Repository) Preference() repository.PreferenceRepository {
	ret := _m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(repository.PreferenceRepository)
}

func (_m *Repository) Dashboard() repository.DashboardRepository {
	ret := _m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(repository.DashboardRepository)
}

func (_m *Repository) Component() repository.ComponentRepository {
	ret := _m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(repository.ComponentRepository)
}
