package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
)

// FromPreference converts a UserPreference domain model to a PreferenceResponse DTO
func FromPreference(pref *domain.UserPreference) *PreferenceResponse {
	if pref == nil {
		return nil
	}
	return &PreferenceResponse{
		ID:        pref.ID,
		UserID:    pref.UserID,
		Theme:     string(pref.Theme),
		CreatedAt: pref.CreatedAt,
		UpdatedAt: pref.UpdatedAt,
	}
}

func FromThemeResponse(resp *domain.ThemeResponse) *ThemeResponse {
	return &ThemeResponse{
		Theme:     string(resp.Theme),
		UpdatedAt: resp.UpdatedAt,
	}
}

func (r *CreateDashboardRequest) ToInput() domain.CreateDashboardInput {
	return domain.CreateDashboardInput{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

func (r *UpdateDashboardRequest) ToUpdate() domain.DashboardUpdate {
	return domain.DashboardUpdate{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

// FromDashboard converts a Dashboard domain model to a DashboardResponse DTO
func FromDashboard(dashboard *domain.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		ID:          dashboard.ID,
		Name:        dashboard.Name,
		Description: dashboard.Description,
		IsActive:    dashboard.IsActive,
		CreatedAt:   dashboard.CreatedAt,
		UpdatedAt:   dashboard.UpdatedAt,
	}
}

func FromDashboards(dashboards []domain.Dashboard) []DashboardResponse {
	responses := make([]DashboardResponse, len(dashboards))
	for i := range dashboards {
		responses[i] = *FromDashboard(&dashboards[i])
	}
	return responses
}

// ToInput fills in the grid defaults for omitted geometry.
func (r *CreateComponentRequest) ToInput(dashboardID uint) domain.CreateComponentInput {
	return domain.CreateComponentInput{
		DashboardID:   dashboardID,
		ComponentType: domain.ComponentType(r.ComponentType),
		Title:         r.Title,
		Config:        domain.NormalizeConfig(datatypes.JSON(r.Config)),
		PositionX:     valueOr(r.PositionX, 0),
		PositionY:     valueOr(r.PositionY, 0),
		Width:         valueOr(r.Width, domain.DefaultComponentWidth),
		Height:        valueOr(r.Height, domain.DefaultComponentHeight),
	}
}

func (r *UpdateComponentRequest) ToUpdate() domain.ComponentUpdate {
	return domain.ComponentUpdate{
		Title:     r.Title,
		Config:    r.Config,
		PositionX: r.PositionX,
		PositionY: r.PositionY,
		Width:     r.Width,
		Height:    r.Height,
	}
}

// FromComponent converts a DashboardComponent domain model to a ComponentResponse DTO
func FromComponent(component *domain.DashboardComponent) *ComponentResponse {
	var config json.RawMessage
	if normalized := domain.NormalizeConfig(component.Config); normalized != nil {
		config = json.RawMessage(normalized)
	}
	return &ComponentResponse{
		ID:            component.ID,
		DashboardID:   component.DashboardID,
		ComponentType: string(component.ComponentType),
		Title:         component.Title,
		Config:        config,
		PositionX:     component.PositionX,
		PositionY:     component.PositionY,
		Width:         component.Width,
		Height:        component.Height,
		CreatedAt:     component.CreatedAt,
		UpdatedAt:     component.UpdatedAt,
	}
}

func FromComponents(components []domain.DashboardComponent) []ComponentResponse {
	responses := make([]ComponentResponse, len(components))
	for i := range components {
		responses[i] = *FromComponent(&components[i])
	}
	return responses
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
