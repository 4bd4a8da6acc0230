package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
)

type CreatePreferenceRequest struct {
	UserID string  `json:"user_id" binding:"required" example:"user-123"`
	Theme  *string `json:"theme" binding:"omitempty,oneof=light dark" example:"dark"`
}

type UpdatePreferenceRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark" example:"dark"`
}

type UpsertThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark" example:"light"`
}

type CreateDashboardRequest struct {
	Name        string  `json:"name" binding:"required" example:"Operations"`
	Description *string `json:"description" example:"Service health overview"`
	IsActive    *bool   `json:"is_active" example:"true"`
}

// UpdateDashboardRequest only changes the keys present in the body. An explicit
// null description clears it.
type UpdateDashboardRequest struct {
	Name        *string                  `json:"name" binding:"omitempty,min=1" example:"Operations v2"`
	Description domain.Optional[*string] `json:"description" swaggertype:"string" example:"Updated description"`
	IsActive    *bool                    `json:"is_active" example:"false"`
}

// CreateComponentRequest leaves position at 0,0 and size at 4x3 when omitted.
type CreateComponentRequest struct {
	ComponentType string          `json:"component_type" binding:"required,oneof=chart table metric text" example:"chart"`
	Title         string          `json:"title" binding:"required" example:"CPU usage"`
	Config        json.RawMessage `json:"config" swaggertype:"object"`
	PositionX     *int            `json:"position_x" example:"0"`
	PositionY     *int            `json:"position_y" example:"0"`
	Width         *int            `json:"width" example:"4"`
	Height        *int            `json:"height" example:"3"`
}

type UpdateComponentRequest struct {
	Title     *string                         `json:"title" binding:"omitempty,min=1" example:"Memory usage"`
	Config    domain.Optional[datatypes.JSON] `json:"config" swaggertype:"object"`
	PositionX *int                            `json:"position_x" example:"4"`
	PositionY *int                            `json:"position_y" example:"0"`
	Width     *int                            `json:"width" example:"4"`
	Height    *int                            `json:"height" example:"3"`
}
