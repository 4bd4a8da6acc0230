package dto

import (
	"encoding/json"
	"time"
)

type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp" example:"2025-07-17T21:20:48Z"`
}

type PreferenceResponse struct {
	ID        uint      `json:"id" example:"1"`
	UserID    string    `json:"user_id" example:"user-123"`
	Theme     string    `json:"theme" example:"dark"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type ThemeResponse struct {
	Theme     string    `json:"theme" example:"dark"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type DashboardResponse struct {
	ID          uint      `json:"id" example:"1"`
	Name        string    `json:"name" example:"Operations"`
	Description *string   `json:"description" example:"Service health overview"`
	IsActive    bool      `json:"is_active" example:"true"`
	CreatedAt   time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type ComponentResponse struct {
	ID            uint            `json:"id" example:"1"`
	DashboardID   uint            `json:"dashboard_id" example:"1"`
	ComponentType string          `json:"component_type" example:"chart"`
	Title         string          `json:"title" example:"CPU usage"`
	Config        json.RawMessage `json:"config" swaggertype:"object"`
	PositionX     int             `json:"position_x" example:"0"`
	PositionY     int             `json:"position_y" example:"0"`
	Width         int             `json:"width" example:"4"`
	Height        int             `json:"height" example:"3"`
	CreatedAt     time.Time       `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt     time.Time       `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted" example:"true"`
}
