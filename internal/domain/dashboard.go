package domain

import (
	"bytes"
	"encoding/json"
	"slices"
	"time"

	"gorm.io/datatypes"
)

type ComponentType string

const (
	ComponentChart  ComponentType = "chart"
	ComponentTable  ComponentType = "table"
	ComponentMetric ComponentType = "metric"
	ComponentText   ComponentType = "text"
)

var ValidComponentTypes = []ComponentType{ComponentChart, ComponentTable, ComponentMetric, ComponentText}

func IsValidComponentType(componentType string) bool {
	return slices.Contains(ValidComponentTypes, ComponentType(componentType))
}

// Grid defaults used when a component is created without explicit geometry.
const (
	DefaultComponentWidth  = 4
	DefaultComponentHeight = 3
)

type Dashboard struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;index:idx_dashboards_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Dashboard) TableName() string {
	return "dashboards"
}

type DashboardComponent struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	DashboardID   uint           `gorm:"not null;index:idx_dashboard_components_dashboard_id" json:"dashboard_id"`
	ComponentType ComponentType  `gorm:"type:text;not null" json:"component_type"`
	Title         string         `gorm:"type:text;not null" json:"title"`
	Config        datatypes.JSON `json:"config"`
	PositionX     int            `gorm:"not null;check:chk_dashboard_components_position_x,position_x >= 0" json:"position_x"`
	PositionY     int            `gorm:"not null;check:chk_dashboard_components_position_y,position_y >= 0" json:"position_y"`
	Width         int            `gorm:"not null;check:chk_dashboard_components_width,width >= 1" json:"width"`
	Height        int            `gorm:"not null;check:chk_dashboard_components_height,height >= 1" json:"height"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`

	Dashboard *Dashboard `gorm:"foreignKey:DashboardID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DashboardComponent) TableName() string {
	return "dashboard_components"
}

// DashboardLayout is a dashboard together with its components in reading order.
type DashboardLayout struct {
	Dashboard  Dashboard            `json:"dashboard"`
	Components []DashboardComponent `json:"components"`
}

type CreateDashboardInput struct {
	Name        string
	Description *string
	IsActive    *bool
}

type DashboardUpdate struct {
	Name        *string
	Description Optional[*string]
	IsActive    *bool
}

// Columns returns only the supplied fields keyed by column name.
func (u DashboardUpdate) Columns() map[string]any {
	columns := make(map[string]any)
	if u.Name != nil {
		columns["name"] = *u.Name
	}
	if u.Description.Set {
		columns["description"] = u.Description.Value
	}
	if u.IsActive != nil {
		columns["is_active"] = *u.IsActive
	}
	return columns
}

type CreateComponentInput struct {
	DashboardID   uint
	ComponentType ComponentType
	Title         string
	Config        datatypes.JSON
	PositionX     int
	PositionY     int
	Width         int
	Height        int
}

type ComponentUpdate struct {
	Title     *string
	Config    Optional[datatypes.JSON]
	PositionX *int
	PositionY *int
	Width     *int
	Height    *int
}

// Columns returns only the supplied fields keyed by column name.
func (u ComponentUpdate) Columns() map[string]any {
	columns := make(map[string]any)
	if u.Title != nil {
		columns["title"] = *u.Title
	}
	if u.Config.Set {
		columns["config"] = NormalizeConfig(u.Config.Value)
	}
	if u.PositionX != nil {
		columns["position_x"] = *u.PositionX
	}
	if u.PositionY != nil {
		columns["position_y"] = *u.PositionY
	}
	if u.Width != nil {
		columns["width"] = *u.Width
	}
	if u.Height != nil {
		columns["height"] = *u.Height
	}
	return columns
}

// TouchesGeometry reports whether any position or size field is supplied.
func (u ComponentUpdate) TouchesGeometry() bool {
	return u.PositionX != nil || u.PositionY != nil || u.Width != nil || u.Height != nil
}

// NormalizeConfig maps an empty or JSON null payload to a SQL NULL.
func NormalizeConfig(config datatypes.JSON) datatypes.JSON {
	trimmed := bytes.TrimSpace(config)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return config
}

// IsConfigObject reports whether config is absent or a JSON object.
func IsConfigObject(config datatypes.JSON) bool {
	normalized := NormalizeConfig(config)
	if normalized == nil {
		return true
	}
	var object map[string]any
	return json.Unmarshal(normalized, &object) == nil
}
