package domain

import (
	"slices"
	"time"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is stored when a preference is created without an explicit theme.
const DefaultTheme = ThemeLight

var ValidThemes = []Theme{ThemeLight, ThemeDark}

func IsValidTheme(theme string) bool {
	return slices.Contains(ValidThemes, Theme(theme))
}

// UserPreference is the single UI preference record kept per external user id.
type UserPreference struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:text;not null;uniqueIndex:idx_user_preferences_user_id" json:"user_id"`
	Theme     Theme     `gorm:"type:text;not null" json:"theme"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}

// ThemeResponse is the narrow projection returned by a theme upsert.
type ThemeResponse struct {
	Theme     Theme     `json:"theme"`
	UpdatedAt time.Time `json:"updated_at"`
}
