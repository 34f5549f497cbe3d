package models

// Theme represents the UI theme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings holds per-user preferences. One row per user.
// Currency is a display-only label; no conversion happens anywhere.
type Settings struct {
	Base
	UserID      string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Theme       Theme  `gorm:"not null;default:'light'" json:"theme"`
	Currency    string `gorm:"not null;default:'USD'" json:"currency"`
	EmailAlerts bool   `gorm:"not null;default:false" json:"email_alerts"`
	Language    string `gorm:"not null;default:'en'" json:"language"`
}
