package models

// UserRole represents the role of a user account
type UserRole string

const (
	UserRoleAnalyst UserRole = "analyst"
	UserRoleAdmin   UserRole = "admin"
)

// User represents a registered account in the system
type User struct {
	Base
	Name          string   `gorm:"not null" json:"name"`
	Email         string   `gorm:"uniqueIndex;not null" json:"email"`
	Password      string   `gorm:"not null" json:"-"`
	Role          UserRole `gorm:"not null;default:'analyst'" json:"role"`
	WalletBalance float64  `gorm:"not null;default:0" json:"wallet_balance"`
	ProfilePic    string   `json:"profile_pic,omitempty"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
