package models

// MessageType represents the delivery class of a message
type MessageType string

const (
	MessageTypeSystem    MessageType = "system"
	MessageTypeSupport   MessageType = "support"
	MessageTypeBroadcast MessageType = "broadcast"
)

// Message represents an inbox entry. Broadcast messages have no UserID and
// are visible to every user.
type Message struct {
	Base
	UserID *string        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Type   MessageType    `gorm:"not null" json:"type"`
	Title  string         `gorm:"not null" json:"title"`
	Body   string         `gorm:"not null" json:"body"`
	Read   bool           `gorm:"not null;default:false" json:"read"`
	Meta   map[string]any `gorm:"serializer:json" json:"meta,omitempty"`
}
