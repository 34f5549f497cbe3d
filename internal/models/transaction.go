package models

import (
	"time"

	"finsight/internal/aggregate"
)

// TransactionType marks the origin of a transaction record. The column is
// free text, not an enum: uploaded rows may carry other values, and the
// literal "expense" feeds the classifier.
type TransactionType string

const (
	TransactionTypeWallet TransactionType = "wallet"
	TransactionTypeBank   TransactionType = "bank"
	TransactionTypeOther  TransactionType = "other"
)

// Transaction represents a single financial record owned by one user.
// Uploaded rows may carry arbitrary extra fields; those are kept in the
// Extra map rather than widening the schema.
type Transaction struct {
	Base
	UserID   string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Date     time.Time      `gorm:"not null" json:"date"`
	Amount   float64        `gorm:"not null" json:"amount"`
	Category string         `gorm:"not null;index" json:"category"`
	Status   string         `gorm:"not null" json:"status"`
	Type     TransactionType `gorm:"not null;default:'other'" json:"type"`
	Extra    map[string]any `gorm:"serializer:json" json:"extra,omitempty"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// Record converts the stored row into the aggregation engine's plain
// transaction value.
func (t *Transaction) Record() aggregate.Transaction {
	return aggregate.Transaction{
		ID:       t.ID,
		Date:     t.Date,
		Amount:   t.Amount,
		Category: t.Category,
		Status:   t.Status,
		Type:     string(t.Type),
		Extra:    t.Extra,
	}
}

// Records converts a slice of stored rows for the aggregation engine.
func Records(txns []Transaction) []aggregate.Transaction {
	out := make([]aggregate.Transaction, len(txns))
	for i := range txns {
		out[i] = txns[i].Record()
	}
	return out
}
