// Package aggregate implements the transaction aggregation pipeline shared by
// the dashboard and analytics views: classification into revenue or expense,
// monthly revenue/expense bucketing, per-category totals, and the filtered,
// sorted, paginated table view.
//
// Every function here is pure and synchronous: callers pass transactions in as
// a plain slice, nothing reaches into shared state, and inputs are never
// mutated.
package aggregate

import "time"

// Transaction is the engine's view of a financial record. Fields beyond the
// enumerated ones travel in Extra; the engine itself only reads the typed
// fields.
type Transaction struct {
	ID       string         `json:"id"`
	Date     time.Time      `json:"date"`
	Amount   float64        `json:"amount"`
	Category string         `json:"category"`
	Status   string         `json:"status"`
	Type     string         `json:"type,omitempty"`
	Extra    map[string]any `json:"extra,omitempty"`
}

// Kind is the classification of a transaction.
type Kind int

const (
	Revenue Kind = iota
	Expense
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k == Expense {
		return "expense"
	}
	return "revenue"
}
