package aggregate

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PageSize is the fixed number of rows per table page.
const PageSize = 8

// Criteria holds the optional table filters. All set fields combine with
// logical AND. Bounds are inclusive.
type Criteria struct {
	Category  string
	Status    string
	Search    string
	DateFrom  *time.Time
	DateTo    *time.Time
	AmountMin *float64
	AmountMax *float64
}

// SortField selects the column the view is ordered by.
type SortField string

const (
	SortByDate     SortField = "date"
	SortByAmount   SortField = "amount"
	SortByCategory SortField = "category"
	SortByStatus   SortField = "status"
)

// Sort describes the requested ordering.
type Sort struct {
	Field SortField
	Desc  bool
}

// Page is one page of the filtered, sorted transaction table.
type Page struct {
	Items      []Transaction `json:"items"`
	TotalPages int           `json:"total_pages"`
}

// View filters, sorts, and paginates transactions for the table. The page
// argument is 1-based; any page outside 1..TotalPages yields an empty item
// slice rather than an error. TotalPages is never below 1, even for an empty
// result. The input slice is left untouched.
func View(txns []Transaction, criteria Criteria, s Sort, page int) Page {
	filtered := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if matches(t, criteria) {
			filtered = append(filtered, t)
		}
	}

	sortTransactions(filtered, s)

	totalPages := (len(filtered) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 || page > totalPages {
		return Page{Items: []Transaction{}, TotalPages: totalPages}
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return Page{Items: filtered[start:end], TotalPages: totalPages}
}

// matches reports whether a transaction passes every set criterion.
func matches(t Transaction, c Criteria) bool {
	if c.Category != "" && t.Category != c.Category {
		return false
	}
	if c.Status != "" && t.Status != c.Status {
		return false
	}
	if c.Search != "" && !matchesSearch(t, c.Search) {
		return false
	}
	if c.DateFrom != nil && t.Date.Before(*c.DateFrom) {
		return false
	}
	if c.DateTo != nil && t.Date.After(*c.DateTo) {
		return false
	}
	if c.AmountMin != nil && t.Amount < *c.AmountMin {
		return false
	}
	if c.AmountMax != nil && t.Amount > *c.AmountMax {
		return false
	}
	return true
}

// matchesSearch checks the free-text search: case-insensitive substring match
// against category or status, plus an exact amount match when the query
// parses as a number.
func matchesSearch(t Transaction, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Category), q) ||
		strings.Contains(strings.ToLower(t.Status), q) {
		return true
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(query), 64); err == nil {
		return t.Amount == v
	}
	return false
}

// sortTransactions orders the slice in place. The sort is stable, so
// transactions with equal keys keep their relative order. String columns use
// locale-aware collation to match how the table renders.
func sortTransactions(txns []Transaction, s Sort) {
	col := collate.New(language.English)

	cmp := func(a, b Transaction) int {
		switch s.Field {
		case SortByAmount:
			switch {
			case a.Amount < b.Amount:
				return -1
			case a.Amount > b.Amount:
				return 1
			}
			return 0
		case SortByCategory:
			return col.CompareString(a.Category, b.Category)
		case SortByStatus:
			return col.CompareString(a.Status, b.Status)
		default:
			return compareDates(a.Date, b.Date)
		}
	}

	sort.SliceStable(txns, func(i, j int) bool {
		c := cmp(txns[i], txns[j])
		if s.Desc {
			return c > 0
		}
		return c < 0
	})
}

// compareDates orders calendar timestamps. Zero dates (the tolerated
// "invalid date" value for malformed rows) sort after every valid date in
// ascending order.
func compareDates(a, b time.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
