package aggregate

import (
	"fmt"
	"math"
	"sort"
)

// MonthBucket accumulates revenue and expense magnitudes for one calendar
// month. Month is a zero-padded "YYYY-MM" key, so lexicographic order is
// chronological order.
type MonthBucket struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
}

// MonthKey returns the "YYYY-MM" grouping key for a transaction date.
func MonthKey(t Transaction) string {
	return fmt.Sprintf("%04d-%02d", t.Date.Year(), int(t.Date.Month()))
}

// BucketByMonth groups transactions by calendar month and accumulates amount
// magnitudes into the revenue or expense side of each bucket according to
// Classify. The result is sorted ascending by month key, and the input order
// never affects the output. An empty input yields an empty (non-nil) slice.
func BucketByMonth(txns []Transaction) []MonthBucket {
	monthly := make(map[string]*MonthBucket)

	for _, t := range txns {
		key := MonthKey(t)
		bucket, ok := monthly[key]
		if !ok {
			bucket = &MonthBucket{Month: key}
			monthly[key] = bucket
		}
		if Classify(t) == Expense {
			bucket.Expense += math.Abs(t.Amount)
		} else {
			bucket.Revenue += math.Abs(t.Amount)
		}
	}

	out := make([]MonthBucket, 0, len(monthly))
	for _, bucket := range monthly {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
