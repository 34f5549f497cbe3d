package aggregate

import "math"

// Summary holds the dashboard card totals for one user's transactions.
// Revenue and Expenses are magnitude sums split by Classify, matching the
// monthly buckets.
type Summary struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
	Balance  float64 `json:"balance"`
	Count    int     `json:"count"`
}

// Summarize computes the card totals. openingBalance is carried into Balance
// unchanged; pass 0 when there is no prior period.
func Summarize(txns []Transaction, openingBalance float64) Summary {
	s := Summary{Count: len(txns)}
	for _, t := range txns {
		if Classify(t) == Expense {
			s.Expenses += math.Abs(t.Amount)
		} else {
			s.Revenue += math.Abs(t.Amount)
		}
	}
	s.Savings = s.Revenue - s.Expenses
	s.Balance = openingBalance + s.Savings
	return s
}

// SpendChange describes how the latest month's expenses compare to the month
// before it.
type SpendChange struct {
	Percent float64 `json:"percent"`
	More    bool    `json:"more"`
}

// MonthlySpendChange compares the expense totals of the last two monthly
// buckets. With fewer than two buckets there is nothing to compare and the
// zero value is returned. A previous month with zero spend counts as a flat
// 100% increase when the latest month spent anything.
func MonthlySpendChange(buckets []MonthBucket) SpendChange {
	if len(buckets) < 2 {
		return SpendChange{}
	}

	prev := buckets[len(buckets)-2].Expense
	cur := buckets[len(buckets)-1].Expense

	if prev == 0 {
		if cur == 0 {
			return SpendChange{}
		}
		return SpendChange{Percent: 100, More: true}
	}

	percent := math.Round((cur - prev) / prev * 100)
	return SpendChange{Percent: percent, More: cur > prev}
}
