package aggregate

import "sort"

// OtherCategory is the bucket that absorbs transactions without a category.
const OtherCategory = "Other"

// CategoryTotal is the signed amount accumulated for one category label.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// TotalByCategory sums the signed amounts per distinct category string.
// Transactions with an empty category fold into the "Other" bucket. Unlike
// BucketByMonth, no absolute value is taken here: a negative wallet
// withdrawal reduces its category total. The output carries no ordering
// guarantee; callers needing a stable order must sort explicitly.
func TotalByCategory(txns []Transaction) []CategoryTotal {
	totals := make(map[string]float64)
	for _, t := range txns {
		cat := t.Category
		if cat == "" {
			cat = OtherCategory
		}
		totals[cat] += t.Amount
	}

	out := make([]CategoryTotal, 0, len(totals))
	for cat, amount := range totals {
		out = append(out, CategoryTotal{Category: cat, Amount: amount})
	}
	return out
}

// TopExpenses returns the n largest expense-classified category totals,
// sorted descending by amount. Ties break on category name so the result is
// deterministic.
func TopExpenses(txns []Transaction, n int) []CategoryTotal {
	var expenses []Transaction
	for _, t := range txns {
		if Classify(t) == Expense {
			expenses = append(expenses, t)
		}
	}

	totals := TotalByCategory(expenses)
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Category < totals[j].Category
	})

	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}
