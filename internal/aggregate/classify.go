package aggregate

import "strings"

// expenseCategories is the closed set of lower-cased category labels that mark
// a transaction as an expense. Anything outside the set counts as revenue,
// including the wallet adjustment categories "Wallet Add" and
// "Wallet Withdraw".
var expenseCategories = map[string]struct{}{
	"rent": {}, "bills": {}, "groceries": {}, "travel": {}, "others": {},
	"shopping": {}, "food": {}, "utilities": {}, "transport": {}, "medical": {},
	"entertainment": {}, "subscriptions": {}, "education": {}, "emi": {},
	"loan": {}, "insurance": {}, "tax": {}, "fuel": {}, "misc": {}, "expense": {},
}

// Classify tags a transaction as Revenue or Expense. A transaction is an
// expense when its lower-cased category is in the fixed expense set, or when
// its lower-cased type equals "expense". The function is total: a missing
// category or type simply fails both checks and the transaction defaults to
// Revenue. Every consumer that sums transactions must go through this
// predicate so the dashboard and analytics views always agree.
func Classify(t Transaction) Kind {
	if _, ok := expenseCategories[strings.ToLower(t.Category)]; ok {
		return Expense
	}
	if strings.EqualFold(t.Type, "expense") {
		return Expense
	}
	return Revenue
}
