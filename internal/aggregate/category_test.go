package aggregate

import "testing"

func TestTotalByCategory(t *testing.T) {
	t.Run("sums_signed_amounts", func(t *testing.T) {
		txns := []Transaction{
			{Category: "Wallet Add", Amount: 500},
			{Category: "Wallet Add", Amount: 200},
			{Category: "Wallet Withdraw", Amount: -300},
		}

		totals := TotalByCategory(txns)
		got := make(map[string]float64, len(totals))
		for _, total := range totals {
			got[total.Category] = total.Amount
		}

		if got["Wallet Add"] != 700 {
			t.Errorf("expected Wallet Add total 700, got %f", got["Wallet Add"])
		}
		if got["Wallet Withdraw"] != -300 {
			t.Errorf("expected Wallet Withdraw total -300, got %f", got["Wallet Withdraw"])
		}
	})

	t.Run("empty_category_folds_into_other", func(t *testing.T) {
		txns := []Transaction{
			{Category: "", Amount: 50},
			{Category: "", Amount: 25},
			{Category: "rent", Amount: 100},
		}

		totals := TotalByCategory(txns)
		got := make(map[string]float64, len(totals))
		for _, total := range totals {
			got[total.Category] = total.Amount
		}

		if got[OtherCategory] != 75 {
			t.Errorf("expected Other total 75, got %f", got[OtherCategory])
		}
		if got["rent"] != 100 {
			t.Errorf("expected rent total 100, got %f", got["rent"])
		}
	})

	t.Run("categories_are_case_sensitive_labels", func(t *testing.T) {
		// Classification lower-cases, but the totals keep distinct labels apart.
		txns := []Transaction{
			{Category: "Rent", Amount: 100},
			{Category: "rent", Amount: 50},
		}

		totals := TotalByCategory(txns)
		if len(totals) != 2 {
			t.Errorf("expected 2 distinct categories, got %d", len(totals))
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		totals := TotalByCategory(nil)
		if totals == nil {
			t.Fatal("expected non-nil slice for empty input")
		}
		if len(totals) != 0 {
			t.Errorf("expected empty slice, got %d totals", len(totals))
		}
	})
}

func TestTopExpenses(t *testing.T) {
	t.Run("largest_first", func(t *testing.T) {
		txns := []Transaction{
			{Category: "rent", Amount: 1200},
			{Category: "groceries", Amount: 300},
			{Category: "groceries", Amount: 150},
			{Category: "travel", Amount: 600},
			{Category: "Salary", Amount: 5000},
		}

		top := TopExpenses(txns, 2)
		if len(top) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(top))
		}
		if top[0].Category != "rent" || top[0].Amount != 1200 {
			t.Errorf("unexpected first entry: %+v", top[0])
		}
		if top[1].Category != "travel" || top[1].Amount != 600 {
			t.Errorf("unexpected second entry: %+v", top[1])
		}
	})

	t.Run("excludes_revenue", func(t *testing.T) {
		txns := []Transaction{
			{Category: "Salary", Amount: 5000},
			{Category: "food", Amount: 40},
		}

		top := TopExpenses(txns, 5)
		if len(top) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(top))
		}
		if top[0].Category != "food" {
			t.Errorf("expected food, got %s", top[0].Category)
		}
	})

	t.Run("ties_break_on_category", func(t *testing.T) {
		txns := []Transaction{
			{Category: "travel", Amount: 100},
			{Category: "food", Amount: 100},
		}

		top := TopExpenses(txns, 2)
		if top[0].Category != "food" || top[1].Category != "travel" {
			t.Errorf("expected alphabetical tie-break, got %+v", top)
		}
	})

	t.Run("fewer_than_n", func(t *testing.T) {
		txns := []Transaction{{Category: "rent", Amount: 100}}
		top := TopExpenses(txns, 5)
		if len(top) != 1 {
			t.Errorf("expected 1 entry, got %d", len(top))
		}
	})
}
