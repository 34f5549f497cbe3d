package aggregate

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	t.Run("splits_totals", func(t *testing.T) {
		txns := []Transaction{
			{Category: "Salary", Amount: 3000},
			{Category: "rent", Amount: 800},
			{Category: "groceries", Amount: -150},
		}

		s := Summarize(txns, 0)
		if s.Revenue != 3000 {
			t.Errorf("expected revenue 3000, got %f", s.Revenue)
		}
		if s.Expenses != 950 {
			t.Errorf("expected expenses 950, got %f", s.Expenses)
		}
		if s.Savings != 2050 {
			t.Errorf("expected savings 2050, got %f", s.Savings)
		}
		if s.Balance != 2050 {
			t.Errorf("expected balance 2050, got %f", s.Balance)
		}
		if s.Count != 3 {
			t.Errorf("expected count 3, got %d", s.Count)
		}
	})

	t.Run("opening_balance_carried", func(t *testing.T) {
		txns := []Transaction{{Category: "Salary", Amount: 100}}
		s := Summarize(txns, 500)
		if s.Balance != 600 {
			t.Errorf("expected balance 600, got %f", s.Balance)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		s := Summarize(nil, 0)
		if s != (Summary{}) {
			t.Errorf("expected zero summary, got %+v", s)
		}
	})
}

func TestMonthlySpendChange(t *testing.T) {
	t.Run("increase", func(t *testing.T) {
		buckets := []MonthBucket{
			{Month: "2024-01", Expense: 200},
			{Month: "2024-02", Expense: 300},
		}

		change := MonthlySpendChange(buckets)
		if change.Percent != 50 || !change.More {
			t.Errorf("expected 50%% more, got %+v", change)
		}
	})

	t.Run("decrease", func(t *testing.T) {
		buckets := []MonthBucket{
			{Month: "2024-01", Expense: 400},
			{Month: "2024-02", Expense: 300},
		}

		change := MonthlySpendChange(buckets)
		if change.Percent != -25 || change.More {
			t.Errorf("expected -25%% not more, got %+v", change)
		}
	})

	t.Run("previous_month_zero", func(t *testing.T) {
		buckets := []MonthBucket{
			{Month: "2024-01", Expense: 0},
			{Month: "2024-02", Expense: 120},
		}

		change := MonthlySpendChange(buckets)
		if change.Percent != 100 || !change.More {
			t.Errorf("expected flat 100%% more, got %+v", change)
		}
	})

	t.Run("both_months_zero", func(t *testing.T) {
		buckets := []MonthBucket{
			{Month: "2024-01", Expense: 0},
			{Month: "2024-02", Expense: 0},
		}

		if change := MonthlySpendChange(buckets); change != (SpendChange{}) {
			t.Errorf("expected zero change, got %+v", change)
		}
	})

	t.Run("fewer_than_two_buckets", func(t *testing.T) {
		if change := MonthlySpendChange(nil); change != (SpendChange{}) {
			t.Errorf("expected zero change for nil, got %+v", change)
		}
		one := []MonthBucket{{Month: "2024-01", Expense: 100}}
		if change := MonthlySpendChange(one); change != (SpendChange{}) {
			t.Errorf("expected zero change for one bucket, got %+v", change)
		}
	})

	t.Run("rounds_percent", func(t *testing.T) {
		buckets := []MonthBucket{
			{Month: "2024-01", Expense: 300},
			{Month: "2024-02", Expense: 400},
		}

		change := MonthlySpendChange(buckets)
		if change.Percent != 33 {
			t.Errorf("expected rounded 33%%, got %f", change.Percent)
		}
	})
}

func TestSummaryMatchesBuckets(t *testing.T) {
	// The dashboard cards and the monthly chart must agree on totals.
	txns := []Transaction{
		{Date: day(2024, time.January, 5), Amount: 3000, Category: "Salary"},
		{Date: day(2024, time.January, 10), Amount: -800, Category: "rent"},
		{Date: day(2024, time.February, 3), Amount: 120.50, Category: "food"},
		{Date: day(2024, time.March, 3), Amount: 99.99, Category: "Dividends"},
	}

	s := Summarize(txns, 0)

	var revenue, expense float64
	for _, bucket := range BucketByMonth(txns) {
		revenue += bucket.Revenue
		expense += bucket.Expense
	}

	if s.Revenue != revenue {
		t.Errorf("summary revenue %f does not match bucket sum %f", s.Revenue, revenue)
	}
	if s.Expenses != expense {
		t.Errorf("summary expenses %f do not match bucket sum %f", s.Expenses, expense)
	}
}
