package services

import (
	"encoding/json"
	"testing"
	"time"

	"finsight/internal/models"
	"finsight/internal/pagination"
	"finsight/internal/testutil"
)

func TestGetUserTransactions(t *testing.T) {
	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, user.ID, "rent", 100)
		testutil.CreateTestTransaction(t, db, other.ID, "rent", 999)

		result, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{}, TransactionSort{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Fatalf("expected 1 transaction, got %d", result.TotalItems)
		}
		if result.Data[0].UserID != user.ID {
			t.Errorf("transaction belongs to the wrong user")
		}
	})

	t.Run("category_and_status_filters", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, user.ID, "rent", 100)
		testutil.CreateTestTransaction(t, db, user.ID, "food", 50)

		result, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{Category: "rent"}, TransactionSort{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 || result.Data[0].Category != "rent" {
			t.Errorf("expected only rent transactions, got %d items", result.TotalItems)
		}
	})

	t.Run("search_matches_category_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, user.ID, "Groceries", 80)
		testutil.CreateTestTransaction(t, db, user.ID, "travel", 300)

		result, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{Search: "GROC"}, TransactionSort{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Errorf("expected 1 match, got %d", result.TotalItems)
		}
	})

	t.Run("numeric_search_matches_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, user.ID, "rent", 1200)
		testutil.CreateTestTransaction(t, db, user.ID, "food", 45)

		result, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{Search: "1200"}, TransactionSort{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 || result.Data[0].Amount != 1200 {
			t.Errorf("expected the 1200 transaction, got %d items", result.TotalItems)
		}
	})

	t.Run("amount_bounds_inclusive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, user.ID, "a", 50)
		testutil.CreateTestTransaction(t, db, user.ID, "b", 100)
		testutil.CreateTestTransaction(t, db, user.ID, "c", 150)

		min, max := 50.0, 100.0
		result, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{MinAmount: &min, MaxAmount: &max}, TransactionSort{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2 transactions within bounds, got %d", result.TotalItems)
		}
	})

	t.Run("date_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		jan := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
		mar := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransactionOn(t, db, user.ID, "a", 10, jan)
		testutil.CreateTestTransactionOn(t, db, user.ID, "b", 20, mar)

		from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
		result, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{StartDate: &from}, TransactionSort{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 || result.Data[0].Category != "b" {
			t.Errorf("expected only the March transaction, got %d items", result.TotalItems)
		}
	})

	t.Run("sorting", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, user.ID, "a", 300)
		testutil.CreateTestTransaction(t, db, user.ID, "b", 100)
		testutil.CreateTestTransaction(t, db, user.ID, "c", 200)

		result, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{}, TransactionSort{By: "amount"})
		testutil.AssertNoError(t, err)
		amounts := []float64{result.Data[0].Amount, result.Data[1].Amount, result.Data[2].Amount}
		if amounts[0] != 100 || amounts[1] != 200 || amounts[2] != 300 {
			t.Errorf("expected ascending amounts, got %v", amounts)
		}

		result, err = svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{}, TransactionSort{By: "amount", Desc: true})
		testutil.AssertNoError(t, err)
		if result.Data[0].Amount != 300 {
			t.Errorf("expected descending order, got first amount %f", result.Data[0].Amount)
		}
	})

	t.Run("unknown_sort_column_falls_back_to_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, user.ID, "a", 10)

		_, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{}, TransactionSort{By: "password; DROP TABLE users"})
		testutil.AssertNoError(t, err)
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		for i := 0; i < 12; i++ {
			testutil.CreateTestTransaction(t, db, user.ID, "bulk", float64(i+1))
		}

		result, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{Page: 2, PageSize: 5}, TransactionFilter{}, TransactionSort{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 5 {
			t.Errorf("expected 5 items on page 2, got %d", len(result.Data))
		}
		if result.TotalItems != 12 {
			t.Errorf("expected 12 total items, got %d", result.TotalItems)
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", result.TotalPages)
		}
	})
}

func TestUploadRowUnmarshal(t *testing.T) {
	t.Run("typed_fields_and_extra", func(t *testing.T) {
		var row UploadRow
		raw := `{"date":"2024-03-07","amount":125.50,"category":"groceries","status":"completed","type":"bank","merchant":"Corner Shop","note":"weekly"}`
		if err := json.Unmarshal([]byte(raw), &row); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}

		if row.Date.Format("2006-01-02") != "2024-03-07" {
			t.Errorf("unexpected date %v", row.Date)
		}
		if row.Amount != 125.50 {
			t.Errorf("unexpected amount %f", row.Amount)
		}
		if row.Category != "groceries" || row.Status != "completed" || row.Type != "bank" {
			t.Errorf("typed fields not extracted: %+v", row)
		}
		if row.Extra["merchant"] != "Corner Shop" || row.Extra["note"] != "weekly" {
			t.Errorf("extra fields not kept: %v", row.Extra)
		}
	})

	t.Run("string_amount", func(t *testing.T) {
		var row UploadRow
		if err := json.Unmarshal([]byte(`{"amount":"42.75"}`), &row); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if row.Amount != 42.75 {
			t.Errorf("expected 42.75, got %f", row.Amount)
		}
	})

	t.Run("bad_date_becomes_zero_time", func(t *testing.T) {
		var row UploadRow
		if err := json.Unmarshal([]byte(`{"date":"not-a-date","amount":10}`), &row); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !row.Date.IsZero() {
			t.Errorf("expected zero time for unparseable date, got %v", row.Date)
		}
	})

	t.Run("bad_amount_becomes_zero", func(t *testing.T) {
		var row UploadRow
		if err := json.Unmarshal([]byte(`{"amount":"lots"}`), &row); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if row.Amount != 0 {
			t.Errorf("expected zero amount, got %f", row.Amount)
		}
	})

	t.Run("flexible_date_layouts", func(t *testing.T) {
		for _, raw := range []string{
			`{"date":"2024-03-07T10:30:00Z"}`,
			`{"date":"2024-03-07T10:30:00"}`,
			`{"date":"2024/03/07"}`,
			`{"date":"03/07/2024"}`,
		} {
			var row UploadRow
			if err := json.Unmarshal([]byte(raw), &row); err != nil {
				t.Fatalf("unmarshal %s failed: %v", raw, err)
			}
			if row.Date.IsZero() {
				t.Errorf("date in %s should have parsed", raw)
			}
		}
	})
}

func TestBulkInsert(t *testing.T) {
	t.Run("inserts_rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		rows := []UploadRow{
			{Date: time.Now(), Amount: 100, Category: "rent", Status: "completed", Type: "bank"},
			{Date: time.Now(), Amount: 2500, Category: "Salary", Status: "completed"},
		}
		count, err := svc.BulkInsert(user.ID, rows)
		testutil.AssertNoError(t, err)
		if count != 2 {
			t.Errorf("expected 2 inserted, got %d", count)
		}

		all, err := svc.GetAllUserTransactions(user.ID)
		testutil.AssertNoError(t, err)
		if len(all) != 2 {
			t.Errorf("expected 2 stored transactions, got %d", len(all))
		}
	})

	t.Run("empty_batch_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.BulkInsert(user.ID, nil)
		testutil.AssertAppError(t, err, "INVALID_UPLOAD")
	})

	t.Run("type_passes_through_as_free_text", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		rows := []UploadRow{{Amount: 10, Category: "Misc Income", Type: "expense"}}
		_, err := svc.BulkInsert(user.ID, rows)
		testutil.AssertNoError(t, err)

		all, err := svc.GetAllUserTransactions(user.ID)
		testutil.AssertNoError(t, err)
		if string(all[0].Type) != "expense" {
			t.Errorf("expected type to stay %q, got %q", "expense", all[0].Type)
		}
	})

	t.Run("empty_type_defaults_to_other", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.BulkInsert(user.ID, []UploadRow{{Amount: 10, Category: "food"}})
		testutil.AssertNoError(t, err)

		all, err := svc.GetAllUserTransactions(user.ID)
		testutil.AssertNoError(t, err)
		if all[0].Type != models.TransactionTypeOther {
			t.Errorf("expected default type other, got %q", all[0].Type)
		}
	})
}
