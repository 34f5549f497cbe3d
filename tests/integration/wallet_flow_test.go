package integration

import (
	"net/http"
	"testing"
)

func TestWalletFlow_AddWithdrawHistory(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "wallet@test.com", "password123")

	// Fresh wallet starts empty
	rec := app.request("GET", "/api/v1/wallet/balance", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("balance failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["wallet_balance"] != float64(0) {
		t.Errorf("expected starting balance 0, got %v", result["wallet_balance"])
	}

	// Add 500
	rec = app.request("POST", "/api/v1/wallet/add", `{"amount":500}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("add failed: %d %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	if result["wallet_balance"] != float64(500) {
		t.Errorf("expected balance 500 after add, got %v", result["wallet_balance"])
	}

	// Withdraw 200
	rec = app.request("POST", "/api/v1/wallet/withdraw", `{"amount":200}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("withdraw failed: %d %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	if result["wallet_balance"] != float64(300) {
		t.Errorf("expected balance 300 after withdraw, got %v", result["wallet_balance"])
	}

	// History holds both ledger entries, withdrawal stored negative
	rec = app.request("GET", "/api/v1/wallet/history", "", token)
	result = parseJSON(t, rec)
	items, ok := result["transactions"].([]interface{})
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 history entries, got %v", result["transactions"])
	}
	var sawNegative bool
	for _, item := range items {
		entry := item.(map[string]interface{})
		if entry["amount"] == float64(-200) {
			sawNegative = true
		}
	}
	if !sawNegative {
		t.Error("expected a -200 withdrawal entry in history")
	}
}

func TestWalletFlow_InsufficientBalance(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "broke@test.com", "password123")

	rec := app.request("POST", "/api/v1/wallet/add", `{"amount":100}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("add failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/wallet/withdraw", `{"amount":1000}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	// Balance and history untouched after the rejected withdrawal
	rec = app.request("GET", "/api/v1/wallet/balance", "", token)
	result := parseJSON(t, rec)
	if result["wallet_balance"] != float64(100) {
		t.Errorf("expected balance 100, got %v", result["wallet_balance"])
	}
	rec = app.request("GET", "/api/v1/wallet/history", "", token)
	result = parseJSON(t, rec)
	if items, ok := result["transactions"].([]interface{}); !ok || len(items) != 1 {
		t.Errorf("expected 1 history entry, got %v", result["transactions"])
	}
}
