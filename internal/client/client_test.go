package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("requires_base_url", func(t *testing.T) {
		if _, err := New(Config{Token: "tok"}); err == nil {
			t.Error("expected error for missing base URL")
		}
	})

	t.Run("requires_token", func(t *testing.T) {
		if _, err := New(Config{BaseURL: "http://localhost:8080"}); err == nil {
			t.Error("expected error for missing token")
		}
	})
}

func TestFetchTransactions(t *testing.T) {
	t.Run("fetches_and_decodes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v1/transactions" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
				t.Errorf("unexpected auth header %q", got)
			}
			if got := r.URL.Query().Get("page_size"); got != "10000" {
				t.Errorf("expected page_size 10000, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"transactions":[{"id":"tx-1","amount":100,"category":"rent","status":"completed"}],"total":1}`))
		}))
		defer server.Close()

		c, err := New(Config{BaseURL: server.URL, Token: "test-token"})
		if err != nil {
			t.Fatalf("failed to build client: %v", err)
		}

		txns, err := c.FetchTransactions(context.Background())
		if err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
		if len(txns) != 1 || txns[0].ID != "tx-1" || txns[0].Amount != 100 {
			t.Errorf("unexpected transactions: %+v", txns)
		}
	})

	t.Run("non_2xx_is_an_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		c, err := New(Config{BaseURL: server.URL, Token: "bad-token"})
		if err != nil {
			t.Fatalf("failed to build client: %v", err)
		}

		if _, err := c.FetchTransactions(context.Background()); err == nil {
			t.Error("expected error for 401 response")
		}
	})

	t.Run("empty_listing_yields_non_nil_slice", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"transactions":[],"total":0}`))
		}))
		defer server.Close()

		c, err := New(Config{BaseURL: server.URL, Token: "tok"})
		if err != nil {
			t.Fatalf("failed to build client: %v", err)
		}

		txns, err := c.FetchTransactions(context.Background())
		if err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
		if txns == nil {
			t.Error("expected non-nil slice")
		}
	})
}
