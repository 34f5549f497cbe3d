// Package client fetches a user's transactions from a running API instance so
// external tools can feed them through the aggregation engine.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"finsight/internal/aggregate"
)

// defaultTimeout bounds a fetch when the caller supplies no HTTP client.
const defaultTimeout = 30 * time.Second

// fetchPageSize is large enough to pull a full account in one request.
const fetchPageSize = 10000

// Config configures a Client. BaseURL and Token are required.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8080".
	BaseURL string

	// Token is the bearer token of the user whose transactions are fetched.
	Token string

	// HTTPClient is optional. When nil a client with a 30s timeout is used.
	HTTPClient *http.Client
}

// Client fetches transactions over the REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a Client from the given config.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("client: base URL is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("client: token is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: httpClient,
	}, nil
}

// listResponse mirrors the transaction listing payload.
type listResponse struct {
	Transactions []aggregate.Transaction `json:"transactions"`
}

// FetchTransactions retrieves the user's transactions in a single request.
// Any non-2xx response is returned as an error; there are no retries.
func (c *Client) FetchTransactions(ctx context.Context) ([]aggregate.Transaction, error) {
	endpoint := fmt.Sprintf("%s/api/v1/transactions?%s", c.baseURL, url.Values{
		"page":      {"1"},
		"page_size": {fmt.Sprint(fetchPageSize)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: fetch transactions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("client: fetch transactions: unexpected status %d", resp.StatusCode)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("client: decode response: %w", err)
	}
	if body.Transactions == nil {
		body.Transactions = []aggregate.Transaction{}
	}
	return body.Transactions, nil
}
