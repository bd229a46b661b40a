// Package sdk is a minimal Go client for the unimatch HTTP API.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Query is one match query. RequestID and Depth are optional; the server
// defaults them to the query's position and depth 2.
type Query struct {
	RequestID    *int   `json:"request_id,omitempty"`
	Query        string `json:"query"`
	UniclassType string `json:"uniclass_type"`
	Depth        *int   `json:"depth,omitempty"`
}

// Result is one per-query match record.
type Result struct {
	RequestID  int     `json:"request_id"`
	Match      string  `json:"match"`
	Confidence float64 `json:"confidence"`
}

// MatchResponse is the server's success envelope.
type MatchResponse struct {
	Success   bool     `json:"success"`
	Processed int      `json:"processed"`
	Results   []Result `json:"results"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unimatch api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Client talks to a unimatch server.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a client. apiKey may be empty if the server runs without auth.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    http.DefaultClient,
	}
}

// WithHTTPClient overrides the underlying HTTP client (timeouts, transport).
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// Match resolves a batch of queries. The returned results align positionally
// with the input.
func (c *Client) Match(ctx context.Context, queries []Query) (MatchResponse, error) {
	body, err := json.Marshal(struct {
		Queries []Query `json:"queries"`
	}{Queries: queries})
	if err != nil {
		return MatchResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/v1/match", bytes.NewReader(body),
	)
	if err != nil {
		return MatchResponse{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return MatchResponse{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = "unreadable error body"
		}
		return MatchResponse{}, apiErr
	}

	var out MatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return MatchResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
