// Package agents proxies agent lookups to the admin service.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MinQueryLength is the shortest search term forwarded upstream. Shorter
// queries return an empty result without a network call.
const MinQueryLength = 2

// Agent is one searchable agent record as returned by the admin service.
type Agent struct {
	ID         json.Number `json:"id"`
	FirstName  string      `json:"firstName"`
	MiddleName string      `json:"middleName,omitempty"`
	LastName   string      `json:"lastName"`
	Agency     *Agency     `json:"agency,omitempty"`
}

// Agency is the agency an agent belongs to.
type Agency struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// ClientConfig groups admin-service connection settings.
type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client queries the admin agent directory.
type Client struct {
	cfg  ClientConfig
	http *http.Client
}

// NewClient constructs an admin-directory client with an instrumented
// transport. The default timeout is 5 seconds.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Search forwards the query to the admin service and passes the result
// array through.
func (c *Client) Search(ctx context.Context, query string) ([]Agent, error) {
	endpoint := fmt.Sprintf("%s/json/agent?search=%s", c.cfg.BaseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agents: call upstream: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("agents: upstream returned %d", resp.StatusCode)
	}

	var out []Agent
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("agents: decode response: %w", err)
	}
	return out, nil
}
