// Package rates fetches and caches the currency exchange rates the quote
// builder converts with. The upstream is the Orion admin service, spoken to
// over JSON-RPC.
package rates

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Rate is one multiply-to-USD conversion rate.
type Rate struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

// servedCurrencies are the foreign currencies the builder offers. The feed
// carries many more pairs; everything else is dropped.
var servedCurrencies = map[string]bool{
	"GBP": true,
	"EUR": true,
}

// ClientConfig groups upstream connection settings.
type ClientConfig struct {
	URL       string
	BasicAuth string
	Bearer    string
	Timeout   time.Duration
}

// Client calls the Orion exchange-rate endpoint.
type Client struct {
	cfg  ClientConfig
	http *http.Client
}

// NewClient constructs an upstream client with an instrumented transport.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcRate struct {
	Code   string  `json:"code"`
	ToCode string  `json:"toCode"`
	Rate   float64 `json:"rate"`
}

type rpcResponse struct {
	Result []rpcRate `json:"result"`
	Error  *rpcError `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Fetch calls getExchangeRates and returns the USD conversion table: the
// served foreign currencies plus USD itself at rate 1.
func (c *Client) Fetch(ctx context.Context) ([]Rate, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "getExchangeRates",
		Params:  []any{},
		ID:      1,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.BasicAuth != "" {
		req.Header.Set("Authorization", "Basic "+c.cfg.BasicAuth)
	} else if c.cfg.Bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates: call upstream: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates: upstream returned %d", resp.StatusCode)
	}

	var rpc rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpc); err != nil {
		return nil, fmt.Errorf("rates: decode response: %w", err)
	}
	if rpc.Error != nil {
		return nil, fmt.Errorf("rates: upstream error %d: %s", rpc.Error.Code, rpc.Error.Message)
	}

	out := []Rate{{Code: "USD", Rate: 1}}
	for _, r := range rpc.Result {
		if r.ToCode != "USD" || !servedCurrencies[r.Code] {
			continue
		}
		out = append(out, Rate{Code: r.Code, Rate: r.Rate})
	}
	return out, nil
}
