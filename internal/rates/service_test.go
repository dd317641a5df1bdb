package rates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-quotes/internal/lock"
)

func newUpstream(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Method != "getExchangeRates" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result": []map[string]any{
				{"code": "GBP", "toCode": "USD", "rate": 1.27},
				{"code": "EUR", "toCode": "USD", "rate": 1.09},
				{"code": "JPY", "toCode": "USD", "rate": 0.0068},
				{"code": "USD", "toCode": "EUR", "rate": 0.92},
			},
		})
	}))
}

func newTestService(t *testing.T, upstreamURL string) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	svc := NewService(
		NewClient(ClientConfig{URL: upstreamURL, Bearer: "token"}),
		NewCache(client, time.Hour),
		lock.Locker{R: client},
		zerolog.Nop(),
	)
	return svc, mini
}

func TestFetchFiltersToServedCurrencies(t *testing.T) {
	upstream := newUpstream(t, nil)
	defer upstream.Close()

	svc, _ := newTestService(t, upstream.URL)
	snapshot, err := svc.client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(snapshot) != 3 {
		t.Fatalf("expected USD+GBP+EUR, got %+v", snapshot)
	}
	if snapshot[0].Code != "USD" || snapshot[0].Rate != 1 {
		t.Fatalf("expected USD rate 1 first, got %+v", snapshot[0])
	}
}

func TestGetUsesCache(t *testing.T) {
	var calls int32
	upstream := newUpstream(t, &calls)
	defer upstream.Close()

	svc, _ := newTestService(t, upstream.URL)
	ctx := context.Background()

	first, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	second, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected a single upstream call, got %d", calls)
	}
	if len(first) != len(second) {
		t.Fatalf("snapshots differ: %v vs %v", first, second)
	}
}

func TestGetRefetchesAfterExpiry(t *testing.T) {
	var calls int32
	upstream := newUpstream(t, &calls)
	defer upstream.Close()

	svc, mini := newTestService(t, upstream.URL)
	ctx := context.Background()

	if _, err := svc.Get(ctx); err != nil {
		t.Fatalf("get: %v", err)
	}
	mini.FastForward(2 * time.Hour)
	if _, err := svc.Get(ctx); err != nil {
		t.Fatalf("get after expiry: %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected refetch after TTL, got %d calls", calls)
	}
}

func TestHandlerServesSnapshot(t *testing.T) {
	upstream := newUpstream(t, nil)
	defer upstream.Close()

	svc, _ := newTestService(t, upstream.URL)
	handler := &Handler{Service: svc}

	req := httptest.NewRequest(http.MethodGet, "/api/rates", nil)
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Data []Rate `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("expected 3 rates, got %+v", resp.Data)
	}
}

func TestHandlerUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc, _ := newTestService(t, upstream.URL)
	handler := &Handler{Service: svc}

	rec := httptest.NewRecorder()
	handler.Get(rec, httptest.NewRequest(http.MethodGet, "/api/rates", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
