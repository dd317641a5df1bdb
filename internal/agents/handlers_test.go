package agents

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
)

func newUpstream(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if r.URL.Path != "/json/agent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id": 7, "firstName": "Mary", "lastName": "O'Connor",
				"agency": map[string]any{"id": 3, "name": "Emerald Isle Travel"},
			},
		})
	}))
}

func TestSearchProxiesUpstream(t *testing.T) {
	var calls int32
	upstream := newUpstream(t, &calls)
	defer upstream.Close()

	handler := &Handler{Client: NewClient(ClientConfig{BaseURL: upstream.URL, Token: "secret"})}
	req := httptest.NewRequest(http.MethodGet, "/api/agents/search?search=mary", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var agents []Agent
	if err := json.Unmarshal(rec.Body.Bytes(), &agents); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(agents) != 1 || agents[0].FirstName != "Mary" {
		t.Fatalf("unexpected results: %+v", agents)
	}
	if agents[0].Agency == nil || agents[0].Agency.Name != "Emerald Isle Travel" {
		t.Fatalf("expected agency on result: %+v", agents[0])
	}
}

func TestSearchShortQuerySkipsUpstream(t *testing.T) {
	var calls int32
	upstream := newUpstream(t, &calls)
	defer upstream.Close()

	handler := &Handler{Client: NewClient(ClientConfig{BaseURL: upstream.URL, Token: "secret"})}
	for _, q := range []string{"", "m", "  m  "} {
		req := httptest.NewRequest(http.MethodGet, "/api/agents/search?search="+url.QueryEscape(q), nil)
		rec := httptest.NewRecorder()
		handler.Search(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %q, got %d", q, rec.Code)
		}
		if body := rec.Body.String(); body != "[]\n" {
			t.Fatalf("expected empty array for %q, got %s", q, body)
		}
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("short queries must not call upstream, got %d calls", calls)
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	handler := &Handler{Client: NewClient(ClientConfig{BaseURL: upstream.URL})}
	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest(http.MethodGet, "/api/agents/search?search=mary", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
