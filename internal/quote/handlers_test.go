package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type memStore struct {
	quotes map[uuid.UUID]Quote
	order  []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{quotes: make(map[uuid.UUID]Quote)}
}

func (m *memStore) Insert(_ context.Context, q Quote) (uuid.UUID, error) {
	id := uuid.New()
	q.ID = id.String()
	m.quotes[id] = q
	m.order = append(m.order, id)
	return id, nil
}

func (m *memStore) Get(_ context.Context, id uuid.UUID) (Quote, error) {
	q, ok := m.quotes[id]
	if !ok {
		return Quote{}, ErrNotFound
	}
	return q, nil
}

func (m *memStore) List(_ context.Context, limit, offset int) ([]Header, error) {
	headers := make([]Header, 0, limit)
	for i := len(m.order) - 1 - offset; i >= 0 && len(headers) < limit; i-- {
		q := m.quotes[m.order[i]]
		headers = append(headers, Header{
			ID:            m.order[i],
			Name:          q.Name,
			TravelerCount: q.TravelerCount,
			Budget:        q.Budget,
			Status:        q.Status,
		})
	}
	return headers, nil
}

func (m *memStore) Count(_ context.Context) (int64, error) {
	return int64(len(m.order)), nil
}

func newTestRouter(store Store) chi.Router {
	handler := &Handler{Service: NewService(store)}
	r := chi.NewRouter()
	r.Post("/api/quotes", handler.Create)
	r.Get("/api/quotes", handler.List)
	r.Get("/api/quotes/{quoteID}", handler.Get)
	return r
}

func TestCreateQuote(t *testing.T) {
	router := newTestRouter(newMemStore())
	sample := SampleQuote()
	body, _ := json.Marshal(ToWire(&sample))

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, err := uuid.Parse(resp.ID); err != nil {
		t.Fatalf("expected uuid id, got %q", resp.ID)
	}
}

func TestCreateQuoteInvalidJSON(t *testing.T) {
	router := newTestRouter(newMemStore())
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateQuoteReturnsWarnings(t *testing.T) {
	router := newTestRouter(newMemStore())
	body := []byte(`{"name": "Tiny Group", "groupType": "known", "travelerCount": 4,
		"cities": [], "hotels": [], "activities": [], "transportation": []}`)
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("warnings must not block the save, got %d", rec.Code)
	}
	var resp struct {
		Warnings []string `json:"warnings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Warnings) == 0 {
		t.Fatalf("expected a minimum-size warning")
	}
}

func TestGetQuoteWithSummary(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)
	sample := SampleQuote()
	id, _, err := NewService(store).Save(context.Background(), ToWire(&sample))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/quotes/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data Detail `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Summary.Total <= 0 {
		t.Fatalf("expected a computed total, got %v", resp.Data.Summary.Total)
	}
	if resp.Data.Summary.Budget != 75000 {
		t.Fatalf("expected budget 75000, got %v", resp.Data.Summary.Budget)
	}
	if len(resp.Data.Quote.Itinerary) != 12 {
		t.Fatalf("expected materialized itinerary of 12 days, got %d", len(resp.Data.Quote.Itinerary))
	}
}

func TestGetQuoteNotFound(t *testing.T) {
	router := newTestRouter(newMemStore())
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListQuotes(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)
	svc := NewService(store)
	sample := SampleQuote()
	for i := 0; i < 3; i++ {
		if _, _, err := svc.Save(context.Background(), ToWire(&sample)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/quotes?page=1&limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Data       []Header `json:"data"`
		Pagination struct {
			TotalItems int `json:"total_items"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 || resp.Pagination.TotalItems != 3 {
		t.Fatalf("expected 2 of 3 quotes, got %d of %d", len(resp.Data), resp.Pagination.TotalItems)
	}
}
