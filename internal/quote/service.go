package quote

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-quotes/internal/common"
	"github.com/noah-isme/backend-quotes/internal/pricing"
)

// Detail is the full read view of a stored quote: the document, its
// computed cost summary, and any outstanding business-rule warnings.
type Detail struct {
	Quote    WireQuote       `json:"quote"`
	Summary  pricing.Summary `json:"summary"`
	Warnings []string        `json:"warnings,omitempty"`
}

// Service orchestrates quote persistence and summary computation.
type Service struct {
	store Store
}

// NewService constructs a quote service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Save validates, rehydrates and persists an inbound wire document. The
// returned warnings are advisory; only schema failures reject the save.
func (s *Service) Save(ctx context.Context, w WireQuote) (uuid.UUID, []string, error) {
	if err := ValidateWire(w); err != nil {
		return uuid.Nil, nil, common.NewAppError("VALIDATION_ERROR", "invalid quote document", http.StatusBadRequest, err)
	}
	q := FromWire(w)
	q.Itinerary = MaterializeItinerary(&q)
	if q.Status == "" {
		q.Status = StatusDraft
	}
	id, err := s.store.Insert(ctx, q)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return id, Warnings(&q), nil
}

// Get loads a stored quote and computes its cost summary.
func (s *Service) Get(ctx context.Context, id string) (Detail, error) {
	qid, err := uuid.Parse(id)
	if err != nil {
		return Detail{}, common.NewAppError("NOT_FOUND", "quote not found", http.StatusNotFound, nil)
	}
	q, err := s.store.Get(ctx, qid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Detail{}, common.NewAppError("NOT_FOUND", "quote not found", http.StatusNotFound, nil)
		}
		return Detail{}, err
	}
	return Detail{
		Quote:    ToWire(&q),
		Summary:  Summarize(&q),
		Warnings: Warnings(&q),
	}, nil
}

// List returns a page of stored quote headers plus the total count.
func (s *Service) List(ctx context.Context, page, perPage int) ([]Header, int64, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	headers, err := s.store.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return headers, total, nil
}
