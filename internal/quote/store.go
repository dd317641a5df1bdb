package quote

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrStoreUnavailable indicates the quote store dependency is not configured.
var ErrStoreUnavailable = errors.New("quote: store unavailable")

// ErrNotFound indicates no quote exists with the requested id.
var ErrNotFound = errors.New("quote: not found")

// Header is the promoted-column view of a stored quote used by listings.
type Header struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	StartDate     string    `json:"startDate,omitempty"`
	EndDate       string    `json:"endDate,omitempty"`
	Agency        string    `json:"agency,omitempty"`
	TravelerCount int       `json:"travelerCount"`
	Budget        float64   `json:"budget"`
	Status        string    `json:"status,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Store provides database accessors for quote documents. The document is
// kept whole in a JSONB column; a few columns are promoted for listing.
type Store interface {
	Insert(ctx context.Context, q Quote) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (Quote, error)
	List(ctx context.Context, limit, offset int) ([]Header, error)
	Count(ctx context.Context) (int64, error)
}

// NewStore constructs a Store backed by a pgx connection pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

type pgStore struct {
	pool *pgxpool.Pool
}

// Insert persists a quote document and returns the generated identifier.
func (s *pgStore) Insert(ctx context.Context, q Quote) (uuid.UUID, error) {
	if s == nil || s.pool == nil {
		return uuid.Nil, ErrStoreUnavailable
	}
	id := uuid.New()
	q.ID = id.String()
	payload, err := json.Marshal(q)
	if err != nil {
		return uuid.Nil, err
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO quotes (id, name, start_date, end_date, agency, traveler_count, budget, status, payload)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9)`,
		id, q.Name, q.StartDate, q.EndDate, q.Agency, q.TravelerCount, q.Budget, q.Status, payload)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Get fetches a stored quote document by id.
func (s *pgStore) Get(ctx context.Context, id uuid.UUID) (Quote, error) {
	if s == nil || s.pool == nil {
		return Quote{}, ErrStoreUnavailable
	}
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT payload FROM quotes WHERE id = $1`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Quote{}, ErrNotFound
		}
		return Quote{}, err
	}
	var q Quote
	if err := json.Unmarshal(payload, &q); err != nil {
		return Quote{}, err
	}
	q.ID = id.String()
	return q, nil
}

// List returns stored quote headers, newest first.
func (s *pgStore) List(ctx context.Context, limit, offset int) ([]Header, error) {
	if s == nil || s.pool == nil {
		return nil, ErrStoreUnavailable
	}
	rows, err := s.pool.Query(ctx, `SELECT id, name, COALESCE(start_date::text, ''), COALESCE(end_date::text, ''), agency, traveler_count, budget, status, created_at, updated_at
FROM quotes ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	headers := make([]Header, 0, limit)
	for rows.Next() {
		var h Header
		if err := rows.Scan(&h.ID, &h.Name, &h.StartDate, &h.EndDate, &h.Agency, &h.TravelerCount, &h.Budget, &h.Status, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, rows.Err()
}

// Count returns the number of stored quotes.
func (s *pgStore) Count(ctx context.Context) (int64, error) {
	if s == nil || s.pool == nil {
		return 0, ErrStoreUnavailable
	}
	var total int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
