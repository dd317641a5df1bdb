package rates

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-quotes/internal/lock"
	"github.com/noah-isme/backend-quotes/internal/obs"
)

// RefreshLockKey guards the refresh so only one replica hits the upstream.
const RefreshLockKey = "rates:refresh:lock"

// Service serves the cached rate snapshot and refreshes it on demand.
type Service struct {
	client *Client
	cache  *Cache
	locker lock.Locker
	logger zerolog.Logger
}

// NewService constructs a rates service.
func NewService(client *Client, cache *Cache, locker lock.Locker, logger zerolog.Logger) *Service {
	return &Service{client: client, cache: cache, locker: locker, logger: logger}
}

// Get returns the current snapshot, fetching from upstream on a cache miss.
func (s *Service) Get(ctx context.Context) ([]Rate, error) {
	snapshot, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("rates cache read failed")
	}
	if ok {
		return snapshot, nil
	}
	return s.Refresh(ctx)
}

// Refresh fetches the upstream table and stores it in the cache.
func (s *Service) Refresh(ctx context.Context) ([]Rate, error) {
	start := time.Now()
	snapshot, err := s.client.Fetch(ctx)
	if err != nil {
		s.observe("error", start)
		return nil, err
	}
	if err := s.cache.Set(ctx, snapshot); err != nil {
		s.logger.Warn().Err(err).Msg("rates cache write failed")
	}
	s.observe("ok", start)
	return snapshot, nil
}

// RefreshLocked runs Refresh under the distributed refresh lock so that a
// fleet of workers performs a single upstream call per cycle.
func (s *Service) RefreshLocked(ctx context.Context, ttl time.Duration) error {
	return s.locker.WithLock(ctx, RefreshLockKey, ttl, func(ctx context.Context) error {
		_, err := s.Refresh(ctx)
		return err
	})
}

func (s *Service) observe(result string, start time.Time) {
	if obs.RateRefreshTotal != nil {
		obs.RateRefreshTotal.WithLabelValues(result).Inc()
	}
	if obs.UpstreamLatency != nil {
		obs.UpstreamLatency.WithLabelValues("orion", result).Observe(float64(time.Since(start).Milliseconds()))
	}
}
