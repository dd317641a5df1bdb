package rates

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
)

// TaskRefresh is the asynq task type for the periodic rate refresh.
const TaskRefresh = "rates:refresh"

// NewRefreshTask builds the refresh task. It carries no payload.
func NewRefreshTask() *asynq.Task {
	return asynq.NewTask(TaskRefresh, nil)
}

// Refresher handles the refresh task in the worker.
type Refresher struct {
	Service *Service
	LockTTL time.Duration
}

// ProcessTask implements asynq.Handler.
func (r *Refresher) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	ttl := r.LockTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return r.Service.RefreshLocked(ctx, ttl)
}
