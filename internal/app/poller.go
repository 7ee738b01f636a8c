package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/eventscout/internal/backend"
	"github.com/five82/eventscout/internal/state"
)

const defaultPollInterval = 15 * time.Second

// HealthChecker is the slice of the backend the poller needs.
type HealthChecker interface {
	Health(ctx context.Context) (backend.Health, error)
}

// StartPoller launches a background goroutine that refreshes the health
// snapshot at a fixed cadence. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, checker HealthChecker, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			refresh(ctx, store, checker, logger)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, checker HealthChecker, logger *zap.Logger) {
	health, err := checker.Health(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		store.Update(nil, err)
		logger.Debug("health poll failed", zap.Error(err))
		return
	}
	store.Update(&health, nil)
}
