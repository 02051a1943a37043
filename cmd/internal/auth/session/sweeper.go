package session

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically removes expired refresh-token records.
// Physical cleanup is the store's concern; expiry itself is purely logical,
// so a missed sweep never extends a token's life.
type Sweeper struct {
	store    Store
	log      *slog.Logger
	interval time.Duration
}

// NewSweeper constructs a Sweeper. A non-positive interval falls back to
// one hour.
func NewSweeper(store Store, log *slog.Logger, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{store: store, log: log, interval: interval}
}

// Run sweeps on a ticker until ctx is canceled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.store.SweepExpired(ctx, time.Now().UTC())
	if err != nil {
		s.log.Error("session.sweep.failed", "err", err)
		return
	}

	if removed > 0 {
		metricSweptTokens.Add(float64(removed))
		s.log.Info("session.sweep.done", "removed", removed)
	}
}
