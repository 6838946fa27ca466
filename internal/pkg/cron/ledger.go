package cron

import (
	"context"
	"log/slog"
	"time"
)

// LedgerEvicter drops cached attendance ledgers that have been idle too long.
type LedgerEvicter interface {
	EvictIdle(maxIdle time.Duration) int
}

// RegisterLedgerEviction adds the job that keeps the attendance cache bounded.
func RegisterLedgerEviction(s *Scheduler, store LedgerEvicter, interval, maxIdle time.Duration) {
	s.AddJob("evict_idle_ledgers", interval, func(ctx context.Context) error {
		if n := store.EvictIdle(maxIdle); n > 0 {
			slog.InfoContext(ctx, "Evicted idle attendance ledgers", "count", n, "max_idle", maxIdle)
		}
		return nil
	})
}
