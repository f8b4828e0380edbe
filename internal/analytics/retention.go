package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Retain deletes visits older than retention right away and then every
// interval until ctx is done.
func (s *Store) Retain(ctx context.Context, logger *zap.Logger, retention, interval time.Duration) {
	if retention <= 0 || interval <= 0 {
		return
	}
	prune := func() {
		n, err := s.Prune(ctx, time.Now().Add(-retention))
		if err != nil {
			logger.Warn("pruning visits", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("pruned old visits", zap.Int64("removed", n), zap.Duration("retention", retention))
		}
	}

	prune()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			prune()
		}
	}
}
