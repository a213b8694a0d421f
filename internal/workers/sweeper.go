package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
)

// DefaultSweepInterval is how often expired MFA challenges are purged.
const DefaultSweepInterval = time.Minute

// SweepWorker calls a [Sweeper] on a fixed interval.
type SweepWorker struct {
	name     string
	sweeper  Sweeper
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

// NewSweepWorker returns a worker sweeping every interval. A non-positive
// interval falls back to [DefaultSweepInterval].
func NewSweepWorker(name string, sweeper Sweeper, interval time.Duration, logger *logger.Logger) *SweepWorker {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &SweepWorker{
		name:     name,
		sweeper:  sweeper,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *SweepWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Str("worker", s.name).Dur("interval", s.interval).Msg("sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Str("worker", s.name).Msg("sweeper stopped")
			return
		case <-ticker.C:
			if removed := s.sweeper.Sweep(s.now()); removed > 0 {
				s.logger.Debug().Str("worker", s.name).Int("removed", removed).Msg("expired entries swept")
			}
		}
	}
}
