package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type autoCompleter interface {
	SweepAutoCompletion(ctx context.Context, now time.Time) ([]string, error)
}

// Scheduler periodically force-completes confirmed bookings left unresolved
// past the grace period. Each tick is one best-effort sweep; bookings that
// lose an optimistic race stay for the next tick.
type Scheduler struct {
	bookingService autoCompleter
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService autoCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("auto-completion scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("auto-completion scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	ids, err := s.bookingService.SweepAutoCompletion(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("auto-completion sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, id := range ids {
		s.logger.Info("booking auto-completed",
			logger.String("booking_id", id),
		)
	}
}
