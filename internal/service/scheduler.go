package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler periodically regenerates the current day's tickets and settles
// finished picks. One pass runs immediately on start, then every interval
// until the context is cancelled.
type Scheduler struct {
	tickets  *TicketService
	grading  *GradingService
	interval time.Duration
	logger   *logrus.Logger
}

// NewScheduler creates the periodic pipeline loop.
func NewScheduler(tickets *TicketService, grading *GradingService, interval time.Duration, logger *logrus.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{
		tickets:  tickets,
		grading:  grading,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is done. Callers start it in its own goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	s.pass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.pass(ctx)
		}
	}
}

func (s *Scheduler) pass(ctx context.Context) {
	today := time.Now()
	if _, err := s.tickets.GenerateForDate(ctx, today); err != nil {
		s.logger.WithError(err).Warn("scheduled ticket generation failed")
	}
	if _, err := s.grading.Run(ctx); err != nil {
		s.logger.WithError(err).Warn("scheduled grading failed")
	}
}
