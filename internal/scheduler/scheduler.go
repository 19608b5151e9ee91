package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type statusReconciler interface {
	ReconcileStatuses(ctx context.Context) (marked, reopened []string, err error)
}

// Scheduler periodically reconciles derived workshop statuses with the
// seat counters (published <-> fully_booked).
type Scheduler struct {
	workshopService statusReconciler
	interval        time.Duration
	logger          logger.Logger
}

func New(
	workshopService statusReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		workshopService: workshopService,
		interval:        interval,
		logger:          logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	marked, reopened, err := s.workshopService.ReconcileStatuses(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile workshop statuses",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, id := range marked {
		s.logger.Info("workshop fully booked",
			logger.String("workshop_id", id),
		)
	}
	for _, id := range reopened {
		s.logger.Info("workshop reopened",
			logger.String("workshop_id", id),
		)
	}
}
