package service

import (
	"context"
	"time"

	"moodgarden/internal/facade"
	"moodgarden/internal/logger"
	"moodgarden/internal/period"
)

// SchedulerService polls the myweb feature's clock and fires report
// generation at the weekly/monthly trigger instants. The trigger predicates
// hold for a whole minute, so fired windows are remembered to keep one
// generation per window even with sub-minute ticks.
type SchedulerService struct {
	reports Reports
	router  *facade.Router
	log     *logger.Logger

	lastWeeklyKey  string
	lastMonthlyKey string
}

func NewSchedulerService(reports Reports, router *facade.Router, log *logger.Logger) *SchedulerService {
	return &SchedulerService{reports: reports, router: router, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SchedulerService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.fire(ctx)
		}
	}
}

// fire runs one scheduling pass against the reporting clock.
func (s *SchedulerService) fire(ctx context.Context) {
	ref := s.router.MyWeb.Now()
	if ref.IsZero() {
		// frozen to an invalid instant; nothing sensible to schedule
		return
	}

	due := false
	if period.IsWeeklyTrigger(ref) {
		key := period.CompletedWeekly(ref).Key()
		if key != s.lastWeeklyKey {
			s.lastWeeklyKey = key
			due = true
		}
	}
	if period.IsMonthlyTrigger(ref) {
		key := period.CompletedMonthly(ref).Key()
		if key != s.lastMonthlyKey {
			s.lastMonthlyKey = key
			due = true
		}
	}
	if !due {
		return
	}

	n, err := s.reports.GenerateDue(ctx, ref)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("report_generation_failed", "err", err, "ref", ref)
		}
		return
	}
	if s.log != nil {
		s.log.Infow("reports_generated", "count", n, "ref", ref)
	}
}
