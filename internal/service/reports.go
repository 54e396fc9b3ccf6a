package service

import (
	"context"
	"fmt"
	"time"

	"moodgarden/internal/facade"
	"moodgarden/internal/models"
	"moodgarden/internal/period"
	"moodgarden/internal/repository"
)

// ReportsService aggregates completed reporting windows into per-user
// emotion reports.
type ReportsService struct {
	entries repository.EntryRepo
	reports repository.ReportRepo
	router  *facade.Router
}

func NewReportsService(entries repository.EntryRepo, reports repository.ReportRepo, router *facade.Router) *ReportsService {
	return &ReportsService{entries: entries, reports: reports, router: router}
}

// Weekly returns the report for the week completed before ref (the myweb
// feature's clock when ref is zero), serving a previously saved aggregate
// when one exists.
func (s *ReportsService) Weekly(ctx context.Context, userID int, ref time.Time) (models.EmotionReport, error) {
	if ref.IsZero() {
		ref = s.router.MyWeb.Now()
	}
	return s.build(ctx, userID, models.PeriodWeekly, period.CompletedWeekly(ref))
}

// Monthly is the calendar-month analog of Weekly.
func (s *ReportsService) Monthly(ctx context.Context, userID int, ref time.Time) (models.EmotionReport, error) {
	if ref.IsZero() {
		ref = s.router.MyWeb.Now()
	}
	return s.build(ctx, userID, models.PeriodMonthly, period.CompletedMonthly(ref))
}

// ListSaved returns a user's stored reports of one kind.
func (s *ReportsService) ListSaved(ctx context.Context, userID int, kind string) ([]models.EmotionReport, error) {
	return s.reports.List(ctx, userID, kind)
}

// GenerateDue checks ref against the trigger predicates and, when one fires,
// builds and persists the completed window's report for every user active in
// it. Both triggers can fire on the same instant (a month starting on
// Sunday).
func (s *ReportsService) GenerateDue(ctx context.Context, ref time.Time) (int, error) {
	generated := 0
	if period.IsWeeklyTrigger(ref) {
		n, err := s.generateAll(ctx, models.PeriodWeekly, period.CompletedWeekly(ref))
		if err != nil {
			return generated, err
		}
		generated += n
	}
	if period.IsMonthlyTrigger(ref) {
		n, err := s.generateAll(ctx, models.PeriodMonthly, period.CompletedMonthly(ref))
		if err != nil {
			return generated, err
		}
		generated += n
	}
	return generated, nil
}

func (s *ReportsService) generateAll(ctx context.Context, kind string, rng period.Range) (int, error) {
	userIDs, err := s.entries.UserIDs(ctx, rng.Start, rng.End)
	if err != nil {
		return 0, fmt.Errorf("find users for %s report %q: %w", kind, rng.Key(), err)
	}
	count := 0
	for _, userID := range userIDs {
		rep, err := s.aggregate(ctx, userID, kind, rng)
		if err != nil {
			return count, err
		}
		if err := s.reports.Save(ctx, rep); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// build serves a saved report when present, otherwise aggregates on demand
// and persists the result.
func (s *ReportsService) build(ctx context.Context, userID int, kind string, rng period.Range) (models.EmotionReport, error) {
	if saved, err := s.reports.Get(ctx, userID, kind, rng.Key()); err != nil {
		return models.EmotionReport{}, err
	} else if saved != nil {
		return *saved, nil
	}

	rep, err := s.aggregate(ctx, userID, kind, rng)
	if err != nil {
		return models.EmotionReport{}, err
	}
	if err := s.reports.Save(ctx, rep); err != nil {
		return models.EmotionReport{}, err
	}
	return rep, nil
}

// aggregate computes per-label counts, shares and the dominant label over the
// window's entries.
func (s *ReportsService) aggregate(ctx context.Context, userID int, kind string, rng period.Range) (models.EmotionReport, error) {
	entries, err := s.entries.List(ctx, userID, rng.Start, rng.End)
	if err != nil {
		return models.EmotionReport{}, fmt.Errorf("load entries for %s report %q: %w", kind, rng.Key(), err)
	}

	counts := make(map[string]int)
	total := 0
	for _, e := range entries {
		for _, emo := range e.Emotions {
			counts[emo.Type]++
			total++
		}
	}

	shares := make(map[string]float64, len(counts))
	dominant := ""
	best := 0
	for label, n := range counts {
		shares[label] = float64(n) / float64(total)
		// Deterministic tie-break: higher count wins, then lexicographic.
		if n > best || (n == best && (dominant == "" || label < dominant)) {
			dominant, best = label, n
		}
	}

	return models.EmotionReport{
		UserID:     userID,
		Kind:       kind,
		PeriodKey:  rng.Key(),
		Start:      rng.Start,
		End:        rng.End,
		EntryCount: len(entries),
		Counts:     counts,
		Shares:     shares,
		Dominant:   dominant,
	}, nil
}
