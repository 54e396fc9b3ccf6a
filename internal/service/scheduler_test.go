package service

import (
	"context"
	"testing"
	"time"

	"moodgarden/internal/models"
)

type stubReports struct {
	calls []time.Time
	n     int
}

func (s *stubReports) Weekly(context.Context, int, time.Time) (models.EmotionReport, error) {
	return models.EmotionReport{}, nil
}

func (s *stubReports) Monthly(context.Context, int, time.Time) (models.EmotionReport, error) {
	return models.EmotionReport{}, nil
}

func (s *stubReports) ListSaved(context.Context, int, string) ([]models.EmotionReport, error) {
	return nil, nil
}

func (s *stubReports) GenerateDue(_ context.Context, ref time.Time) (int, error) {
	s.calls = append(s.calls, ref)
	return s.n, nil
}

func TestSchedulerFire(t *testing.T) {
	sunday7 := time.Date(2026, time.March, 8, 7, 0, 0, 0, time.Local)

	t.Run("fires once per trigger window", func(t *testing.T) {
		reports := &stubReports{n: 2}
		s := NewSchedulerService(reports, frozenRouter(t, sunday7), nil)

		// The predicate holds for the whole minute; repeated passes inside it
		// must generate only once.
		s.fire(context.Background())
		s.fire(context.Background())
		s.fire(context.Background())

		if len(reports.calls) != 1 {
			t.Fatalf("GenerateDue called %d times, want 1", len(reports.calls))
		}
		if !reports.calls[0].Equal(sunday7) {
			t.Fatalf("fired with ref %v, want %v", reports.calls[0], sunday7)
		}
	})

	t.Run("idle outside trigger instants", func(t *testing.T) {
		reports := &stubReports{}
		s := NewSchedulerService(reports, frozenRouter(t, sunday7.Add(3*time.Hour)), nil)

		s.fire(context.Background())
		if len(reports.calls) != 0 {
			t.Fatalf("GenerateDue called %d times off-trigger", len(reports.calls))
		}
	})

	t.Run("skips an invalid frozen clock", func(t *testing.T) {
		reports := &stubReports{}
		router := frozenRouterInvalid(t)
		s := NewSchedulerService(reports, router, nil)

		s.fire(context.Background())
		if len(reports.calls) != 0 {
			t.Fatal("GenerateDue must not run without a usable instant")
		}
	})

	t.Run("monthly trigger fires independently", func(t *testing.T) {
		firstOfApril := time.Date(2026, time.April, 1, 7, 0, 0, 0, time.Local) // a Wednesday
		reports := &stubReports{n: 1}
		s := NewSchedulerService(reports, frozenRouter(t, firstOfApril), nil)

		s.fire(context.Background())
		if len(reports.calls) != 1 {
			t.Fatalf("GenerateDue called %d times, want 1", len(reports.calls))
		}
	})
}
