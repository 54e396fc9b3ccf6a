package service

import (
	"context"
	"time"

	"moodgarden/internal/facade"
	"moodgarden/internal/logger"
	"moodgarden/internal/models"
	"moodgarden/internal/period"
	"moodgarden/internal/registry"
	"moodgarden/internal/repository"
	"moodgarden/internal/timesource"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Journal exposes entry submission and history.
type Journal interface {
	Submit(ctx context.Context, userID int, emotions []models.EmotionWithStrength, memo string) (models.EmotionEntry, error)
	History(ctx context.Context, userID int, from, to time.Time) ([]models.EmotionEntry, error)
}

// FlowerView derives the current flower state from today's entries and lets
// consumers watch the flower feature's interval ticks.
type FlowerView interface {
	State(ctx context.Context, userID int) (models.FlowerState, error)
	// Watch subscribes fn to the flower feature's tick stream. ok is false
	// when the feature is not in interval mode; callers then poll instead.
	Watch(fn func(time.Time)) (cancel func(), ok bool)
}

// Reports builds and serves completed-period aggregates.
type Reports interface {
	Weekly(ctx context.Context, userID int, ref time.Time) (models.EmotionReport, error)
	Monthly(ctx context.Context, userID int, ref time.Time) (models.EmotionReport, error)
	ListSaved(ctx context.Context, userID int, kind string) ([]models.EmotionReport, error)
	// GenerateDue persists reports for every user active in the window when
	// ref is a trigger instant. Returns the number of reports written.
	GenerateDue(ctx context.Context, ref time.Time) (int, error)
}

// TimePolicy is the reconfiguration surface over the registry.
type TimePolicy interface {
	Configure(p registry.Patch)
	Resolved() map[string]timesource.Config
}

// Scheduler runs the background loop that fires report generation at the
// weekly/monthly trigger instants. Stop via context cancellation in main().
type Scheduler interface {
	Run(ctx context.Context, tick time.Duration)
}

// MyWebPeriods serves the reporting feature's period queries.
type MyWebPeriods interface {
	WeeklyPeriods() (current, completed period.Range)
	MonthlyPeriods() (current, completed period.Range)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Journal
	FlowerView
	Reports
	TimePolicy
	Scheduler
	MyWebPeriods
	Authorization
}

// NewService wires repositories, the facade router and the registry into the
// concrete services.
func NewService(repos *repository.Repository, router *facade.Router, reg *registry.Registry, signingKey string, log *logger.Logger) *Service {
	reports := NewReportsService(repos.Entries, repos.Reports, router)
	return &Service{
		Journal:       NewJournalService(repos.Entries, router),
		FlowerView:    NewFlowerService(repos.Entries, router, reg),
		Reports:       reports,
		TimePolicy:    NewTimePolicyService(reg),
		Scheduler:     NewSchedulerService(reports, router, log),
		MyWebPeriods:  NewMyWebPeriodsService(router),
		Authorization: NewAuthService(repos.Auth, signingKey),
	}
}
