package repository

import (
	"context"
	"database/sql"
	"time"

	"moodgarden/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// EntryRepo persists journal entries. List bounds are inclusive; a zero bound
// means unbounded on that side.
type EntryRepo interface {
	Append(ctx context.Context, e models.EmotionEntry) error
	List(ctx context.Context, userID int, from, to time.Time) ([]models.EmotionEntry, error)
	// UserIDs returns the distinct users with at least one entry in [from, to].
	UserIDs(ctx context.Context, from, to time.Time) ([]int, error)
}

// ReportRepo persists generated period reports, one per (user, kind, window).
type ReportRepo interface {
	Save(ctx context.Context, r models.EmotionReport) error
	Get(ctx context.Context, userID int, kind, periodKey string) (*models.EmotionReport, error)
	List(ctx context.Context, userID int, kind string) ([]models.EmotionReport, error)
}

type Repository struct {
	Entries EntryRepo
	Reports ReportRepo
	Auth    Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Entries: NewEntrySQLite(db),
		Reports: NewReportSQLite(db),
		Auth:    NewUserRepository(db),
	}
}
