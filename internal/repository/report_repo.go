package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"moodgarden/internal/models"

	"github.com/google/uuid"
)

type ReportSQLite struct {
	db *sql.DB
}

func NewReportSQLite(db *sql.DB) *ReportSQLite { return &ReportSQLite{db: db} }

var _ ReportRepo = (*ReportSQLite)(nil)

const (
	upsertReportSQL = `
		INSERT INTO emotion_reports
			(id, user_id, kind, period_key, start_ms, end_ms, entry_count, counts, shares, dominant, generated_at_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, kind, period_key) DO UPDATE SET
			entry_count=excluded.entry_count,
			counts=excluded.counts,
			shares=excluded.shares,
			dominant=excluded.dominant,
			generated_at_ms=excluded.generated_at_ms
	`

	selectReportSQL = `
		SELECT id, user_id, kind, period_key, start_ms, end_ms, entry_count, counts, shares, dominant, generated_at_ms
		FROM emotion_reports
	`
)

// Save upserts a report: regenerating the same window replaces the previous
// aggregate rather than duplicating it.
func (r *ReportSQLite) Save(ctx context.Context, rep models.EmotionReport) error {
	if rep.ReportID == "" {
		rep.ReportID = uuid.NewString()
	}
	if rep.GeneratedAt.IsZero() {
		rep.GeneratedAt = time.Now().UTC()
	}

	countsJSON, err := json.Marshal(rep.Counts)
	if err != nil {
		return fmt.Errorf("marshal report counts: %w", err)
	}
	sharesJSON, err := json.Marshal(rep.Shares)
	if err != nil {
		return fmt.Errorf("marshal report shares: %w", err)
	}

	_, err = r.db.ExecContext(ctx, upsertReportSQL,
		rep.ReportID,
		rep.UserID,
		rep.Kind,
		rep.PeriodKey,
		rep.Start.UnixMilli(),
		rep.End.UnixMilli(),
		rep.EntryCount,
		string(countsJSON),
		string(sharesJSON),
		rep.Dominant,
		rep.GeneratedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save %s report %q for user %d: %w", rep.Kind, rep.PeriodKey, rep.UserID, err)
	}
	return nil
}

// Get fetches one report. Returns (nil, nil) if not found.
func (r *ReportSQLite) Get(ctx context.Context, userID int, kind, periodKey string) (*models.EmotionReport, error) {
	row := r.db.QueryRowContext(ctx,
		selectReportSQL+` WHERE user_id = ? AND kind = ? AND period_key = ?`,
		userID, kind, periodKey,
	)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rep, nil
}

// List returns all of a user's reports of one kind, newest window first.
func (r *ReportSQLite) List(ctx context.Context, userID int, kind string) ([]models.EmotionReport, error) {
	rows, err := r.db.QueryContext(ctx,
		selectReportSQL+` WHERE user_id = ? AND kind = ? ORDER BY start_ms DESC`,
		userID, kind,
	)
	if err != nil {
		return nil, fmt.Errorf("list %s reports for user %d: %w", kind, userID, err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.EmotionReport
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (models.EmotionReport, error) {
	var (
		rep         models.EmotionReport
		startMs     int64
		endMs       int64
		countsJSON  string
		sharesJSON  string
		dominant    sql.NullString
		generatedMs int64
	)
	if err := row.Scan(
		&rep.ReportID,
		&rep.UserID,
		&rep.Kind,
		&rep.PeriodKey,
		&startMs,
		&endMs,
		&rep.EntryCount,
		&countsJSON,
		&sharesJSON,
		&dominant,
		&generatedMs,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EmotionReport{}, err
		}
		return models.EmotionReport{}, fmt.Errorf("scan report: %w", err)
	}
	if err := json.Unmarshal([]byte(countsJSON), &rep.Counts); err != nil {
		return models.EmotionReport{}, fmt.Errorf("unmarshal report counts: %w", err)
	}
	if err := json.Unmarshal([]byte(sharesJSON), &rep.Shares); err != nil {
		return models.EmotionReport{}, fmt.Errorf("unmarshal report shares: %w", err)
	}
	rep.Start = time.UnixMilli(startMs)
	rep.End = time.UnixMilli(endMs)
	rep.Dominant = dominant.String
	rep.GeneratedAt = time.UnixMilli(generatedMs)
	return rep, nil
}
