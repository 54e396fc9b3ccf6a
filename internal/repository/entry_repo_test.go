package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"moodgarden/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestEntryAppend_WithCreatedAt(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEntrySQLite(db)

	at := time.Date(2026, 3, 4, 19, 30, 0, 0, time.UTC)
	emotions := []models.EmotionWithStrength{{Type: models.EmotionJoy, Strength: models.StrengthStrong}}
	js, _ := json.Marshal(emotions)

	mock.ExpectExec(regexp.QuoteMeta(insertEntrySQL)).
		WithArgs("e1", 7, string(js), "walked home", at.UnixMilli()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(ctx(t), models.EmotionEntry{
		EntryID:   "e1",
		UserID:    7,
		Emotions:  emotions,
		Memo:      "walked home",
		CreatedAt: &at,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEntryAppend_NilCreatedAtStoredAsNull(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEntrySQLite(db)

	// EntryID empty -> repo generates; created_at_ms must go in as NULL.
	mock.ExpectExec(regexp.QuoteMeta(insertEntrySQL)).
		WithArgs(sqlmock.AnyArg(), 7, sqlmock.AnyArg(), "", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(ctx(t), models.EmotionEntry{
		UserID:   7,
		Emotions: []models.EmotionWithStrength{{Type: models.EmotionCalm}},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEntryAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEntrySQLite(db)

	mock.ExpectExec("INSERT INTO journal_entries").
		WillReturnError(errors.New("locked"))

	err := repo.Append(ctx(t), models.EmotionEntry{
		UserID:   1,
		Emotions: []models.EmotionWithStrength{{Type: models.EmotionAnger}},
	})
	if err == nil || !strings.Contains(err.Error(), "locked") {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEntryList_Unbounded(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEntrySQLite(db)

	at := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	js, _ := json.Marshal([]models.EmotionWithStrength{{Type: models.EmotionSadness}})

	rows := sqlmock.NewRows([]string{"id", "user_id", "emotions", "memo", "created_at_ms"}).
		AddRow("a", 7, string(js), "rainy", at.UnixMilli()).
		AddRow("b", 7, string(js), nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, user_id, emotions, memo, created_at_ms FROM journal_entries WHERE user_id = ? ORDER BY created_at_ms ASC`,
	)).
		WithArgs(7).
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), 7, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 entries, got %d", len(got))
	}
	if got[0].CreatedAt == nil || got[0].CreatedAt.UnixMilli() != at.UnixMilli() {
		t.Fatalf("first entry created-at mismatch: %v", got[0].CreatedAt)
	}
	// NULL created_at and memo round-trip to their zero forms
	if got[1].CreatedAt != nil {
		t.Fatalf("expected nil created-at, got %v", got[1].CreatedAt)
	}
	if got[1].Memo != "" {
		t.Fatalf("expected empty memo, got %q", got[1].Memo)
	}
	if got[0].Emotions[0].Type != models.EmotionSadness {
		t.Fatalf("emotions not unmarshaled: %+v", got[0].Emotions)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEntryList_BoundedArgs(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEntrySQLite(db)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 7, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, user_id, emotions, memo, created_at_ms FROM journal_entries WHERE user_id = ? AND created_at_ms >= ? AND created_at_ms <= ? ORDER BY created_at_ms ASC`,
	)).
		WithArgs(7, from.UnixMilli(), to.UnixMilli()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "emotions", "memo", "created_at_ms"}))

	got, err := repo.List(ctx(t), 7, from, to)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want no entries, got %d", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEntryList_BadEmotionsJSON(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEntrySQLite(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "emotions", "memo", "created_at_ms"}).
		AddRow("a", 7, "{not json", nil, nil)

	mock.ExpectQuery("SELECT id, user_id, emotions, memo, created_at_ms FROM journal_entries").
		WillReturnRows(rows)

	if _, err := repo.List(ctx(t), 7, time.Time{}, time.Time{}); err == nil {
		t.Fatal("expected unmarshal error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEntryUserIDs(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEntrySQLite(db)

	from := time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"user_id"}).AddRow(1).AddRow(4).AddRow(9)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT user_id FROM journal_entries`)).
		WithArgs(from.UnixMilli(), to.UnixMilli()).
		WillReturnRows(rows)

	ids, err := repo.UserIDs(ctx(t), from, to)
	if err != nil {
		t.Fatalf("UserIDs: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[2] != 9 {
		t.Fatalf("unexpected ids: %v", ids)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
