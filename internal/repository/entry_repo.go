package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"moodgarden/internal/models"

	"github.com/google/uuid"
)

type EntrySQLite struct {
	db *sql.DB
}

func NewEntrySQLite(db *sql.DB) *EntrySQLite { return &EntrySQLite{db: db} }

var _ EntryRepo = (*EntrySQLite)(nil)

const insertEntrySQL = `
		INSERT INTO journal_entries (id, user_id, emotions, memo, created_at_ms)
		VALUES (?, ?, ?, ?, ?)
	`

// Append inserts a new entry. A missing EntryID is generated; a nil CreatedAt
// is stored as NULL (the entry was built without a time source).
func (r *EntrySQLite) Append(ctx context.Context, e models.EmotionEntry) error {
	if e.EntryID == "" {
		e.EntryID = uuid.NewString()
	}

	emotionsJSON, err := json.Marshal(e.Emotions)
	if err != nil {
		return fmt.Errorf("marshal emotions for entry %q: %w", e.EntryID, err)
	}

	var createdMs *int64
	if e.CreatedAt != nil {
		ms := e.CreatedAt.UnixMilli()
		createdMs = &ms
	}

	_, err = r.db.ExecContext(ctx, insertEntrySQL,
		e.EntryID,
		e.UserID,
		string(emotionsJSON),
		e.Memo,
		createdMs,
	)
	if err != nil {
		return fmt.Errorf("insert entry %q: %w", e.EntryID, err)
	}
	return nil
}

// List returns a user's entries within [from, to] inclusive, ordered by
// creation time ascending. Zero bounds are open; entries without a created-at
// only appear in fully unbounded queries.
func (r *EntrySQLite) List(ctx context.Context, userID int, from, to time.Time) ([]models.EmotionEntry, error) {
	var (
		conds = []string{"user_id = ?"}
		args  = []any{userID}
	)
	if !from.IsZero() {
		conds = append(conds, "created_at_ms >= ?")
		args = append(args, from.UnixMilli())
	}
	if !to.IsZero() {
		conds = append(conds, "created_at_ms <= ?")
		args = append(args, to.UnixMilli())
	}

	q := `SELECT id, user_id, emotions, memo, created_at_ms FROM journal_entries WHERE ` +
		strings.Join(conds, " AND ") +
		` ORDER BY created_at_ms ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.EmotionEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UserIDs returns the distinct users with entries inside [from, to].
func (r *EntrySQLite) UserIDs(ctx context.Context, from, to time.Time) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT user_id FROM journal_entries
		WHERE created_at_ms >= ? AND created_at_ms <= ?
		ORDER BY user_id ASC
	`, from.UnixMilli(), to.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("list entry users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan entry user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanEntry(rows *sql.Rows) (models.EmotionEntry, error) {
	var (
		e            models.EmotionEntry
		emotionsJSON string
		memo         sql.NullString
		createdMs    sql.NullInt64
	)
	if err := rows.Scan(&e.EntryID, &e.UserID, &emotionsJSON, &memo, &createdMs); err != nil {
		return models.EmotionEntry{}, fmt.Errorf("scan entry: %w", err)
	}
	if err := json.Unmarshal([]byte(emotionsJSON), &e.Emotions); err != nil {
		return models.EmotionEntry{}, fmt.Errorf("unmarshal emotions for entry %q: %w", e.EntryID, err)
	}
	e.Memo = memo.String
	if createdMs.Valid {
		t := time.UnixMilli(createdMs.Int64)
		e.CreatedAt = &t
	}
	return e, nil
}
