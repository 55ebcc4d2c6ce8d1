package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ymoriya/worktime/internal/db"
	"github.com/ymoriya/worktime/internal/domain"
	"github.com/ymoriya/worktime/internal/ledger"
)

// SQLiteEventRepo implements EventRepo using a SQLite database. Events are
// append-only; the repo exposes no update or delete.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo. The connection may be a
// *sql.DB or a transaction-scoped DBTX.
func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

const eventColumns = `id, file_id, kind, at, session_id, break_id, reason, note, recorded_at`

func (r *SQLiteEventRepo) Append(ctx context.Context, e *ledger.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.FileID,
		string(e.Kind),
		e.At.Format(time.RFC3339),
		e.SessionID,
		e.BreakID,
		string(e.Reason),
		e.Note,
		e.RecordedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) ListByFile(ctx context.Context, fileID string) ([]ledger.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE file_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, fileID)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []ledger.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func (r *SQLiteEventRepo) LastByFile(ctx context.Context, fileID string) (*ledger.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE file_id = ? ORDER BY seq DESC LIMIT 1`
	rows, err := r.db.QueryContext(ctx, query, fileID)
	if err != nil {
		return nil, fmt.Errorf("reading last event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("reading last event: %w", err)
		}
		return nil, fmt.Errorf("event: %w", ErrNotFound)
	}
	return scanEvent(rows)
}

func scanEvent(rows *sql.Rows) (*ledger.Event, error) {
	var e ledger.Event
	var kind, reason, atStr, recordedAtStr string

	err := rows.Scan(
		&e.ID, &e.FileID, &kind, &atStr, &e.SessionID, &e.BreakID, &reason, &e.Note, &recordedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning event row: %w", err)
	}

	e.Kind = ledger.EventKind(kind)
	e.Reason = domain.BreakReason(reason)
	e.At, err = time.Parse(time.RFC3339, atStr)
	if err != nil {
		return nil, fmt.Errorf("parsing at: %w", err)
	}
	e.RecordedAt, err = time.Parse(time.RFC3339, recordedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing recorded_at: %w", err)
	}
	return &e, nil
}
