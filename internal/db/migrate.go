package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tracked_files (
		id               TEXT PRIMARY KEY,
		path             TEXT NOT NULL UNIQUE,
		name             TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL,
		last_activity_at TEXT NOT NULL
	)`,

	// Append-only lifecycle event log. seq preserves append order; "at" is
	// the effective timestamp and may lie before recorded_at for events that
	// are written retroactively (idle breaks, stale-session recovery).
	`CREATE TABLE IF NOT EXISTS events (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		id          TEXT NOT NULL UNIQUE,
		file_id     TEXT NOT NULL REFERENCES tracked_files(id) ON DELETE CASCADE,
		kind        TEXT NOT NULL
		            CHECK(kind IN ('session_started','session_ended','session_reset',
		                           'break_started','break_ended','breaks_cleared',
		                           'comment_set','checkpoint','data_reset')),
		at          TEXT NOT NULL,
		session_id  TEXT NOT NULL DEFAULT '',
		break_id    TEXT NOT NULL DEFAULT '',
		reason      TEXT NOT NULL DEFAULT ''
		            CHECK(reason IN ('','idle','manual')),
		note        TEXT NOT NULL DEFAULT '',
		recorded_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_file ON events(file_id, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind)`,
}
