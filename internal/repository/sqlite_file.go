package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ymoriya/worktime/internal/db"
	"github.com/ymoriya/worktime/internal/domain"
)

// SQLiteFileRepo implements FileRepo using a SQLite database.
type SQLiteFileRepo struct {
	db db.DBTX
}

// NewSQLiteFileRepo creates a new SQLiteFileRepo. The connection may be a
// *sql.DB or a transaction-scoped DBTX.
func NewSQLiteFileRepo(conn db.DBTX) *SQLiteFileRepo {
	return &SQLiteFileRepo{db: conn}
}

func (r *SQLiteFileRepo) Create(ctx context.Context, f *domain.TrackedFile) error {
	query := `INSERT INTO tracked_files (id, path, name, created_at, last_activity_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.Path,
		f.Name,
		f.CreatedAt.Format(time.RFC3339),
		f.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting tracked file: %w", err)
	}
	return nil
}

func (r *SQLiteFileRepo) GetByID(ctx context.Context, id string) (*domain.TrackedFile, error) {
	query := `SELECT id, path, name, created_at FROM tracked_files WHERE id = ?`
	return r.scanFile(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteFileRepo) GetByPath(ctx context.Context, path string) (*domain.TrackedFile, error) {
	query := `SELECT id, path, name, created_at FROM tracked_files WHERE path = ?`
	return r.scanFile(r.db.QueryRowContext(ctx, query, path))
}

func (r *SQLiteFileRepo) List(ctx context.Context) ([]*domain.TrackedFile, error) {
	query := `SELECT id, path, name, created_at FROM tracked_files ORDER BY path`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tracked files: %w", err)
	}
	defer rows.Close()

	var files []*domain.TrackedFile
	for rows.Next() {
		var f domain.TrackedFile
		var createdAtStr string
		if err := rows.Scan(&f.ID, &f.Path, &f.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning tracked file row: %w", err)
		}
		f.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		files = append(files, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tracked files: %w", err)
	}
	return files, nil
}

func (r *SQLiteFileRepo) TouchActivity(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE tracked_files SET last_activity_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, at.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating last activity: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("tracked file %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteFileRepo) LastActivity(ctx context.Context, id string) (time.Time, error) {
	query := `SELECT last_activity_at FROM tracked_files WHERE id = ?`
	var s string
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&s); err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, fmt.Errorf("tracked file %s: %w", id, ErrNotFound)
		}
		return time.Time{}, fmt.Errorf("reading last activity: %w", err)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing last_activity_at: %w", err)
	}
	return t, nil
}

func (r *SQLiteFileRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tracked_files WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting tracked file: %w", err)
	}
	return nil
}

func (r *SQLiteFileRepo) scanFile(row *sql.Row) (*domain.TrackedFile, error) {
	var f domain.TrackedFile
	var createdAtStr string

	err := row.Scan(&f.ID, &f.Path, &f.Name, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("tracked file: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning tracked file: %w", err)
	}

	f.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &f, nil
}
