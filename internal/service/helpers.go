package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ymoriya/worktime/internal/db"
	"github.com/ymoriya/worktime/internal/domain"
	"github.com/ymoriya/worktime/internal/ledger"
	"github.com/ymoriya/worktime/internal/repository"
)

// ErrNoActiveSession is returned by operations that require an open session.
var ErrNoActiveSession = errors.New("no active session")

// ErrNoActiveBreak is returned by break end when nothing is open.
var ErrNoActiveBreak = errors.New("no active break")

// ErrBreakAlreadyOpen is returned by break start when one is already open.
var ErrBreakAlreadyOpen = errors.New("a break is already open")

// normalizePath converts a user-supplied path to the canonical absolute form
// used as the tracked file key.
func normalizePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", path, err)
	}
	return filepath.Clean(abs), nil
}

// loadAggregate fetches a tracked file by path and replays its event log.
func loadAggregate(ctx context.Context, conn db.DBTX, path string) (*domain.TrackedFile, *domain.TimeData, error) {
	abs, err := normalizePath(path)
	if err != nil {
		return nil, nil, err
	}

	files := repository.NewSQLiteFileRepo(conn)
	file, err := files.GetByPath(ctx, abs)
	if err != nil {
		return nil, nil, err
	}

	events := repository.NewSQLiteEventRepo(conn)
	log, err := events.ListByFile(ctx, file.ID)
	if err != nil {
		return nil, nil, err
	}

	return file, ledger.Replay(file, log), nil
}

// recoveryTime determines when a stale session should be considered to have
// ended: the file's modification time when the path still exists, otherwise
// the effective time of the last event recorded for it.
func recoveryTime(ctx context.Context, events repository.EventRepo, file *domain.TrackedFile, fallback time.Time) time.Time {
	if info, err := os.Stat(file.Path); err == nil {
		return info.ModTime()
	}
	if last, err := events.LastByFile(ctx, file.ID); err == nil {
		return last.At
	}
	return fallback
}
