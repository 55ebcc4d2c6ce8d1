package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ymoriya/worktime/internal/domain"
	"github.com/ymoriya/worktime/internal/ledger"
)

// ErrNotFound is wrapped by repositories when a lookup matches no rows.
var ErrNotFound = errors.New("not found")

type FileRepo interface {
	Create(ctx context.Context, f *domain.TrackedFile) error
	GetByID(ctx context.Context, id string) (*domain.TrackedFile, error)
	GetByPath(ctx context.Context, path string) (*domain.TrackedFile, error)
	List(ctx context.Context) ([]*domain.TrackedFile, error)
	// TouchActivity records the most recent activity instant for idle detection.
	// This is tracker state, not part of the event log.
	TouchActivity(ctx context.Context, id string, at time.Time) error
	LastActivity(ctx context.Context, id string) (time.Time, error)
	Delete(ctx context.Context, id string) error
}

type EventRepo interface {
	Append(ctx context.Context, e *ledger.Event) error
	// ListByFile returns events in append order, the order Replay expects.
	ListByFile(ctx context.Context, fileID string) ([]ledger.Event, error)
	LastByFile(ctx context.Context, fileID string) (*ledger.Event, error)
}
