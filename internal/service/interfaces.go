package service

import (
	"context"

	"github.com/ymoriya/worktime/internal/contract"
	"github.com/ymoriya/worktime/internal/domain"
)

// TrackerService records lifecycle events for tracked files. Every mutation
// is an append to the event log; nothing is edited in place.
type TrackerService interface {
	Open(ctx context.Context, path string) (*contract.OpenResult, error)
	Close(ctx context.Context, path string) (*domain.Session, error)
	Ping(ctx context.Context, path string) (*contract.PingResult, error)
	Save(ctx context.Context, path string) error
	Switch(ctx context.Context, path string) (*domain.Session, error)
	ResetSession(ctx context.Context, path string) error
	ResetData(ctx context.Context, path string) error
	SetComment(ctx context.Context, path, comment string) error
	Comment(ctx context.Context, path string) (string, error)
	StartBreak(ctx context.Context, path string, reason domain.BreakReason, comment string) (*domain.Break, error)
	EndBreak(ctx context.Context, path string) (*domain.Break, error)
	ClearBreaks(ctx context.Context, path string) error
}

// StatusService answers read-only queries by replaying the event log.
type StatusService interface {
	FileStatus(ctx context.Context, path string) (*contract.FileStatus, error)
	AllStatus(ctx context.Context) ([]*contract.FileStatus, error)
	Sessions(ctx context.Context, path string) (*contract.SessionList, error)
}

// ReportService renders a work-time report for one tracked file.
type ReportService interface {
	Generate(ctx context.Context, path string) (string, error)
}
