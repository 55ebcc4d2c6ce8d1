package testutil

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ymoriya/worktime/internal/domain"
	"github.com/ymoriya/worktime/internal/ledger"
)

var testFileCounter atomic.Int64

// TrackedFile options
type FileOption func(*domain.TrackedFile)

func WithPath(p string) FileOption {
	return func(f *domain.TrackedFile) {
		f.Path = p
		f.Name = filepath.Base(p)
	}
}

func NewTestFile(opts ...FileOption) *domain.TrackedFile {
	n := testFileCounter.Add(1)
	name := fmt.Sprintf("scene%02d.blend", n)
	f := &domain.TrackedFile{
		ID:        uuid.New().String(),
		Path:      filepath.Join("/work", name),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Event options
type EventOption func(*ledger.Event)

func WithSessionID(id string) EventOption {
	return func(e *ledger.Event) {
		e.SessionID = id
	}
}

func WithBreakID(id string) EventOption {
	return func(e *ledger.Event) {
		e.BreakID = id
	}
}

func WithReason(r domain.BreakReason) EventOption {
	return func(e *ledger.Event) {
		e.Reason = r
	}
}

func WithNote(n string) EventOption {
	return func(e *ledger.Event) {
		e.Note = n
	}
}

func NewTestEvent(fileID string, kind ledger.EventKind, at time.Time, opts ...EventOption) ledger.Event {
	e := ledger.Event{
		ID:         uuid.New().String(),
		FileID:     fileID,
		Kind:       kind,
		At:         at.UTC(),
		RecordedAt: at.UTC(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// SessionEvents returns the started/ended pair for a complete session.
// The shared session id links the two events.
func SessionEvents(fileID string, start, end time.Time, opts ...EventOption) []ledger.Event {
	sid := uuid.New().String()
	opts = append([]EventOption{WithSessionID(sid)}, opts...)
	return []ledger.Event{
		NewTestEvent(fileID, ledger.SessionStarted, start, opts...),
		NewTestEvent(fileID, ledger.SessionEnded, end, WithSessionID(sid)),
	}
}

// BreakEvents returns the started/ended pair for a complete break.
func BreakEvents(fileID string, start, end time.Time, reason domain.BreakReason) []ledger.Event {
	bid := uuid.New().String()
	return []ledger.Event{
		NewTestEvent(fileID, ledger.BreakStarted, start, WithBreakID(bid), WithReason(reason)),
		NewTestEvent(fileID, ledger.BreakEnded, end, WithBreakID(bid)),
	}
}
