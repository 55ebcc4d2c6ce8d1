// Package ledger defines the append-only event log that is the sole
// persisted representation of tracked work time, and the reducer that
// rebuilds the TimeData aggregate from it.
//
// Events are never updated or deleted. Corrections (clearing breaks,
// resetting a session, wiping a file's record) are themselves events, so the
// aggregate is reproducible from the log alone.
package ledger

import (
	"time"

	"github.com/ymoriya/worktime/internal/domain"
)

// EventKind identifies a lifecycle event in the log.
type EventKind string

const (
	SessionStarted EventKind = "session_started"
	SessionEnded   EventKind = "session_ended"
	SessionReset   EventKind = "session_reset"
	BreakStarted   EventKind = "break_started"
	BreakEnded     EventKind = "break_ended"
	BreaksCleared  EventKind = "breaks_cleared"
	CommentSet     EventKind = "comment_set"
	Checkpoint     EventKind = "checkpoint"
	DataReset      EventKind = "data_reset"
)

// ValidEventKinds is the canonical set of accepted event kind strings.
var ValidEventKinds = map[string]bool{
	"session_started": true, "session_ended": true, "session_reset": true,
	"break_started": true, "break_ended": true, "breaks_cleared": true,
	"comment_set": true, "checkpoint": true, "data_reset": true,
}

// Event is one row of the append-only log.
//
// At is the effective timestamp of the lifecycle moment, which may lie in the
// past (an idle break is recorded retroactively once activity resumes, and a
// stale session is closed at the file's last known modification time).
// RecordedAt is when the row was appended.
type Event struct {
	ID         string
	FileID     string
	Kind       EventKind
	At         time.Time
	SessionID  string
	BreakID    string
	Reason     domain.BreakReason
	Note       string
	RecordedAt time.Time
}
