// Package contract defines the response shapes exchanged between the service
// layer and its consumers (CLI commands, the watch view, report rendering).
package contract

import (
	"time"

	"github.com/ymoriya/worktime/internal/domain"
)

// FileStatus is a point-in-time view of one tracked file's record. All
// derived figures are computed from the replayed aggregate at Now.
type FileStatus struct {
	File *domain.TrackedFile
	Data *domain.TimeData
	Now  time.Time

	TotalTime     time.Duration
	SessionTime   time.Duration // 0 when no session is open
	TimeSinceSave time.Duration
	IdleFor       time.Duration // gap since the last recorded activity

	// Session seq of the active session, 0 when none.
	ActiveSessionSeq int
	OnBreak          bool
	BreakReason      domain.BreakReason

	// UnsavedWarning is set when TimeSinceSave exceeds the configured threshold.
	UnsavedWarning bool
}

// OpenResult reports what an open operation did.
type OpenResult struct {
	File      *domain.TrackedFile
	Session   *domain.Session
	Created   bool // the file was registered by this call
	Recovered int  // stale sessions closed before starting
}

// PingResult reports what an activity tick did.
type PingResult struct {
	IdleGap       time.Duration
	BreakRecorded bool // an idle break was written for the gap
	BreakEnded    bool // an open break was closed by this activity
}

// SessionList pairs a file with its replayed sessions for display.
type SessionList struct {
	File     *domain.TrackedFile
	Data     *domain.TimeData
	Now      time.Time
	Sessions []*domain.Session
}
