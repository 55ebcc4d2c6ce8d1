package domain

import "time"

// TimeData is the derived aggregate for a tracked file: every session with
// its breaks, plus the save and creation timestamps. It is rebuilt from the
// event log on each query and never persisted as a snapshot.
type TimeData struct {
	FileID     string
	CreatedAt  time.Time
	LastSaveAt time.Time
	Sessions   []*Session
}

// Total returns the aggregate active work time across all sessions.
func (d *TimeData) Total(now time.Time) time.Duration {
	var total time.Duration
	for _, s := range d.Sessions {
		total += s.ActiveTime(now)
	}
	return total
}

// ActiveSession returns the most recent open session, or nil.
func (d *TimeData) ActiveSession() *Session {
	for i := len(d.Sessions) - 1; i >= 0; i-- {
		if d.Sessions[i].Active() {
			return d.Sessions[i]
		}
	}
	return nil
}

// ActiveBreak returns the unclosed break of the active session, or nil.
func (d *TimeData) ActiveBreak() *Break {
	s := d.ActiveSession()
	if s == nil {
		return nil
	}
	return s.ActiveBreak()
}

// OnBreak reports whether an unclosed break exists on the active session.
func (d *TimeData) OnBreak() bool {
	return d.ActiveBreak() != nil
}

// TimeSinceSave returns the elapsed time since the last checkpoint. When no
// checkpoint was ever recorded it falls back to the file creation time.
func (d *TimeData) TimeSinceSave(now time.Time) time.Duration {
	ref := d.LastSaveAt
	if ref.IsZero() {
		ref = d.CreatedAt
	}
	elapsed := now.Sub(ref)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// NextSeq returns the sequence number the next session should get.
func (d *TimeData) NextSeq() int {
	max := 0
	for _, s := range d.Sessions {
		if s.Seq > max {
			max = s.Seq
		}
	}
	return max + 1
}
