package domain

import "time"

// Break is a sub-interval of a session excluded from active work time,
// either detected from inactivity or recorded manually.
type Break struct {
	ID        string
	SessionID string
	StartedAt time.Time
	EndedAt   *time.Time // nil while the break is still ongoing
	Reason    BreakReason
	Comment   string
}

// Active reports whether the break has not been ended yet.
func (b *Break) Active() bool {
	return b.EndedAt == nil
}

func (b *Break) endOr(now time.Time) time.Time {
	if b.EndedAt != nil {
		return *b.EndedAt
	}
	return now
}

// OverlapWithin returns how much of the break falls inside [start, end],
// clamped to the interval and never negative. An ongoing break is treated
// as ending at end.
func (b *Break) OverlapWithin(start, end time.Time) time.Duration {
	bs := b.StartedAt
	be := b.endOr(end)

	if bs.Before(start) {
		bs = start
	}
	if be.After(end) {
		be = end
	}
	if !be.After(bs) {
		return 0
	}
	return be.Sub(bs)
}
