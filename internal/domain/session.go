package domain

import "time"

// Session is a contiguous interval during which a tracked file was open and
// being worked on. Breaks recorded inside its span are excluded from its
// active time.
type Session struct {
	ID        string
	FileID    string
	Seq       int
	StartedAt time.Time
	EndedAt   *time.Time // nil while the session is open
	Comment   string
	Breaks    []*Break
}

// Active reports whether the session is still open.
func (s *Session) Active() bool {
	return s.EndedAt == nil
}

func (s *Session) endOr(now time.Time) time.Time {
	if s.EndedAt != nil {
		return *s.EndedAt
	}
	return now
}

// Span returns the full wall-clock extent of the session. An open session is
// measured up to now. Never negative.
func (s *Session) Span(now time.Time) time.Duration {
	d := s.endOr(now).Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// BreakTime returns the total break time overlapping the session span,
// with each break clamped to the span.
func (s *Session) BreakTime(now time.Time) time.Duration {
	start := s.StartedAt
	end := s.endOr(now)

	var total time.Duration
	for _, b := range s.Breaks {
		total += b.OverlapWithin(start, end)
	}
	return total
}

// ActiveTime returns the session span minus overlapping breaks, clamped to
// zero. This is always recomputed from the intervals rather than accumulated
// incrementally, so it cannot drift from missed lifecycle events.
func (s *Session) ActiveTime(now time.Time) time.Duration {
	d := s.Span(now) - s.BreakTime(now)
	if d < 0 {
		return 0
	}
	return d
}

// ActiveBreak returns the most recent unclosed break, or nil.
func (s *Session) ActiveBreak() *Break {
	for i := len(s.Breaks) - 1; i >= 0; i-- {
		if s.Breaks[i].Active() {
			return s.Breaks[i]
		}
	}
	return nil
}
