package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func closedSession(start, end time.Time) *Session {
	return &Session{ID: "s1", StartedAt: start, EndedAt: &end}
}

func TestSession_Span(t *testing.T) {
	end := base.Add(time.Hour)
	s := closedSession(base, end)
	assert.Equal(t, time.Hour, s.Span(base.Add(5*time.Hour)), "closed span ignores now")

	open := &Session{StartedAt: base}
	assert.Equal(t, 30*time.Minute, open.Span(base.Add(30*time.Minute)))
}

func TestSession_SpanNeverNegative(t *testing.T) {
	open := &Session{StartedAt: base}
	assert.Zero(t, open.Span(base.Add(-time.Minute)), "clock skew must not produce negative spans")
}

func TestSession_BreakTimeClampsToSpan(t *testing.T) {
	end := base.Add(time.Hour)
	s := closedSession(base, end)

	// Break straddles the session end; only the inside part counts.
	bEnd := base.Add(70 * time.Minute)
	s.Breaks = append(s.Breaks, &Break{
		StartedAt: base.Add(50 * time.Minute),
		EndedAt:   &bEnd,
	})

	assert.Equal(t, 10*time.Minute, s.BreakTime(end))
	assert.Equal(t, 50*time.Minute, s.ActiveTime(end))
}

func TestSession_BreakFullyOutsideSpan(t *testing.T) {
	end := base.Add(time.Hour)
	s := closedSession(base, end)

	bEnd := base.Add(-time.Minute)
	s.Breaks = append(s.Breaks, &Break{
		StartedAt: base.Add(-10 * time.Minute),
		EndedAt:   &bEnd,
	})

	assert.Zero(t, s.BreakTime(end), "a break outside the span contributes nothing")
	assert.Equal(t, time.Hour, s.ActiveTime(end))
}

func TestSession_OngoingBreakMeasuredToNow(t *testing.T) {
	s := &Session{StartedAt: base}
	s.Breaks = append(s.Breaks, &Break{StartedAt: base.Add(40 * time.Minute)})

	now := base.Add(time.Hour)
	assert.Equal(t, 20*time.Minute, s.BreakTime(now))
	assert.Equal(t, 40*time.Minute, s.ActiveTime(now))
}

func TestSession_ActiveTimeClampedToZero(t *testing.T) {
	end := base.Add(time.Hour)
	s := closedSession(base, end)

	// Two overlapping breaks can sum past the span.
	b1End := base.Add(time.Hour)
	b2End := base.Add(50 * time.Minute)
	s.Breaks = append(s.Breaks,
		&Break{StartedAt: base, EndedAt: &b1End},
		&Break{StartedAt: base.Add(10 * time.Minute), EndedAt: &b2End},
	)

	assert.Zero(t, s.ActiveTime(end))
}

func TestSession_ActiveBreak(t *testing.T) {
	s := &Session{StartedAt: base}
	assert.Nil(t, s.ActiveBreak())

	closedEnd := base.Add(10 * time.Minute)
	s.Breaks = append(s.Breaks, &Break{ID: "b1", StartedAt: base, EndedAt: &closedEnd})
	assert.Nil(t, s.ActiveBreak())

	s.Breaks = append(s.Breaks, &Break{ID: "b2", StartedAt: base.Add(20 * time.Minute)})
	got := s.ActiveBreak()
	assert.NotNil(t, got)
	assert.Equal(t, "b2", got.ID)
}

func TestBreak_OverlapWithin(t *testing.T) {
	winStart := base
	winEnd := base.Add(time.Hour)

	bEnd := base.Add(30 * time.Minute)
	inside := &Break{StartedAt: base.Add(10 * time.Minute), EndedAt: &bEnd}
	assert.Equal(t, 20*time.Minute, inside.OverlapWithin(winStart, winEnd))

	beforeEnd := base.Add(10 * time.Minute)
	straddleStart := &Break{StartedAt: base.Add(-10 * time.Minute), EndedAt: &beforeEnd}
	assert.Equal(t, 10*time.Minute, straddleStart.OverlapWithin(winStart, winEnd))

	ongoing := &Break{StartedAt: base.Add(45 * time.Minute)}
	assert.Equal(t, 15*time.Minute, ongoing.OverlapWithin(winStart, winEnd),
		"ongoing break is cut off at the window end")
}

func TestTimeData_TotalAcrossSessions(t *testing.T) {
	end1 := base.Add(time.Hour)
	end2 := base.Add(3 * time.Hour)
	d := &TimeData{Sessions: []*Session{
		closedSession(base, end1),
		closedSession(base.Add(2*time.Hour), end2),
	}}

	assert.Equal(t, 2*time.Hour, d.Total(base.Add(4*time.Hour)))
}

func TestTimeData_ActiveSession(t *testing.T) {
	end := base.Add(time.Hour)
	d := &TimeData{Sessions: []*Session{
		closedSession(base, end),
		{ID: "open", StartedAt: base.Add(2 * time.Hour)},
	}}

	got := d.ActiveSession()
	assert.NotNil(t, got)
	assert.Equal(t, "open", got.ID)
}

func TestTimeData_TimeSinceSaveFallsBackToCreation(t *testing.T) {
	d := &TimeData{CreatedAt: base}
	assert.Equal(t, 10*time.Minute, d.TimeSinceSave(base.Add(10*time.Minute)))

	d.LastSaveAt = base.Add(5 * time.Minute)
	assert.Equal(t, 5*time.Minute, d.TimeSinceSave(base.Add(10*time.Minute)))
}

func TestTimeData_NextSeq(t *testing.T) {
	d := &TimeData{}
	assert.Equal(t, 1, d.NextSeq())

	d.Sessions = []*Session{{Seq: 1}, {Seq: 3}}
	assert.Equal(t, 4, d.NextSeq())
}
