package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymoriya/worktime/internal/domain"
	"github.com/ymoriya/worktime/internal/ledger"
	"github.com/ymoriya/worktime/internal/testutil"
)

func setupEventRepo(t *testing.T) (*SQLiteFileRepo, *SQLiteEventRepo, *domain.TrackedFile) {
	t.Helper()
	database := testutil.NewTestDB(t)
	files := NewSQLiteFileRepo(database)
	events := NewSQLiteEventRepo(database)

	f := testutil.NewTestFile()
	require.NoError(t, files.Create(context.Background(), f))
	return files, events, f
}

func TestEventRepo_AppendAndListPreservesOrder(t *testing.T) {
	_, events, f := setupEventRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	// Append in an order that contradicts the effective timestamps: the
	// retroactive idle break lands after the ping it explains.
	first := testutil.NewTestEvent(f.ID, ledger.SessionStarted, base)
	retro := testutil.NewTestEvent(f.ID, ledger.BreakStarted, base.Add(-5*time.Minute),
		testutil.WithReason(domain.BreakIdle))
	for _, e := range []ledger.Event{first, retro} {
		e := e
		require.NoError(t, events.Append(ctx, &e))
	}

	got, err := events.ListByFile(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID, "append order wins over timestamp order")
	assert.Equal(t, retro.ID, got[1].ID)
	assert.Equal(t, domain.BreakIdle, got[1].Reason)
	assert.True(t, got[1].At.Equal(base.Add(-5*time.Minute)))
}

func TestEventRepo_ListScopedToFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	files := NewSQLiteFileRepo(database)
	events := NewSQLiteEventRepo(database)
	ctx := context.Background()

	f1 := testutil.NewTestFile()
	f2 := testutil.NewTestFile()
	require.NoError(t, files.Create(ctx, f1))
	require.NoError(t, files.Create(ctx, f2))

	e1 := testutil.NewTestEvent(f1.ID, ledger.SessionStarted, time.Now().UTC())
	e2 := testutil.NewTestEvent(f2.ID, ledger.SessionStarted, time.Now().UTC())
	require.NoError(t, events.Append(ctx, &e1))
	require.NoError(t, events.Append(ctx, &e2))

	got, err := events.ListByFile(ctx, f1.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e1.ID, got[0].ID)
}

func TestEventRepo_LastByFile(t *testing.T) {
	_, events, f := setupEventRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	_, err := events.LastByFile(ctx, f.ID)
	assert.ErrorIs(t, err, ErrNotFound, "no events yet")

	e1 := testutil.NewTestEvent(f.ID, ledger.SessionStarted, base)
	e2 := testutil.NewTestEvent(f.ID, ledger.Checkpoint, base.Add(time.Minute))
	require.NoError(t, events.Append(ctx, &e1))
	require.NoError(t, events.Append(ctx, &e2))

	last, err := events.LastByFile(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, e2.ID, last.ID)
	assert.Equal(t, ledger.Checkpoint, last.Kind)
}

func TestEventRepo_RejectsUnknownKind(t *testing.T) {
	_, events, f := setupEventRepo(t)
	ctx := context.Background()

	bad := testutil.NewTestEvent(f.ID, "coffee_spilled", time.Now().UTC())
	assert.Error(t, events.Append(ctx, &bad), "kind is constrained by a CHECK")
}

func TestEventRepo_ReplayAfterRoundTrip(t *testing.T) {
	_, events, f := setupEventRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	s1 := testutil.SessionEvents(f.ID, base, base.Add(time.Hour))
	s2 := testutil.SessionEvents(f.ID, base.Add(2*time.Hour), base.Add(3*time.Hour))
	br := testutil.BreakEvents(f.ID, base.Add(2*time.Hour+10*time.Minute), base.Add(2*time.Hour+25*time.Minute), domain.BreakManual)

	// The break lands inside the second session.
	var log []ledger.Event
	log = append(log, s1...)
	log = append(log, s2[0])
	log = append(log, br...)
	log = append(log, s2[1])

	for i := range log {
		require.NoError(t, events.Append(ctx, &log[i]))
	}

	stored, err := events.ListByFile(ctx, f.ID)
	require.NoError(t, err)
	data := ledger.Replay(f, stored)

	require.Len(t, data.Sessions, 2)
	assert.Equal(t, 105*time.Minute, data.Total(base.Add(4*time.Hour)),
		"two one-hour sessions minus a 15 minute break")
}

func TestEventRepo_RoundTripsAllFields(t *testing.T) {
	_, events, f := setupEventRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	e := testutil.NewTestEvent(f.ID, ledger.BreakStarted, at,
		testutil.WithSessionID("sess-1"),
		testutil.WithBreakID("brk-1"),
		testutil.WithReason(domain.BreakManual),
		testutil.WithNote("coffee"),
	)
	require.NoError(t, events.Append(ctx, &e))

	got, err := events.LastByFile(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, "brk-1", got.BreakID)
	assert.Equal(t, domain.BreakManual, got.Reason)
	assert.Equal(t, "coffee", got.Note)
	assert.True(t, got.At.Equal(at))
}
