package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymoriya/worktime/internal/repository"
)

func TestFileStatus_UnknownPath(t *testing.T) {
	_, status, _, path := setupTracker(t)

	_, err := status.FileStatus(context.Background(), path)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFileStatus_UnsavedWarning(t *testing.T) {
	tracker, status, clk, path := setupTracker(t)
	ctx := context.Background()

	_, err := tracker.Open(ctx, path)
	require.NoError(t, err)

	clk.Advance(5 * time.Minute)
	st, err := status.FileStatus(ctx, path)
	require.NoError(t, err)
	assert.False(t, st.UnsavedWarning)

	// No checkpoint was ever recorded, so the reference is the creation
	// time; past the 10 minute threshold the warning turns on.
	clk.Advance(6 * time.Minute)
	st, err = status.FileStatus(ctx, path)
	require.NoError(t, err)
	assert.True(t, st.UnsavedWarning)

	require.NoError(t, tracker.Save(ctx, path))
	st, err = status.FileStatus(ctx, path)
	require.NoError(t, err)
	assert.False(t, st.UnsavedWarning, "a checkpoint clears the warning")
}

func TestFileStatus_IdleFor(t *testing.T) {
	tracker, status, clk, path := setupTracker(t)
	ctx := context.Background()

	_, err := tracker.Open(ctx, path)
	require.NoError(t, err)

	clk.Advance(3 * time.Minute)
	st, err := status.FileStatus(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Minute, st.IdleFor)

	_, err = tracker.Ping(ctx, path)
	require.NoError(t, err)
	st, err = status.FileStatus(ctx, path)
	require.NoError(t, err)
	assert.Zero(t, st.IdleFor, "a ping resets the activity clock")
}

func TestAllStatus_CoversEveryTrackedFile(t *testing.T) {
	tracker, status, clk, path := setupTracker(t)
	ctx := context.Background()

	other := filepath.Join(filepath.Dir(path), "rig.blend")

	_, err := tracker.Open(ctx, path)
	require.NoError(t, err)
	_, err = tracker.Open(ctx, other)
	require.NoError(t, err)

	clk.Advance(20 * time.Minute)
	_, err = tracker.Close(ctx, other)
	require.NoError(t, err)

	all, err := status.AllStatus(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byName := map[string]bool{}
	for _, st := range all {
		byName[st.File.Name] = st.ActiveSessionSeq > 0
	}
	assert.True(t, byName["scene.blend"], "scene is still open")
	assert.False(t, byName["rig.blend"], "rig was closed")
}

func TestSessions_ListsInOrder(t *testing.T) {
	tracker, status, clk, path := setupTracker(t)
	ctx := context.Background()

	_, err := tracker.Open(ctx, path)
	require.NoError(t, err)
	clk.Advance(time.Hour)
	_, err = tracker.Switch(ctx, path)
	require.NoError(t, err)
	require.NoError(t, tracker.SetComment(ctx, path, "shading"))

	list, err := status.Sessions(ctx, path)
	require.NoError(t, err)
	require.Len(t, list.Sessions, 2)
	assert.Equal(t, 1, list.Sessions[0].Seq)
	assert.False(t, list.Sessions[0].Active())
	assert.Equal(t, 2, list.Sessions[1].Seq)
	assert.True(t, list.Sessions[1].Active())
	assert.Equal(t, "shading", list.Sessions[1].Comment)
}
