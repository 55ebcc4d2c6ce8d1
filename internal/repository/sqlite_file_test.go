package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymoriya/worktime/internal/testutil"
)

func TestFileRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFileRepo(database)
	ctx := context.Background()

	f := testutil.NewTestFile(testutil.WithPath("/work/dragon.blend"))
	require.NoError(t, repo.Create(ctx, f))

	byID, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Path, byID.Path)
	assert.Equal(t, "dragon.blend", byID.Name)

	byPath, err := repo.GetByPath(ctx, "/work/dragon.blend")
	require.NoError(t, err)
	assert.Equal(t, f.ID, byPath.ID)
}

func TestFileRepo_GetMissingReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFileRepo(database)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByPath(ctx, "/nope.blend")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileRepo_DuplicatePathRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFileRepo(database)
	ctx := context.Background()

	f := testutil.NewTestFile(testutil.WithPath("/work/dup.blend"))
	require.NoError(t, repo.Create(ctx, f))

	dup := testutil.NewTestFile(testutil.WithPath("/work/dup.blend"))
	assert.Error(t, repo.Create(ctx, dup), "path carries a unique constraint")
}

func TestFileRepo_ListOrderedByPath(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFileRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestFile(testutil.WithPath("/work/b.blend"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestFile(testutil.WithPath("/work/a.blend"))))

	files, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "/work/a.blend", files[0].Path)
	assert.Equal(t, "/work/b.blend", files[1].Path)
}

func TestFileRepo_TouchAndLastActivity(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFileRepo(database)
	ctx := context.Background()

	f := testutil.NewTestFile()
	require.NoError(t, repo.Create(ctx, f))

	at := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	require.NoError(t, repo.TouchActivity(ctx, f.ID, at))

	got, err := repo.LastActivity(ctx, f.ID)
	require.NoError(t, err)
	assert.True(t, got.Equal(at))

	err = repo.TouchActivity(ctx, "missing", at)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFileRepo(database)
	ctx := context.Background()

	f := testutil.NewTestFile()
	require.NoError(t, repo.Create(ctx, f))
	require.NoError(t, repo.Delete(ctx, f.ID))

	_, err := repo.GetByID(ctx, f.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
