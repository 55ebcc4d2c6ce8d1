package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymoriya/worktime/internal/domain"
	"github.com/ymoriya/worktime/internal/repository"
)

func TestGenerate_FullReport(t *testing.T) {
	tracker, status, clk, path := setupTracker(t)
	reports := NewReportService(status, "")
	ctx := context.Background()

	_, err := tracker.Open(ctx, path)
	require.NoError(t, err)
	clk.Advance(time.Hour)
	_, err = tracker.Switch(ctx, path)
	require.NoError(t, err)
	require.NoError(t, tracker.SetComment(ctx, path, "texturing"))

	clk.Advance(10 * time.Minute)
	_, err = tracker.StartBreak(ctx, path, domain.BreakManual, "")
	require.NoError(t, err)
	clk.Advance(5 * time.Minute)
	_, err = tracker.EndBreak(ctx, path)
	require.NoError(t, err)

	out, err := reports.Generate(ctx, path)
	require.NoError(t, err)

	assert.Contains(t, out, "# Work Time Report for scene.blend")
	assert.Contains(t, out, "- Total work time: 01:10:00")
	assert.Contains(t, out, "- Current session: 00:10:00")
	assert.Contains(t, out, "### Session 1")
	assert.Contains(t, out, "### Session 2")
	assert.Contains(t, out, "- End: Active")
	assert.Contains(t, out, "- Breaks: 1 (00:05:00 excluded)")
	assert.Contains(t, out, "- Comment: texturing")
}

func TestGenerate_CustomTemplate(t *testing.T) {
	tracker, status, _, path := setupTracker(t)
	ctx := context.Background()

	tmpl := filepath.Join(t.TempDir(), "custom.mustache")
	require.NoError(t, os.WriteFile(tmpl, []byte("report for {{FileName}}"), 0o644))
	reports := NewReportService(status, tmpl)

	_, err := tracker.Open(ctx, path)
	require.NoError(t, err)

	out, err := reports.Generate(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "report for scene.blend", out)
}

func TestGenerate_UnknownFile(t *testing.T) {
	_, status, _, path := setupTracker(t)
	reports := NewReportService(status, "")

	_, err := reports.Generate(context.Background(), path)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
