package domain

import (
	"path/filepath"
	"time"
)

// TrackedFile is a document whose work time is being recorded. It is
// registered the first time an open event is logged for its path.
type TrackedFile struct {
	ID        string
	Path      string
	Name      string
	CreatedAt time.Time
}

// DisplayName returns the best human-readable identifier for the file.
// It prefers the explicit name; if empty it falls back to the path's base.
func (f *TrackedFile) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	if f.Path != "" {
		return filepath.Base(f.Path)
	}
	return f.ID
}
