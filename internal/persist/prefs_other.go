//go:build !darwin

package persist

import (
	"path/filepath"

	"github.com/perttu/prefstore/internal/settings"
)

// NewPlatformPrefs returns the scalar preference backend for platforms
// without a native preference store: a SQLite key/value table under dir.
func NewPlatformPrefs(dir string) (settings.ScalarBackend, error) {
	return NewSQLitePrefs(filepath.Join(dir, "prefs.db"))
}
