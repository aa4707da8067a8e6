//go:build darwin

package persist

import (
	"os"
	"path/filepath"
)

// DefaultDir returns the platform application-data directory for settings.
func DefaultDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "Library", "Application Support", "prefstore")
	}
	return "prefstore-data"
}
