//go:build !darwin

package persist

import (
	"os"
	"path/filepath"
)

// DefaultDir returns the platform application-data directory for settings,
// following XDG conventions on Linux and friends.
func DefaultDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".config")
		} else {
			return "prefstore-data"
		}
	}
	return filepath.Join(dir, "prefstore")
}
