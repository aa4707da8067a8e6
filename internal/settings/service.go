package settings

import "github.com/google/uuid"

// Service is the one contract both store variants implement. Callers cannot
// tell the document-backed snapshot store and the scalar-preference store
// apart through it; which one a deployment gets is decided at construction.
type Service interface {
	GetBool(name string) bool
	GetInt(name string) int
	GetFloat(name string) float64

	SetBool(name string, value bool)
	SetInt(name string, value int)
	SetFloat(name string, value float64)

	// Load makes the store ready. Invoked once at startup; never fatal.
	Load()
	// Save persists the current state, fire-and-forget. At most one write is
	// in flight at a time; extra calls are dropped.
	Save()
	// Flush blocks until any in-flight write has completed.
	Flush()
	// ResetToDefaults discards all overrides.
	ResetToDefaults()

	// Effective returns a copy of every known setting with its current
	// effective value (override where present, default otherwise).
	Effective() *Values

	OnUpdated(fn func()) uuid.UUID
	OnReset(fn func()) uuid.UUID
	Unsubscribe(id uuid.UUID)
}

// DocumentBackend persists a whole snapshot as one serialized document.
// Implemented by persist.File.
type DocumentBackend interface {
	Exists() (bool, error)
	Load() (*Values, error)
	Save(v *Values) error
}

// ScalarBackend is a flat preference store limited to scalar values, for
// deployments without general file access. The default is resolved by the
// backend's own def argument, not by a second table lookup. Implemented by
// persist.SQLitePrefs and the macOS defaults-CLI backend.
type ScalarBackend interface {
	GetInt(name string, def int) (int, error)
	GetFloat(name string, def float64) (float64, error)
	SetInt(name string, value int) error
	SetFloat(name string, value float64) error
	// Clear drops the whole preference namespace.
	Clear() error
}

// Alerter surfaces user-facing failure messages: a dialog in the game client,
// stderr in the CLI. Only load/save failures reach it; missing-key resolution
// never does.
type Alerter interface {
	Alert(title, message string)
}
