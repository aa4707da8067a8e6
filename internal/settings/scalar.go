package settings

import "log/slog"

// Compile-time check that PrefStore implements Service.
var _ Service = (*PrefStore)(nil)

// PrefStore serves deployments where settings live in a platform preference
// store instead of a document: every accessor is its own transaction against
// the backend, there is no in-memory snapshot, and defaults are resolved
// through the backend's own default-value argument. Booleans are stored as
// the integers 0/1 because the underlying store has no boolean type.
//
// The two resolution paths are intentionally divergent from Store; the
// shared Service contract is what keeps callers backend-agnostic.
type PrefStore struct {
	notifier

	backend ScalarBackend
	alerter Alerter
	logger  *slog.Logger
}

// NewPrefStore creates a PrefStore over a scalar preference backend. The
// alerter may be nil.
func NewPrefStore(backend ScalarBackend, alerter Alerter) *PrefStore {
	return &PrefStore{
		backend: backend,
		alerter: alerter,
		logger:  slog.Default(),
	}
}

func (s *PrefStore) alert(title, message string) {
	if s.alerter != nil {
		s.alerter.Alert(title, message)
	}
}

// Load is trivial here: the preference store is always ready. It only fires
// the updated signal so startup code behaves the same on every backend.
func (s *PrefStore) Load() {
	s.fireUpdated()
}

// Save is a logged no-op; every setter already persisted its own value.
func (s *PrefStore) Save() {
	s.logger.Debug("scalar preference backend persists per write, save is a no-op")
}

// Flush is a no-op; there are no deferred writes.
func (s *PrefStore) Flush() {}

func (s *PrefStore) GetBool(name string) bool {
	def := Defaults.Bools[name]
	v, err := s.backend.GetInt(name, boolToInt(def))
	if err != nil {
		s.logger.Warn("reading preference failed", "name", name, "error", err)
		return def
	}
	return v != 0
}

func (s *PrefStore) GetInt(name string) int {
	def := Defaults.Ints[name]
	v, err := s.backend.GetInt(name, def)
	if err != nil {
		s.logger.Warn("reading preference failed", "name", name, "error", err)
		return def
	}
	return v
}

func (s *PrefStore) GetFloat(name string) float64 {
	def := Defaults.Floats[name]
	v, err := s.backend.GetFloat(name, def)
	if err != nil {
		s.logger.Warn("reading preference failed", "name", name, "error", err)
		return def
	}
	return v
}

func (s *PrefStore) SetBool(name string, value bool) {
	s.write(name, s.backend.SetInt(name, boolToInt(value)))
}

func (s *PrefStore) SetInt(name string, value int) {
	s.write(name, s.backend.SetInt(name, value))
}

func (s *PrefStore) SetFloat(name string, value float64) {
	s.write(name, s.backend.SetFloat(name, roundFloat(value)))
}

func (s *PrefStore) write(name string, err error) {
	if err != nil {
		s.logger.Error("writing preference failed", "name", name, "error", err)
		s.alert("Settings", "Your settings could not be saved.")
	}
	s.fireUpdated()
}

// ResetToDefaults clears the entire preference namespace; reads then fall
// through to the default table again.
func (s *PrefStore) ResetToDefaults() {
	if err := s.backend.Clear(); err != nil {
		s.logger.Error("clearing preferences failed", "error", err)
		s.alert("Settings", "Your settings could not be reset.")
	}
	s.fireReset()
	s.fireUpdated()
}

// Effective reads every known setting through the backend.
func (s *PrefStore) Effective() *Values {
	out := NewValues()
	for name := range Defaults.Bools {
		out.Bools[name] = s.GetBool(name)
	}
	for name := range Defaults.Ints {
		out.Ints[name] = s.GetInt(name)
	}
	for name := range Defaults.Floats {
		out.Floats[name] = s.GetFloat(name)
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
