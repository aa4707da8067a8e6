package settings

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Compile-time check that Store implements Service.
var _ Service = (*Store)(nil)

// Store is the document-backed settings store: it owns the single live
// snapshot and resolves reads against it with the default table as fallback.
// Mutation belongs to one logical owner thread, but the maps are guarded with
// a lock so reads from other goroutines (debug HTTP, MCP) stay safe while a
// save is in flight.
type Store struct {
	notifier

	backend DocumentBackend
	alerter Alerter
	logger  *slog.Logger

	mu     sync.RWMutex
	values *Values
	loaded bool

	saving atomic.Bool
	writes sync.WaitGroup
}

// NewStore creates a Store over a document backend. The alerter may be nil,
// in which case failures are only logged. The store is not ready until Load.
func NewStore(backend DocumentBackend, alerter Alerter) *Store {
	return &Store{
		backend: backend,
		alerter: alerter,
		logger:  slog.Default(),
		values:  NewValues(),
	}
}

func (s *Store) alert(title, message string) {
	if s.alerter != nil {
		s.alerter.Alert(title, message)
	}
}

// Load makes the persisted state current, falling back to a deep copy of the
// default table when nothing is persisted or the document cannot be read.
// Both fallback paths immediately re-save so storage converges on a valid
// document. Fires the updated signal exactly once.
func (s *Store) Load() {
	vals, needSave := s.loadValues()

	s.mu.Lock()
	s.values = vals
	s.loaded = true
	s.mu.Unlock()

	if needSave {
		s.Save()
	}
	s.fireUpdated()
}

func (s *Store) loadValues() (vals *Values, needSave bool) {
	exists, err := s.backend.Exists()
	if err == nil && !exists {
		s.logger.Info("no persisted settings found, seeding defaults")
		return Defaults.Clone(), true
	}

	if err == nil {
		var loaded *Values
		if loaded, err = s.backend.Load(); err == nil {
			loaded.Normalize()
			return loaded, false
		}
	}

	s.logger.Error("loading settings failed, reverting to defaults", "error", err)
	s.alert("Settings", "Your settings could not be loaded and have been reset to defaults.")
	return Defaults.Clone(), true
}

// GetBool resolves name against the snapshot, then the default table, then
// the zero value. A missing key is "unconfigured", never an error. Before
// Load it returns false and logs at debug level.
func (s *Store) GetBool(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		s.logger.Debug("settings read before load", "name", name)
		return false
	}
	if v, ok := s.values.Bools[name]; ok {
		return v
	}
	if v, ok := Defaults.Bools[name]; ok {
		return v
	}
	return false
}

func (s *Store) GetInt(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		s.logger.Debug("settings read before load", "name", name)
		return 0
	}
	if v, ok := s.values.Ints[name]; ok {
		return v
	}
	if v, ok := Defaults.Ints[name]; ok {
		return v
	}
	return 0
}

func (s *Store) GetFloat(name string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		s.logger.Debug("settings read before load", "name", name)
		return 0
	}
	if v, ok := s.values.Floats[name]; ok {
		return v
	}
	if v, ok := Defaults.Floats[name]; ok {
		return v
	}
	return 0
}

// SetBool upserts name in the snapshot and fires the updated signal. Setters
// never persist by themselves; Save is explicit.
func (s *Store) SetBool(name string, value bool) {
	s.mu.Lock()
	s.values.Bools[name] = value
	s.mu.Unlock()
	s.fireUpdated()
}

func (s *Store) SetInt(name string, value int) {
	s.mu.Lock()
	s.values.Ints[name] = value
	s.mu.Unlock()
	s.fireUpdated()
}

func (s *Store) SetFloat(name string, value float64) {
	s.mu.Lock()
	s.values.Floats[name] = roundFloat(value)
	s.mu.Unlock()
	s.fireUpdated()
}

// ResetToDefaults replaces the snapshot with a fresh deep copy of the default
// table, then fires reset followed by updated.
func (s *Store) ResetToDefaults() {
	s.mu.Lock()
	s.values = Defaults.Clone()
	s.loaded = true
	s.mu.Unlock()

	s.fireReset()
	s.fireUpdated()
}

// Save serializes the current snapshot to the backend in the background.
// If a write is already in flight the call is dropped with a log notice,
// never queued. A failed write leaves the in-memory state untouched and is
// surfaced as a non-fatal alert; there is no automatic retry.
func (s *Store) Save() {
	if !s.saving.CompareAndSwap(false, true) {
		s.logger.Info("settings save already in flight, dropping request")
		return
	}

	s.mu.RLock()
	snap := s.values.Clone()
	s.mu.RUnlock()

	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		defer s.saving.Store(false)

		if err := s.backend.Save(snap); err != nil {
			s.logger.Error("saving settings failed", "error", err)
			s.alert("Settings", "Your settings could not be saved.")
			return
		}
		s.logger.Debug("settings saved")
	}()
}

// Flush waits for any in-flight write. Call before process exit so
// fire-and-forget saves are not lost.
func (s *Store) Flush() {
	s.writes.Wait()
}

// Effective returns the default table overlaid with the current overrides,
// as an independent copy.
func (s *Store) Effective() *Values {
	out := Defaults.Clone()

	s.mu.RLock()
	defer s.mu.RUnlock()
	for k, v := range s.values.Bools {
		out.Bools[k] = v
	}
	for k, v := range s.values.Ints {
		out.Ints[k] = v
	}
	for k, v := range s.values.Floats {
		out.Floats[k] = v
	}
	return out
}
