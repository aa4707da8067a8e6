package settings

import (
	"errors"
	"reflect"
	"testing"
)

// fakeScalar is an in-memory scalar preference backend. All values are held
// as float64, mirroring stores that only speak numbers.
type fakeScalar struct {
	vals   map[string]float64
	setErr error
	getErr error
}

func newFakeScalar() *fakeScalar {
	return &fakeScalar{vals: make(map[string]float64)}
}

func (f *fakeScalar) GetInt(name string, def int) (int, error) {
	if f.getErr != nil {
		return def, f.getErr
	}
	v, ok := f.vals[name]
	if !ok {
		return def, nil
	}
	return int(v), nil
}

func (f *fakeScalar) GetFloat(name string, def float64) (float64, error) {
	if f.getErr != nil {
		return def, f.getErr
	}
	v, ok := f.vals[name]
	if !ok {
		return def, nil
	}
	return v, nil
}

func (f *fakeScalar) SetInt(name string, value int) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.vals[name] = float64(value)
	return nil
}

func (f *fakeScalar) SetFloat(name string, value float64) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.vals[name] = value
	return nil
}

func (f *fakeScalar) Clear() error {
	f.vals = make(map[string]float64)
	return nil
}

// TestPrefStoreDefaults verifies an empty backend resolves every read through
// the default-value argument.
func TestPrefStoreDefaults(t *testing.T) {
	s := NewPrefStore(newFakeScalar(), nil)
	s.Load()

	if !s.GetBool("vsync") {
		t.Error("GetBool(vsync) = false, want default true")
	}
	if got := s.GetInt("framecap"); got != 60 {
		t.Errorf("GetInt(framecap) = %d, want 60", got)
	}
	if got := s.GetFloat("musicvolume"); got != 0.5 {
		t.Errorf("GetFloat(musicvolume) = %v, want 0.5", got)
	}
}

// TestPrefStoreBoolAsInt verifies booleans are written as 0/1 integers.
func TestPrefStoreBoolAsInt(t *testing.T) {
	backend := newFakeScalar()
	s := NewPrefStore(backend, nil)

	s.SetBool("vsync", false)
	if v, ok := backend.vals["vsync"]; !ok || v != 0 {
		t.Errorf("backend value for vsync = %v (present=%v), want 0", v, ok)
	}
	if s.GetBool("vsync") {
		t.Error("GetBool(vsync) = true after SetBool(false)")
	}

	s.SetBool("vsync", true)
	if v := backend.vals["vsync"]; v != 1 {
		t.Errorf("backend value for vsync = %v, want 1", v)
	}
}

func TestPrefStoreSetFloatRounds(t *testing.T) {
	backend := newFakeScalar()
	s := NewPrefStore(backend, nil)

	s.SetFloat("musicvolume", 0.123456)

	if got := backend.vals["musicvolume"]; got != 0.123 {
		t.Errorf("backend value = %v, want 0.123", got)
	}
}

// TestPrefStoreReset verifies reset clears the whole namespace so reads fall
// back to defaults, firing reset then updated.
func TestPrefStoreReset(t *testing.T) {
	backend := newFakeScalar()
	s := NewPrefStore(backend, nil)
	s.SetInt("framecap", 144)
	s.SetBool("ssao", false)

	var order []string
	s.OnReset(func() { order = append(order, "reset") })
	s.OnUpdated(func() { order = append(order, "updated") })

	s.ResetToDefaults()

	if len(backend.vals) != 0 {
		t.Errorf("backend holds %d values after reset, want 0", len(backend.vals))
	}
	if got := s.GetInt("framecap"); got != 60 {
		t.Errorf("framecap after reset = %d, want 60", got)
	}
	if !reflect.DeepEqual(order, []string{"reset", "updated"}) {
		t.Errorf("notification order = %v, want [reset updated]", order)
	}
}

// TestPrefStoreWriteFailure verifies a failed write is alerted, non-fatal,
// and still fires updated.
func TestPrefStoreWriteFailure(t *testing.T) {
	backend := newFakeScalar()
	backend.setErr = errors.New("store unavailable")
	alerter := &countingAlerter{}
	s := NewPrefStore(backend, alerter)

	var updated int
	s.OnUpdated(func() { updated++ })

	s.SetInt("framecap", 144)

	if got := alerter.count(); got != 1 {
		t.Errorf("alert count = %d, want 1", got)
	}
	if updated != 1 {
		t.Errorf("updated fired %d times, want 1", updated)
	}
	if got := s.GetInt("framecap"); got != 60 {
		t.Errorf("framecap = %d, want default 60 after failed write", got)
	}
}

// TestPrefStoreReadFailure degrades to the default table value.
func TestPrefStoreReadFailure(t *testing.T) {
	backend := newFakeScalar()
	backend.getErr = errors.New("store unavailable")
	s := NewPrefStore(backend, nil)

	if !s.GetBool("vsync") {
		t.Error("GetBool(vsync) = false on read failure, want default true")
	}
}

func TestPrefStoreEffective(t *testing.T) {
	backend := newFakeScalar()
	s := NewPrefStore(backend, nil)
	s.SetInt("framecap", 144)

	eff := s.Effective()
	if eff.Ints["framecap"] != 144 {
		t.Errorf("effective framecap = %d, want 144", eff.Ints["framecap"])
	}
	if !eff.Bools["vsync"] {
		t.Error("effective vsync = false, want default true")
	}
	if len(eff.Floats) != len(Defaults.Floats) {
		t.Errorf("effective floats has %d entries, want %d", len(eff.Floats), len(Defaults.Floats))
	}
}
