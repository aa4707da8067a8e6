package main

import (
	"strings"
	"testing"

	"github.com/perttu/prefstore/internal/settings"
)

// memDoc is a minimal in-memory document backend for CLI helper tests.
type memDoc struct {
	exists bool
	data   *settings.Values
}

func (m *memDoc) Exists() (bool, error) { return m.exists, nil }

func (m *memDoc) Load() (*settings.Values, error) { return m.data.Clone(), nil }

func (m *memDoc) Save(v *settings.Values) error {
	m.exists = true
	m.data = v.Clone()
	return nil
}

func newTestStore(t *testing.T) *settings.Store {
	t.Helper()
	s := settings.NewStore(&memDoc{}, nil)
	s.Load()
	t.Cleanup(s.Flush)
	return s
}

func TestApplySetting(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name  string
		value string
	}{
		{"vsync", "false"},
		{"framecap", "144"},
		{"musicvolume", "0.25"},
	}
	for _, tt := range tests {
		if err := applySetting(s, tt.name, tt.value); err != nil {
			t.Fatalf("applySetting(%s, %s): %v", tt.name, tt.value, err)
		}
	}

	if s.GetBool("vsync") {
		t.Error("vsync = true, want false")
	}
	if got := s.GetInt("framecap"); got != 144 {
		t.Errorf("framecap = %d, want 144", got)
	}
	if got := s.GetFloat("musicvolume"); got != 0.25 {
		t.Errorf("musicvolume = %v, want 0.25", got)
	}
}

func TestApplySettingParseErrors(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name  string
		value string
	}{
		{"vsync", "maybe"},
		{"framecap", "fast"},
		{"musicvolume", "loud"},
	}
	for _, tt := range tests {
		if err := applySetting(s, tt.name, tt.value); err == nil {
			t.Errorf("applySetting(%s, %s) succeeded, want parse error", tt.name, tt.value)
		}
	}
}

func TestApplySettingUnknownName(t *testing.T) {
	s := newTestStore(t)

	err := applySetting(s, "nosuch", "1")
	if err == nil {
		t.Fatal("applySetting with unknown name succeeded, want error")
	}
	if !strings.Contains(err.Error(), "valid settings") {
		t.Errorf("error %q does not list valid settings", err)
	}
}

func TestEffectiveValue(t *testing.T) {
	s := newTestStore(t)
	s.SetInt("framecap", 30)

	if got := effectiveValue(s, "framecap", settings.KindInt); got != 30 {
		t.Errorf("effectiveValue(framecap) = %v, want 30", got)
	}
	if got := effectiveValue(s, "vsync", settings.KindBool); got != true {
		t.Errorf("effectiveValue(vsync) = %v, want true", got)
	}
	if got := effectiveValue(s, "musicvolume", settings.KindFloat); got != 0.5 {
		t.Errorf("effectiveValue(musicvolume) = %v, want 0.5", got)
	}
}
