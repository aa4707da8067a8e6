package persist

import (
	"path/filepath"
	"testing"
)

func openTestPrefs(t *testing.T) *SQLitePrefs {
	t.Helper()
	p, err := NewSQLitePrefs(":memory:")
	if err != nil {
		t.Fatalf("NewSQLitePrefs(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestSQLitePrefsMissingReturnsDefault(t *testing.T) {
	p := openTestPrefs(t)

	if got, err := p.GetInt("framecap", 60); err != nil || got != 60 {
		t.Errorf("GetInt = %d, %v, want 60, nil", got, err)
	}
	if got, err := p.GetFloat("musicvolume", 0.5); err != nil || got != 0.5 {
		t.Errorf("GetFloat = %v, %v, want 0.5, nil", got, err)
	}
}

func TestSQLitePrefsIntRoundtrip(t *testing.T) {
	p := openTestPrefs(t)

	if err := p.SetInt("framecap", 144); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	if got, err := p.GetInt("framecap", 60); err != nil || got != 144 {
		t.Errorf("GetInt = %d, %v, want 144, nil", got, err)
	}

	// Upsert overwrites.
	if err := p.SetInt("framecap", 30); err != nil {
		t.Fatalf("SetInt overwrite: %v", err)
	}
	if got, _ := p.GetInt("framecap", 60); got != 30 {
		t.Errorf("GetInt after overwrite = %d, want 30", got)
	}
}

func TestSQLitePrefsFloatRoundtrip(t *testing.T) {
	p := openTestPrefs(t)

	if err := p.SetFloat("musicvolume", 0.123); err != nil {
		t.Fatalf("SetFloat: %v", err)
	}
	if got, err := p.GetFloat("musicvolume", 0.5); err != nil || got != 0.123 {
		t.Errorf("GetFloat = %v, %v, want 0.123, nil", got, err)
	}
}

func TestSQLitePrefsIntReadOfFloatValue(t *testing.T) {
	p := openTestPrefs(t)

	if err := p.SetFloat("framecap", 0.5); err != nil {
		t.Fatalf("SetFloat: %v", err)
	}

	got, err := p.GetInt("framecap", 60)
	if err == nil {
		t.Error("GetInt of fractional value succeeded, want error")
	}
	if got != 60 {
		t.Errorf("GetInt = %d, want the default 60 alongside the error", got)
	}
}

func TestSQLitePrefsClear(t *testing.T) {
	p := openTestPrefs(t)

	p.SetInt("framecap", 144)
	p.SetFloat("musicvolume", 0.9)

	if err := p.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if got, _ := p.GetInt("framecap", 60); got != 60 {
		t.Errorf("GetInt after clear = %d, want default 60", got)
	}
	if got, _ := p.GetFloat("musicvolume", 0.5); got != 0.5 {
		t.Errorf("GetFloat after clear = %v, want default 0.5", got)
	}
}

// TestSQLitePrefsPersistence reopens a file-backed database and checks values
// survive.
func TestSQLitePrefsPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	p1, err := NewSQLitePrefs(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := p1.SetInt("framecap", 144); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	if err := p1.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	p2, err := NewSQLitePrefs(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer p2.Close()

	if got, err := p2.GetInt("framecap", 60); err != nil || got != 144 {
		t.Errorf("GetInt after reopen = %d, %v, want 144, nil", got, err)
	}
}
