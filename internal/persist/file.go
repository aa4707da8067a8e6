package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/perttu/prefstore/internal/settings"
)

// File persists the whole settings snapshot as one JSON document.
// Deserialization is schema-tolerant: unknown keys are ignored and missing
// maps are left for the caller to normalize, so a document written by a
// different release still loads.
type File struct {
	path string
}

// NewFile creates a document backend writing to path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the document location.
func (f *File) Path() string {
	return f.path
}

// Exists reports whether a persisted document is present. A missing file is
// not an error; anything else (e.g. permission trouble) is.
func (f *File) Exists() (bool, error) {
	_, err := os.Stat(f.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking settings file %s: %w", f.path, err)
}

// Load reads and deserializes the whole document.
func (f *File) Load() (*settings.Values, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", f.path, err)
	}
	var v settings.Values
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", f.path, err)
	}
	return &v, nil
}

// Save serializes the snapshot and replaces the document atomically: the new
// content is written to a temp file in the same directory and renamed over
// the old one, so a crash mid-write never leaves a truncated document.
func (f *File) Save(v *settings.Values) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("creating temp settings file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp settings file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing settings file: %w", err)
	}
	return nil
}
