package persist

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLitePrefs is a scalar preference backend over a single key/value table.
// It stands in for a native preference store on platforms that have none;
// each Get/Set is its own statement, there is no whole-snapshot concept.
type SQLitePrefs struct {
	db *sql.DB
}

// NewSQLitePrefs opens (or creates) the preference database at path.
// Pass ":memory:" for an in-memory database (used by tests).
func NewSQLitePrefs(path string) (*SQLitePrefs, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("creating preference dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening preference database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging preference database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		name  TEXT PRIMARY KEY,
		value REAL NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating prefs table: %w", err)
	}

	return &SQLitePrefs{db: db}, nil
}

// Close closes the underlying database connection.
func (p *SQLitePrefs) Close() error {
	return p.db.Close()
}

func (p *SQLitePrefs) get(name string) (float64, bool, error) {
	var v float64
	err := p.db.QueryRow("SELECT value FROM prefs WHERE name = ?", name).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading preference %s: %w", name, err)
	}
	return v, true, nil
}

func (p *SQLitePrefs) set(name string, value float64) error {
	_, err := p.db.Exec(`INSERT INTO prefs (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`, name, value)
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", name, err)
	}
	return nil
}

// GetInt returns the stored value for name, or def when absent.
func (p *SQLitePrefs) GetInt(name string, def int) (int, error) {
	v, ok, err := p.get(name)
	if err != nil || !ok {
		return def, err
	}
	if v != math.Trunc(v) {
		return def, fmt.Errorf("preference %s holds non-integer value %v", name, v)
	}
	return int(v), nil
}

// GetFloat returns the stored value for name, or def when absent.
func (p *SQLitePrefs) GetFloat(name string, def float64) (float64, error) {
	v, ok, err := p.get(name)
	if err != nil || !ok {
		return def, err
	}
	return v, nil
}

func (p *SQLitePrefs) SetInt(name string, value int) error {
	return p.set(name, float64(value))
}

func (p *SQLitePrefs) SetFloat(name string, value float64) error {
	return p.set(name, value)
}

// Clear drops every stored preference.
func (p *SQLitePrefs) Clear() error {
	if _, err := p.db.Exec("DELETE FROM prefs"); err != nil {
		return fmt.Errorf("clearing preferences: %w", err)
	}
	return nil
}
