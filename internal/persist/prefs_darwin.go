//go:build darwin

package persist

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/perttu/prefstore/internal/settings"
)

const defaultsDomain = "com.prefstore.app"

// defaultsPrefs stores each setting as an individually addressable scalar in
// macOS UserDefaults (via the `defaults` CLI).
type defaultsPrefs struct {
	domain string
}

// NewPlatformPrefs returns the native scalar preference backend: UserDefaults
// on macOS. The dir argument is unused here; other platforms keep their
// preference database there.
func NewPlatformPrefs(dir string) (settings.ScalarBackend, error) {
	return &defaultsPrefs{domain: defaultsDomain}, nil
}

func (b *defaultsPrefs) read(name string) (string, bool, error) {
	cmd := exec.Command("defaults", "read", b.domain, name)
	out, err := cmd.CombinedOutput()
	s := strings.TrimSpace(string(out))
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading default for %s: %w, output: %s", name, err, s)
	}
	return s, true, nil
}

func (b *defaultsPrefs) GetInt(name string, def int) (int, error) {
	s, ok, err := b.read(name)
	if err != nil || !ok {
		return def, err
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def, fmt.Errorf("invalid integer for %s: %w", name, err)
	}
	return i, nil
}

func (b *defaultsPrefs) GetFloat(name string, def float64) (float64, error) {
	s, ok, err := b.read(name)
	if err != nil || !ok {
		return def, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, fmt.Errorf("invalid float for %s: %w", name, err)
	}
	return f, nil
}

func (b *defaultsPrefs) SetInt(name string, value int) error {
	return exec.Command("defaults", "write", b.domain, name, "-int", strconv.Itoa(value)).Run()
}

func (b *defaultsPrefs) SetFloat(name string, value float64) error {
	return exec.Command("defaults", "write", b.domain, name, "-float", strconv.FormatFloat(value, 'f', -1, 64)).Run()
}

// Clear deletes the whole domain. A missing domain exits 1, which just means
// there was nothing to clear.
func (b *defaultsPrefs) Clear() error {
	err := exec.Command("defaults", "delete", b.domain).Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return nil
	}
	return err
}
