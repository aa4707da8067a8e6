package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/perttu/prefstore/internal/persist"
	"github.com/perttu/prefstore/internal/settings"
)

// stderrAlerter is the CLI's stand-in for the game client's dialog surface.
type stderrAlerter struct{}

func (stderrAlerter) Alert(title, message string) {
	printError("%s: %s", title, message)
}

// openService builds the settings service for the selected backend and loads
// it. The returned cleanup flushes pending writes and releases the backend.
func openService() (settings.Service, func(), error) {
	dir := dataDir
	if dir == "" {
		dir = persist.DefaultDir()
	}

	switch backendKind {
	case "", "file":
		backend := persist.NewFile(filepath.Join(dir, "settings.json"))
		store := settings.NewStore(backend, stderrAlerter{})
		store.Load()
		return store, store.Flush, nil

	case "prefs":
		backend, err := persist.NewPlatformPrefs(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening preference backend: %w", err)
		}
		store := settings.NewPrefStore(backend, stderrAlerter{})
		store.Load()
		cleanup := func() {
			if c, ok := backend.(io.Closer); ok {
				c.Close()
			}
		}
		return store, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q (valid: file, prefs)", backendKind)
	}
}

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Read a setting's current effective value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		kind, ok := settings.TypeOf(name)
		if !ok {
			return unknownSettingError(name)
		}

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		fmt.Fprintf(os.Stdout, "%v\n", effectiveValue(svc, name, kind))
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Change a setting and persist it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, raw := args[0], args[1]

		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := applySetting(svc, name, raw); err != nil {
			return err
		}
		svc.Save()

		printSuccess("Set %s = %s", name, raw)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every known setting with its current effective value",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		eff := svc.Effective()
		for _, name := range settings.Names() {
			kind, _ := settings.TypeOf(name)
			var value any
			switch kind {
			case settings.KindBool:
				value = eff.Bools[name]
			case settings.KindInt:
				value = eff.Ints[name]
			case settings.KindFloat:
				value = eff.Floats[name]
			}
			fmt.Fprintf(os.Stdout, "%-16s %-6s %v\n", name, kind, value)
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset every setting to its default value",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := openService()
		if err != nil {
			return err
		}
		defer cleanup()

		svc.ResetToDefaults()
		svc.Save()

		printSuccess("Settings reset to defaults")
		return nil
	},
}

// applySetting parses raw according to the setting's declared type and writes
// it through the service.
func applySetting(svc settings.Service, name, raw string) error {
	kind, ok := settings.TypeOf(name)
	if !ok {
		return unknownSettingError(name)
	}

	switch kind {
	case settings.KindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s expects a boolean, got %q", name, raw)
		}
		svc.SetBool(name, v)
	case settings.KindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q", name, raw)
		}
		svc.SetInt(name, v)
	case settings.KindFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s expects a number, got %q", name, raw)
		}
		svc.SetFloat(name, v)
	}
	return nil
}

func effectiveValue(svc settings.Service, name string, kind settings.Kind) any {
	switch kind {
	case settings.KindBool:
		return svc.GetBool(name)
	case settings.KindInt:
		return svc.GetInt(name)
	default:
		return svc.GetFloat(name)
	}
}

func unknownSettingError(name string) error {
	return fmt.Errorf("unknown setting %q\nvalid settings: %s", name, strings.Join(settings.Names(), ", "))
}
