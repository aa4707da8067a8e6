package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	noColor     bool
	backendKind string
	dataDir     string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "prefstore",
	Short: "Persisted game settings store",
	Long: `prefstore manages the persisted settings of the game client:
typed key/value settings with a hardcoded default table, stored either as
one JSON document or in the platform preference store.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyEnvDefaults()
		initLogging()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the prefstore version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "prefstore version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&backendKind, "backend", "", "persistence backend: file or prefs (default file)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the settings data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug or info")

	rootCmd.AddCommand(getCmd, setCmd, listCmd, resetCmd, serveCmd, versionCmd)
}

// applyEnvDefaults lets PREFSTORE_* environment variables stand in for flags
// that were not set explicitly.
func applyEnvDefaults() {
	if backendKind == "" {
		backendKind = os.Getenv("PREFSTORE_BACKEND")
	}
	if dataDir == "" {
		dataDir = os.Getenv("PREFSTORE_DATA_DIR")
	}
}

func initLogging() {
	level := slog.LevelInfo
	if strings.EqualFold(logLevel, "debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
