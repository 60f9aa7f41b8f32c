// survivor is a top-down survival game for the terminal: move, aim, shoot and
// swing your way through ever larger waves of orbiting enemies.
//
// Usage:
//
//	survivor play            - Start a run
//	survivor scores          - Show the best runs
//	survivor config          - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.survivor/runs.db)
//	--log-file <path>    - Set log file (default: ~/.survivor/survivor.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-survivor/internal/games/survival"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survivor",
	Short: "Orbit Survival - survive the swarm in your terminal",
	Long: `Orbit Survival is a terminal survival game. Enemies spawn on a ring
around you and close in; keep moving, shoot them down with the gun or
cut through them with the sword, and pick an upgrade every few kills.

Available commands:
  play     - Start a run
  scores   - View the best runs
  config   - Print the effective game config

Examples:
  survivor play
  survivor play --difficulty hard
  survivor scores --interactive
  survivor config --difficulty easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.survivor/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.survivor/survivor.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger builds the file logger. The terminal belongs to the game while it
// runs, so when the log file cannot be opened the logger discards.
// The returned func closes the file.
func newLogger() (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr == nil {
			f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if openErr == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "survivor",
		Level:           level,
	})
	return logger, closeFn
}
