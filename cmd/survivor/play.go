package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survival"
	"github.com/vovakirdan/tui-survivor/internal/platform/tui"
	"github.com/vovakirdan/tui-survivor/internal/registry"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHoldMS     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a new survival run. The run ends when you are hit while
already down to your last hitpoint; every finished run is recorded.

Controls:
  W/A/S/D    - Move
  Arrows     - Aim and fire
  Space      - Swing the sword
  C          - Switch weapon
  1/2        - Choose an upgrade when offered
  P/Esc      - Pause
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 8 hitpoints, slower spawns
  normal - Config as loaded
  hard   - 3 hitpoints, faster spawns

Examples:
  survivor play
  survivor play --difficulty hard
  survivor play --seed 42 --fps 30
  survivor play --config ./my-survival.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagHoldMS, "hold-ms", int(tui.DefaultHoldWindow/time.Millisecond),
		"How long a move/aim key stays held after its last repeat (ms)")
}

// applyGameFlags hands --config and --difficulty to the game package and
// checks that the resulting config loads.
func applyGameFlags() error {
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	survival.SetConfigPath(flagConfig)
	survival.SetDifficultyPreset(flagDifficulty)

	_, err := survival.LoadConfig()
	return err
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	survival.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(survival.GameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("run history unavailable", "db", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	run, runErr := tui.Run(game, store, cfg, tui.Options{
		HoldWindow: time.Duration(flagHoldMS) * time.Millisecond,
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if run != nil {
		fmt.Printf("Run over: %d kills, level %d, survived %s\n",
			run.Kills, run.Level, run.Duration.Round(time.Second))
	}
}
