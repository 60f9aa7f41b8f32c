// Package survival adapts the survival simulation to the platform's game
// interface: it maps input frames to simulation input, steps the session at
// the runtime tick rate and draws it into a screen buffer.
package survival

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survival/sim"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "survival"

// hitFlashFrames is how long the player blinks after taking a hit.
const hitFlashFrames = 12

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session events; nil discards them
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger new sessions report to.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig resolves the survival config the next Reset will use.
func LoadConfig() (config.SurvivalConfig, error) {
	cfg, err := config.LoadSurvival(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplySurvivalPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game implements registry.Game for the survival simulation.
type Game struct {
	session *sim.Session
	runtime core.RuntimeConfig
	paused  bool
	flash   int // frames left in the hit blink
}

// New creates a new survival game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Orbit Survival"
}

// Reset starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.flash = 0

	cfg, err := LoadConfig()
	if err != nil {
		if logger != nil {
			logger.Warn("falling back to default config", "error", err)
		}
		cfg = config.DefaultSurvivalConfig()
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var l *log.Logger
	if logger != nil {
		l = logger.With("seed", seed)
	}
	g.session = sim.NewSession(cfg, rand.New(rand.NewSource(seed)), l)
}

// Step advances the session by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Ended() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.session.Step(toSimInput(in), g.runtime.FrameDelta())
	switch {
	case res.Has(sim.EventPlayerHit):
		g.flash = hitFlashFrames
	case g.flash > 0:
		g.flash--
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	p := g.session.Player
	return core.GameState{
		Score:    p.KillCount,
		Level:    p.Level,
		GameOver: g.session.Ended(),
		Paused:   g.paused,
	}
}

// View returns a read-only snapshot of the session.
func (g *Game) View() sim.View {
	return g.session.View()
}

// Elapsed returns the simulated play time.
func (g *Game) Elapsed() time.Duration {
	if g.session == nil {
		return 0
	}
	return time.Duration(g.session.Elapsed * float64(time.Second))
}

// toSimInput maps platform actions onto simulation input.
func toSimInput(in core.InputFrame) sim.Input {
	return sim.Input{
		Move: sim.Directions{
			Up:    in.Has(core.ActionMoveUp),
			Down:  in.Has(core.ActionMoveDown),
			Left:  in.Has(core.ActionMoveLeft),
			Right: in.Has(core.ActionMoveRight),
		},
		Aim: sim.Directions{
			Up:    in.Has(core.ActionAimUp),
			Down:  in.Has(core.ActionAimDown),
			Left:  in.Has(core.ActionAimLeft),
			Right: in.Has(core.ActionAimRight),
		},
		Swing:       in.Has(core.ActionSwing),
		Switch:      in.Has(core.ActionSwitch),
		ChooseGun:   in.Has(core.ActionChooseFirst),
		ChooseSword: in.Has(core.ActionChooseSecond),
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
