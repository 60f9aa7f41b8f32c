package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/registry"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

// helpRows is the number of rows reserved below the game screen.
const helpRows = 1

// Options tunes the game model.
type Options struct {
	HoldWindow time.Duration // zero uses DefaultHoldWindow
	Logger     *log.Logger   // nil discards
}

// elapsedReporter is implemented by games that track their own play time.
type elapsedReporter interface {
	Elapsed() time.Duration
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      GameKeyMap
	help      help.Model
	held      *HoldTracker
	logger    *log.Logger
	gameState core.GameState
	started   time.Time
	quitting  bool
	runSaved  bool // Whether the run has been recorded for the current game over
	savedRun  *storage.Run
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		store:   store,
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		held:    NewHoldTracker(opts.HoldWindow),
		logger:  logger,
		started: time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key presses for the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit requested", "kills", m.gameState.Score, "game_over", m.gameState.GameOver)
		return m, tea.Quit
	}

	m.held.Press(action, now)
	return m, nil
}

// handleResize keeps the screen buffer in step with the terminal.
// The world does not depend on the screen size, so the session carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.held.Frame(now))
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun(now)
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Storage problems never stop the game.
func (m *Model) saveRun(now time.Time) {
	duration := now.Sub(m.started)
	if r, ok := m.game.(elapsedReporter); ok {
		duration = r.Elapsed()
	}
	run := storage.NewRun(m.game.ID(), m.gameState.Score, m.gameState.Level, duration)

	if m.store == nil {
		m.logger.Warn("run not saved, no storage", "run_id", run.RunID, "kills", run.Kills)
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "run_id", run.RunID, "error", err)
		return
	}
	m.savedRun = &run
	m.logger.Info("run saved", "run_id", run.RunID, "kills", run.Kills, "level", run.Level, "duration", duration)
}

// SavedRun returns the run recorded at game over, if any.
func (m Model) SavedRun() *storage.Run {
	return m.savedRun
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program with the given model.
// It returns the run recorded at game over, or nil when the player quit first.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (*storage.Run, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(Model); ok {
		return m.SavedRun(), nil
	}
	return nil, nil
}
