package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

// stubGame ends after a fixed number of steps.
type stubGame struct {
	steps   int
	endAt   int
	last    core.InputFrame
	resetTo core.RuntimeConfig
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resetTo = cfg
	g.steps = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.last = in
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.steps * 2, Level: 3, GameOver: g.steps >= g.endAt}
}

func (g *stubGame) Elapsed() time.Duration {
	return time.Duration(g.steps) * time.Second
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{endAt: 2}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 7}, Options{})
	m.Init()

	now := time.Unix(1000, 0)
	for i := 0; i < 4; i++ {
		next, _ := m.handleTick(now)
		m = next.(Model)
	}

	run := m.SavedRun()
	if run == nil {
		t.Fatal("expected a saved run")
	}
	if run.Kills != 4 || run.Level != 3 || run.Duration != 2*time.Second {
		t.Errorf("saved run = %+v", run)
	}

	count, err := store.CountRuns("stub")
	if err != nil {
		t.Fatalf("CountRuns: %v", err)
	}
	if count != 1 {
		t.Errorf("runs saved = %d, want 1", count)
	}
}

func TestModelWithoutStore(t *testing.T) {
	game := &stubGame{endAt: 1}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 7}, Options{})
	m.Init()

	next, _ := m.handleTick(time.Now())
	m = next.(Model)
	if m.SavedRun() != nil {
		t.Error("no run should be saved without storage")
	}
	if !m.gameState.GameOver {
		t.Error("game over should still be reported")
	}
}

func TestModelKeysReachGame(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 7}, Options{})
	m.Init()

	now := time.Unix(1000, 0)
	next, _ := m.handleKey(runeKey('w'), now)
	m = next.(Model)
	next, _ = m.handleKey(runeKey('c'), now)
	m = next.(Model)
	next, _ = m.handleTick(now.Add(10 * time.Millisecond))
	m = next.(Model)

	if !game.last.Has(core.ActionMoveUp) || !game.last.Has(core.ActionSwitch) {
		t.Error("pressed keys should reach the game")
	}

	next, cmd := m.handleKey(runeKey('q'), now)
	m = next.(Model)
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 7}, Options{})
	m.Init()
	next, _ := m.handleTick(time.Now())
	m = next.(Model)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)

	if game.steps != 1 {
		t.Errorf("resize should not reset the game, steps = %d", game.steps)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 20-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("view should contain the rendered game")
	}
}

func TestScoreboardRows(t *testing.T) {
	store := openStore(t)
	for _, kills := range []int{3, 9, 5} {
		if _, err := store.SaveRun(storage.NewRun("stub", kills, 1, 75*time.Second)); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, "stub", "Stub", 80, 24)
	if len(m.runs) != 3 {
		t.Fatalf("runs = %d, want 3", len(m.runs))
	}

	rows := runRows(m.runs)
	if rows[0][0] != "#1" || rows[0][1] != "9" || rows[0][3] != "1:15" {
		t.Errorf("first row = %v", rows[0])
	}
	if !strings.Contains(m.statsLine(), "3 runs") {
		t.Errorf("stats line = %q", m.statsLine())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "stub", "Stub", 80, 24)
	if m.statsLine() != "Run history is unavailable." {
		t.Errorf("stats line = %q", m.statsLine())
	}
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty scoreboard should say so")
	}
}
