// Package registry maps game IDs to factories. Games register themselves in
// init(), so the CLI and the terminal platform can create them by ID without
// importing their internals.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Game is what the platform drives. Implementations hold pure game logic;
// the platform owns input mapping, timing and terminal output.
type Game interface {
	// ID returns the identifier used on the command line and in run history.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new session sized and seeded by the runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one tick of 1/TickRate seconds.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports kills, level, game over and pause.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	games = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a game factory. It panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for id, e := range games {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
