package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	MoveUp       key.Binding
	MoveDown     key.Binding
	MoveLeft     key.Binding
	MoveRight    key.Binding
	AimUp        key.Binding
	AimDown      key.Binding
	AimLeft      key.Binding
	AimRight     key.Binding
	Swing        key.Binding
	Switch       key.Binding
	ChooseFirst  key.Binding
	ChooseSecond key.Binding
	Pause        key.Binding
	Quit         key.Binding
}

// DefaultGameKeyMap returns the twin-stick layout: WASD moves, arrows aim and fire.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		MoveUp:    key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("wasd", "move")),
		MoveDown:  key.NewBinding(key.WithKeys("s", "S")),
		MoveLeft:  key.NewBinding(key.WithKeys("a", "A")),
		MoveRight: key.NewBinding(key.WithKeys("d", "D")),
		AimUp:     key.NewBinding(key.WithKeys("up"), key.WithHelp("arrows", "aim/fire")),
		AimDown:   key.NewBinding(key.WithKeys("down")),
		AimLeft:   key.NewBinding(key.WithKeys("left")),
		AimRight:  key.NewBinding(key.WithKeys("right")),
		Swing:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "swing")),
		Switch:    key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "switch weapon")),
		ChooseFirst: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1/2", "choose upgrade"),
		),
		ChooseSecond: key.NewBinding(key.WithKeys("2")),
		Pause:        key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveUp, k.AimUp, k.Swing, k.Switch, k.ChooseFirst, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveUp, k.AimUp},
		{k.Swing, k.Switch, k.ChooseFirst},
		{k.Pause, k.Quit},
	}
}

// bindings pairs every binding with the action it produces.
func (k GameKeyMap) bindings() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.MoveUp, core.ActionMoveUp},
		{k.MoveDown, core.ActionMoveDown},
		{k.MoveLeft, core.ActionMoveLeft},
		{k.MoveRight, core.ActionMoveRight},
		{k.AimUp, core.ActionAimUp},
		{k.AimDown, core.ActionAimDown},
		{k.AimLeft, core.ActionAimLeft},
		{k.AimRight, core.ActionAimRight},
		{k.Swing, core.ActionSwing},
		{k.Switch, core.ActionSwitch},
		{k.ChooseFirst, core.ActionChooseFirst},
		{k.ChooseSecond, core.ActionChooseSecond},
		{k.Pause, core.ActionPause},
		{k.Quit, core.ActionQuit},
	}
}

// MapKey translates a key message to an action.
// Returns ActionNone for unbound keys.
func (k GameKeyMap) MapKey(msg tea.KeyMsg) core.Action {
	for _, b := range k.bindings() {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
