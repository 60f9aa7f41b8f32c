package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey('w'), core.ActionMoveUp},
		{"S", runeKey('S'), core.ActionMoveDown},
		{"a", runeKey('a'), core.ActionMoveLeft},
		{"d", runeKey('d'), core.ActionMoveRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionAimUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionAimDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionAimLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionAimRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSwing},
		{"c", runeKey('c'), core.ActionSwitch},
		{"1", runeKey('1'), core.ActionChooseFirst},
		{"2", runeKey('2'), core.ActionChooseSecond},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
