package tui

import (
	"time"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// DefaultHoldWindow is how long a movement or aim key stays down after its
// last press or auto-repeat.
const DefaultHoldWindow = 300 * time.Millisecond

// opposites lists the held actions that cancel each other on press.
var opposites = map[core.Action]core.Action{
	core.ActionMoveUp:    core.ActionMoveDown,
	core.ActionMoveDown:  core.ActionMoveUp,
	core.ActionMoveLeft:  core.ActionMoveRight,
	core.ActionMoveRight: core.ActionMoveLeft,
	core.ActionAimUp:     core.ActionAimDown,
	core.ActionAimDown:   core.ActionAimUp,
	core.ActionAimLeft:   core.ActionAimRight,
	core.ActionAimRight:  core.ActionAimLeft,
}

// HoldTracker turns key presses into per-tick input frames.
// Terminals report presses and auto-repeats but never releases, so a held
// action stays active until the window passes without another press.
// Edge actions are delivered to exactly one frame.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	edges    []core.Action
}

// NewHoldTracker creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records an action at time now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !a.IsHeld() {
		h.edges = append(h.edges, a)
		return
	}
	h.lastSeen[a] = now
	if opp, ok := opposites[a]; ok {
		delete(h.lastSeen, opp)
	}
}

// Frame builds the input for the tick at time now and consumes pending edges.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, seen := range h.lastSeen {
		if now.Sub(seen) > h.window {
			delete(h.lastSeen, a)
			continue
		}
		in.Set(a)
	}
	for _, a := range h.edges {
		in.Set(a)
	}
	h.edges = h.edges[:0]
	return in
}

// Reset forgets every held key and pending edge.
func (h *HoldTracker) Reset() {
	clear(h.lastSeen)
	h.edges = h.edges[:0]
}
