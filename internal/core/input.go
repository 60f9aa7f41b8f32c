package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionMoveUp              // W - move up
	ActionMoveDown            // S - move down
	ActionMoveLeft            // A - move left
	ActionMoveRight           // D - move right
	ActionAimUp               // Up arrow - aim/fire up
	ActionAimDown             // Down arrow - aim/fire down
	ActionAimLeft             // Left arrow - aim/fire left
	ActionAimRight            // Right arrow - aim/fire right
	ActionSwing               // Space - swing the sword
	ActionSwitch              // C - switch weapon
	ActionChooseFirst         // 1 - first prompt choice (gun)
	ActionChooseSecond        // 2 - second prompt choice (sword)
	ActionPause               // P - pause/unpause
	ActionQuit                // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionAimUp:
		return "AimUp"
	case ActionAimDown:
		return "AimDown"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionSwing:
		return "Swing"
	case ActionSwitch:
		return "Switch"
	case ActionChooseFirst:
		return "ChooseFirst"
	case ActionChooseSecond:
		return "ChooseSecond"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsHeld reports whether the action describes a key that stays down across
// frames (movement and aim) rather than a one-shot press.
func (a Action) IsHeld() bool {
	return a >= ActionMoveUp && a <= ActionAimRight
}

// InputFrame represents the input state for a single simulation tick.
// Held actions are present for every tick the key is down; edge actions only
// for the tick they were pressed.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
