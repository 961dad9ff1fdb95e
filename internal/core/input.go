package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, A - move left / previous help screen
	ActionRight              // Right arrow, D - move right / next help screen
	ActionUp                 // Up arrow, W - move up
	ActionDown               // Down arrow, S - move down
	ActionSelect             // Space - start game, pause/resume, dismiss help
	ActionBack               // Escape - back to demo mode
	ActionHelp               // H, ? - open the help carousel
	ActionToggleSound        // M - mute/unmute
	ActionDebug              // D with ctrl - diagnostic readout
	ActionSkinNext           // Shift+Right - next player skin
	ActionSkinPrev           // Shift+Left - previous player skin
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionSelect:
		return "Select"
	case ActionBack:
		return "Back"
	case ActionHelp:
		return "Help"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionDebug:
		return "Debug"
	case ActionSkinNext:
		return "SkinNext"
	case ActionSkinPrev:
		return "SkinPrev"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// Actions are kept in arrival order so that two presses in one frame replay the
// way the player typed them.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 4)}
}

// Set records an action for this frame. Repeated actions are kept.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of recorded actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
