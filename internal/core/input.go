package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space - launch, shoot, hard drop
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart from any state
	ActionConfirm        // Enter - start game, continue after a win
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a name produced by Action.String back to an Action.
func ParseAction(name string) (Action, bool) {
	for a := ActionNone; a <= ActionQuit; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// IsDirection reports whether the action is one of the four directions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Direction returns the single directional intent of this frame.
// Vertical intents take precedence over horizontal ones.
func (f InputFrame) Direction() Action {
	switch {
	case f.Has(ActionUp):
		return ActionUp
	case f.Has(ActionDown):
		return ActionDown
	case f.Has(ActionLeft):
		return ActionLeft
	case f.Has(ActionRight):
		return ActionRight
	}
	return ActionNone
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// InputBuffer latches intents that arrive between ticks.
// Input handlers call Press; the clock owner calls Drain once per tick.
// Opposite directions on the same axis resolve to the latest press, so a
// drained frame carries at most one direction per axis.
type InputBuffer struct {
	horizontal Action
	vertical   Action
	actions    map[Action]bool
}

// NewInputBuffer creates an empty buffer.
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{actions: make(map[Action]bool)}
}

// Press latches an action until the next Drain.
func (b *InputBuffer) Press(a Action) {
	switch a {
	case ActionNone:
		return
	case ActionLeft, ActionRight:
		b.horizontal = a
	case ActionUp, ActionDown:
		b.vertical = a
	default:
		if b.actions == nil {
			b.actions = make(map[Action]bool)
		}
		b.actions[a] = true
	}
}

// Pending reports whether anything is latched.
func (b *InputBuffer) Pending() bool {
	return b.horizontal != ActionNone || b.vertical != ActionNone || len(b.actions) > 0
}

// Drain returns the latched frame and clears the buffer.
func (b *InputBuffer) Drain() InputFrame {
	f := NewInputFrame()
	if b.horizontal != ActionNone {
		f.Set(b.horizontal)
	}
	if b.vertical != ActionNone {
		f.Set(b.vertical)
	}
	for a := range b.actions {
		f.Set(a)
	}
	b.horizontal = ActionNone
	b.vertical = ActionNone
	clear(b.actions)
	return f
}
