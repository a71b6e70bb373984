package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move aim cursor up
	ActionDown           // S, Down arrow - move aim cursor down
	ActionLeft           // A, Left arrow - move aim cursor left
	ActionRight          // D, Right arrow - move aim cursor right
	ActionFire           // Space - toggle a held touch at the aim cursor
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game
	ActionPause          // P - pause/unpause game
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerKind describes what a pointer (mouse or touch) did during a frame.
type PointerKind int

const (
	PointerNone    PointerKind = iota
	PointerPress               // A touch began
	PointerDrag                // The held touch moved
	PointerRelease             // The touch ended
)

// Pointer is the last pointer event of a frame, in screen cells.
type Pointer struct {
	Kind PointerKind
	X, Y int
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds the most recent pointer event, if any.
	Pointer Pointer

	// deferred is a release that followed a press within this frame.
	// Clear moves it into the next frame so a quick click still lands.
	deferred *Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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

// SetPointer records a pointer event. A press or release is never
// overwritten by a later drag within the same frame. A release after a
// press is held back until the next frame.
func (f *InputFrame) SetPointer(p Pointer) {
	switch p.Kind {
	case PointerDrag:
		if f.deferred != nil || f.Pointer.Kind == PointerRelease {
			return
		}
		if f.Pointer.Kind == PointerPress {
			f.Pointer.X, f.Pointer.Y = p.X, p.Y
			return
		}
	case PointerRelease:
		if f.Pointer.Kind == PointerPress {
			f.deferred = &p
			return
		}
	case PointerPress:
		// A release in between is superseded by the new touch.
		f.deferred = nil
	}
	f.Pointer = p
}

// HasDeferredRelease reports whether a release is waiting for the next frame.
func (f InputFrame) HasDeferredRelease() bool {
	return f.deferred != nil
}

// Clear resets all actions for the next frame. A deferred release becomes
// the next frame's pointer event.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
	if f.deferred != nil {
		f.Pointer = *f.deferred
		f.deferred = nil
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	if f.deferred != nil {
		d := *f.deferred
		clone.deferred = &d
	}
	return clone
}
