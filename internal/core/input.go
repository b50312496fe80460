package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys and mouse buttons to actions; the game
// consumes intents only.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - shift drop position left
	ActionRight          // D, Right arrow - shift drop position right
	ActionDrop           // Space, S, Down arrow - release the held shape
	ActionConfirm        // Enter - confirm
	ActionBack           // B, Escape - leave the game screen
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
	ActionDebug          // G - toggle the debug overlay
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
	case ActionDrop:
		return "Drop"
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
	case ActionDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// PointerKind classifies a pointer event relayed from the terminal mouse.
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerMove
	PointerDown
	PointerUp
)

// PointerEvent is a mouse event in screen cell coordinates. The game
// adapter converts cells to world pixels before applying it.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame represents the input state for a single simulation tick: the
// set of triggered actions plus the most recent pointer event. The platform
// buffers input between ticks and hands the frame to the game once per Step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the latest pointer event this frame; Kind is PointerNone
	// when no mouse input arrived.
	Pointer PointerEvent
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

// SetPointer records a pointer event for this frame. Later events replace
// earlier ones within the same frame; the game sees the newest position.
func (f *InputFrame) SetPointer(kind PointerKind, x, y int) {
	f.Pointer = PointerEvent{Kind: kind, X: x, Y: y}
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = PointerEvent{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
