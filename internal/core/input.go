package core

// Action is a semantic input, decoupled from the keys that produce it.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionDown
	ActionUp
	ActionRight
	ActionConfirm // menu selection
	ActionBack    // leave the current screen
	ActionRestart // abandon the run and start over
	ActionQuit
	ActionPause // toggle

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "none",
	ActionLeft:    "left",
	ActionDown:    "down",
	ActionUp:      "up",
	ActionRight:   "right",
	ActionConfirm: "confirm",
	ActionBack:    "back",
	ActionRestart: "restart",
	ActionQuit:    "quit",
	ActionPause:   "pause",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// InputFrame is the set of actions sampled during one frame.
// The zero value is an empty frame and frames are copied by value.
type InputFrame struct {
	set uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// InputOf builds a frame with the given actions set.
func InputOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.set |= 1 << a
}

// Has reports whether a is active.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.set&(1<<a) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.set == 0
}

// Clear drops every action.
func (f *InputFrame) Clear() {
	f.set = 0
}

// Actions lists the active actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
