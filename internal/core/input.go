package core

// Action represents a semantic game action, abstracted from physical key
// presses or sensor triggers. The platform maps keys (or, in an installation,
// serial button events) to actions; the game only ever sees actions.
type Action int

const (
	ActionNone Action = iota

	// Lane fire actions. ActionLane1..ActionLane8 are consecutive so that
	// LaneAction/Lane can convert between lane indices and actions.
	ActionLane1
	ActionLane2
	ActionLane3
	ActionLane4
	ActionLane5
	ActionLane6
	ActionLane7
	ActionLane8

	// Ability actions.
	ActionPowerReset // reset all lane fire cooldowns
	ActionPowerClear // clear every asteroid on the field
	ActionPowerHeal  // restore health

	ActionReset // reinitialize the game (always allowed, even mid-run)
	ActionPause // pause/unpause
	ActionQuit  // exit game/session
)

// LaneCount is the number of fire lanes the input layer knows about.
const LaneCount = 8

// LaneAction returns the fire action for the given lane index.
// The lane must be in [0, LaneCount).
func LaneAction(lane int) Action {
	return ActionLane1 + Action(lane)
}

// Lane returns the lane index for a fire action, and whether the action
// is a lane fire at all.
func (a Action) Lane() (int, bool) {
	if a < ActionLane1 || a > ActionLane8 {
		return 0, false
	}
	return int(a - ActionLane1), true
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if lane, ok := a.Lane(); ok {
		return "FireLane" + string(rune('1'+lane))
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionPowerReset:
		return "PowerReset"
	case ActionPowerClear:
		return "PowerClear"
	case ActionPowerHeal:
		return "PowerHeal"
	case ActionReset:
		return "Reset"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects all actions triggered during one simulation tick.
// The platform fills it from pending input events in arrival order and the
// game consumes it synchronously at the top of Step.
type InputFrame struct {
	Actions map[Action]bool
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
