package core

// Action represents a semantic input edge, abstracted from physical touches or keys.
type Action int

const (
	ActionNone        Action = iota
	ActionTap                // Primary touch just occurred - start or restart
	ActionRecalibrate        // Two simultaneous touches - capture a new zero tilt
	ActionQuit               // Leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTap:
		return "Tap"
	case ActionRecalibrate:
		return "Recalibrate"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MotionSample is one already-read motion sensor reading.
// The gyro steering uses AngularRate; the tilt steering uses the
// accelerometer components and the display rotation.
type MotionSample struct {
	AngularRate float64 // Rotation rate around the screen normal, rad/s
	AccelX      float64 // Raw linear acceleration, m/s^2 (gravity included)
	AccelY      float64
	Rotation    int // Display rotation in degrees: 0, 90, 180 or 270
}

// Sanitized returns a copy with every non-finite component replaced by zero.
func (m MotionSample) Sanitized() MotionSample {
	m.AngularRate = Finite(m.AngularRate)
	m.AccelX = Finite(m.AccelX)
	m.AccelY = Finite(m.AccelY)
	return m
}

// InputFrame is the input for a single frame: the edge actions that fired
// since the previous frame plus the latest motion sample.
type InputFrame struct {
	Actions map[Action]bool
	Motion  MotionSample
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

// Clear resets all actions for the next frame. The motion sample is kept
// since sensors report levels, not edges.
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
	clone.Motion = f.Motion
	return clone
}
