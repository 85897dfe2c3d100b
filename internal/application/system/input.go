package system

// InputState holds the logical actions derived from the host's held-key
// set for one simulation tick. Held fields reflect key state; Pressed
// fields are edge-triggered.
type InputState struct {
	Left     bool
	Right    bool
	Forward  bool
	Backward bool
	Run      bool
	Jump     bool

	RestartPressed bool
	NextPressed    bool
	PausePressed   bool
}

// HasMovement reports whether any directional key is held.
func (in InputState) HasMovement() bool {
	return in.Left || in.Right || in.Forward || in.Backward
}

// AxisX returns the left/right axis as -1, 0 or 1.
func (in InputState) AxisX() float64 {
	x := 0.0
	if in.Left {
		x -= 1
	}
	if in.Right {
		x += 1
	}
	return x
}

// AxisZ returns the forward/backward axis as -1, 0 or 1. Forward is
// negative z.
func (in InputState) AxisZ() float64 {
	z := 0.0
	if in.Forward {
		z -= 1
	}
	if in.Backward {
		z += 1
	}
	return z
}
