package state

// Phase represents the current state of the game
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePlaying
	PhasePaused
	PhaseEnded
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}
