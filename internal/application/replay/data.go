package replay

import "github.com/younwookim/skylands/internal/application/system"

// FrameInput records input state for a single simulation tick.
type FrameInput struct {
	F  int  `json:"f"`            // Tick number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	FW bool `json:"fw,omitempty"` // Forward
	BW bool `json:"bw,omitempty"` // Backward
	RN bool `json:"rn,omitempty"` // Run modifier
	J  bool `json:"j,omitempty"`  // Jump
	RS bool `json:"rs,omitempty"` // Restart level pressed
	NX bool `json:"nx,omitempty"` // Next level pressed
	P  bool `json:"p,omitempty"`  // Pause pressed
}

// ReplayData contains everything needed to re-run a session.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// ToInput converts a recorded frame back to an input state.
func (fi FrameInput) ToInput() system.InputState {
	return system.InputState{
		Left:           fi.L,
		Right:          fi.R,
		Forward:        fi.FW,
		Backward:       fi.BW,
		Run:            fi.RN,
		Jump:           fi.J,
		RestartPressed: fi.RS,
		NextPressed:    fi.NX,
		PausePressed:   fi.P,
	}
}

// FromInput converts an input state to a recorded frame.
func FromInput(tick int, in system.InputState) FrameInput {
	return FrameInput{
		F:  tick,
		L:  in.Left,
		R:  in.Right,
		FW: in.Forward,
		BW: in.Backward,
		RN: in.Run,
		J:  in.Jump,
		RS: in.RestartPressed,
		NX: in.NextPressed,
		P:  in.PausePressed,
	}
}
