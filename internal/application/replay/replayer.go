package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/skylands/internal/application/system"
)

// Replayer plays back recorded input, one frame per simulation tick.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data.
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Load reads replay data from a file.
func Load(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the input for the current tick and advances. ok is
// false once the recording is exhausted.
func (r *Replayer) Next() (in system.InputState, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.ToInput(), true
}

// CurrentFrame returns the current frame number.
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of recorded frames.
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the RNG seed the session was recorded with.
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Level returns the level the recording started on.
func (r *Replayer) Level() int {
	return r.data.Level
}

// Reset rewinds the replayer to the first frame.
func (r *Replayer) Reset() {
	r.frame = 0
}
