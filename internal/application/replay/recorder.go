package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/skylands/internal/application/system"
)

// Recorder captures per-tick input for later playback.
type Recorder struct {
	data  ReplayData
	frame int
}

// NewRecorder creates a recorder for a session starting on the given
// level with the given RNG seed.
func NewRecorder(seed int64, level int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   "1.0",
			Seed:      seed,
			Level:     level,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
	}
}

// Record appends one tick's input.
func (r *Recorder) Record(in system.InputState) {
	r.data.Frames = append(r.data.Frames, FromInput(r.frame, in))
	r.frame++
}

// Frames returns the number of recorded ticks.
func (r *Recorder) Frames() int {
	return r.frame
}

// Data returns the recording so far.
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the recording to a file.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create replay file: %w", err)
	}
	defer func() { _ = file.Close() }()

	enc := json.NewEncoder(file)
	enc.SetIndent("", " ")
	if err := enc.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}
