package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skylands/internal/application/system"
)

func TestFrameInput_RoundTrip(t *testing.T) {
	in := system.InputState{
		Left:         true,
		Forward:      true,
		Run:          true,
		Jump:         true,
		PausePressed: true,
	}

	assert.Equal(t, in, FromInput(7, in).ToInput())
}

func TestRecorder_RecordAndReplay(t *testing.T) {
	rec := NewRecorder(42, 3)

	inputs := []system.InputState{
		{Right: true},
		{Right: true, Jump: true},
		{},
		{Left: true, Run: true},
	}
	for _, in := range inputs {
		rec.Record(in)
	}
	assert.Equal(t, 4, rec.Frames())

	r := NewReplayer(rec.Data())
	assert.Equal(t, int64(42), r.Seed())
	assert.Equal(t, 3, r.Level())
	assert.Equal(t, 4, r.TotalFrames())

	for i, want := range inputs {
		got, ok := r.Next()
		require.True(t, ok, "frame %d", i)
		assert.Equal(t, want, got, "frame %d", i)
	}

	_, ok := r.Next()
	assert.False(t, ok, "recording exhausted")

	r.Reset()
	got, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, inputs[0], got)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(99, 1)
	rec.Record(system.InputState{Jump: true})
	rec.Record(system.InputState{Right: true, Run: true})

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	data, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, int64(99), data.Seed)
	assert.Equal(t, 1, data.Level)
	require.Len(t, data.Frames, 2)
	assert.True(t, data.Frames[0].J)
	assert.True(t, data.Frames[1].RN)
}

func TestRecorder_SaveEmptyFails(t *testing.T) {
	rec := NewRecorder(1, 1)
	assert.Error(t, rec.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
