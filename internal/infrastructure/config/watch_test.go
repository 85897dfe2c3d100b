package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsTuningWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("movement:\n  speed: 0.2\n"), 0o644))

	select {
	case got, ok := <-w.Events:
		require.True(t, ok)
		assert.Equal(t, path, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for tuning write")
	}
}

func TestWatcher_IgnoresNonTuningFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}

// Close must be safe while writes are still landing on the watched
// dir: the run goroutine owns the channels, so a racing send can never
// hit a closed channel.
func TestWatcher_CloseUnderLoad(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		path := filepath.Join(dir, "tuning.yaml")
		for i := 0; i < 200; i++ {
			_ = os.WriteFile(path, []byte("movement:\n  speed: 0.2\n"), 0o644)
		}
	}()

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "second close must be a no-op")
	<-done

	// Events drains and then reports closed, never panics.
	for range w.Events {
	}
	_, ok := <-w.Events
	assert.False(t, ok)
}
