package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseLoading, "Loading"},
		{PhasePlaying, "Playing"},
		{PhasePaused, "Paused"},
		{PhaseEnded, "Ended"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestSession_Counters(t *testing.T) {
	s := NewSession(3)

	assert.Equal(t, 1, s.CurrentLevel)
	assert.Equal(t, 3, s.Lives)

	s.AddScore(100)
	s.AddScore(-50) // ignored
	s.AddCoin()
	s.AddLife()

	assert.Equal(t, 100, s.Score)
	assert.Equal(t, 1, s.Coins)
	assert.Equal(t, 4, s.Lives)
}

func TestSession_AdvancePersistsScore(t *testing.T) {
	s := NewSession(3)
	s.AddScore(500)
	s.AddCoin()

	s.Advance()

	assert.Equal(t, 2, s.CurrentLevel)
	assert.Equal(t, 500, s.Score)
	assert.Equal(t, 1, s.Coins)
	assert.Equal(t, 3, s.Lives)
}

func TestSession_Restart(t *testing.T) {
	s := NewSession(3)
	s.AddScore(500)
	s.AddCoin()
	s.Lives = 1
	s.Advance()

	s.Restart(3)

	assert.Equal(t, 1, s.CurrentLevel)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Coins)
	assert.Equal(t, 3, s.Lives)
}
