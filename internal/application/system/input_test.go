package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputState_HasMovement(t *testing.T) {
	assert.False(t, InputState{}.HasMovement())
	assert.True(t, InputState{Left: true}.HasMovement())
	assert.True(t, InputState{Backward: true}.HasMovement())
	assert.False(t, InputState{Jump: true, Run: true}.HasMovement())
}

func TestInputState_Axes(t *testing.T) {
	tests := []struct {
		name string
		in   InputState
		x, z float64
	}{
		{"idle", InputState{}, 0, 0},
		{"left", InputState{Left: true}, -1, 0},
		{"right", InputState{Right: true}, 1, 0},
		{"forward", InputState{Forward: true}, 0, -1},
		{"backward", InputState{Backward: true}, 0, 1},
		{"opposed cancels", InputState{Left: true, Right: true}, 0, 0},
		{"diagonal", InputState{Right: true, Forward: true}, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.x, tt.in.AxisX())
			assert.Equal(t, tt.z, tt.in.AxisZ())
		})
	}
}
