package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     mgl64.Vec3
		expected float64
	}{
		{"same point", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}, 0},
		{"unit x", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 1},
		{"3-4-5 in xz", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 4}, 5},
		{"negative coords", mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1}, 2 * math.Sqrt(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), 1e-9)
		})
	}
}

func TestHorizontalDistance_IgnoresY(t *testing.T) {
	a := mgl64.Vec3{0, 100, 0}
	b := mgl64.Vec3{3, -50, 4}
	assert.InDelta(t, 5.0, HorizontalDistance(a, b), 1e-9)
}

func TestIsColliding(t *testing.T) {
	origin := mgl64.Vec3{0, 0, 0}

	assert.True(t, IsColliding(origin, mgl64.Vec3{1, 0, 0}, DefaultCollideThreshold))
	assert.False(t, IsColliding(origin, mgl64.Vec3{2, 0, 0}, DefaultCollideThreshold), "exact threshold is not a collision")
	assert.False(t, IsColliding(origin, mgl64.Vec3{3, 0, 0}, DefaultCollideThreshold))
	assert.True(t, IsColliding(origin, mgl64.Vec3{3, 0, 0}, 3.5), "custom threshold")
}

func TestIsOnPlatform(t *testing.T) {
	plat := mgl64.Vec3{0, 5, 0}

	tests := []struct {
		name     string
		pos      mgl64.Vec3
		expected bool
	}{
		{"standing above", mgl64.Vec3{0, 6, 0}, true},
		{"edge of band low", mgl64.Vec3{0, 5.5, 0}, false},
		{"just above low bound", mgl64.Vec3{0, 5.51, 0}, true},
		{"edge of band high", mgl64.Vec3{0, 8, 0}, false},
		{"just below high bound", mgl64.Vec3{0, 7.99, 0}, true},
		{"below platform", mgl64.Vec3{0, 4, 0}, false},
		{"too far horizontally", mgl64.Vec3{3, 6, 0}, false},
		{"inside horizontal radius", mgl64.Vec3{2.9, 6, 0}, true},
		{"horizontal uses xz only", mgl64.Vec3{2, 6, 2.3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsOnPlatform(tt.pos, plat, DefaultPlatformThreshold))
		})
	}
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 0.0, Lerp(0, 10, 0), 1e-9)
	assert.InDelta(t, 10.0, Lerp(0, 10, 1), 1e-9)
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
	assert.InDelta(t, -5.0, Lerp(0, -10, 0.5), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(10, 0, 5))
	assert.Equal(t, 0.0, Clamp(-10, 0, 5))
	assert.Equal(t, 3.0, Clamp(3, 0, 5))
}

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-9)
	assert.InDelta(t, math.Pi/2, DegToRad(90), 1e-9)
	assert.InDelta(t, 180.0, RadToDeg(math.Pi), 1e-9)
	assert.InDelta(t, 45.0, RadToDeg(DegToRad(45)), 1e-9)
}

func TestRandRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		v := RandRange(rng, -2, 7)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 7.0)
	}
}
