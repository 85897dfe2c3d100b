// Package geom provides the spatial helpers used by the simulation core.
// All functions are pure; positions and velocities are mgl64.Vec3 with
// y pointing up.
package geom

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultCollideThreshold is the contact distance used when a caller
// does not supply its own.
const DefaultCollideThreshold = 2.0

// DefaultPlatformThreshold is the horizontal radius for platform landing.
const DefaultPlatformThreshold = 3.0

// Distance returns the Euclidean distance between two points.
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// HorizontalDistance returns the distance between two points projected
// onto the xz plane.
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return math.Hypot(dx, dz)
}

// IsColliding reports whether two points are closer than threshold.
// Pass DefaultCollideThreshold unless the caller has a tuned radius.
func IsColliding(a, b mgl64.Vec3, threshold float64) bool {
	return Distance(a, b) < threshold
}

// IsOnPlatform reports whether a player at pos is standing on a platform
// at platPos: horizontal distance under threshold and the player between
// 0.5 and 3 units above the platform top. Both vertical bounds are
// exclusive. This is a point-in-band test, not a swept test; an entity
// that crosses the whole band within one tick is not detected.
func IsOnPlatform(pos, platPos mgl64.Vec3, threshold float64) bool {
	if HorizontalDistance(pos, platPos) >= threshold {
		return false
	}
	dy := pos.Y() - platPos.Y()
	return dy > 0.5 && dy < 3
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// RandRange returns a uniform value in [min, max) from rng.
func RandRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
