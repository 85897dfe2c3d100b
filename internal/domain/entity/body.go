package entity

import "github.com/go-gl/mathgl/mgl64"

// Body holds the physical state shared by moving entities.
// y points up; the floor plane sits at y = 1.
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Facing   float64 // yaw in radians

	Grounded bool
	Jumping  bool
}

// HorizontalSpeed returns the speed of the body projected onto the
// xz plane.
func (b *Body) HorizontalSpeed() float64 {
	v := mgl64.Vec3{b.Velocity.X(), 0, b.Velocity.Z()}
	return v.Len()
}

// Stop zeroes all velocity components.
func (b *Body) Stop() {
	b.Velocity = mgl64.Vec3{}
}
