package entity

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Model is an opaque renderable handle owned by the frontend. The core
// never inspects it; it only carries it from the asset provider to the
// renderer.
type Model any

// Placeholder is the fallback model used when the asset provider cannot
// supply a real model for a type. Shape and color are deterministic per
// category and type so a half-loaded level still renders predictably.
type Placeholder struct {
	Shape PlaceholderShape
	Color color.RGBA
}

// PlaceholderShape selects the primitive the renderer draws.
type PlaceholderShape int

const (
	ShapeBox PlaceholderShape = iota
	ShapeSphere
	ShapeCone
)

// Transform is the shared spatial state of every level object.
// Rotation is stored in radians.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

// NewTransform returns a transform at pos with identity scale.
func NewTransform(pos mgl64.Vec3) Transform {
	return Transform{Position: pos, Scale: mgl64.Vec3{1, 1, 1}}
}

// Platform is a surface the player can stand on.
type Platform struct {
	Transform
	Type  PlatformType
	Model Model
}

// Collectible is a pickup. It is never removed mid-level; collecting it
// toggles Collected and hides it, and ResetCollectibles restores it.
type Collectible struct {
	Transform
	Type             CollectibleType
	Collected        bool
	Visible          bool
	OriginalPosition mgl64.Vec3
	Model            Model
}

// Collect marks the collectible picked up and hides it. Returns false
// if it was already collected, so pickup handling is idempotent per
// instance.
func (c *Collectible) Collect() bool {
	if c.Collected {
		return false
	}
	c.Collected = true
	c.Visible = false
	return true
}

// Reset restores the collectible to its loaded state.
func (c *Collectible) Reset() {
	c.Collected = false
	c.Visible = true
	c.Position = c.OriginalPosition
}

// Hazard damages the player on contact.
type Hazard struct {
	Transform
	Type   HazardType
	Damage int
	Model  Model
}

// Interactive is a touch-triggered object such as the goal flag.
type Interactive struct {
	Transform
	Action ActionTag
	Model  Model
}

// Decoration is inert environment scenery.
type Decoration struct {
	Transform
	Type  string
	Model Model
}
