package entity

import "github.com/go-gl/mathgl/mgl64"

// DefaultLives is the number of lives a fresh player starts with.
const DefaultLives = 3

// Player is the single controllable entity. It is created once per
// session and reset in place on respawn or level restart, never
// destroyed.
type Player struct {
	Body

	Lives int
	Alive bool

	Spawn mgl64.Vec3

	// FlashUntil is the simulation tick at which the damage flash
	// expires. Zero means no active flash.
	FlashUntil uint64

	// DiedAt records the tick the player died, for the delayed death
	// notification. Meaningful only while !Alive.
	DiedAt        uint64
	DeathNotified bool
}

// NewPlayer creates a player at the given spawn point.
func NewPlayer(spawn mgl64.Vec3, lives int) *Player {
	p := &Player{}
	p.Lives = lives
	p.Reset(spawn)
	return p
}

// Reset re-arms the player at spawn: alive, grounded, zero velocity.
// Lives are untouched; the caller decides whether the session keeps or
// restores them.
func (p *Player) Reset(spawn mgl64.Vec3) {
	p.Spawn = spawn
	p.Position = spawn
	p.Velocity = mgl64.Vec3{}
	p.Facing = 0
	p.Alive = true
	p.Grounded = true
	p.Jumping = false
	p.FlashUntil = 0
	p.DiedAt = 0
	p.DeathNotified = false
}

// Flashing reports whether the damage flash is active at tick.
func (p *Player) Flashing(tick uint64) bool {
	return p.FlashUntil > tick
}

// Status is a read-only snapshot for the orchestrator and HUD.
type Status struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Lives    int
	Alive    bool
	Grounded bool
	Jumping  bool
}

// Status returns a copy of the player's observable state.
func (p *Player) Status() Status {
	return Status{
		Position: p.Position,
		Velocity: p.Velocity,
		Lives:    p.Lives,
		Alive:    p.Alive,
		Grounded: p.Grounded,
		Jumping:  p.Jumping,
	}
}
