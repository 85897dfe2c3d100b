package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/skylands/internal/domain/entity"
	"github.com/younwookim/skylands/internal/domain/geom"
	"github.com/younwookim/skylands/internal/infrastructure/config"
)

// Events receives gameplay notifications from the player system. The
// orchestrator implements it; the system never reaches outside its
// arguments.
type Events interface {
	ScoreAdded(points int)
	CoinCollected(t entity.CollectibleType)
	LifeGained()
	PlayerDamaged(remaining int)
	PlayerDied()
	EffectRequested(kind string, pos mgl64.Vec3)
}

// PlayerSystem runs the per-tick player simulation: input-driven
// movement, gravity integration, ground/platform resolution, pickup and
// hazard contact, and world boundary enforcement.
type PlayerSystem struct {
	tuning *config.Tuning
	events Events
	tick   uint64
}

// NewPlayerSystem creates a player system with the given tuning and
// event sink.
func NewPlayerSystem(tuning *config.Tuning, events Events) *PlayerSystem {
	return &PlayerSystem{tuning: tuning, events: events}
}

// Tick returns the number of simulation ticks run so far.
func (s *PlayerSystem) Tick() uint64 {
	return s.tick
}

// SetTuning swaps gameplay constants mid-session (live reload).
func (s *PlayerSystem) SetTuning(tuning *config.Tuning) {
	s.tuning = tuning
}

// Update advances the player one tick against the level's collections.
// A dead player is a no-op apart from the one-shot delayed death
// notification.
func (s *PlayerSystem) Update(p *entity.Player, lvl *entity.Level, in InputState) {
	s.tick++

	if !p.Alive {
		s.notifyDeath(p)
		return
	}

	wasAirborne := !p.Grounded
	s.applyMovement(p, in)
	s.integrate(p, wasAirborne)
	s.resolveGround(p, lvl.Platforms)
	s.resolveCollectibles(p, lvl.Collectibles)
	s.resolveHazards(p, lvl.Hazards)
	s.enforceBounds(p)
}

// applyMovement sets horizontal velocity directly from key state and
// handles the jump transition.
func (s *PlayerSystem) applyMovement(p *entity.Player, in InputState) {
	mv := s.tuning.Movement
	speed := mv.Speed
	if in.Run {
		speed *= mv.RunMultiplier
	}

	if in.HasMovement() {
		vx := in.AxisX() * speed
		vz := in.AxisZ() * speed
		p.Velocity = mgl64.Vec3{vx, p.Velocity.Y(), vz}
		p.Facing = math.Atan2(vx, vz)
	} else {
		// Decay toward zero when no key is held.
		p.Velocity = mgl64.Vec3{
			p.Velocity.X() * mv.Friction,
			p.Velocity.Y(),
			p.Velocity.Z() * mv.Friction,
		}
	}

	// Clamp horizontal speed.
	maxSpeed := speed * mv.MaxSpeedMultiplier
	if hs := p.HorizontalSpeed(); hs > maxSpeed {
		scale := maxSpeed / hs
		p.Velocity = mgl64.Vec3{
			p.Velocity.X() * scale,
			p.Velocity.Y(),
			p.Velocity.Z() * scale,
		}
	}

	if in.Jump && p.Grounded && !p.Jumping {
		p.Velocity = mgl64.Vec3{p.Velocity.X(), s.tuning.Jump.Force, p.Velocity.Z()}
		p.Grounded = false
		p.Jumping = true
	}
}

// integrate applies gravity while airborne and advances position by
// velocity. Plain Euler, one step per tick. Gravity keys off the state
// at tick start, so the jump tick leaves vertical velocity at exactly
// the jump impulse.
func (s *PlayerSystem) integrate(p *entity.Player, airborne bool) {
	if airborne {
		p.Velocity = mgl64.Vec3{
			p.Velocity.X(),
			p.Velocity.Y() - s.tuning.Jump.Gravity,
			p.Velocity.Z(),
		}
	}
	p.Position = p.Position.Add(p.Velocity)
}

// resolveGround lands the player on the floor plane or on a platform.
// When several platforms qualify the highest one wins, so landing is
// independent of descriptor order.
func (s *PlayerSystem) resolveGround(p *entity.Player, platforms []*entity.Platform) {
	floor := s.tuning.World.FloorY
	if p.Position.Y() <= floor {
		p.Position = mgl64.Vec3{p.Position.X(), floor, p.Position.Z()}
		p.Velocity = mgl64.Vec3{p.Velocity.X(), 0, p.Velocity.Z()}
		p.Grounded = true
		p.Jumping = false
		return
	}

	if p.Velocity.Y() > 0 {
		// Ascending: cannot land.
		p.Grounded = false
		return
	}

	var best *entity.Platform
	for _, plat := range platforms {
		if !geom.IsOnPlatform(p.Position, plat.Position, s.tuning.Contact.PlatformThreshold) {
			continue
		}
		if best == nil || plat.Position.Y() > best.Position.Y() {
			best = plat
		}
	}

	if best == nil {
		p.Grounded = false
		return
	}

	landY := best.Position.Y() + s.tuning.Contact.PlatformLandOffset
	p.Position = mgl64.Vec3{p.Position.X(), landY, p.Position.Z()}
	p.Velocity = mgl64.Vec3{p.Velocity.X(), 0, p.Velocity.Z()}
	p.Grounded = true
	p.Jumping = false
}

// resolveCollectibles picks up anything in reach. The Collected flag
// makes each pickup one-shot.
func (s *PlayerSystem) resolveCollectibles(p *entity.Player, collectibles []*entity.Collectible) {
	for _, c := range collectibles {
		if c.Collected {
			continue
		}
		if !geom.IsColliding(p.Position, c.Position, s.tuning.Contact.CollectRadius) {
			continue
		}
		if !c.Collect() {
			continue
		}

		s.events.ScoreAdded(c.Type.Score())
		if c.Type.IsCoin() {
			s.events.CoinCollected(c.Type)
		}
		if c.Type == entity.Heart {
			p.Lives++
			s.events.LifeGained()
		}
		s.events.EffectRequested("collect", c.Position)
	}
}

// resolveHazards applies contact damage and knockback. At most one
// hazard hit is processed per tick.
func (s *PlayerSystem) resolveHazards(p *entity.Player, hazards []*entity.Hazard) {
	for _, h := range hazards {
		if !geom.IsColliding(p.Position, h.Position, s.tuning.Contact.HazardRadius) {
			continue
		}
		s.damage(p, h.Damage)
		if p.Alive {
			// Knock the player back: reverse and double the
			// horizontal velocity, pop upward.
			p.Velocity = mgl64.Vec3{
				-p.Velocity.X() * 2,
				s.tuning.Feedback.KnockbackUp,
				-p.Velocity.Z() * 2,
			}
			p.Grounded = false
			s.events.EffectRequested("hit", h.Position)
		}
		return
	}
}

// enforceBounds handles the void fall and the world-radius clamp.
func (s *PlayerSystem) enforceBounds(p *entity.Player) {
	if p.Position.Y() < s.tuning.World.VoidY {
		s.damage(p, 1)
		p.Position = p.Spawn
		p.Velocity = mgl64.Vec3{}
		if p.Alive {
			p.Grounded = true
			p.Jumping = false
		}
		return
	}

	radius := s.tuning.World.Radius
	horiz := mgl64.Vec3{p.Position.X(), 0, p.Position.Z()}
	if d := horiz.Len(); d > radius {
		scale := radius / d
		p.Position = mgl64.Vec3{
			p.Position.X() * scale,
			p.Position.Y(),
			p.Position.Z() * scale,
		}
	}
}

// damage decrements lives, arms the damage flash and, at zero lives,
// kills the player. The death notification is deferred by
// DeathDelayTicks.
func (s *PlayerSystem) damage(p *entity.Player, amount int) {
	if amount < 1 {
		amount = 1
	}
	p.Lives -= amount
	if p.Lives < 0 {
		p.Lives = 0
	}
	p.FlashUntil = s.tick + uint64(s.tuning.Feedback.FlashTicks)
	s.events.PlayerDamaged(p.Lives)

	if p.Lives == 0 {
		p.Alive = false
		p.DiedAt = s.tick
	}
}

// notifyDeath emits PlayerDied once, DeathDelayTicks after death.
func (s *PlayerSystem) notifyDeath(p *entity.Player) {
	if p.DeathNotified {
		return
	}
	if s.tick < p.DiedAt+uint64(s.tuning.Feedback.DeathDelayTicks) {
		return
	}
	p.DeathNotified = true
	s.events.PlayerDied()
}
