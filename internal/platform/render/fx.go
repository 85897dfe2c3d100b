package render

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// particle is a short-lived cosmetic sprite spawned on pickups and
// hits. Particles live in world space and decay per frame.
type particle struct {
	pos  mgl64.Vec3
	vel  mgl64.Vec3
	col  color.RGBA
	life int
	max  int
}

// Particles implements game.FX. It is entirely cosmetic: the simulation
// only ever calls Spawn, and the frontend ticks and draws the rest.
type Particles struct {
	alive []particle
	rng   *rand.Rand
}

// NewParticles creates the effect pool. The RNG is separate from the
// simulation's so effects never perturb determinism.
func NewParticles(rng *rand.Rand) *Particles {
	return &Particles{rng: rng}
}

// Spawn emits a burst at pos. Kind selects count and color.
func (p *Particles) Spawn(kind string, pos mgl64.Vec3) {
	count := 8
	col := color.RGBA{255, 255, 255, 255}
	switch kind {
	case "collect":
		col = color.RGBA{255, 220, 80, 255}
	case "hit":
		col = color.RGBA{220, 60, 60, 255}
		count = 14
	case "death":
		col = color.RGBA{120, 120, 140, 255}
		count = 20
	}

	for i := 0; i < count; i++ {
		angle := p.rng.Float64() * 2 * math.Pi
		speed := 0.05 + p.rng.Float64()*0.1
		life := 20 + p.rng.Intn(20)
		p.alive = append(p.alive, particle{
			pos: pos,
			vel: mgl64.Vec3{
				math.Cos(angle) * speed,
				0.08 + p.rng.Float64()*0.08,
				math.Sin(angle) * speed,
			},
			col:  col,
			life: life,
			max:  life,
		})
	}
}

// Update advances all particles one frame and drops the dead ones.
func (p *Particles) Update() {
	out := p.alive[:0]
	for _, pt := range p.alive {
		pt.life--
		if pt.life <= 0 {
			continue
		}
		pt.vel[1] -= 0.008
		pt.pos = pt.pos.Add(pt.vel)
		out = append(out, pt)
	}
	p.alive = out
}

// Count returns the number of live particles.
func (p *Particles) Count() int {
	return len(p.alive)
}
