package render

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skylands/internal/domain/entity"
)

func TestAssets_KnownTags(t *testing.T) {
	a := NewAssets()

	model, err := a.Load(entity.CategoryCollectible, "coin-gold")
	require.NoError(t, err)
	style, ok := model.(Style)
	require.True(t, ok)
	assert.Equal(t, entity.ShapeSphere, style.Shape)

	_, err = a.Load(entity.CategoryPlatform, "grass")
	assert.NoError(t, err)
	_, err = a.Load(entity.CategoryHazard, "spikes")
	assert.NoError(t, err)
}

func TestAssets_UnknownTagFails(t *testing.T) {
	a := NewAssets()
	_, err := a.Load(entity.CategoryPlatform, "marshmallow")
	assert.Error(t, err)
}

func TestParticles_SpawnAndDecay(t *testing.T) {
	p := NewParticles(rand.New(rand.NewSource(1)))
	p.Spawn("collect", mgl64.Vec3{0, 2, 0})
	require.Greater(t, p.Count(), 0)

	// Particles cap out at 40 life ticks.
	for i := 0; i < 50; i++ {
		p.Update()
	}
	assert.Zero(t, p.Count())
}

func TestParticles_UpdateMovesParticles(t *testing.T) {
	p := NewParticles(rand.New(rand.NewSource(1)))
	p.Spawn("hit", mgl64.Vec3{5, 2, 5})
	before := p.alive[0].pos
	p.Update()
	assert.NotEqual(t, before, p.alive[0].pos)
}
