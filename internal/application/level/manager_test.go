package level

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skylands/internal/domain/entity"
	"github.com/younwookim/skylands/internal/infrastructure/config"
)

const testLevelJSON = `{
  "id": "l1",
  "name": "First Steps",
  "spawn": {"x": 0, "y": 1, "z": 0},
  "goal": {"type": "collect_all_coins"},
  "platforms": [
    {"type": "grass", "position": {"x": 4, "y": 3, "z": 0}},
    {"type": "mystery-slab", "position": {"x": 8, "y": 5, "z": 0}, "rotation": {"x": 0, "y": 90, "z": 0}}
  ],
  "collectibles": [
    {"type": "coin-gold", "position": {"x": 4, "y": 4.5, "z": 0}},
    {"type": "coin-silver", "position": {"x": 8, "y": 6.5, "z": 0}},
    {"type": "heart", "position": {"x": 0, "y": 2, "z": 4}}
  ],
  "hazards": [
    {"type": "spikes", "position": {"x": 6, "y": 1, "z": 0}}
  ],
  "environment": [
    {"type": "tree", "position": {"x": -5, "y": 1, "z": -5}}
  ],
  "interactive": [
    {"type": "flag", "action": "flag", "position": {"x": 12, "y": 6, "z": 0}}
  ]
}`

const flagLevelJSON = `{
  "id": "l2",
  "goal": {"type": "reach_flag"},
  "platforms": [],
  "collectibles": [],
  "hazards": [],
  "environment": [],
  "interactive": [
    {"type": "flag", "action": "flag", "position": {"x": 10, "y": 1, "z": 0}}
  ]
}`

const heartsLevelJSON = `{
  "id": "l3",
  "goal": {"type": "collect_hearts", "item": "heart", "count": 2},
  "platforms": [],
  "collectibles": [
    {"type": "heart", "position": {"x": 1, "y": 1, "z": 0}},
    {"type": "heart", "position": {"x": 2, "y": 1, "z": 0}},
    {"type": "heart", "position": {"x": 3, "y": 1, "z": 0}}
  ],
  "hazards": [],
  "environment": [],
  "interactive": []
}`

type failingAssets struct{}

func (failingAssets) Load(entity.Category, string) (entity.Model, error) {
	return nil, errors.New("asset not found")
}

type stubAssets struct{ loaded []string }

func (a *stubAssets) Load(_ entity.Category, typeTag string) (entity.Model, error) {
	a.loaded = append(a.loaded, typeTag)
	return "model:" + typeTag, nil
}

func newTestManager(t *testing.T, assets AssetProvider) *Manager {
	t.Helper()
	fsys := fstest.MapFS{
		"level1.json": &fstest.MapFile{Data: []byte(testLevelJSON)},
		"level2.json": &fstest.MapFile{Data: []byte(flagLevelJSON)},
		"level3.json": &fstest.MapFile{Data: []byte(heartsLevelJSON)},
		"level4.json": &fstest.MapFile{Data: []byte(`{"broken":`)},
	}
	return NewManager(config.NewFSLoader(fsys), assets, config.DefaultTuning())
}

func TestManager_Load(t *testing.T) {
	m := newTestManager(t, nil)

	require.NoError(t, m.Load(1))
	lvl := m.Current()
	require.NotNil(t, lvl)

	assert.Equal(t, 1, lvl.Number)
	assert.Equal(t, "First Steps", lvl.Name)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, lvl.Spawn)
	assert.Equal(t, entity.GoalCollectAllCoins, lvl.Goal.Type)

	require.Len(t, lvl.Platforms, 2)
	assert.Equal(t, entity.PlatformGrass, lvl.Platforms[0].Type)
	assert.Equal(t, entity.PlatformGeneric, lvl.Platforms[1].Type, "unknown type falls back to generic")
	assert.InDelta(t, 1.5707963, lvl.Platforms[1].Rotation.Y(), 1e-6, "descriptor degrees become radians")

	require.Len(t, lvl.Collectibles, 3)
	assert.Equal(t, 2, lvl.TotalCoins, "hearts do not count as coins")
	assert.Equal(t, lvl.Collectibles[0].Position, lvl.Collectibles[0].OriginalPosition)
	assert.True(t, lvl.Collectibles[0].Visible)

	require.Len(t, lvl.Hazards, 1)
	assert.Equal(t, 1, lvl.Hazards[0].Damage, "unset damage defaults to 1")

	require.Len(t, lvl.Interactives, 1)
	assert.Equal(t, entity.ActionFlag, lvl.Interactives[0].Action)
	require.Len(t, lvl.Decorations, 1)
}

func TestManager_Load_FailureLeavesLevel(t *testing.T) {
	m := newTestManager(t, nil)
	require.NoError(t, m.Load(1))
	before := m.Current()

	assert.Error(t, m.Load(99), "missing descriptor")
	assert.Error(t, m.Load(4), "malformed descriptor")
	assert.Same(t, before, m.Current(), "failed load keeps the running level")
}

func TestManager_Load_ReplacesPreviousLevel(t *testing.T) {
	m := newTestManager(t, nil)
	require.NoError(t, m.Load(1))
	first := m.Current()

	require.NoError(t, m.Load(2))

	assert.NotSame(t, first, m.Current())
	assert.Empty(t, first.Collectibles, "previous level's objects are cleared")
	assert.Equal(t, 2, m.Current().Number)
}

func TestManager_AssetFallback(t *testing.T) {
	m := newTestManager(t, failingAssets{})
	require.NoError(t, m.Load(1))

	for _, p := range m.Current().Platforms {
		ph, ok := p.Model.(entity.Placeholder)
		require.True(t, ok, "failed asset must yield a placeholder")
		assert.Equal(t, entity.ShapeBox, ph.Shape)
	}
	ph0 := m.Current().Platforms[0].Model.(entity.Placeholder)
	assert.Equal(t, entity.PlaceholderColor(int(entity.PlatformGrass)), ph0.Color)
}

func TestManager_AssetProviderUsed(t *testing.T) {
	assets := &stubAssets{}
	m := newTestManager(t, assets)
	require.NoError(t, m.Load(1))

	assert.Equal(t, "model:grass", m.Current().Platforms[0].Model)
	assert.Contains(t, assets.loaded, "coin-gold")
}

func TestManager_CheckComplete_CollectAllCoins(t *testing.T) {
	m := newTestManager(t, nil)
	require.NoError(t, m.Load(1))
	p := entity.NewPlayer(m.Current().Spawn, entity.DefaultLives)

	assert.False(t, m.CheckComplete(p))

	m.Current().Collectibles[0].Collect()
	assert.False(t, m.CheckComplete(p), "one of two coins")

	m.Current().Collectibles[2].Collect() // heart
	assert.False(t, m.CheckComplete(p), "hearts do not complete a coin goal")

	m.Current().Collectibles[1].Collect()
	assert.True(t, m.CheckComplete(p))
}

func TestManager_CheckComplete_ReachFlag(t *testing.T) {
	m := newTestManager(t, nil)
	require.NoError(t, m.Load(2))
	p := entity.NewPlayer(mgl64.Vec3{0, 1, 0}, entity.DefaultLives)

	assert.False(t, m.CheckComplete(p))

	p.Position = mgl64.Vec3{9, 1, 0}
	assert.True(t, m.CheckComplete(p), "within flag radius")
}

func TestManager_CheckComplete_CollectHearts(t *testing.T) {
	m := newTestManager(t, nil)
	require.NoError(t, m.Load(3))
	p := entity.NewPlayer(mgl64.Vec3{0, 1, 0}, entity.DefaultLives)

	assert.False(t, m.CheckComplete(p))

	m.Current().Collectibles[0].Collect()
	assert.False(t, m.CheckComplete(p))

	m.Current().Collectibles[1].Collect()
	assert.True(t, m.CheckComplete(p), "two of three hearts meet count=2")

	m.Current().Collectibles[2].Collect()
	assert.True(t, m.CheckComplete(p), "overshooting keeps it true")
}

func TestManager_Animate_CosmeticOnly(t *testing.T) {
	m := newTestManager(t, nil)
	require.NoError(t, m.Load(1))
	c := m.Current().Collectibles[0]
	origY := c.OriginalPosition.Y()

	for tick := uint64(1); tick <= 40; tick++ {
		m.Animate(tick)
	}

	assert.NotZero(t, c.Rotation.Y(), "spin advanced")
	assert.InDelta(t, origY, c.Position.Y(), 0.26, "bob stays near the original position")
	assert.False(t, c.Collected)

	m.ResetCollectibles()
	assert.Equal(t, c.OriginalPosition, c.Position, "reset restores the exact original position")
}

func TestManager_Animate_SkipsCollected(t *testing.T) {
	m := newTestManager(t, nil)
	require.NoError(t, m.Load(1))
	c := m.Current().Collectibles[0]
	c.Collect()
	rot := c.Rotation

	m.Animate(10)

	assert.Equal(t, rot, c.Rotation)
}
