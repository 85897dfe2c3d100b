// Package level materializes level descriptors into entity collections
// and tracks goal completion.
package level

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/skylands/internal/domain/entity"
	"github.com/younwookim/skylands/internal/domain/geom"
	"github.com/younwookim/skylands/internal/infrastructure/config"
)

// AssetProvider supplies renderable models by category and type tag.
// A failed lookup is recoverable: the manager substitutes placeholder
// geometry and the level stays playable.
type AssetProvider interface {
	Load(category entity.Category, typeTag string) (entity.Model, error)
}

// Manager owns the active level: it loads descriptors, builds and
// destroys the object collections, evaluates the goal predicate and
// ticks cosmetic animation.
type Manager struct {
	loader *config.Loader
	assets AssetProvider
	tuning *config.Tuning
	lvl    *entity.Level
}

// NewManager creates a level manager. assets may be nil, in which case
// every object gets placeholder geometry.
func NewManager(loader *config.Loader, assets AssetProvider, tuning *config.Tuning) *Manager {
	return &Manager{loader: loader, assets: assets, tuning: tuning}
}

// Current returns the active level, or nil before the first Load.
func (m *Manager) Current() *entity.Level {
	return m.lvl
}

// HasLevel reports whether a descriptor exists for level n.
func (m *Manager) HasLevel(n int) bool {
	return m.loader.HasLevel(n)
}

// Load replaces the active level with the one built from descriptor n.
// The previous level's objects are cleared first so two levels never
// coexist. A missing or malformed descriptor fails the load and leaves
// no active level behind; a missing asset never does.
func (m *Manager) Load(n int) error {
	cfg, err := m.loader.LoadLevel(n)
	if err != nil {
		return fmt.Errorf("load level %d: %w", n, err)
	}

	if m.lvl != nil {
		m.lvl.Clear()
	}

	lvl := &entity.Level{
		Number: n,
		Name:   cfg.Name,
		Spawn:  mgl64.Vec3{0, m.tuning.World.FloorY, 0},
	}
	if cfg.Spawn != nil {
		lvl.Spawn = toVec(cfg.Spawn)
	}
	lvl.Goal = m.buildGoal(cfg.Goal)

	for _, obj := range cfg.Platforms {
		typ, known := entity.ParsePlatformType(obj.Type)
		if !known {
			log.Warn("unknown platform type, using placeholder", "level", n, "type", obj.Type)
		}
		lvl.Platforms = append(lvl.Platforms, &entity.Platform{
			Transform: toTransform(obj),
			Type:      typ,
			Model:     m.model(entity.CategoryPlatform, obj.Type, entity.ShapeBox, int(typ)),
		})
	}

	for _, obj := range cfg.Collectibles {
		typ, known := entity.ParseCollectibleType(obj.Type)
		if !known {
			log.Warn("unknown collectible type, using placeholder", "level", n, "type", obj.Type)
		}
		tr := toTransform(obj)
		c := &entity.Collectible{
			Transform:        tr,
			Type:             typ,
			Visible:          true,
			OriginalPosition: tr.Position,
			Model:            m.model(entity.CategoryCollectible, obj.Type, entity.ShapeSphere, int(typ)),
		}
		lvl.Collectibles = append(lvl.Collectibles, c)
		if typ.IsCoin() {
			lvl.TotalCoins++
		}
	}

	for _, obj := range cfg.Hazards {
		typ, known := entity.ParseHazardType(obj.Type)
		if !known {
			log.Warn("unknown hazard type, using placeholder", "level", n, "type", obj.Type)
		}
		damage := obj.Damage
		if damage < 1 {
			damage = 1
		}
		lvl.Hazards = append(lvl.Hazards, &entity.Hazard{
			Transform: toTransform(obj),
			Type:      typ,
			Damage:    damage,
			Model:     m.model(entity.CategoryHazard, obj.Type, entity.ShapeCone, int(typ)),
		})
	}

	for _, obj := range cfg.Interactive {
		action, known := entity.ParseActionTag(obj.Action)
		if !known {
			log.Warn("unknown interactive action", "level", n, "action", obj.Action)
		}
		lvl.Interactives = append(lvl.Interactives, &entity.Interactive{
			Transform: toTransform(obj),
			Action:    action,
			Model:     m.model(entity.CategoryInteractive, obj.Type, entity.ShapeCone, 0),
		})
	}

	for _, obj := range cfg.Environment {
		lvl.Decorations = append(lvl.Decorations, &entity.Decoration{
			Transform: toTransform(obj),
			Type:      obj.Type,
			Model:     m.model(entity.CategoryDecoration, obj.Type, entity.ShapeBox, len(obj.Type)),
		})
	}

	if lvl.Goal.Type == entity.GoalCollectAllCoins && lvl.TotalCoins == 0 {
		log.Warn("collect_all_coins goal with no coins; level cannot complete", "level", n)
	}

	m.lvl = lvl
	log.Info("level loaded", "level", n, "name", lvl.Name,
		"platforms", len(lvl.Platforms), "collectibles", len(lvl.Collectibles),
		"hazards", len(lvl.Hazards))
	return nil
}

// CheckComplete evaluates the level's goal predicate against the
// current object state and player position.
func (m *Manager) CheckComplete(p *entity.Player) bool {
	if m.lvl == nil {
		return false
	}
	switch m.lvl.Goal.Type {
	case entity.GoalCollectAllCoins:
		return m.lvl.TotalCoins > 0 && m.lvl.CollectedCoins() >= m.lvl.TotalCoins
	case entity.GoalReachFlag:
		for _, obj := range m.lvl.Interactives {
			if obj.Action != entity.ActionFlag {
				continue
			}
			if geom.IsColliding(p.Position, obj.Position, m.tuning.Contact.FlagRadius) {
				return true
			}
		}
		return false
	case entity.GoalCollectHearts:
		return m.lvl.CollectedOf(m.lvl.Goal.Target) >= m.lvl.Goal.Count
	default:
		return false
	}
}

// ResetCollectibles restores every collectible to its loaded state.
// Used on level restart, not on level advance.
func (m *Manager) ResetCollectibles() {
	if m.lvl != nil {
		m.lvl.ResetCollectibles()
	}
}

// Animate ticks the cosmetic spin and bob of uncollected pickups and
// the goal flag. Gameplay state is untouched; the bob recenters on the
// stored original position so ResetCollectibles stays exact.
func (m *Manager) Animate(tick uint64) {
	if m.lvl == nil {
		return
	}
	t := float64(tick)
	for _, c := range m.lvl.Collectibles {
		if c.Collected {
			continue
		}
		c.Rotation = mgl64.Vec3{c.Rotation.X(), c.Rotation.Y() + 0.05, c.Rotation.Z()}
		bob := 0.25 * math.Sin(t*0.05)
		c.Position = mgl64.Vec3{c.OriginalPosition.X(), c.OriginalPosition.Y() + bob, c.OriginalPosition.Z()}
	}
	for _, obj := range m.lvl.Interactives {
		if obj.Action == entity.ActionFlag {
			obj.Rotation = mgl64.Vec3{obj.Rotation.X(), obj.Rotation.Y() + 0.02, obj.Rotation.Z()}
		}
	}
}

// model resolves an asset, falling back to deterministic placeholder
// geometry when the provider fails or is absent.
func (m *Manager) model(cat entity.Category, typeTag string, shape entity.PlaceholderShape, typeIndex int) entity.Model {
	if m.assets != nil {
		model, err := m.assets.Load(cat, typeTag)
		if err == nil {
			return model
		}
		log.Warn("asset load failed, using placeholder", "category", cat.String(), "type", typeTag, "err", err)
	}
	return entity.Placeholder{Shape: shape, Color: entity.PlaceholderColor(typeIndex)}
}

func (m *Manager) buildGoal(cfg *config.GoalConfig) entity.Goal {
	goal := entity.Goal{Type: entity.GoalCollectAllCoins, Target: entity.Heart, Count: 1}
	if cfg == nil {
		return goal
	}
	typ, known := entity.ParseGoalType(cfg.Type)
	if !known {
		log.Warn("unknown goal type, defaulting to collect_all_coins", "type", cfg.Type)
	}
	goal.Type = typ
	if cfg.Item != "" {
		if target, ok := entity.ParseCollectibleType(cfg.Item); ok {
			goal.Target = target
		} else {
			log.Warn("unknown goal item, defaulting to heart", "item", cfg.Item)
		}
	}
	if cfg.Count > 0 {
		goal.Count = cfg.Count
	}
	return goal
}

func toTransform(obj config.ObjectConfig) entity.Transform {
	tr := entity.Transform{Scale: mgl64.Vec3{1, 1, 1}}
	if obj.Position != nil {
		tr.Position = toVec(obj.Position)
	}
	if obj.Rotation != nil {
		tr.Rotation = mgl64.Vec3{
			geom.DegToRad(obj.Rotation.X),
			geom.DegToRad(obj.Rotation.Y),
			geom.DegToRad(obj.Rotation.Z),
		}
	}
	if obj.Scale != nil {
		tr.Scale = toVec(obj.Scale)
	}
	return tr
}

func toVec(v *config.VectorConfig) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
