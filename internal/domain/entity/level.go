package entity

import "github.com/go-gl/mathgl/mgl64"

// Goal describes a level's completion condition.
type Goal struct {
	Type GoalType
	// Target names the collectible counted by GoalCollectHearts.
	Target CollectibleType
	// Count is the minimum number required by GoalCollectHearts.
	Count int
}

// Level owns every object of the active play session. Objects are
// never shared across levels; clearing a level drops them all.
type Level struct {
	Number int
	Name   string
	Spawn  mgl64.Vec3
	Goal   Goal

	Platforms    []*Platform
	Collectibles []*Collectible
	Hazards      []*Hazard
	Interactives []*Interactive
	Decorations  []*Decoration

	// TotalCoins is cached at load time: the number of coin-counting
	// collectibles in the level.
	TotalCoins int
}

// CollectedCoins returns how many coin-counting collectibles have been
// picked up.
func (l *Level) CollectedCoins() int {
	n := 0
	for _, c := range l.Collectibles {
		if c.Collected && c.Type.IsCoin() {
			n++
		}
	}
	return n
}

// CollectedOf returns how many collectibles of the given type have been
// picked up.
func (l *Level) CollectedOf(t CollectibleType) int {
	n := 0
	for _, c := range l.Collectibles {
		if c.Collected && c.Type == t {
			n++
		}
	}
	return n
}

// ResetCollectibles restores every collectible to its loaded state:
// not collected, visible, original position.
func (l *Level) ResetCollectibles() {
	for _, c := range l.Collectibles {
		c.Reset()
	}
}

// Clear drops all object collections. Called before loading the next
// level so two levels' objects never coexist.
func (l *Level) Clear() {
	l.Platforms = nil
	l.Collectibles = nil
	l.Hazards = nil
	l.Interactives = nil
	l.Decorations = nil
	l.TotalCoins = 0
}
