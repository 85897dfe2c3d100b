package entity

import "image/color"

// Category identifies which level collection an object belongs to.
type Category int

const (
	CategoryPlatform Category = iota
	CategoryCollectible
	CategoryHazard
	CategoryInteractive
	CategoryDecoration
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryPlatform:
		return "platform"
	case CategoryCollectible:
		return "collectible"
	case CategoryHazard:
		return "hazard"
	case CategoryInteractive:
		return "interactive"
	case CategoryDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// CollectibleType enumerates the pickups a level may contain.
type CollectibleType int

const (
	CoinGold CollectibleType = iota
	CoinSilver
	CoinBronze
	Heart
	Jewel
	Key
	CollectibleGeneric
)

// ParseCollectibleType maps a descriptor tag to its type. Unknown tags
// map to CollectibleGeneric with ok=false so the loader can warn.
func ParseCollectibleType(tag string) (CollectibleType, bool) {
	switch tag {
	case "coin-gold":
		return CoinGold, true
	case "coin-silver":
		return CoinSilver, true
	case "coin-bronze":
		return CoinBronze, true
	case "heart":
		return Heart, true
	case "jewel":
		return Jewel, true
	case "key":
		return Key, true
	default:
		return CollectibleGeneric, false
	}
}

// String returns the descriptor tag for the type
func (t CollectibleType) String() string {
	switch t {
	case CoinGold:
		return "coin-gold"
	case CoinSilver:
		return "coin-silver"
	case CoinBronze:
		return "coin-bronze"
	case Heart:
		return "heart"
	case Jewel:
		return "jewel"
	case Key:
		return "key"
	default:
		return "generic"
	}
}

// Score returns the points awarded when this collectible is picked up.
func (t CollectibleType) Score() int {
	switch t {
	case CoinGold:
		return 100
	case CoinSilver:
		return 50
	case CoinBronze:
		return 25
	case Heart:
		return 200
	case Jewel:
		return 500
	case Key:
		return 300
	default:
		return 50
	}
}

// IsCoin reports whether picking this up increments the coin counter.
// Generic pickups count as coins so unrecognized descriptor tags still
// contribute to a collect-all-coins goal.
func (t CollectibleType) IsCoin() bool {
	switch t {
	case CoinGold, CoinSilver, CoinBronze, CollectibleGeneric:
		return true
	default:
		return false
	}
}

// PlatformType enumerates platform surfaces.
type PlatformType int

const (
	PlatformGrass PlatformType = iota
	PlatformStone
	PlatformWood
	PlatformCloud
	PlatformGeneric
)

// ParsePlatformType maps a descriptor tag to its type.
func ParsePlatformType(tag string) (PlatformType, bool) {
	switch tag {
	case "grass":
		return PlatformGrass, true
	case "stone":
		return PlatformStone, true
	case "wood":
		return PlatformWood, true
	case "cloud":
		return PlatformCloud, true
	default:
		return PlatformGeneric, false
	}
}

// HazardType enumerates damaging objects.
type HazardType int

const (
	HazardSpikes HazardType = iota
	HazardLava
	HazardFire
	HazardGeneric
)

// ParseHazardType maps a descriptor tag to its type.
func ParseHazardType(tag string) (HazardType, bool) {
	switch tag {
	case "spikes":
		return HazardSpikes, true
	case "lava":
		return HazardLava, true
	case "fire":
		return HazardFire, true
	default:
		return HazardGeneric, false
	}
}

// ActionTag marks what an interactive object does on contact.
type ActionTag int

const (
	ActionNone ActionTag = iota
	ActionFlag           // level goal marker
	ActionCheckpoint
)

// ParseActionTag maps a descriptor action to its tag.
func ParseActionTag(tag string) (ActionTag, bool) {
	switch tag {
	case "flag", "finish":
		return ActionFlag, true
	case "checkpoint":
		return ActionCheckpoint, true
	case "", "none":
		return ActionNone, true
	default:
		return ActionNone, false
	}
}

// GoalType enumerates level completion conditions.
type GoalType int

const (
	GoalCollectAllCoins GoalType = iota
	GoalReachFlag
	GoalCollectHearts
)

// ParseGoalType maps a descriptor goal type to its enum.
func ParseGoalType(tag string) (GoalType, bool) {
	switch tag {
	case "collect_all_coins":
		return GoalCollectAllCoins, true
	case "reach_flag":
		return GoalReachFlag, true
	case "collect_hearts":
		return GoalCollectHearts, true
	default:
		return GoalCollectAllCoins, false
	}
}

// String returns the descriptor tag for the goal type
func (g GoalType) String() string {
	switch g {
	case GoalCollectAllCoins:
		return "collect_all_coins"
	case GoalReachFlag:
		return "reach_flag"
	case GoalCollectHearts:
		return "collect_hearts"
	default:
		return "unknown"
	}
}

// placeholderPalette provides the deterministic type-indexed colors used
// when an asset cannot be loaded.
var placeholderPalette = []color.RGBA{
	{255, 215, 0, 255},
	{192, 192, 192, 255},
	{205, 127, 50, 255},
	{220, 60, 80, 255},
	{100, 220, 220, 255},
	{240, 200, 60, 255},
	{128, 128, 128, 255},
}

// PlaceholderColor returns a stable color for a type index within its
// category. Indexes past the palette wrap around.
func PlaceholderColor(typeIndex int) color.RGBA {
	if typeIndex < 0 {
		typeIndex = 0
	}
	return placeholderPalette[typeIndex%len(placeholderPalette)]
}
