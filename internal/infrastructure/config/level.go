package config

// LevelConfig is the root config for level descriptor JSON files.
type LevelConfig struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Spawn        *VectorConfig  `json:"spawn,omitempty"`
	Goal         *GoalConfig    `json:"goal,omitempty"`
	Platforms    []ObjectConfig `json:"platforms"`
	Collectibles []ObjectConfig `json:"collectibles"`
	Hazards      []ObjectConfig `json:"hazards"`
	Environment  []ObjectConfig `json:"environment"`
	Interactive  []ObjectConfig `json:"interactive"`
}

// ObjectConfig is a single object entry within a level descriptor.
// Position/rotation/scale are optional; rotation is in degrees.
type ObjectConfig struct {
	Type     string        `json:"type"`
	Position *VectorConfig `json:"position,omitempty"`
	Rotation *VectorConfig `json:"rotation,omitempty"`
	Scale    *VectorConfig `json:"scale,omitempty"`
	Damage   int           `json:"damage,omitempty"`
	Action   string        `json:"action,omitempty"`
}

// VectorConfig is a 3-component vector in descriptor files.
type VectorConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// GoalConfig describes the level completion condition.
type GoalConfig struct {
	Type  string `json:"type"`
	Item  string `json:"item,omitempty"`
	Count int    `json:"count,omitempty"`
}
