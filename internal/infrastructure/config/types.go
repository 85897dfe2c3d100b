package config

// Tuning is the root of tuning.yaml: every gameplay constant the
// simulation consumes. Values are per-tick at the configured framerate.
type Tuning struct {
	Display  DisplayTuning  `yaml:"display"`
	Movement MovementTuning `yaml:"movement"`
	Jump     JumpTuning     `yaml:"jump"`
	World    WorldTuning    `yaml:"world"`
	Contact  ContactTuning  `yaml:"contact"`
	Feedback FeedbackTuning `yaml:"feedback"`
}

type DisplayTuning struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Framerate    int `yaml:"framerate"`
}

type MovementTuning struct {
	Speed         float64 `yaml:"speed"`
	RunMultiplier float64 `yaml:"runMultiplier"`
	Friction      float64 `yaml:"friction"`
	// MaxSpeedMultiplier caps horizontal speed at this multiple of the
	// current (possibly run-scaled) speed.
	MaxSpeedMultiplier float64 `yaml:"maxSpeedMultiplier"`
}

type JumpTuning struct {
	Force   float64 `yaml:"force"`
	Gravity float64 `yaml:"gravity"`
}

type WorldTuning struct {
	// FloorY is the ground plane the player rests on.
	FloorY float64 `yaml:"floorY"`
	// VoidY is the depth below which falling counts as damage.
	VoidY float64 `yaml:"voidY"`
	// Radius hard-clamps horizontal position.
	Radius float64 `yaml:"radius"`
}

type ContactTuning struct {
	CollectRadius     float64 `yaml:"collectRadius"`
	HazardRadius      float64 `yaml:"hazardRadius"`
	PlatformThreshold float64 `yaml:"platformThreshold"`
	// PlatformLandOffset is added to a platform's y when snapping a
	// landing player onto it.
	PlatformLandOffset float64 `yaml:"platformLandOffset"`
	FlagRadius         float64 `yaml:"flagRadius"`
}

type FeedbackTuning struct {
	// DeathDelayTicks is how long after death the orchestrator is
	// notified.
	DeathDelayTicks int `yaml:"deathDelayTicks"`
	// FlashTicks is the duration of the damage color flash.
	FlashTicks int `yaml:"flashTicks"`
	// KnockbackUp is the upward velocity applied with hazard knockback.
	KnockbackUp float64 `yaml:"knockbackUp"`
}

// DefaultTuning returns the built-in gameplay constants, used when no
// tuning.yaml overrides them.
func DefaultTuning() *Tuning {
	return &Tuning{
		Display: DisplayTuning{
			ScreenWidth:  960,
			ScreenHeight: 540,
			Framerate:    60,
		},
		Movement: MovementTuning{
			Speed:              0.15,
			RunMultiplier:      1.5,
			Friction:           0.8,
			MaxSpeedMultiplier: 1.2,
		},
		Jump: JumpTuning{
			Force:   0.35,
			Gravity: 0.015,
		},
		World: WorldTuning{
			FloorY: 1.0,
			VoidY:  -20.0,
			Radius: 60.0,
		},
		Contact: ContactTuning{
			CollectRadius:      1.5,
			HazardRadius:       1.5,
			PlatformThreshold:  3.0,
			PlatformLandOffset: 1.0,
			FlagRadius:         2.0,
		},
		Feedback: FeedbackTuning{
			DeathDelayTicks: 90,
			FlashTicks:      30,
			KnockbackUp:     0.2,
		},
	}
}
