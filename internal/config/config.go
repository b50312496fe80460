// Package config provides YAML-based configuration loading and
// difficulty management for the shapefall game.
package config

// ShapefallConfig contains all tunable parameters for a game session.
type ShapefallConfig struct {
	Container  ContainerConfig  `yaml:"container"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Drop       DropConfig       `yaml:"drop"`
	Merge      MergeConfig      `yaml:"merge"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Audio      AudioConfig      `yaml:"audio"`
	Debug      DebugConfig      `yaml:"debug"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ContainerConfig defines the play-field dimensions in world pixels.
type ContainerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	DropZoneHeight float64 `yaml:"drop_zone_height"` // Overflow line, measured from the top
}

// PhysicsConfig defines the simulation constants.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`              // px/s^2, downward
	Friction           float64 `yaml:"friction"`             // Ground friction factor per tick
	Restitution        float64 `yaml:"restitution"`          // Bounciness, 0..1
	AngularDamping     float64 `yaml:"angular_damping"`      // Per-second rotational decay base
	MaxVelocity        float64 `yaml:"max_velocity"`         // px/s, speed cap
	MaxAngularVelocity float64 `yaml:"max_angular_velocity"` // rad/s, spin cap
}

// DropConfig defines how shapes enter the container.
type DropConfig struct {
	ReleaseSpeed float64 `yaml:"release_speed"` // Initial downward velocity on release
	MoveSpeed    float64 `yaml:"move_speed"`    // Keyboard aim speed, px/s
	SpawnMargin  float64 `yaml:"spawn_margin"`  // Gap between container top and spawned shape
}

// MergeConfig defines fusion timing and eligibility.
type MergeConfig struct {
	CheckDelay float64 `yaml:"check_delay"` // Seconds between settling and the merge pass
	Threshold  float64 `yaml:"threshold"`   // Leniency multiplier on combined radii
}

// SpawnConfig defines the tier distribution for dropped shapes.
// Weights are relative, smallest tier first; tiers beyond the list
// never spawn naturally.
type SpawnConfig struct {
	Weights []int `yaml:"weights"`
}

// AudioConfig toggles sound output.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DebugConfig toggles the diagnostic overlay.
type DebugConfig struct {
	Overlay bool `yaml:"overlay"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnShift     float64 `yaml:"spawn_shift"`      // Fraction of spawn weight moved to heavy tiers at max difficulty
	DropZoneGrowth float64 `yaml:"drop_zone_growth"` // Pixels the overflow line descends at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
