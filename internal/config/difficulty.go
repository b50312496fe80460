package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnWeights returns the tier weights for the current difficulty level.
// As the level rises, weight flows from the lightest tiers toward the
// heaviest spawnable ones, up to a full reversal of the base distribution.
func (d *DifficultyManager) SpawnWeights(base []int, score int, ticks int) []int {
	level := d.Level(score, ticks)
	t := clampF(level*d.cfg.Scaling.SpawnShift, 0.0, 1.0)
	out := make([]int, len(base))
	last := len(base) - 1
	for i, w := range base {
		shifted := float64(w) + t*(float64(base[last-i])-float64(w))
		out[i] = int(shifted)
		if out[i] < 1 { // Every listed tier stays spawnable
			out[i] = 1
		}
	}
	return out
}

// OverflowLine returns the game-over line for the current difficulty level.
// Higher difficulty pushes the line down, leaving less room to stack.
func (d *DifficultyManager) OverflowLine(base float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return base + level*d.cfg.Scaling.DropZoneGrowth
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
