package config

import (
	_ "embed"
)

//go:embed defaults/shapefall.yaml
var defaultShapefallYAML []byte

// DefaultShapefallConfig returns the default game configuration.
func DefaultShapefallConfig() ShapefallConfig {
	return ShapefallConfig{
		Container: ContainerConfig{
			Width:          360,
			Height:         480,
			DropZoneHeight: 90,
		},
		Physics: PhysicsConfig{
			Gravity:            980,
			Friction:           0.1,
			Restitution:        0.3,
			AngularDamping:     0.95,
			MaxVelocity:        2000,
			MaxAngularVelocity: 4.0,
		},
		Drop: DropConfig{
			ReleaseSpeed: 50,
			MoveSpeed:    300,
			SpawnMargin:  8,
		},
		Merge: MergeConfig{
			CheckDelay: 0.5,
			Threshold:  1.15,
		},
		Spawn: SpawnConfig{
			Weights: []int{45, 30, 15, 10},
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Debug: DebugConfig{
			Overlay: false,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpawnShift:     0.6,
				DropZoneGrowth: 40,
			},
		},
	}
}
