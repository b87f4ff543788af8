package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultStarfallConfig returns the default starfall configuration.
// Values mirror the embedded defaults/starfall.yaml.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		Field: FieldConfig{
			Lanes:     8,
			LaneWidth: 96,
			Height:    768,
		},
		Laser: LaserConfig{
			Speed:       800,
			Width:       10,
			Height:      30,
			Cooldown:    0.6,
			SpawnOffset: 10,
		},
		Asteroids: AsteroidConfig{
			MinRadius:     15,
			MaxRadius:     30,
			MinSpeed:      80,
			MaxSpeed:      140,
			SpawnInterval: 0.9,
		},
		Abilities: AbilityConfig{
			ResetCooldown: 12.0,
			ClearCooldown: 10.0,
			HealCooldown:  15.0,
		},
		Gameplay: GameplayConfig{
			MaxHealth:       10,
			HealAmount:      3,
			MessageDuration: 2.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.6,
				IntervalReduction: 0.4,
			},
		},
	}
}
