// Package config provides YAML-based game configuration loading and
// difficulty management for starfall.
package config

// StarfallConfig contains all tuning for the starfall simulation.
// Distances are abstract field units and durations are seconds; the
// renderer scales field units to whatever surface it draws on.
type StarfallConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Laser      LaserConfig      `yaml:"laser"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Abilities  AbilityConfig    `yaml:"abilities"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield geometry.
type FieldConfig struct {
	Lanes     int     `yaml:"lanes"`
	LaneWidth float64 `yaml:"lane_width"`
	Height    float64 `yaml:"height"`
}

// Width returns the total playfield width.
func (f FieldConfig) Width() float64 {
	return float64(f.Lanes) * f.LaneWidth
}

// LaneCenter returns the x coordinate of a lane's horizontal center.
func (f FieldConfig) LaneCenter(lane int) float64 {
	return (float64(lane) + 0.5) * f.LaneWidth
}

// LaserConfig defines laser shape, speed, and per-lane fire cooldown.
type LaserConfig struct {
	Speed       float64 `yaml:"speed"`        // field units per second, upward
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Cooldown    float64 `yaml:"cooldown"`     // seconds between shots per lane
	SpawnOffset float64 `yaml:"spawn_offset"` // distance above the bottom edge at spawn
}

// AsteroidConfig defines asteroid randomization ranges and spawn cadence.
type AsteroidConfig struct {
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	MinSpeed      float64 `yaml:"min_speed"` // field units per second, downward
	MaxSpeed      float64 `yaml:"max_speed"`
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds between spawns
}

// AbilityConfig defines the cooldown of each of the three abilities.
type AbilityConfig struct {
	ResetCooldown float64 `yaml:"reset_cooldown"` // reset lane cooldowns
	ClearCooldown float64 `yaml:"clear_cooldown"` // clear all asteroids
	HealCooldown  float64 `yaml:"heal_cooldown"`  // restore health
}

// Cooldowns returns the three ability cooldowns in ability order
// (reset-cooldowns, clear-screen, heal).
func (a AbilityConfig) Cooldowns() []float64 {
	return []float64{a.ResetCooldown, a.ClearCooldown, a.HealCooldown}
}

// GameplayConfig defines health, healing and message display parameters.
type GameplayConfig struct {
	MaxHealth       int     `yaml:"max_health"`
	HealAmount      int     `yaml:"heal_amount"`
	MessageDuration float64 `yaml:"message_duration"` // seconds a message stays visible
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
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Extra asteroid speed fraction at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Spawn interval reduction (seconds) at max difficulty
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
