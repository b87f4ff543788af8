package starfall

import (
	"github.com/avolkov/starfall/internal/config"
	"github.com/avolkov/starfall/internal/core"
	"github.com/avolkov/starfall/internal/registry"
)

// Package-level variables for config/difficulty, set by the CLI before the
// game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game adapts the starfall World to the platform's registry.Game interface.
// It maps input actions to world calls and steps the simulation with the
// fixed per-tick delta derived from the tick rate.
type Game struct {
	world  *World
	config core.RuntimeConfig
	dt     float64 // seconds per tick
	tick   uint64
	paused bool
}

// New creates a new starfall game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("starfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "starfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Starfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	if g.config.TickRate <= 0 {
		g.config.TickRate = 60
	}
	g.dt = 1.0 / float64(g.config.TickRate)
	g.tick = 0
	g.paused = false

	gameCfg, err := config.LoadStarfall(configPath)
	if err != nil {
		gameCfg = config.DefaultStarfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyStarfallPreset(&gameCfg, difficultyPreset)
	}

	g.world = NewWorld(gameCfg, cfg.Seed)
}

// Step advances the simulation by one fixed tick. Input events are applied
// synchronously in a fixed order, then the world performs one deterministic
// update. Health depletion does not stop the simulation; only the reset
// action reinitializes the run.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		g.world.Reset()
		g.tick = 0
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	for lane := 0; lane < g.world.Config().Field.Lanes && lane < core.LaneCount; lane++ {
		if in.Has(core.LaneAction(lane)) {
			g.world.Fire(lane)
		}
	}

	if in.Has(core.ActionPowerReset) {
		g.world.Activate(AbilityResetCooldowns)
	}
	if in.Has(core.ActionPowerClear) {
		g.world.Activate(AbilityClearScreen)
	}
	if in.Has(core.ActionPowerHeal) {
		g.world.Activate(AbilityHeal)
	}

	g.world.Update(g.dt)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.world.Score(),
		Health:    g.world.Health(),
		Destroyed: g.world.Destroyed(),
		Elapsed:   g.world.Clock(),
		Depleted:  g.world.Depleted(),
		Paused:    g.paused,
	}
}

// World exposes the underlying simulation, mainly for tests.
func (g *Game) World() *World {
	return g.world
}
