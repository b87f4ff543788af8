// Package starfall implements an eight-lane asteroid defense shooter.
// Asteroids fall down fixed lanes; the player fires lasers up individual
// lanes and triggers three cooldown-gated abilities. The simulation is pure
// and deterministic: it consumes input events and time deltas and produces a
// renderable view, leaving all drawing to the platform layer.
package starfall

import (
	"fmt"

	"github.com/avolkov/starfall/internal/config"
	"github.com/avolkov/starfall/internal/core"
)

// Ability identifies one of the three special actions.
type Ability int

const (
	AbilityResetCooldowns Ability = iota // zero all lane fire cooldowns
	AbilityClearScreen                   // remove every asteroid on the field
	AbilityHeal                          // restore health up to the maximum

	AbilityCount = 3
)

// AbilityNames are the short panel labels, indexed by Ability.
var AbilityNames = [AbilityCount]string{"Reset", "Clear", "Heal"}

// World owns the complete simulation state: entities, cooldowns, messages,
// health and score. It is explicitly constructed and never shared, so any
// number of independent worlds can run in one process.
type World struct {
	cfg  config.StarfallConfig
	diff *config.DifficultyManager
	seed int64

	spawner          *Spawner
	laneCooldowns    *CooldownSet
	abilityCooldowns *CooldownSet
	messages         *MessageLog

	asteroids []Asteroid
	lasers    []Laser

	clock     float64 // accumulated simulated seconds
	ticks     int
	health    int
	score     int
	destroyed int // total asteroids shot down this run
	depleted  bool
}

// NewWorld creates a world in its initial state.
func NewWorld(cfg config.StarfallConfig, seed int64) *World {
	w := &World{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
		seed: seed,
	}
	w.Reset()
	return w
}

// Reset reinitializes health, score, cooldowns, entities, messages and the
// spawn timer. It may be invoked at any time, in any state, and always
// produces a state equal to a freshly constructed world with the same seed.
func (w *World) Reset() {
	w.spawner = NewSpawner(w.seed)
	w.laneCooldowns = NewCooldownSet(w.cfg.Field.Lanes, w.cfg.Laser.Cooldown)
	w.abilityCooldowns = NewCooldownSetWithMaxes(w.cfg.Abilities.Cooldowns())
	w.messages = NewMessageLog(w.cfg.Gameplay.MessageDuration)
	w.asteroids = nil
	w.lasers = nil
	w.clock = 0
	w.ticks = 0
	w.health = w.cfg.Gameplay.MaxHealth
	w.score = 0
	w.destroyed = 0
	w.depleted = false
}

// Fire launches a laser up the given lane if the lane's cooldown has
// expired. A cooling-down lane is a rejected action: no state changes except
// a message. The lane index must already be validated by the caller.
func (w *World) Fire(lane int) {
	if !w.laneCooldowns.Ready(lane) {
		w.messages.Push(fmt.Sprintf("Lane %d shot is on cooldown", lane+1), w.clock)
		return
	}

	w.lasers = append(w.lasers, Laser{
		Lane:   lane,
		X:      w.cfg.Field.LaneCenter(lane),
		Y:      w.cfg.Field.Height - w.cfg.Laser.SpawnOffset,
		Width:  w.cfg.Laser.Width,
		Height: w.cfg.Laser.Height,
		Speed:  w.cfg.Laser.Speed,
	})
	w.laneCooldowns.Arm(lane)
}

// Activate triggers one of the three abilities if its cooldown has expired.
// An accepted activation always pays its full cooldown, even when the effect
// was a no-op (healing at full health). A cooling-down ability is rejected
// with a message and no other effect.
func (w *World) Activate(ability Ability) {
	if !w.abilityCooldowns.Ready(int(ability)) {
		w.messages.Push("Ability on cooldown", w.clock)
		return
	}

	switch ability {
	case AbilityResetCooldowns:
		w.laneCooldowns.Zero()
		w.messages.Push("Firing cooldowns reset", w.clock)

	case AbilityClearScreen:
		count := len(w.asteroids)
		w.asteroids = nil
		w.messages.Push(fmt.Sprintf("Cleared %d asteroids", count), w.clock)

	case AbilityHeal:
		if w.health < w.cfg.Gameplay.MaxHealth {
			prev := w.health
			w.health = core.Min(w.cfg.Gameplay.MaxHealth, w.health+w.cfg.Gameplay.HealAmount)
			w.depleted = false
			w.messages.Push(fmt.Sprintf("Healed %d health", w.health-prev), w.clock)
		} else {
			w.messages.Push("Health already full", w.clock)
		}
	}

	// The cooldown cost applies to every branch above, including no-ops.
	w.abilityCooldowns.Arm(int(ability))
}

// Update advances the simulation by dt seconds. Order is fixed: spawn,
// integrate and resolve entities, decay cooldowns, expire messages.
func (w *World) Update(dt float64) {
	w.clock += dt
	w.ticks++

	interval := w.diff.SpawnInterval(w.cfg.Asteroids.SpawnInterval, w.score, w.ticks)
	if w.spawner.Advance(dt, interval) {
		scale := w.diff.SpeedScale(w.score, w.ticks)
		w.asteroids = append(w.asteroids, w.spawner.Next(w.cfg.Field, w.cfg.Asteroids, scale))
	}

	w.advanceAsteroids(dt)
	w.advanceLasers(dt)
	w.resolveCollisions()

	w.laneCooldowns.Decay(dt)
	w.abilityCooldowns.Decay(dt)

	w.messages.Expire(w.clock)
}

// advanceAsteroids integrates asteroid positions and removes those whose top
// edge has passed the bottom boundary, costing one health each. The next
// collection is rebuilt by filtering so no element is visited twice.
func (w *World) advanceAsteroids(dt float64) {
	kept := make([]Asteroid, 0, len(w.asteroids))
	escaped := 0
	for _, a := range w.asteroids {
		a.Advance(dt)
		if a.Top() > w.cfg.Field.Height {
			escaped++
			continue
		}
		kept = append(kept, a)
	}
	w.asteroids = kept

	for i := 0; i < escaped; i++ {
		w.loseHealth()
	}
}

// advanceLasers integrates laser positions and silently drops those whose
// trailing edge has left the top of the field.
func (w *World) advanceLasers(dt float64) {
	kept := make([]Laser, 0, len(w.lasers))
	for _, l := range w.lasers {
		l.Advance(dt)
		if l.Bottom() < 0 {
			continue
		}
		kept = append(kept, l)
	}
	w.lasers = kept
}

// resolveCollisions matches lasers against asteroids in the same lane using
// 1-D vertical overlap. Each laser destroys at most one asteroid per tick:
// lasers are scanned in insertion order and take the first overlapping
// asteroid in insertion order, which keeps resolution deterministic.
// Matched pairs are marked first and compacted after, so a removed element
// is never revisited within the tick.
func (w *World) resolveCollisions() {
	if len(w.lasers) == 0 || len(w.asteroids) == 0 {
		return
	}

	destroyed := make([]bool, len(w.asteroids))
	hits := 0

	keptLasers := make([]Laser, 0, len(w.lasers))
	for _, l := range w.lasers {
		matched := false
		for j := range w.asteroids {
			if destroyed[j] || w.asteroids[j].Lane != l.Lane {
				continue
			}
			a := w.asteroids[j]
			if core.SpansOverlap(a.Top(), a.Bottom(), l.Y, l.Bottom()) {
				destroyed[j] = true
				hits++
				w.score++
				w.destroyed++
				matched = true
				break
			}
		}
		if !matched {
			keptLasers = append(keptLasers, l)
		}
	}
	w.lasers = keptLasers

	if hits == 0 {
		return
	}
	keptAsteroids := make([]Asteroid, 0, len(w.asteroids)-hits)
	for j, a := range w.asteroids {
		if !destroyed[j] {
			keptAsteroids = append(keptAsteroids, a)
		}
	}
	w.asteroids = keptAsteroids
}

// loseHealth deducts one health, floored at zero. The game-over message is
// emitted exactly once per transition to zero; healing back above zero arms
// it again. Depletion is not terminal: play continues until an explicit
// reset.
func (w *World) loseHealth() {
	if w.health > 0 {
		w.health--
	}
	if w.health == 0 && !w.depleted {
		w.depleted = true
		w.messages.Push("Game over - reset to play again", w.clock)
	}
}

// Health returns the current health.
func (w *World) Health() int {
	return w.health
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Destroyed returns the total number of asteroids shot down this run.
func (w *World) Destroyed() int {
	return w.destroyed
}

// Depleted reports whether health has reached zero.
func (w *World) Depleted() bool {
	return w.depleted
}

// Clock returns the accumulated simulated seconds.
func (w *World) Clock() float64 {
	return w.clock
}

// Asteroids returns the live asteroid collection.
func (w *World) Asteroids() []Asteroid {
	return w.asteroids
}

// Lasers returns the live laser collection.
func (w *World) Lasers() []Laser {
	return w.lasers
}

// LaneCooldowns returns the per-lane fire cooldown tracker.
func (w *World) LaneCooldowns() *CooldownSet {
	return w.laneCooldowns
}

// AbilityCooldowns returns the per-ability cooldown tracker.
func (w *World) AbilityCooldowns() *CooldownSet {
	return w.abilityCooldowns
}

// Messages returns the active message log.
func (w *World) Messages() *MessageLog {
	return w.messages
}

// Config returns the tuning the world was built with.
func (w *World) Config() config.StarfallConfig {
	return w.cfg
}
