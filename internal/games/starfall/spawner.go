package starfall

import (
	"math/rand"

	"github.com/avolkov/starfall/internal/config"
)

// Spawner generates asteroids on a fixed cadence. The cadence is tracked as
// a dt accumulator fed by the tick, so spawn rate is independent of frame
// rate and fully reproducible under test.
type Spawner struct {
	rng        *rand.Rand
	sinceSpawn float64
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Reset reseeds the RNG and restarts the spawn timer.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.sinceSpawn = 0
}

// Advance accumulates dt and reports whether a spawn is due. On spawn the
// accumulator restarts from zero, so at most one asteroid spawns per tick.
func (s *Spawner) Advance(dt, interval float64) bool {
	s.sinceSpawn += dt
	if s.sinceSpawn > interval {
		s.sinceSpawn = 0
		return true
	}
	return false
}

// Next generates an asteroid with a uniformly random lane, radius and speed.
// It starts fully above the visible top (y = -radius) so it enters smoothly.
func (s *Spawner) Next(field config.FieldConfig, tuning config.AsteroidConfig, speedScale float64) Asteroid {
	lane := s.rng.Intn(field.Lanes)
	radius := uniform(s.rng, tuning.MinRadius, tuning.MaxRadius)
	speed := uniform(s.rng, tuning.MinSpeed, tuning.MaxSpeed) * speedScale
	return Asteroid{
		Lane:   lane,
		X:      field.LaneCenter(lane),
		Y:      -radius,
		Radius: radius,
		Speed:  speed,
	}
}

// uniform returns a uniformly random float64 in [min, max).
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
