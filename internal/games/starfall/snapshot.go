package starfall

import "math"

// Snapshot captures the complete game state with primitive types only, for
// determinism testing and replay comparison.
type Snapshot struct {
	Tick      uint64
	Score     int
	Health    int
	Destroyed int
	Depleted  bool
	Paused    bool

	// Clock is the accumulated simulated seconds, in float64 bits so the
	// snapshot stays integer-comparable.
	ClockBits uint64

	LaneCooldownBits    []uint64
	AbilityCooldownBits []uint64

	// Each asteroid is 5 values: lane, then X/Y/Radius/Speed as float bits.
	AsteroidCount int
	AsteroidData  []uint64

	// Each laser is 3 values: lane, then X/Y as float bits (shape is config-fixed).
	LaserCount int
	LaserData  []uint64

	Messages []string
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	laneBits := make([]uint64, w.laneCooldowns.Len())
	for i := range laneBits {
		laneBits[i] = math.Float64bits(w.laneCooldowns.Remaining(i))
	}

	abilityBits := make([]uint64, w.abilityCooldowns.Len())
	for i := range abilityBits {
		abilityBits[i] = math.Float64bits(w.abilityCooldowns.Remaining(i))
	}

	asteroidData := make([]uint64, 0, len(w.asteroids)*5)
	for _, a := range w.asteroids {
		asteroidData = append(asteroidData,
			uint64(a.Lane), //#nosec G115 -- lane is always in [0,7]
			math.Float64bits(a.X),
			math.Float64bits(a.Y),
			math.Float64bits(a.Radius),
			math.Float64bits(a.Speed),
		)
	}

	laserData := make([]uint64, 0, len(w.lasers)*3)
	for _, l := range w.lasers {
		laserData = append(laserData,
			uint64(l.Lane), //#nosec G115 -- lane is always in [0,7]
			math.Float64bits(l.X),
			math.Float64bits(l.Y),
		)
	}

	messages := make([]string, w.messages.Len())
	for i, e := range w.messages.Entries() {
		messages[i] = e.Text
	}

	return Snapshot{
		Tick:                g.tick,
		Score:               w.score,
		Health:              w.health,
		Destroyed:           w.destroyed,
		Depleted:            w.depleted,
		Paused:              g.paused,
		ClockBits:           math.Float64bits(w.clock),
		LaneCooldownBits:    laneBits,
		AbilityCooldownBits: abilityBits,
		AsteroidCount:       len(w.asteroids),
		AsteroidData:        asteroidData,
		LaserCount:          len(w.lasers),
		LaserData:           laserData,
		Messages:            messages,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation
	if snap.Depleted {
		h = h*31 + 1
	}
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + snap.ClockBits
	h = h*31 + uint64(snap.AsteroidCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LaserCount)    //#nosec G115 -- hash computation

	for _, v := range snap.LaneCooldownBits {
		h = h*31 + v
	}
	for _, v := range snap.AbilityCooldownBits {
		h = h*31 + v
	}
	for _, v := range snap.AsteroidData {
		h = h*31 + v
	}
	for _, v := range snap.LaserData {
		h = h*31 + v
	}
	for _, m := range snap.Messages {
		for _, r := range m {
			h = h*31 + uint64(r) //#nosec G115 -- hash computation
		}
	}

	return h
}
