package starfall

// CooldownSet tracks a group of independent countdown timers, one per slot.
// Every value stays within [0, max of its slot]: armed to max, decremented
// toward zero each tick, never negative.
type CooldownSet struct {
	remaining []float64
	max       []float64
}

// NewCooldownSet creates a set where every slot shares the same maximum.
func NewCooldownSet(slots int, max float64) *CooldownSet {
	maxes := make([]float64, slots)
	for i := range maxes {
		maxes[i] = max
	}
	return NewCooldownSetWithMaxes(maxes)
}

// NewCooldownSetWithMaxes creates a set with a per-slot maximum.
func NewCooldownSetWithMaxes(maxes []float64) *CooldownSet {
	return &CooldownSet{
		remaining: make([]float64, len(maxes)),
		max:       append([]float64(nil), maxes...),
	}
}

// Len returns the number of slots.
func (c *CooldownSet) Len() int {
	return len(c.remaining)
}

// Ready reports whether the slot has fully cooled down.
func (c *CooldownSet) Ready(i int) bool {
	return c.remaining[i] <= 0
}

// Arm starts the slot's cooldown at its maximum.
func (c *CooldownSet) Arm(i int) {
	c.remaining[i] = c.max[i]
}

// Zero clears every slot, making all of them immediately ready.
func (c *CooldownSet) Zero() {
	for i := range c.remaining {
		c.remaining[i] = 0
	}
}

// Decay reduces every active slot by dt seconds, flooring at zero.
func (c *CooldownSet) Decay(dt float64) {
	for i := range c.remaining {
		if c.remaining[i] > 0 {
			c.remaining[i] -= dt
			if c.remaining[i] < 0 {
				c.remaining[i] = 0
			}
		}
	}
}

// Remaining returns the seconds left on the slot.
func (c *CooldownSet) Remaining(i int) float64 {
	return c.remaining[i]
}

// Max returns the slot's maximum cooldown.
func (c *CooldownSet) Max(i int) float64 {
	return c.max[i]
}

// Ratio returns remaining/max for the slot, for cooldown bars. A slot with a
// zero maximum is always reported as ready.
func (c *CooldownSet) Ratio(i int) float64 {
	if c.max[i] <= 0 {
		return 0
	}
	return c.remaining[i] / c.max[i]
}
