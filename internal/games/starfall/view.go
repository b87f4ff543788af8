package starfall

// View is the read-only state handed to a renderer each tick. Positions are
// field units; the renderer decides how to scale and draw them.
type View struct {
	FieldWidth  float64
	FieldHeight float64
	LaneWidth   float64
	Lanes       int

	Asteroids []AsteroidView
	Lasers    []LaserView

	LaneCooldowns    []CooldownView
	AbilityCooldowns []CooldownView

	Health    int
	MaxHealth int
	Score     int
	Depleted  bool

	Messages []MessageView
}

// AsteroidView describes one falling asteroid.
type AsteroidView struct {
	Lane   int
	X, Y   float64
	Radius float64
}

// LaserView describes one rising laser.
type LaserView struct {
	Lane   int
	X, Y   float64
	Width  float64
	Height float64
}

// CooldownView carries seconds remaining plus the fixed maximum so renderers
// can compute fill ratios.
type CooldownView struct {
	Remaining float64
	Max       float64
}

// Ratio returns remaining/max, or 0 when the maximum is zero.
func (c CooldownView) Ratio() float64 {
	if c.Max <= 0 {
		return 0
	}
	return c.Remaining / c.Max
}

// MessageView is a status line plus its time until expiry.
type MessageView struct {
	Text string
	TTL  float64 // seconds until expiry
}

// View builds the renderable state for the current tick.
func (w *World) View() View {
	v := View{
		FieldWidth:  w.cfg.Field.Width(),
		FieldHeight: w.cfg.Field.Height,
		LaneWidth:   w.cfg.Field.LaneWidth,
		Lanes:       w.cfg.Field.Lanes,
		Health:      w.health,
		MaxHealth:   w.cfg.Gameplay.MaxHealth,
		Score:       w.score,
		Depleted:    w.depleted,
	}

	v.Asteroids = make([]AsteroidView, len(w.asteroids))
	for i, a := range w.asteroids {
		v.Asteroids[i] = AsteroidView{Lane: a.Lane, X: a.X, Y: a.Y, Radius: a.Radius}
	}

	v.Lasers = make([]LaserView, len(w.lasers))
	for i, l := range w.lasers {
		v.Lasers[i] = LaserView{Lane: l.Lane, X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
	}

	v.LaneCooldowns = make([]CooldownView, w.laneCooldowns.Len())
	for i := range v.LaneCooldowns {
		v.LaneCooldowns[i] = CooldownView{Remaining: w.laneCooldowns.Remaining(i), Max: w.laneCooldowns.Max(i)}
	}

	v.AbilityCooldowns = make([]CooldownView, w.abilityCooldowns.Len())
	for i := range v.AbilityCooldowns {
		v.AbilityCooldowns[i] = CooldownView{Remaining: w.abilityCooldowns.Remaining(i), Max: w.abilityCooldowns.Max(i)}
	}

	entries := w.messages.Entries()
	v.Messages = make([]MessageView, len(entries))
	for i, e := range entries {
		v.Messages[i] = MessageView{Text: e.Text, TTL: e.ExpiresAt - w.clock}
	}

	return v
}
