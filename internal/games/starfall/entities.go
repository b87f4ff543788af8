package starfall

// Asteroid is a falling object occupying one lane. X is fixed at the lane
// center; Y is the circle center and grows as the asteroid falls.
type Asteroid struct {
	Lane   int
	X, Y   float64
	Radius float64
	Speed  float64 // field units per second, downward
}

// Advance moves the asteroid down by its speed over dt seconds.
func (a *Asteroid) Advance(dt float64) {
	a.Y += a.Speed * dt
}

// Top returns the y coordinate of the asteroid's top edge.
func (a Asteroid) Top() float64 {
	return a.Y - a.Radius
}

// Bottom returns the y coordinate of the asteroid's bottom edge.
func (a Asteroid) Bottom() float64 {
	return a.Y + a.Radius
}

// Laser is a shot rising up a lane. X is the lane center; Y is the top of
// the beam rectangle and shrinks as the laser rises.
type Laser struct {
	Lane   int
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64 // field units per second, upward
}

// Advance moves the laser up by its speed over dt seconds.
func (l *Laser) Advance(dt float64) {
	l.Y -= l.Speed * dt
}

// Bottom returns the y coordinate of the laser's trailing edge.
func (l Laser) Bottom() float64 {
	return l.Y + l.Height
}
