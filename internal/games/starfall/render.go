package starfall

import (
	"fmt"

	"github.com/avolkov/starfall/internal/core"
)

// Visual characters for rendering
const (
	AsteroidChar = '▓'
	LaserChar    = '│'
	LaneDivider  = '·'
	BarFullChar  = '█'
	BarEmptyChar = '─'
)

// Panel layout constants (cells)
const (
	panelMinWidth = 18
	panelMaxWidth = 26
)

// Render draws the current game state into the provided screen buffer.
// The playfield occupies the left side; the status panel takes the right.
// Field units are scaled to cells, so any terminal size works.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.world.View()

	screenW, screenH := dst.Width(), dst.Height()
	panelW := core.Clamp(screenW/4, panelMinWidth, panelMaxWidth)
	playW := screenW - panelW
	if playW < v.Lanes {
		playW = core.Max(1, screenW-1)
		panelW = screenW - playW
	}

	sx := float64(playW) / v.FieldWidth
	sy := float64(screenH) / v.FieldHeight

	g.drawLanes(dst, v, playW, screenH, sx)
	g.drawEntities(dst, v, sx, sy)
	g.drawPanel(dst, v, playW, panelW, screenH)

	if g.paused {
		dst.DrawTextCentered(screenH/2, " PAUSED ")
	}
}

// drawLanes draws the lane dividers and the per-lane cooldown bars.
func (g *Game) drawLanes(dst *core.Screen, v View, playW, screenH int, sx float64) {
	for lane := 1; lane < v.Lanes; lane++ {
		x := int(float64(lane) * v.LaneWidth * sx)
		for y := 0; y < screenH; y++ {
			dst.SetColored(x, y, LaneDivider, core.ColorGray)
		}
	}

	// Cooldown fill grows with remaining time and empties when ready.
	barY := screenH - 1
	for lane := 0; lane < v.Lanes; lane++ {
		left := int(float64(lane)*v.LaneWidth*sx) + 1
		width := core.Max(1, int(v.LaneWidth*sx)-2)
		fill := int(float64(width) * v.LaneCooldowns[lane].Ratio())
		for i := 0; i < width; i++ {
			if i < fill {
				dst.SetColored(left+i, barY, BarFullChar, core.ColorRed)
			} else {
				dst.SetColored(left+i, barY, BarEmptyChar, core.ColorGray)
			}
		}
	}
}

// drawEntities draws asteroids as filled ellipses and lasers as beams.
func (g *Game) drawEntities(dst *core.Screen, v View, sx, sy float64) {
	for _, a := range v.Asteroids {
		cx := int(a.X * sx)
		cy := int(a.Y * sy)
		rx := core.Max(1, int(a.Radius*sx))
		ry := core.Max(1, int(a.Radius*sy))
		for dy := -ry; dy <= ry; dy++ {
			for dx := -rx; dx <= rx; dx++ {
				nx := float64(dx) / float64(rx)
				ny := float64(dy) / float64(ry)
				if nx*nx+ny*ny <= 1.0 {
					dst.SetColored(cx+dx, cy+dy, AsteroidChar, core.ColorWhite)
				}
			}
		}
	}

	for _, l := range v.Lasers {
		x := int(l.X * sx)
		top := int(l.Y * sy)
		bottom := int((l.Y + l.Height) * sy)
		if bottom == top {
			bottom = top + 1
		}
		for y := top; y <= bottom; y++ {
			dst.SetColored(x, y, LaserChar, core.ColorBrightRed)
		}
	}
}

// drawPanel draws the right-side status panel: health, score, abilities and
// transient messages.
func (g *Game) drawPanel(dst *core.Screen, v View, panelX, panelW, screenH int) {
	dst.DrawBox(core.NewRect(panelX, 0, panelW, screenH))
	inner := panelX + 2
	innerW := panelW - 4

	dst.DrawTextColored(inner, 1, "STARFALL", core.ColorBrightCyan)

	healthColor := core.ColorBrightGreen
	if v.Health <= v.MaxHealth/3 {
		healthColor = core.ColorBrightRed
	}
	dst.DrawText(inner, 3, fmt.Sprintf("HP %d/%d", v.Health, v.MaxHealth))
	drawBar(dst, inner, 4, innerW, float64(v.Health)/float64(v.MaxHealth), healthColor)

	dst.DrawText(inner, 6, fmt.Sprintf("Score %d", v.Score))

	row := 8
	for i, cd := range v.AbilityCooldowns {
		label := AbilityNames[i]
		if cd.Remaining > 0 {
			dst.DrawTextColored(inner, row, fmt.Sprintf("%-5s %4.1fs", label, cd.Remaining), core.ColorGray)
		} else {
			dst.DrawTextColored(inner, row, fmt.Sprintf("%-5s ready", label), core.ColorBrightGreen)
		}
		drawBar(dst, inner, row+1, innerW, 1.0-cd.Ratio(), core.ColorGreen)
		row += 2
	}

	if v.Depleted {
		dst.DrawTextColored(inner, row+1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextColored(inner, row+2, "press r", core.ColorGray)
	}

	msgY := screenH - 2 - len(v.Messages)
	for i, m := range v.Messages {
		dst.DrawTextColored(inner, msgY+i, truncate(m.Text, innerW), core.ColorBrightYellow)
	}
}

// drawBar draws a horizontal ratio bar of the given width.
func drawBar(dst *core.Screen, x, y, width int, ratio float64, c core.Color) {
	fill := int(float64(width) * core.ClampF(ratio, 0, 1))
	for i := 0; i < width; i++ {
		if i < fill {
			dst.SetColored(x+i, y, BarFullChar, c)
		} else {
			dst.SetColored(x+i, y, BarEmptyChar, core.ColorGray)
		}
	}
}

// truncate shortens a string to at most width runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
