package pong

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/effects"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	TrailChar  = '•'
	FadedChar  = '·'
	NetChar    = '┆'
)

// Shake offset in cells per world unit of shake magnitude.
const (
	shakeCellsX = 0.5
	shakeCellsY = 0.25
)

// Render draws the current frame to dst.
func (g *Game) Render(dst *core.Screen) {
	Paint(dst, g.Snapshot(), g.fxRng)
}

// Paint draws snap onto dst. World coordinates map to cells through
// core.CellW and core.CellH. jitter drives the shake offset.
func Paint(dst *core.Screen, snap Snapshot, jitter core.RandSource) {
	dst.Clear()

	ox, oy := shakeOffset(snap.Shake, jitter)

	drawCenterLine(dst, ox)
	drawPaddle(dst, snap.Player, ox, oy)
	drawPaddle(dst, snap.CPU, ox, oy)
	drawTrail(dst, snap.Trail, ox, oy)
	dst.SetColored(cellX(snap.Ball.X)+ox, cellY(snap.Ball.Y)+oy, BallChar, snap.Ball.Color)
	drawParticles(dst, snap.Particles, ox, oy)

	drawHeader(dst, snap)

	switch {
	case snap.Phase == PhaseMenu:
		drawCenteredMessage(dst, core.ColorNeonCyan,
			"NEON PONG",
			"difficulty: "+snap.Difficulty,
			"enter play  1/2/3 difficulty",
			"tab rallies  q quit",
		)
	case snap.Paused:
		drawCenteredMessage(dst, core.ColorYellow,
			"PAUSED",
			"p resume  esc menu",
		)
	}
}

func cellX(x float64) int {
	return int(math.Floor(x / core.CellW))
}

func cellY(y float64) int {
	return int(math.Floor(y / core.CellH))
}

func shakeOffset(mag float64, jitter core.RandSource) (int, int) {
	if mag <= 0 || jitter == nil {
		return 0, 0
	}
	ox := core.Uniform(jitter, -1, 1) * mag * shakeCellsX
	oy := core.Uniform(jitter, -1, 1) * mag * shakeCellsY
	return int(math.Round(ox)), int(math.Round(oy))
}

func drawCenterLine(dst *core.Screen, ox int) {
	x := dst.Width()/2 + ox
	for y := 1; y < dst.Height()-1; y++ {
		if y%3 != 0 {
			dst.SetColored(x, y, NetChar, core.ColorGridBlue)
		}
	}
}

func drawPaddle(dst *core.Screen, p PaddleView, ox, oy int) {
	x0, x1 := cellX(p.Box.X), cellX(math.Max(p.Box.X, p.Box.Right()-1))
	y0, y1 := cellY(p.Box.Y), cellY(math.Max(p.Box.Y, p.Box.Bottom()-1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x+ox, y+oy, PaddleChar, p.Color)
		}
	}
}

// drawTrail paints the afterimage, older points dimmer. The newest point
// sits under the ball and is skipped.
func drawTrail(dst *core.Screen, trail []effects.Point, ox, oy int) {
	if len(trail) < 2 {
		return
	}
	for i, p := range trail[:len(trail)-1] {
		r, c := FadedChar, core.ColorDeepTeal
		if i >= len(trail)/2 {
			r, c = TrailChar, BallColor
		}
		dst.SetColored(cellX(p.X)+ox, cellY(p.Y)+oy, r, c)
	}
}

func drawParticles(dst *core.Screen, particles []ParticleView, ox, oy int) {
	for _, p := range particles {
		r, c := '*', p.Color
		switch {
		case p.Fade < 0.25:
			r, c = FadedChar, core.ColorDimGray
		case p.Fade < 0.6:
			r = '+'
		}
		dst.SetColored(cellX(p.X)+ox, cellY(p.Y)+oy, r, c)
	}
}

func drawHeader(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf("YOU %d", snap.Score.Player)
	right := fmt.Sprintf("%d CPU", snap.Score.CPU)
	dst.DrawTextColored(1, 0, left, PlayerColor)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, CPUColor)
	dst.DrawTextCentered(0, strings.ToUpper(snap.Difficulty), core.ColorGray)
}

// drawCenteredMessage draws a framed message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorGray)
	}
}
