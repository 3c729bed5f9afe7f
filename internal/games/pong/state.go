package pong

import (
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/difficulty"
	"github.com/vovakirdan/neon-pong/internal/effects"
)

// Bounds is the board size in world units.
type Bounds struct {
	W, H float64
}

// Paddle is a vertical paddle. X is fixed per side and only changes on
// resize; Y is the top edge.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Color core.Color
}

// Box returns the paddle rectangle.
func (p Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Ball is the ball. Speed is the cached scalar used for acceleration; it is
// updated multiplicatively and may drift from the velocity magnitude.
type Ball struct {
	X, Y   float64
	R      float64
	VX, VY float64
	Speed  float64
}

// Circle returns the ball as a circle.
func (b Ball) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.R}
}

// Score holds both counters.
type Score struct {
	Player int
	CPU    int
}

// AIState is the CPU controller state.
type AIState struct {
	Profile difficulty.Profile
	TargetY float64 // desired paddle top
	ReactT  float64 // seconds until the next prediction
}

// Shake is the screen shake pulse. T counts down from the configured
// duration; the render offset scales with T.
type Shake struct {
	T   float64
	Amp float64
}

// Active reports whether the shake is still running.
func (s Shake) Active() bool {
	return s.T > 0
}

// Rally tracks the point in progress.
type Rally struct {
	Hits     int
	TopSpeed float64
	Duration float64 // seconds of ball movement
}

// Input is the per-step player input. A present pointer takes precedence
// over the movement keys.
type Input struct {
	HasPointer bool
	PointerY   float64 // world units
	Up, Down   bool
}

// State is the whole simulation state. A Sim mutates it once per step.
type State struct {
	Bounds        Bounds
	Player        Paddle
	CPU           Paddle
	Ball          Ball
	Score         Score
	AI            AIState
	Particles     *effects.Particles
	Trail         *effects.Trail
	ServeCooldown float64
	Shake         Shake
	Time          float64 // total simulated seconds
	Paused        bool
	Rally         Rally
}
