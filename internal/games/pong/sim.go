package pong

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/difficulty"
	"github.com/vovakirdan/neon-pong/internal/effects"
)

// Sim advances a State. All randomness goes through rng.
type Sim struct {
	settings Settings
	rng      core.RandSource
}

// NewSim creates a simulation with the given settings and random source.
func NewSim(settings Settings, rng core.RandSource) *Sim {
	return &Sim{settings: settings, rng: rng}
}

// Settings returns the settings the simulation runs with.
func (s *Sim) Settings() Settings {
	return s.settings
}

// NewState lays out a fresh board of w x h units with the ball served
// toward the CPU.
func (s *Sim) NewState(w, h float64, profile difficulty.Profile) *State {
	ph := s.settings.Physics
	st := &State{
		Player:    Paddle{W: ph.PaddleW, Color: PlayerColor},
		CPU:       Paddle{W: ph.PaddleW, Color: CPUColor},
		Ball:      Ball{R: ph.BallRadius},
		AI:        AIState{Profile: profile},
		Particles: effects.NewParticles(s.settings.ParticleCap),
		Trail:     effects.NewTrail(s.settings.TrailLength),
	}
	s.Resize(st, w, h)
	st.AI.TargetY = st.CPU.Y
	s.Serve(st, 1)
	return st
}

// Resize applies new board bounds. Paddles are re-anchored to their margins
// and re-centred; paddle height never exceeds the board height.
func (s *Sim) Resize(st *State, w, h float64) {
	ph := s.settings.Physics
	st.Bounds = Bounds{W: w, H: h}

	paddleH := math.Min(ph.PaddleH, h)
	st.Player.H = paddleH
	st.CPU.H = paddleH
	st.Player.X = ph.PaddleMargin
	st.CPU.X = w - ph.PaddleMargin - ph.PaddleW
	st.Player.Y = (h - paddleH) / 2
	st.CPU.Y = (h - paddleH) / 2

	st.Ball.X = core.ClampF(st.Ball.X, 0, w)
	st.Ball.Y = core.ClampF(st.Ball.Y, st.Ball.R, h-st.Ball.R)
}

// Step advances st by dt seconds and returns what happened. dt must already
// be clamped by the caller.
func (s *Sim) Step(st *State, in Input, dt float64) []Event {
	var events []Event
	st.Time += dt

	st.ServeCooldown = math.Max(0, st.ServeCooldown-dt)
	s.movePlayer(st, in, dt)

	if st.ServeCooldown <= 0 && !st.Paused {
		st.Ball.X += st.Ball.VX * dt
		st.Ball.Y += st.Ball.VY * dt
		st.Rally.Duration += dt
	}

	events = s.collideWalls(st, events)
	events = s.collidePaddles(st, events)
	events = s.checkScore(st, events)

	st.Shake.T = math.Max(0, st.Shake.T-dt)

	s.updateAI(st, dt)
	st.Particles.Update(dt)
	st.Trail.Push(st.Ball.X, st.Ball.Y)

	return events
}

func (s *Sim) movePlayer(st *State, in Input, dt float64) {
	ph := s.settings.Physics
	p := &st.Player
	maxY := st.Bounds.H - p.H

	if in.HasPointer {
		target := core.ClampF(in.PointerY-p.H/2, 0, maxY)
		p.Y += (target - p.Y) * math.Min(1, dt*ph.PointerRate)
	} else {
		step := ph.PaddleSpeed * ph.KeySpeedFactor * dt
		if in.Up {
			p.Y -= step
		}
		if in.Down {
			p.Y += step
		}
	}
	p.Y = core.ClampF(p.Y, 0, maxY)
}

func (s *Sim) collideWalls(st *State, events []Event) []Event {
	ph := s.settings.Physics
	b := &st.Ball

	if b.Y-b.R <= 0 && b.VY < 0 {
		b.Y = b.R
		b.VY = -b.VY * ph.WallBounceBoost
		st.Particles.Streak(s.rng, b.X, b.Y, math.Atan2(b.VY, b.VX), TopWallColor, ph.StreakCount)
		events = append(events, Event{Kind: EventWallBounce, Wall: WallTop, X: b.X, Y: b.Y, Speed: b.Speed})
	}
	if b.Y+b.R >= st.Bounds.H && b.VY > 0 {
		b.Y = st.Bounds.H - b.R
		b.VY = -b.VY * ph.WallBounceBoost
		st.Particles.Streak(s.rng, b.X, b.Y, math.Atan2(b.VY, b.VX), BottomWallColor, ph.StreakCount)
		events = append(events, Event{Kind: EventWallBounce, Wall: WallBottom, X: b.X, Y: b.Y, Speed: b.Speed})
	}
	return events
}

func (s *Sim) collidePaddles(st *State, events []Event) []Event {
	ph := s.settings.Physics
	b := &st.Ball

	if b.VX < 0 && core.CircleBoxOverlap(b.Circle(), st.Player.Box()) {
		s.deflect(st, st.Player, 1)
		b.X = st.Player.X + st.Player.W + b.R + 1
		st.Particles.Burst(s.rng, b.X, b.Y, st.Player.Color, ph.BurstCount, ph.BurstSpeed)
		events = append(events, Event{Kind: EventPaddleHit, Side: SidePlayer, X: b.X, Y: b.Y, Speed: b.Speed})
	}
	if b.VX > 0 && core.CircleBoxOverlap(b.Circle(), st.CPU.Box()) {
		s.deflect(st, st.CPU, -1)
		b.X = st.CPU.X - b.R - 1
		st.Particles.Burst(s.rng, b.X, b.Y, st.CPU.Color, ph.BurstCount, ph.BurstSpeed)
		events = append(events, Event{Kind: EventPaddleHit, Side: SideCPU, X: b.X, Y: b.Y, Speed: b.Speed})
	}
	return events
}

// deflect sends the ball away from p. dir is +1 off the player paddle and
// -1 off the CPU paddle. The hit offset from the paddle centre sets the
// outgoing angle.
func (s *Sim) deflect(st *State, p Paddle, dir float64) {
	ph := s.settings.Physics
	b := &st.Ball

	rel := (b.Y - p.Box().CenterY()) / (p.H / 2)
	ang := rel * math.Pi / ph.SpinFactor

	b.Speed = core.ClampF(b.Speed*ph.BallAccel, ph.BallBaseSpeed, ph.BallMaxSpeed)
	sp := math.Max(b.Speed, math.Abs(b.VX))

	b.VX = dir * math.Abs(math.Cos(ang)*sp)
	b.VY = core.Sign(rel) * math.Abs(math.Sin(ang)*sp)

	st.Rally.Hits++
	st.Rally.TopSpeed = math.Max(st.Rally.TopSpeed, b.Speed)
}

func (s *Sim) checkScore(st *State, events []Event) []Event {
	b := &st.Ball

	var scorer Side
	var serveDir float64
	switch {
	case b.X+b.R < 0:
		st.Score.CPU++
		scorer, serveDir = SideCPU, 1
	case b.X-b.R > st.Bounds.W:
		st.Score.Player++
		scorer, serveDir = SidePlayer, -1
	default:
		return events
	}

	events = append(events, Event{
		Kind:  EventPoint,
		Side:  scorer,
		X:     b.X,
		Y:     b.Y,
		Speed: b.Speed,
		Rally: st.Rally,
		Score: st.Score,
	})
	st.Shake = Shake{T: s.settings.ShakeDuration, Amp: s.settings.ShakeAmplitude}
	s.Serve(st, serveDir)
	return events
}
