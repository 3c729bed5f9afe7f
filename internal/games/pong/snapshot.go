package pong

import (
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/effects"
)

// Snapshot is the read-only frame handed to the painter.
type Snapshot struct {
	Bounds     Bounds
	Player     PaddleView
	CPU        PaddleView
	Ball       BallView
	Trail      []effects.Point // oldest first
	Particles  []ParticleView
	Shake      float64 // current shake offset magnitude, world units
	Score      Score
	Phase      Phase
	Paused     bool
	Serving    bool
	Difficulty string
	Rally      Rally
}

// PaddleView is a paddle rectangle and its color.
type PaddleView struct {
	Box   core.Box
	Color core.Color
}

// BallView is the ball position, radius and color.
type BallView struct {
	X, Y  float64
	R     float64
	Color core.Color
}

// ParticleView is a particle as drawn. Fade is the remaining life fraction.
type ParticleView struct {
	X, Y  float64
	Size  float64
	Color core.Color
	Fade  float64
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	live := st.Particles.All()
	particles := make([]ParticleView, len(live))
	for i, p := range live {
		particles[i] = ParticleView{X: p.X, Y: p.Y, Size: p.Size, Color: p.Color, Fade: p.Fade()}
	}

	var shake float64
	if st.Shake.Active() {
		shake = st.Shake.Amp * st.Shake.T
	}

	return Snapshot{
		Bounds:     st.Bounds,
		Player:     PaddleView{Box: st.Player.Box(), Color: st.Player.Color},
		CPU:        PaddleView{Box: st.CPU.Box(), Color: st.CPU.Color},
		Ball:       BallView{X: st.Ball.X, Y: st.Ball.Y, R: st.Ball.R, Color: BallColor},
		Trail:      st.Trail.Points(),
		Particles:  particles,
		Shake:      shake,
		Score:      st.Score,
		Phase:      g.phase,
		Paused:     st.Paused,
		Serving:    st.ServeCooldown > 0,
		Difficulty: g.profile.Name,
		Rally:      st.Rally,
	}
}
