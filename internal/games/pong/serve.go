package pong

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// Serve recentres the ball and launches it toward dir (+1 right, -1 left)
// after the serve delay. The trail and rally stats are cleared.
func (s *Sim) Serve(st *State, dir float64) {
	ph := s.settings.Physics
	b := &st.Ball

	b.X = st.Bounds.W / 2
	b.Y = st.Bounds.H / 2
	b.Speed = ph.BallBaseSpeed * core.Uniform(s.rng, 1-ph.ServeJitter, 1+ph.ServeJitter)

	ang := core.Uniform(s.rng, -ph.ServeAngle, ph.ServeAngle)
	vsign := 1.0
	if core.Chance(s.rng, 0.5) {
		vsign = -1
	}
	b.VX = math.Cos(ang) * b.Speed * core.Sign(dir)
	b.VY = math.Sin(ang) * b.Speed * vsign

	st.Trail.Clear()
	st.ServeCooldown = ph.ServeDelay
	st.Rally = Rally{}
}
