package pong

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// updateAI retargets and moves the CPU paddle.
//
// While the ball approaches, the target is refreshed from a trajectory
// prediction each time the reaction timer runs out, and every step may add
// a deliberate misjudgment. Otherwise the paddle sways around the centre.
func (s *Sim) updateAI(st *State, dt float64) {
	ph := s.settings.Physics
	ai := &st.AI
	cpu := &st.CPU
	prof := ai.Profile

	if st.Ball.VX > 0 {
		ai.ReactT -= dt
		if ai.ReactT <= 0 {
			y := PredictArrivalY(st.Ball, cpu.X, st.Bounds.H, ph.AIMinApproachSpeed)
			jitter := core.Uniform(s.rng, -prof.Jitter, prof.Jitter)
			ai.TargetY = y + jitter - cpu.H/2
			ai.ReactT = prof.Reaction * core.Uniform(s.rng, ph.AIReactionMin, ph.AIReactionMax)
		}
		if core.Chance(s.rng, prof.Miss) {
			ai.TargetY += core.Uniform(s.rng, -ph.AIMissOffset, ph.AIMissOffset)
		}
	} else {
		ai.TargetY = (st.Bounds.H-cpu.H)/2 + ph.AISwayAmplitude*math.Sin(st.Time*ph.AISwayRate)
	}

	maxStep := prof.MaxSpeed * dt
	cpu.Y += core.ClampF(ai.TargetY-cpu.Y, -maxStep, maxStep)
	cpu.Y = core.ClampF(cpu.Y, 0, st.Bounds.H-cpu.H)
}

// PredictArrivalY extrapolates the ball to x = targetX and folds the result
// off the top and bottom walls into [R, boardH-R]. vx below minVX is
// treated as minVX.
func PredictArrivalY(b Ball, targetX, boardH, minVX float64) float64 {
	t := (targetX - b.X) / math.Max(minVX, b.VX)
	return reflectInto(b.Y+b.VY*t, b.R, boardH-b.R)
}

// reflectInto folds y into [lo, hi] as if it bounced between the two ends.
func reflectInto(y, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return (lo + hi) / 2
	}
	period := 2 * span
	d := math.Mod(y-lo, period)
	if d < 0 {
		d += period
	}
	if d > span {
		d = period - d
	}
	return lo + d
}
