// Package effects holds the purely visual, time-stepped systems that sit
// next to the simulation: spark particles and the ball's afterimage trail.
package effects

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// Particle motion constants.
const (
	ParticleGravity = 40.0  // downward drift, units/s²
	ParticleDamping = 0.995 // velocity multiplier per update
	DefaultCap      = 512
)

// Burst ranges (paddle hits).
const (
	BurstSpeedMin = 0.4 // fraction of the requested speed
	BurstSpeedMax = 1.2
	BurstLifeMin  = 0.9
	BurstLifeMax  = 1.4
	BurstSizeMin  = 2.0
	BurstSizeMax  = 5.0
)

// Streak ranges (wall bounces).
const (
	StreakSpread   = 0.3 // radians either side of the heading
	StreakSpeedMin = 220.0
	StreakSpeedMax = 520.0
	StreakLifeMin  = 0.25
	StreakLifeMax  = 0.55
	StreakSizeMin  = 1.0
	StreakSizeMax  = 3.0
)

// Particle is a single spark.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64
	Life   float64
	Size   float64
	Color  core.Color
}

// Fade returns the remaining life fraction in [0, 1]; 1 for a fresh
// particle and 0 once expired.
func (p Particle) Fade() float64 {
	if p.Life <= 0 {
		return 0
	}
	return 1 - math.Min(1, p.Age/p.Life)
}

// Particles is the live particle set. Insertion order is kept so the oldest
// particle is always first; when the cap is reached the oldest is evicted.
type Particles struct {
	live []Particle
	cap  int
}

// NewParticles creates an empty set holding at most capacity particles.
// A non-positive capacity uses DefaultCap.
func NewParticles(capacity int) *Particles {
	if capacity <= 0 {
		capacity = DefaultCap
	}
	return &Particles{
		live: make([]Particle, 0, min(capacity, 128)),
		cap:  capacity,
	}
}

// Burst emits count particles in random directions, used for paddle hits.
func (ps *Particles) Burst(rng core.RandSource, x, y float64, c core.Color, count int, speed float64) {
	for range count {
		a := core.Uniform(rng, 0, 2*math.Pi)
		s := speed * core.Uniform(rng, BurstSpeedMin, BurstSpeedMax)
		ps.add(Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(a) * s,
			VY:    math.Sin(a) * s,
			Life:  core.Uniform(rng, BurstLifeMin, BurstLifeMax),
			Size:  core.Uniform(rng, BurstSizeMin, BurstSizeMax),
			Color: c,
		})
	}
}

// Streak emits count particles fanned around heading (radians), used for
// wall bounces.
func (ps *Particles) Streak(rng core.RandSource, x, y, heading float64, c core.Color, count int) {
	for range count {
		a := heading + core.Uniform(rng, -StreakSpread, StreakSpread)
		s := core.Uniform(rng, StreakSpeedMin, StreakSpeedMax)
		ps.add(Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(a) * s,
			VY:    math.Sin(a) * s,
			Life:  core.Uniform(rng, StreakLifeMin, StreakLifeMax),
			Size:  core.Uniform(rng, StreakSizeMin, StreakSizeMax),
			Color: c,
		})
	}
}

func (ps *Particles) add(p Particle) {
	if len(ps.live) >= ps.cap {
		copy(ps.live, ps.live[1:])
		ps.live = ps.live[:len(ps.live)-1]
	}
	ps.live = append(ps.live, p)
}

// Update ages and moves every particle by dt seconds and drops the ones
// whose age reached their life.
func (ps *Particles) Update(dt float64) {
	alive := ps.live[:0]
	for _, p := range ps.live {
		p.Age += dt
		if p.Age >= p.Life {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= ParticleDamping
		p.VY *= ParticleDamping
		p.VY += ParticleGravity * dt
		alive = append(alive, p)
	}
	clear(ps.live[len(alive):])
	ps.live = alive
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.live)
}

// Cap returns the maximum number of live particles.
func (ps *Particles) Cap() int {
	return ps.cap
}

// All returns a copy of the live particles, oldest first.
func (ps *Particles) All() []Particle {
	out := make([]Particle, len(ps.live))
	copy(out, ps.live)
	return out
}

// Reset drops every particle.
func (ps *Particles) Reset() {
	ps.live = ps.live[:0]
}
