package pong

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/effects"
)

// Entity colors.
const (
	PlayerColor     = core.ColorNeonCyan
	CPUColor        = core.ColorPurple
	BallColor       = core.ColorAqua
	TopWallColor    = core.ColorSkyBlue
	BottomWallColor = core.ColorPurple
)

// Physics holds the fixed ball, paddle and AI tuning. Distances are world
// units, speeds are units/s and times are seconds.
type Physics struct {
	BallRadius      float64
	BallBaseSpeed   float64
	BallMaxSpeed    float64
	BallAccel       float64 // speed multiplier per paddle hit
	WallBounceBoost float64 // vy multiplier per wall bounce
	SpinFactor      float64 // deflection angle divisor
	ServeDelay      float64
	ServeAngle      float64 // max launch angle from horizontal, radians
	ServeJitter     float64 // serve speed varies by ± this fraction

	PaddleW        float64
	PaddleH        float64
	PaddleMargin   float64
	PaddleSpeed    float64
	KeySpeedFactor float64
	PointerRate    float64 // exponential approach rate for pointer tracking

	AIMinApproachSpeed float64 // vx floor for time-to-reach
	AISwayAmplitude    float64
	AISwayRate         float64 // rad/s
	AIReactionMin      float64 // reaction interval multiplier range
	AIReactionMax      float64
	AIMissOffset       float64

	BurstCount  int
	BurstSpeed  float64
	StreakCount int
}

// DefaultPhysics returns the stock tuning.
func DefaultPhysics() Physics {
	return Physics{
		BallRadius:      9,
		BallBaseSpeed:   460,
		BallMaxSpeed:    1600,
		BallAccel:       1.015,
		WallBounceBoost: 1.003,
		SpinFactor:      6,
		ServeDelay:      0.7,
		ServeAngle:      math.Pi / 8,
		ServeJitter:     0.1,

		PaddleW:        14,
		PaddleH:        100,
		PaddleMargin:   32,
		PaddleSpeed:    860,
		KeySpeedFactor: 0.9,
		PointerRate:    12,

		AIMinApproachSpeed: 60,
		AISwayAmplitude:    24,
		AISwayRate:         0.7,
		AIReactionMin:      0.75,
		AIReactionMax:      1.35,
		AIMissOffset:       60,

		BurstCount:  22,
		BurstSpeed:  340,
		StreakCount: 18,
	}
}

// Settings bundles the physics with the effect budgets a session runs with.
type Settings struct {
	Physics        Physics
	TrailLength    int
	ParticleCap    int
	ShakeAmplitude float64
	ShakeDuration  float64
}

// DefaultSettings returns the stock physics and effect budgets.
func DefaultSettings() Settings {
	return Settings{
		Physics:        DefaultPhysics(),
		TrailLength:    effects.DefaultTrailLength,
		ParticleCap:    effects.DefaultCap,
		ShakeAmplitude: 12,
		ShakeDuration:  0.35,
	}
}
