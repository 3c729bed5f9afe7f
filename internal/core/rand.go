package core

import "math/rand"

// RandSource yields uniform floats in [0, 1). *rand.Rand satisfies it.
// Every random draw in the simulation goes through one so tests can script
// exact sequences.
type RandSource interface {
	Float64() float64
}

// NewRand returns a seeded source for gameplay.
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // gameplay randomness
}

// Uniform maps a draw from src onto [lo, hi).
func Uniform(src RandSource, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Chance reports whether a draw from src falls below p.
func Chance(src RandSource, p float64) bool {
	return src.Float64() < p
}
