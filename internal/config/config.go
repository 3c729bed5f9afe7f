// Package config provides YAML-based configuration loading for the game:
// display cadence, effect budgets, sound and the difficulty preset table.
// Ball and paddle physics are fixed and not read from YAML.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/neon-pong/internal/difficulty"
	"github.com/vovakirdan/neon-pong/internal/games/pong"
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrBoardTooSmall = errors.New("config: board too small for paddles")
)

const maxFramesPerSecond = 240

// Pong contains all configuration for the game.
type Pong struct {
	Display    Display      `yaml:"display"`
	Effects    Effects      `yaml:"effects"`
	Audio      Audio        `yaml:"audio"`
	Difficulty Difficulty   `yaml:"difficulty"`
	Physics    pong.Physics `yaml:"-"`
}

// Display defines the frame driver cadence.
type Display struct {
	FPS        int `yaml:"fps"`
	MaxFrameMS int `yaml:"max_frame_ms"`
}

// Effects defines the visual effect budgets.
type Effects struct {
	TrailLength    int     `yaml:"trail_length"`
	ParticleCap    int     `yaml:"particle_cap"`
	ShakeAmplitude float64 `yaml:"shake_amplitude"`
	ShakeDuration  float64 `yaml:"shake_duration"`
}

// Audio toggles sound feedback.
type Audio struct {
	Enabled bool `yaml:"enabled"`
}

// Difficulty holds the preset table and the one selected at start.
type Difficulty struct {
	Default string                  `yaml:"default"`
	Presets map[string]PresetConfig `yaml:"presets"`
}

// PresetConfig is the YAML shape of a difficulty profile.
type PresetConfig struct {
	MaxSpeed float64 `yaml:"max_speed"`
	Reaction float64 `yaml:"reaction"`
	Jitter   float64 `yaml:"jitter"`
	Miss     float64 `yaml:"miss"`
}

// MaxFrameDelta returns the simulation step cap as a duration.
func (c Pong) MaxFrameDelta() time.Duration {
	return time.Duration(c.Display.MaxFrameMS) * time.Millisecond
}

// Settings returns the simulation settings derived from this config.
func (c Pong) Settings() pong.Settings {
	return pong.Settings{
		Physics:        c.Physics,
		TrailLength:    c.Effects.TrailLength,
		ParticleCap:    c.Effects.ParticleCap,
		ShakeAmplitude: c.Effects.ShakeAmplitude,
		ShakeDuration:  c.Effects.ShakeDuration,
	}
}

// Registry builds the difficulty registry from the preset table.
func (c Pong) Registry() (*difficulty.Registry, error) {
	r := difficulty.NewRegistry()
	for name, p := range c.Difficulty.Presets {
		err := r.Register(difficulty.Profile{
			Name:     name,
			MaxSpeed: p.MaxSpeed,
			Reaction: p.Reaction,
			Jitter:   p.Jitter,
			Miss:     p.Miss,
		})
		if err != nil {
			return nil, fmt.Errorf("config: preset %q: %w", name, err)
		}
	}
	if err := r.CheckOrdering(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return r, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c Pong) Validate() error {
	switch {
	case c.Display.FPS < 1 || c.Display.FPS > maxFramesPerSecond:
		return fmt.Errorf("%w: display.fps must be within [1, %d], got %d", ErrInvalidConfig, maxFramesPerSecond, c.Display.FPS)
	case c.Display.MaxFrameMS < 1:
		return fmt.Errorf("%w: display.max_frame_ms must be positive, got %d", ErrInvalidConfig, c.Display.MaxFrameMS)
	case c.Effects.TrailLength < 1:
		return fmt.Errorf("%w: effects.trail_length must be positive, got %d", ErrInvalidConfig, c.Effects.TrailLength)
	case c.Effects.ParticleCap < 1:
		return fmt.Errorf("%w: effects.particle_cap must be positive, got %d", ErrInvalidConfig, c.Effects.ParticleCap)
	case c.Effects.ShakeAmplitude < 0 || c.Effects.ShakeDuration < 0:
		return fmt.Errorf("%w: effects.shake values must not be negative", ErrInvalidConfig)
	case len(c.Difficulty.Presets) == 0:
		return fmt.Errorf("%w: difficulty.presets is empty", ErrInvalidConfig)
	}

	if _, ok := c.Difficulty.Presets[c.Difficulty.Default]; !ok {
		return fmt.Errorf("%w: difficulty.default %q is not a preset", ErrInvalidConfig, c.Difficulty.Default)
	}
	if _, err := c.Registry(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// ValidateBoard checks that a board of w x h world units can hold the
// paddles. A board shorter than a paddle is a startup error.
func (c Pong) ValidateBoard(w, h float64) error {
	minW := 2 * (c.Physics.PaddleMargin + c.Physics.PaddleW)
	if h < c.Physics.PaddleH || w <= minW {
		return fmt.Errorf("%w: need more than %.0fx%.0f units, got %.0fx%.0f",
			ErrBoardTooSmall, minW, c.Physics.PaddleH, w, h)
	}
	return nil
}
