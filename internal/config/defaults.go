package config

import (
	_ "embed"

	"github.com/vovakirdan/neon-pong/internal/difficulty"
	"github.com/vovakirdan/neon-pong/internal/games/pong"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPong returns the hardcoded default configuration. It matches the
// embedded defaults/pong.yaml.
func DefaultPong() Pong {
	presets := make(map[string]PresetConfig)
	for _, p := range difficulty.Builtin() {
		presets[p.Name] = PresetConfig{
			MaxSpeed: p.MaxSpeed,
			Reaction: p.Reaction,
			Jitter:   p.Jitter,
			Miss:     p.Miss,
		}
	}

	return Pong{
		Display: Display{
			FPS:        60,
			MaxFrameMS: 33,
		},
		Effects: Effects{
			TrailLength:    12,
			ParticleCap:    512,
			ShakeAmplitude: 12,
			ShakeDuration:  0.35,
		},
		Audio: Audio{
			Enabled: false,
		},
		Difficulty: Difficulty{
			Default: difficulty.Normal,
			Presets: presets,
		},
		Physics: pong.DefaultPhysics(),
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
