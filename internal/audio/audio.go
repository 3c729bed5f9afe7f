// Package audio plays short square-wave cues for simulation events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/neon-pong/internal/games/pong"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// Player turns events into sounds. A nil or uninitialized Player is silent.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	p.initialized = true
	return nil
}

// Close shuts the speaker down.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}

// Enabled reports whether the speaker is open.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Handle plays one cue per event.
func (p *Player) Handle(events []pong.Event) {
	if !p.Enabled() {
		return
	}
	for _, ev := range events {
		if s := cue(ev); s != nil {
			speaker.Play(s)
		}
	}
}

// cue returns the sound for an event.
func cue(ev pong.Event) beep.Streamer {
	switch ev.Kind {
	case pong.EventPaddleHit:
		// Higher pitch off the CPU paddle
		if ev.Side == pong.SideCPU {
			return squareWave(990, 50*time.Millisecond)
		}
		return squareWave(880, 50*time.Millisecond)
	case pong.EventWallBounce:
		return squareWave(440, 30*time.Millisecond)
	case pong.EventPoint:
		// Rising for the player, falling for the CPU
		notes := []float64{330, 440, 660}
		if ev.Side == pong.SideCPU {
			notes = []float64{660, 440, 330}
		}
		return beep.Seq(
			squareWave(notes[0], 100*time.Millisecond),
			squareWave(notes[1], 100*time.Millisecond),
			squareWave(notes[2], 150*time.Millisecond),
		)
	default:
		return nil
	}
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
