// Package pong implements neon pong against a predictive CPU opponent.
// The player controls the left paddle with the pointer or the keyboard; the
// CPU controls the right paddle using a difficulty profile.
package pong

import (
	"fmt"
	"time"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/difficulty"
)

// Phase is the session phase.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhasePlaying {
		return "playing"
	}
	return "menu"
}

// Game is one pong session: the simulation state plus the menu, pause and
// difficulty controls around it.
type Game struct {
	settings Settings
	presets  *difficulty.Registry
	profile  difficulty.Profile

	sim   *Sim
	state *State
	phase Phase

	rng        core.RandSource // gameplay
	fxRng      core.RandSource // render-only jitter
	injected   bool
	fxInjected bool
}

// Option configures a Game.
type Option func(*Game)

// WithRand makes the simulation draw its randomness from src instead of a
// source seeded on Reset. Rendering never reads from src.
func WithRand(src core.RandSource) Option {
	return func(g *Game) {
		g.rng = src
		g.injected = true
	}
}

// WithFXRand sets the source for render jitter such as screen shake.
func WithFXRand(src core.RandSource) Option {
	return func(g *Game) {
		g.fxRng = src
		g.fxInjected = true
	}
}

// New creates a session using the named preset from presets. Call Reset
// before use.
func New(settings Settings, presets *difficulty.Registry, preset string, opts ...Option) (*Game, error) {
	profile, err := presets.Lookup(preset)
	if err != nil {
		return nil, fmt.Errorf("pong: %w", err)
	}
	g := &Game{
		settings: settings,
		presets:  presets,
		profile:  profile,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Pong"
}

// Reset starts a fresh session in the menu with zero scores on a board
// sized from runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if !g.injected {
		g.rng = core.NewRand(seed)
	}
	if !g.fxInjected {
		g.fxRng = core.NewRand(seed + 1)
	}

	w, h := runtime.WorldSize()
	g.sim = NewSim(g.settings, g.rng)
	g.state = g.sim.NewState(w, h, g.profile)
	g.phase = PhaseMenu
}

// Resize applies new board bounds. In the menu the ball is re-centred as a
// preview.
func (g *Game) Resize(w, h float64) {
	g.sim.Resize(g.state, w, h)
	if g.phase == PhaseMenu {
		g.centreBall()
	}
}

// Start leaves the menu and serves toward a random side. Scores carry over.
func (g *Game) Start() {
	dir := 1.0
	if core.Chance(g.rng, 0.5) {
		dir = -1
	}
	g.phase = PhasePlaying
	g.state.Paused = false
	g.sim.Serve(g.state, dir)
}

// ShowMenu returns to the menu.
func (g *Game) ShowMenu() {
	g.phase = PhaseMenu
	g.state.Paused = false
	g.centreBall()
}

// TogglePause pauses or resumes a running match. It does nothing in the
// menu.
func (g *Game) TogglePause() {
	if g.phase != PhasePlaying {
		return
	}
	g.state.Paused = !g.state.Paused
}

// SetDifficulty switches the CPU profile. The reaction timer restarts and
// the target returns to the centre; scores and the ball are untouched.
func (g *Game) SetDifficulty(name string) error {
	profile, err := g.presets.Lookup(name)
	if err != nil {
		return fmt.Errorf("pong: %w", err)
	}
	g.profile = profile
	g.state.AI = AIState{
		Profile: profile,
		TargetY: (g.state.Bounds.H - g.state.CPU.H) / 2,
	}
	return nil
}

// Advance runs one simulation step of dt seconds. Nothing moves in the menu
// or while paused.
func (g *Game) Advance(in Input, dt float64) []Event {
	if g.phase != PhasePlaying || g.state.Paused {
		return nil
	}
	return g.sim.Step(g.state, in, dt)
}

// Phase returns the session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Paused reports whether a running match is paused.
func (g *Game) Paused() bool {
	return g.state.Paused
}

// Difficulty returns the active preset name.
func (g *Game) Difficulty() string {
	return g.profile.Name
}

// Settings returns the physics and effect budgets of the session.
func (g *Game) Settings() Settings {
	return g.settings
}

// Presets returns the preset registry the session selects from.
func (g *Game) Presets() *difficulty.Registry {
	return g.presets
}

// Score returns both counters.
func (g *Game) Score() Score {
	return g.state.Score
}

// State exposes the simulation state. Callers outside the frame driver
// should treat it as read-only.
func (g *Game) State() *State {
	return g.state
}

func (g *Game) centreBall() {
	g.state.Ball.X = g.state.Bounds.W / 2
	g.state.Ball.Y = g.state.Bounds.H / 2
	g.state.Trail.Clear()
}
