package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/audio"
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/difficulty"
	"github.com/vovakirdan/neon-pong/internal/games/pong"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

// helpLines is the number of rows below the board reserved for the help line.
const helpLines = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Preset names bound to the 1/2/3 keys.
var presetKeys = map[core.Action]string{
	core.ActionEasy:   difficulty.Easy,
	core.ActionNormal: difficulty.Normal,
	core.ActionHard:   difficulty.Hard,
}

// Model is the Bubble Tea model driving one pong session. It owns the game
// and feeds it one step per tick.
type Model struct {
	game       *pong.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Player
	logger     *log.Logger
	config     core.RuntimeConfig
	clock      *core.FrameClock
	hold       *KeyHold
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	rallies    RallyLog

	hasPointer  bool
	pointerY    float64
	showRallies bool
	quitting    bool
}

// NewModel creates a model for game. store and sound may be nil.
func NewModel(game *pong.Game, store *storage.Store, sound *audio.Player, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultFPS
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	boardH := max(cfg.ScreenH-helpLines, 1)
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardH),
		store:      store,
		sound:      sound,
		logger:     logger,
		config:     cfg,
		clock:      core.NewFrameClock(cfg.MaxFrameDelta),
		hold:       NewKeyHold(DefaultKeyHold),
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		rallies:    NewRallyLog(cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.boardConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys feed the hold tracker;
// everything else is applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	if m.showRallies {
		return m.handleRallyKey(msg)
	}

	move, isQuit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case move != core.ActionNone:
		// Keys take over from the pointer until it moves again
		m.hasPointer = false
		m.hold.Press(move, time.Now())
	}

	return m, nil
}

// handleRallyKey handles keys while the rally log is open.
func (m Model) handleRallyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.rallies.Keys()
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Back):
		m.showRallies = false
		return m, nil
	}

	var cmd tea.Cmd
	m.rallies, cmd = m.rallies.Update(msg)
	return m, cmd
}

// handleMouse turns pointer motion into a paddle target. Motion off the
// board, such as over the help line, drops the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	if msg.Y < 0 || msg.Y >= m.screen.Height() {
		m.hasPointer = false
		return m, nil
	}
	m.hasPointer = true
	m.pointerY = (float64(msg.Y) + 0.5) * core.CellH
	m.hold.Release()
	return m, nil
}

// handleResize processes window resize events. The match keeps running on
// the new board.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpLines, 1))
	m.help.Width = msg.Width
	m.rallies.Resize(msg.Width, msg.Height)

	w, h := m.boardConfig().WorldSize()
	m.game.Resize(w, h)

	return m, nil
}

// handleTick applies the queued actions and advances the simulation. A tick
// that starts or resumes play only restarts the clock.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.applyActions()

	dt := m.clock.Tick(now)
	events := m.game.Advance(m.frameInput(now), dt)
	m.handleEvents(events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// applyActions runs the discrete actions collected since the last tick.
func (m *Model) applyActions() {
	f := m.inputFrame
	playing := m.game.Phase() == pong.PhasePlaying

	for _, a := range []core.Action{core.ActionEasy, core.ActionNormal, core.ActionHard} {
		if !f.Has(a) {
			continue
		}
		if err := m.game.SetDifficulty(presetKeys[a]); err != nil {
			m.logger.Warn("cannot switch difficulty", "preset", presetKeys[a], "error", err)
		}
	}

	switch {
	case f.Has(core.ActionConfirm) && !playing:
		m.game.Start()
		m.hold.Release()
		m.clock.Reset()
	case f.Has(core.ActionBack) && playing:
		m.game.ShowMenu()
	case f.Has(core.ActionPause):
		m.game.TogglePause()
		if playing && !m.game.Paused() {
			m.clock.Reset()
		}
	case f.Has(core.ActionRallyLog) && !playing:
		m.rallies.Load(m.store)
		if err := m.rallies.Err(); err != nil {
			m.logger.Warn("cannot load rally log", "error", err)
		}
		m.showRallies = true
	}
}

// frameInput builds the control input for one step.
func (m Model) frameInput(now time.Time) pong.Input {
	up, down := m.hold.Held(now)
	return pong.Input{
		HasPointer: m.hasPointer,
		PointerY:   m.pointerY,
		Up:         up,
		Down:       down,
	}
}

// handleEvents sends step events to the speaker and the rally log.
func (m Model) handleEvents(events []pong.Event) {
	if len(events) == 0 {
		return
	}
	m.sound.Handle(events)

	for _, ev := range events {
		if ev.Kind != pong.EventPoint {
			continue
		}
		m.logger.Debug("point",
			"scorer", ev.Side,
			"hits", ev.Rally.Hits,
			"score", fmt.Sprintf("%d-%d", ev.Score.Player, ev.Score.CPU),
		)
		if m.store == nil {
			continue
		}
		_, err := m.store.RecordPoint(storage.Point{
			Scorer:      ev.Side.String(),
			Hits:        ev.Rally.Hits,
			TopSpeed:    ev.Rally.TopSpeed,
			Duration:    ev.Rally.Duration,
			PlayerScore: ev.Score.Player,
			CPUScore:    ev.Score.CPU,
			Difficulty:  m.game.Difficulty(),
		})
		if err != nil {
			m.logger.Warn("cannot record point", "error", err)
		}
	}
}

// boardConfig returns the runtime config for the area above the help line.
func (m Model) boardConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpLines, 1)
	return cfg
}

// saveScreenshot saves the current board to a file.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".neonpong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showRallies {
		return m.rallies.View() + "\n" + helpStyle.Render(m.help.View(m.rallies.Keys()))
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Game returns the session driven by the model.
func (m Model) Game() *pong.Game {
	return m.game
}

// ShowingRallies reports whether the rally log is open.
func (m Model) ShowingRallies() bool {
	return m.showRallies
}

// Run starts the Bubble Tea program with the given model.
func Run(game *pong.Game, store *storage.Store, sound *audio.Player, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer control without a button held
	)

	_, err := p.Run()
	return err
}
