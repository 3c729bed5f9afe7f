package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Start    key.Binding
	Menu     key.Binding
	Pause    key.Binding
	Easy     key.Binding
	Normal   key.Binding
	Hard     key.Binding
	RallyLog key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.Pause, k.Menu, k.RallyLog, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Start, k.Pause, k.Menu},
		{k.Easy, k.Normal, k.Hard},
		{k.RallyLog, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up", "k"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "j"),
			key.WithHelp("s/↓", "down"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		Normal: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "normal"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		RallyLog: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "rallies"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Start):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Menu):
		return core.ActionBack, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Easy):
		return core.ActionEasy, false
	case key.Matches(msg, k.Normal):
		return core.ActionNormal, false
	case key.Matches(msg, k.Hard):
		return core.ActionHard, false
	case key.Matches(msg, k.RallyLog):
		return core.ActionRallyLog, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame queues the discrete action for msg in frame. Movement keys
// are returned instead of queued, since they feed a KeyHold. Quit is never
// queued.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) (move core.Action, isQuit bool) {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone, core.ActionQuit:
	case core.ActionUp, core.ActionDown:
		return action, false
	default:
		frame.Set(action)
	}
	return core.ActionNone, isQuit
}

// DefaultKeyHold is how long a movement key counts as held after its last
// press or autorepeat event.
const DefaultKeyHold = 140 * time.Millisecond

// KeyHold turns terminal key presses, which carry no release event, into a
// held up/down state that expires after a timeout.
type KeyHold struct {
	timeout   time.Duration
	upUntil   time.Time
	downUntil time.Time
}

// NewKeyHold creates a hold tracker. A non-positive timeout uses
// DefaultKeyHold.
func NewKeyHold(timeout time.Duration) *KeyHold {
	if timeout <= 0 {
		timeout = DefaultKeyHold
	}
	return &KeyHold{timeout: timeout}
}

// Press records a movement key at now. Pressing one direction releases the
// other.
func (h *KeyHold) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionUp:
		h.upUntil = now.Add(h.timeout)
		h.downUntil = time.Time{}
	case core.ActionDown:
		h.downUntil = now.Add(h.timeout)
		h.upUntil = time.Time{}
	}
}

// Held reports which directions are held at now.
func (h *KeyHold) Held(now time.Time) (up, down bool) {
	return now.Before(h.upUntil), now.Before(h.downUntil)
}

// Release drops both directions.
func (h *KeyHold) Release() {
	h.upUntil = time.Time{}
	h.downUntil = time.Time{}
}
