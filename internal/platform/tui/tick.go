// Package tui provides the Bubble Tea integration for neon pong: the frame
// driver, input mapping, the rally log view and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultFPS = 60

// TickMsg is sent to trigger a frame. It carries the wall-clock time the
// frame clock measures deltas from.
type TickMsg time.Time

// frameInterval returns the time between frames at fps.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = defaultFPS
	}
	return time.Second / time.Duration(fps)
}

// tickCmd schedules the next frame.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
