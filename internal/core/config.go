package core

import "time"

// World units per terminal cell. Cells are roughly twice as tall as they are
// wide, so a cell covers a 10x20 patch of the board.
const (
	CellW = 10.0
	CellH = 20.0
)

// RuntimeConfig contains what the platform passes to a session at start.
type RuntimeConfig struct {
	ScreenW       int           // Screen width in characters
	ScreenH       int           // Screen height in characters
	TickRate      int           // Frames per second requested from the driver
	MaxFrameDelta time.Duration // Cap for a single simulation step
	Seed          int64         // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickRate:      60,
		MaxFrameDelta: DefaultMaxFrameDelta,
	}
}

// WorldSize converts the screen size into board dimensions in world units.
func (c RuntimeConfig) WorldSize() (w, h float64) {
	return float64(c.ScreenW) * CellW, float64(c.ScreenH) * CellH
}
