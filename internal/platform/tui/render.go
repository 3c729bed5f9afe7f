package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDimGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorNeonCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("123")).Bold(true),
	core.ColorPurple:      lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
	core.ColorAqua:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
	core.ColorSkyBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorDeepTeal:    lipgloss.NewStyle().Foreground(lipgloss.Color("30")),
	core.ColorGridBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colour share one style run; blank runs are
// written bare.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Blank runs need no escapes
			text := run.String()
			if strings.TrimLeft(text, " ") == "" {
				sb.WriteString(text)
				continue
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(text))
		}
	}
	return sb.String()
}
