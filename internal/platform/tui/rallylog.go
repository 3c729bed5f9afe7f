package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-pong/internal/storage"
)

const maxRallies = 100 // Max points to load

var (
	rallyTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("123"))
	rallyBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("135")).
			Padding(0, 1)
	rallyDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	rallyEmptyStyle = rallyDimStyle.
			Italic(true).
			Padding(1, 4)
)

// RallyLogKeyMap defines the key bindings for the rally log.
type RallyLogKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RallyLogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RallyLogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultRallyLogKeyMap returns default key bindings.
func DefaultRallyLogKeyMap() RallyLogKeyMap {
	return RallyLogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "tab", "b"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RallyLog shows the points of the session with their rally statistics.
type RallyLog struct {
	keys    RallyLogKeyMap
	table   table.Model
	points  []storage.Point
	summary storage.Summary
	err     error
	width   int
	height  int
}

// NewRallyLog creates an empty rally log view.
func NewRallyLog(width, height int) RallyLog {
	r := RallyLog{
		keys:   DefaultRallyLogKeyMap(),
		width:  width,
		height: height,
	}
	r.table = r.createTable()
	return r
}

// Keys returns the bindings, for the help view.
func (r RallyLog) Keys() RallyLogKeyMap {
	return r.keys
}

// createTable creates a table sized to the view.
func (r *RallyLog) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Scorer", Width: 7},
		{Title: "Hits", Width: 5},
		{Title: "Top speed", Width: 10},
		{Title: "Time", Width: 7},
		{Title: "Score", Width: 7},
	}

	height := r.height - 9 // Title, summary, borders and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Load reads the newest points and the summary from store. A nil store
// shows an empty log.
func (r *RallyLog) Load(store *storage.Store) {
	r.points, r.summary, r.err = nil, storage.Summary{}, nil
	if store != nil {
		r.points, r.err = store.RecentPoints(maxRallies)
		if r.err == nil {
			r.summary, r.err = store.Summary()
		}
	}
	r.updateTableRows()
}

// Err returns the error from the last Load, if any.
func (r RallyLog) Err() error {
	return r.err
}

// Rows returns the table rows, newest point first.
func (r RallyLog) Rows() []table.Row {
	return r.table.Rows()
}

// updateTableRows fills the table from the loaded points.
func (r *RallyLog) updateTableRows() {
	rows := make([]table.Row, len(r.points))
	for i, p := range r.points {
		rows[i] = table.Row{
			fmt.Sprintf("%d", p.ID),
			p.Scorer,
			fmt.Sprintf("%d", p.Hits),
			fmt.Sprintf("%.0f", p.TopSpeed),
			fmt.Sprintf("%.1fs", p.Duration),
			fmt.Sprintf("%d-%d", p.PlayerScore, p.CPUScore),
		}
	}
	r.table.SetRows(rows)
	r.table.GotoTop()
}

// Resize fits the table to a new terminal size.
func (r *RallyLog) Resize(width, height int) {
	r.width = width
	r.height = height
	rows := r.table.Rows()
	r.table = r.createTable()
	r.table.SetRows(rows)
}

// Update scrolls the table.
func (r RallyLog) Update(msg tea.Msg) (RallyLog, tea.Cmd) {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return r, cmd
}

// View renders the log without the help line.
func (r RallyLog) View() string {
	var b strings.Builder

	b.WriteString(centerText(rallyTitleStyle.Render("RALLY LOG"), r.width))
	b.WriteString("\n\n")

	var content string
	switch {
	case r.err != nil:
		content = rallyEmptyStyle.Render("Rally log unavailable:\n" + r.err.Error())
	case len(r.points) == 0:
		content = rallyEmptyStyle.Render("No points played yet.\nPress esc and enter to serve!")
	default:
		content = r.table.View()
	}
	b.WriteString(centerText(rallyBoxStyle.Render(content), r.width))
	b.WriteString("\n")
	b.WriteString(centerText(rallyDimStyle.Render(r.summaryLine()), r.width))

	return b.String()
}

// summaryLine formats the session totals.
func (r RallyLog) summaryLine() string {
	s := r.summary
	return fmt.Sprintf("you %d  cpu %d  longest rally %d  avg hits %.1f  top speed %.0f",
		s.PlayerPoints, s.CPUPoints, s.LongestRally, s.AvgHits, s.TopSpeed)
}

// centerText pads every line of text to sit in the middle of width columns.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	blockW := lipgloss.Width(text)
	if blockW >= width {
		return text
	}
	pad := strings.Repeat(" ", (width-blockW)/2)
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
