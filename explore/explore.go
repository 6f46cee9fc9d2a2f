// Package explore is a terminal browser for a filled grid. It draws the sign
// of the field as a character map and reports the distance, normal and
// curvature under a movable cursor.
package explore

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/soypat/sdfgrid"
)

const (
	viewCols = 64
	viewRows = 24
	bigStep  = 8
)

var (
	mapStyle    = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	insideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model is the bubbletea model of the explorer.
type Model struct {
	est    *sdfgrid.Estimator
	dims   sdfgrid.V2i
	cursor sdfgrid.V2i
	title  string
}

// NewModel returns an explorer over the grid read by est with the cursor at
// index start, clamped to the grid.
func NewModel(est *sdfgrid.Estimator, title string, start sdfgrid.V2i) Model {
	nx, ny := est.Grid().Dims()
	dims := sdfgrid.V2i{nx, ny}
	return Model{
		est:    est,
		dims:   dims,
		cursor: start.Clamp(dims),
		title:  title,
	}
}

// Cursor returns the grid index under the cursor.
func (m Model) Cursor() sdfgrid.V2i { return m.cursor }

func (m Model) Init() tea.Cmd { return nil }

// Update moves the cursor. Left and right step along x, up and down along y.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	var step sdfgrid.V2i
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		step = sdfgrid.V2i{-1, 0}
	case "right", "l":
		step = sdfgrid.V2i{1, 0}
	case "up", "k":
		step = sdfgrid.V2i{0, 1}
	case "down", "j":
		step = sdfgrid.V2i{0, -1}
	case "H":
		step = sdfgrid.V2i{-bigStep, 0}
	case "L":
		step = sdfgrid.V2i{bigStep, 0}
	case "K":
		step = sdfgrid.V2i{0, bigStep}
	case "J":
		step = sdfgrid.V2i{0, -bigStep}
	case "home":
		m.cursor = sdfgrid.V2i{}
		return m, nil
	}
	m.cursor = m.cursor.Add(step).Clamp(m.dims)
	return m, nil
}

func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, mapStyle.Render(m.charMap()), statsStyle.Render(m.stats()))
	help := helpStyle.Render("arrows/hjkl: move  HJKL: move 8  home: origin  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// charMap draws a window of the grid around the cursor with y increasing upwards.
// '#' marks negative distance, '+' points within half a spacing of the surface.
func (m Model) charMap() string {
	g := m.est.Grid()
	i0 := window(m.cursor[0], m.dims[0], viewCols)
	j0 := window(m.cursor[1], m.dims[1], viewRows)
	i1 := min(i0+viewCols, m.dims[0])
	j1 := min(j0+viewRows, m.dims[1])
	near := g.Spacing() / 2

	var b strings.Builder
	for j := j1 - 1; j >= j0; j-- {
		for i := i0; i < i1; i++ {
			d := g.At(i, j)
			switch {
			case i == m.cursor[0] && j == m.cursor[1]:
				b.WriteString(cursorStyle.Render("@"))
			case math.Abs(d) <= near:
				b.WriteByte('+')
			case d < 0:
				b.WriteString(insideStyle.Render("#"))
			default:
				b.WriteByte('.')
			}
		}
		if j > j0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) stats() string {
	g := m.est.Grid()
	i, j := m.cursor[0], m.cursor[1]
	p := g.Coord(i, j)
	n := m.est.Normal(i, j)
	k := m.est.Curvature(i, j)
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title) + "\n")
	b.WriteString(row("index", fmt.Sprintf("(%d,%d)", i, j)))
	b.WriteString(row("point", fmt.Sprintf("(%.3f,%.3f)", p.X, p.Y)))
	b.WriteString(row("distance", fmt.Sprintf("%.5f", g.At(i, j))))
	b.WriteString(row("normal", fmt.Sprintf("%.5fi + %.5fj", n.X, n.Y)))
	b.WriteString(row("curvature", fmt.Sprintf("%.5f", k)))
	if k != 0 {
		b.WriteString(row("radius", fmt.Sprintf("%.5f", 1/k)))
	}
	return b.String()
}

// window returns the first index of a span of size n over [0, total) that
// keeps c roughly centered.
func window(c, total, n int) int {
	if total <= n {
		return 0
	}
	start := c - n/2
	if start < 0 {
		return 0
	}
	if start+n > total {
		return total - n
	}
	return start
}

// Run opens the explorer on the terminal and blocks until the user quits.
func Run(est *sdfgrid.Estimator, title string, start sdfgrid.V2i) error {
	_, err := tea.NewProgram(NewModel(est, title, start), tea.WithAltScreen()).Run()
	return err
}
