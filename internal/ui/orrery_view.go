package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-planets/internal/astro"
	"github.com/litescript/ls-planets/internal/state"
)

// Styles for the orrery view
var (
	sunStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	planetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)

// planetGlyphs maps planet names to display runes.
var planetGlyphs = map[string]rune{
	"Mercury": '☿',
	"Venus":   '♀',
	"Earth":   '⊕',
	"Mars":    '♂',
	"Jupiter": '♃',
	"Saturn":  '♄',
	"Uranus":  '⛢',
	"Neptune": '♆',
}

// OrreryModel renders a top-down view of the solar system from the
// planets' ecliptic longitudes.
type OrreryModel struct {
	width     int
	height    int
	snapshot  state.Snapshot
	focusIdx  int // index into snapshot.Rows, -1 = Sun
	scaleMode astro.ScaleMode
	showLabel bool
}

// NewOrreryModel creates a new orrery view model.
func NewOrreryModel() OrreryModel {
	return OrreryModel{
		focusIdx:  -1,
		scaleMode: astro.ScaleLogR,
		showLabel: true,
	}
}

// SetSize updates the viewport size.
func (m OrreryModel) SetSize(width, height int) OrreryModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m OrreryModel) UpdateData(snapshot state.Snapshot) OrreryModel {
	m.snapshot = snapshot
	if m.focusIdx >= len(snapshot.Rows) {
		m.focusIdx = -1
	}
	return m
}

// Update handles input messages.
func (m OrreryModel) Update(msg tea.Msg) (OrreryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j":
			if m.focusIdx > -1 {
				m.focusIdx--
			}
		case "k":
			if m.focusIdx < len(m.snapshot.Rows)-1 {
				m.focusIdx++
			}
		case "z":
			if m.scaleMode == astro.ScaleLogR {
				m.scaleMode = astro.ScaleInner
			} else {
				m.scaleMode = astro.ScaleLogR
			}
		case "l":
			m.showLabel = !m.showLabel
		}
	}

	return m, nil
}

// View renders the orrery.
func (m OrreryModel) View() string {
	if len(m.snapshot.Rows) == 0 {
		return "  No data yet."
	}

	rows := m.height - 3
	cols := m.width - 4
	if rows < 9 || cols < 19 {
		return "  Terminal too small for the orrery view."
	}
	// Odd dimensions keep the Sun on an exact cell.
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	// Outermost display radius defines the scale. ProjectedPoint.R is
	// the raw AU radius; the scaled radius is the length of (X, Y).
	maxR := 0.0
	for _, row := range m.snapshot.Rows {
		p := astro.ProjectLongitude(row.EclipticLongitude, row.OrbitAU, m.scaleMode)
		if r := math.Hypot(p.X, p.Y); r > maxR {
			maxR = r
		}
	}
	if maxR == 0 {
		return "  No data yet."
	}

	cy := rows / 2
	cx := cols / 2
	grid[cy][cx] = '☉'

	focusName := ""
	if m.focusIdx >= 0 && m.focusIdx < len(m.snapshot.Rows) {
		focusName = m.snapshot.Rows[m.focusIdx].Name
	}

	focusX, focusY := -1, -1
	for _, row := range m.snapshot.Rows {
		p := astro.ProjectLongitude(row.EclipticLongitude, row.OrbitAU, m.scaleMode)
		x := cx + int(p.X/maxR*float64(cx-1))
		y := cy - int(p.Y/maxR*float64(cy-1))
		if x < 0 || x >= cols || y < 0 || y >= rows {
			continue
		}
		glyph, ok := planetGlyphs[row.Name]
		if !ok {
			glyph = '?'
		}
		grid[y][x] = glyph
		if row.Name == focusName {
			focusX, focusY = x, y
		}
	}

	var b strings.Builder
	for y := range grid {
		b.WriteString("  ")
		for x, r := range grid[y] {
			switch {
			case r == ' ':
				b.WriteRune(' ')
			case r == '☉':
				b.WriteString(sunStyle.Render(string(r)))
			case x == focusX && y == focusY:
				b.WriteString(focusStyle.Render(string(r)))
			default:
				b.WriteString(planetStyle.Render(string(r)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderLegend(focusName))
	return b.String()
}

func (m OrreryModel) renderLegend(focusName string) string {
	if !m.showLabel {
		return labelStyle.Render(fmt.Sprintf("  scale: %s", m.scaleMode))
	}

	if focusName == "" {
		return labelStyle.Render(fmt.Sprintf("  ☉ Sun at origin · scale: %s", m.scaleMode))
	}

	row := m.snapshot.Row(focusName)
	if row == nil {
		return labelStyle.Render(fmt.Sprintf("  scale: %s", m.scaleMode))
	}
	return labelStyle.Render(fmt.Sprintf("  %c %s · ecl lng %.4f° · %.3f AU · scale: %s",
		planetGlyphs[row.Name], row.Name, row.EclipticLongitude, row.OrbitAU, m.scaleMode))
}
