package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-planets/internal/state"
)

// Styles for the table view
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("174"))
)

// TableModel is the per-planet derived-quantities table view.
type TableModel struct {
	width    int
	height   int
	cursor   int
	snapshot state.Snapshot
}

// NewTableModel creates a new table model.
func NewTableModel() TableModel {
	return TableModel{}
}

// SetSize updates the viewport size.
func (m TableModel) SetSize(width, height int) TableModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m TableModel) UpdateData(snapshot state.Snapshot) TableModel {
	m.snapshot = snapshot
	if m.cursor >= len(snapshot.Rows) {
		m.cursor = 0
	}
	return m
}

// Selected returns the currently selected planet name, if any.
func (m TableModel) Selected() string {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Rows) {
		return ""
	}
	return m.snapshot.Rows[m.cursor].Name
}

// Update handles messages.
func (m TableModel) Update(msg tea.Msg) (TableModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.snapshot.Rows)-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if n := len(m.snapshot.Rows); n > 0 {
				m.cursor = n - 1
			}
		}
	}

	return m, nil
}

// View renders the table.
func (m TableModel) View() string {
	if len(m.snapshot.Rows) == 0 {
		return "  No data yet."
	}

	var b strings.Builder

	header := fmt.Sprintf("  %-9s %11s %11s %11s %10s %9s %11s",
		"PLANET", "MEAN ANOM", "EQ CENTER", "ECL LNG", "RA", "DEC", "SIDEREAL")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for i, row := range m.snapshot.Rows {
		line := fmt.Sprintf("  %-9s %11.4f %11.4f %11.4f %10.4f %9.4f %11.4f",
			row.Name, row.MeanAnomaly, row.EquationOfCenter,
			row.EclipticLongitude, row.RightAscension, row.Declination,
			row.SiderealTime)

		switch {
		case i == m.cursor:
			b.WriteString(selectedRowStyle.Render(line))
		case row.MeanAnomaly < 0:
			// Pre-epoch dates produce negative remainders; tint them so
			// the convention is visible rather than surprising.
			b.WriteString(negativeStyle.Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  All values in degrees, rounded to 4 decimal places."))
	return b.String()
}
