package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-planets/internal/astro"
	"github.com/litescript/ls-planets/internal/state"
)

// Styles for the sky view
var (
	upStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))
	downStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	skyFocus     = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	daylightTint = lipgloss.NewStyle().Foreground(lipgloss.Color("222"))
)

// SkyModel lists the planets as seen from the observer's location,
// sorted by elevation.
type SkyModel struct {
	width    int
	height   int
	cursor   int
	snapshot state.Snapshot
}

// NewSkyModel creates a new sky view model.
func NewSkyModel() SkyModel {
	return SkyModel{}
}

// SetSize updates the viewport size.
func (m SkyModel) SetSize(width, height int) SkyModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m SkyModel) UpdateData(snapshot state.Snapshot) SkyModel {
	m.snapshot = snapshot
	if m.cursor >= len(snapshot.Rows) {
		m.cursor = 0
	}
	return m
}

// Update handles input messages.
func (m SkyModel) Update(msg tea.Msg) (SkyModel, tea.Cmd) {
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
		}
	}

	return m, nil
}

// View renders the sky list.
func (m SkyModel) View() string {
	if len(m.snapshot.Rows) == 0 {
		return "  No data yet."
	}

	var b strings.Builder

	lst := astro.LocalSiderealTime(m.snapshot.At, m.snapshot.Observer.LonDeg)
	b.WriteString(dimStyle.Render(fmt.Sprintf("  Local sidereal time: %8.4f°", lst)))
	b.WriteString("\n")
	b.WriteString(m.renderDaylight())
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-9s %9s %9s  %s", "PLANET", "AZ", "EL", "HORIZON")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	rows := make([]state.PlanetRow, len(m.snapshot.Rows))
	copy(rows, m.snapshot.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Sky.ElDeg > rows[j].Sky.ElDeg
	})

	for i, row := range rows {
		marker := "below"
		if row.Sky.ElDeg > 0 {
			marker = "above " + elevationBar(row.Sky.ElDeg)
		}
		line := fmt.Sprintf("  %-9s %9.2f %9.2f  %s",
			row.Name, row.Sky.AzDeg, row.Sky.ElDeg, marker)

		switch {
		case i == m.cursor:
			b.WriteString(skyFocus.Render(line))
		case row.Sky.ElDeg > 0:
			b.WriteString(upStyle.Render(line))
		default:
			b.WriteString(downStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m SkyModel) renderDaylight() string {
	if !m.snapshot.DaylightOK {
		return dimStyle.Render("  No sunrise or sunset at this latitude today.")
	}
	line := fmt.Sprintf("  Sunrise %s · Sunset %s UTC",
		m.snapshot.SunriseAt.UTC().Format("15:04"),
		m.snapshot.SunsetAt.UTC().Format("15:04"))
	if astro.IsDaylight(m.snapshot.Observer, m.snapshot.At) {
		return daylightTint.Render(line + " · daylight")
	}
	return dimStyle.Render(line)
}

// elevationBar scales 0-90° of elevation to at most nine bar cells.
func elevationBar(el float64) string {
	n := int(el / 10)
	if n < 1 {
		n = 1
	}
	if n > 9 {
		n = 9
	}
	return strings.Repeat("▮", n)
}
