// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-planets/internal/state"
	"github.com/litescript/ls-planets/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewTable ViewMode = iota
	ViewOrrery
	ViewSky
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic snapshot refreshes.
	TickMsg time.Time

	// DataUpdateMsg signals a new state snapshot is available.
	DataUpdateMsg struct {
		Snapshot state.Snapshot
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	viewMode ViewMode
	width    int
	height   int
	ready    bool

	table  TableModel
	orrery OrreryModel
	sky    SkyModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:    stateMgr,
		viewMode: ViewTable,
		table:    NewTableModel(),
		orrery:   NewOrreryModel(),
		sky:      NewSkyModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.state.RefreshInterval())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			m.viewMode = ViewTable
		case "2":
			m.viewMode = ViewOrrery
		case "3":
			m.viewMode = ViewSky
		case "tab":
			m.viewMode = (m.viewMode + 1) % 3

		// Observation clock control
		case ".":
			m.stepClock(24 * time.Hour)
		case ",":
			m.stepClock(-24 * time.Hour)
		case ">":
			m.stepClock(30 * 24 * time.Hour)
		case "<":
			m.stepClock(-30 * 24 * time.Hour)
		case "n":
			m.state.ResetTime()
			m.refresh()

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes ~5 lines, footer ~2
		contentHeight := msg.Height - 7
		m.table = m.table.SetSize(msg.Width, contentHeight)
		m.orrery = m.orrery.SetSize(msg.Width, contentHeight)
		m.sky = m.sky.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd(m.state.RefreshInterval()))
		m.refresh()

	case DataUpdateMsg:
		m.snapshot = msg.Snapshot
		m.table = m.table.UpdateData(m.snapshot)
		m.orrery = m.orrery.UpdateData(m.snapshot)
		m.sky = m.sky.UpdateData(m.snapshot)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// stepClock adjusts the observation clock and refreshes immediately.
func (m *Model) stepClock(d time.Duration) {
	m.state.Step(d)
	m.refresh()
}

func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.table = m.table.UpdateData(m.snapshot)
	m.orrery = m.orrery.UpdateData(m.snapshot)
	m.sky = m.sky.UpdateData(m.snapshot)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewTable:
		m.table, cmd = m.table.Update(msg)
	case ViewOrrery:
		m.orrery, cmd = m.orrery.Update(msg)
	case ViewSky:
		m.sky, cmd = m.sky.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewTable:
		content = m.table.View()
	case ViewOrrery:
		content = m.orrery.View()
	case ViewSky:
		content = m.sky.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

var (
	logoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	clockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	pinnedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
)

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(logoStyle.Render("  ✦ ls-planets"))
	b.WriteString(taglineStyle.Render(fmt.Sprintf("  Planetary Positions · v%s", version.Version)))
	b.WriteString("\n")

	clock := clockStyle.Render(m.snapshot.At.UTC().Format("2006-01-02 15:04:05 UTC"))
	b.WriteString("  " + clock)
	if m.state.Pinned() {
		b.WriteString(" " + pinnedStyle.Render("[pinned]"))
	}
	obs := m.snapshot.Observer
	b.WriteString(dimStyle.Render(fmt.Sprintf("  ·  %s %.4f, %.4f", obs.Name, obs.LatDeg, obs.LonDeg)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Table", "[2] Orrery", "[3] Sky"}

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	var help string
	switch m.viewMode {
	case ViewOrrery:
		help = "j/k: focus | l: labels | z: scale mode"
	case ViewSky:
		help = "j/k: focus"
	default:
		help = "j/k: select row"
	}
	help += " | ./,: ±1d | >/<: ±30d | n: now | tab: view | q: quit"

	return "  " + dimStyle.Render(help)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// SendDataUpdate creates a command that sends a data update message.
func SendDataUpdate(snapshot state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return DataUpdateMsg{Snapshot: snapshot}
	}
}
