package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-planets/internal/state"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := state.DefaultConfig()
	mgr := state.NewManager(cfg)
	mgr.SetTime(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))

	m := New(mgr)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	updated, _ = m.Update(DataUpdateMsg{Snapshot: mgr.Snapshot()})
	return updated.(Model)
}

func TestModel_InitialView(t *testing.T) {
	m := newTestModel(t)

	if m.viewMode != ViewTable {
		t.Fatalf("initial view mode = %v, want table", m.viewMode)
	}

	view := m.View()
	if !strings.Contains(view, "ls-planets") {
		t.Error("view should contain the app name")
	}
	if !strings.Contains(view, "2000-01-01 12:00:00 UTC") {
		t.Error("view should show the pinned observation clock")
	}
	if !strings.Contains(view, "[pinned]") {
		t.Error("view should flag a pinned clock")
	}
	if !strings.Contains(view, "Greenwich") {
		t.Error("view should show the observer site")
	}
	if !strings.Contains(view, "Earth") {
		t.Error("table content should be rendered")
	}
}

func TestModel_NotReadyBeforeWindowSize(t *testing.T) {
	mgr := state.NewManager(state.DefaultConfig())
	m := New(mgr)

	if got := m.View(); !strings.Contains(got, "Initializing") {
		t.Errorf("view before sizing = %q, want initializing message", got)
	}
}

func TestModel_ViewModeSwitching(t *testing.T) {
	m := newTestModel(t)

	steps := []struct {
		key  string
		want ViewMode
	}{
		{"2", ViewOrrery},
		{"3", ViewSky},
		{"1", ViewTable},
		{"tab", ViewOrrery},
		{"tab", ViewSky},
		{"tab", ViewTable},
	}

	for _, st := range steps {
		updated, _ := m.Update(keyMsg(st.key))
		m = updated.(Model)
		if m.viewMode != st.want {
			t.Errorf("view mode after %q = %v, want %v", st.key, m.viewMode, st.want)
		}
	}
}

func TestModel_ClockStepping(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("."))
	m = updated.(Model)
	if got := m.snapshot.At; !got.Equal(time.Date(2000, 1, 2, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("clock after '.' = %v, want +1 day", got)
	}

	updated, _ = m.Update(keyMsg(","))
	m = updated.(Model)
	if got := m.snapshot.At; !got.Equal(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("clock after ',' = %v, want back at epoch", got)
	}

	updated, _ = m.Update(keyMsg(">"))
	m = updated.(Model)
	if got := m.snapshot.At; !got.Equal(time.Date(2000, 1, 31, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("clock after '>' = %v, want +30 days", got)
	}
}

func TestModel_SteppingRecomputesRows(t *testing.T) {
	m := newTestModel(t)

	before := m.snapshot.Row("Earth").MeanAnomaly

	updated, _ := m.Update(keyMsg("."))
	m = updated.(Model)
	after := m.snapshot.Row("Earth").MeanAnomaly

	if before == after {
		t.Error("stepping the clock should recompute planet rows")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t)

	for _, key := range []string{"q", "ctrl+c"} {
		msg := keyMsg(key)
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("key %q should produce a quit command", key)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q command = %T, want tea.QuitMsg", key, cmd())
		}
	}
}

func TestModel_TickSchedulesNextTick(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule a follow-up command")
	}
}

func TestModel_FooterHelpFollowsView(t *testing.T) {
	m := newTestModel(t)

	if !strings.Contains(m.View(), "select row") {
		t.Error("table footer should mention row selection")
	}

	updated, _ := m.Update(keyMsg("2"))
	m = updated.(Model)
	if !strings.Contains(m.View(), "scale mode") {
		t.Error("orrery footer should mention the scale mode key")
	}
}
