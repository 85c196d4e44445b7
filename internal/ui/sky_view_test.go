package ui

import (
	"strings"
	"testing"
)

func TestSkyModel_EmptyView(t *testing.T) {
	m := NewSkyModel()

	view := m.View()
	if !strings.Contains(view, "No data yet") {
		t.Errorf("empty sky view = %q, want placeholder", view)
	}
}

func TestSkyModel_ViewContainsAllPlanets(t *testing.T) {
	m := NewSkyModel().SetSize(100, 30).UpdateData(epochSnapshot())

	view := m.View()
	for _, name := range []string{
		"Mercury", "Venus", "Earth", "Mars",
		"Jupiter", "Saturn", "Uranus", "Neptune",
	} {
		if !strings.Contains(view, name) {
			t.Errorf("sky view missing planet %s", name)
		}
	}
}

func TestSkyModel_ViewShowsSiderealTimeAndDaylight(t *testing.T) {
	m := NewSkyModel().SetSize(100, 30).UpdateData(epochSnapshot())

	view := m.View()
	if !strings.Contains(view, "Local sidereal time") {
		t.Error("sky view should show local sidereal time")
	}
	// Greenwich always has a sunrise and sunset.
	if !strings.Contains(view, "Sunrise") || !strings.Contains(view, "Sunset") {
		t.Error("sky view should show the daylight window")
	}
}

func TestSkyModel_PolarNightMessage(t *testing.T) {
	snap := epochSnapshot()
	snap.DaylightOK = false

	m := NewSkyModel().SetSize(100, 30).UpdateData(snap)

	view := m.View()
	if !strings.Contains(view, "No sunrise or sunset") {
		t.Error("sky view should explain a missing daylight window")
	}
}

func TestSkyModel_HorizonMarkers(t *testing.T) {
	m := NewSkyModel().SetSize(100, 30).UpdateData(epochSnapshot())

	view := m.View()
	// At any instant some planets are up and some are down.
	if !strings.Contains(view, "above") && !strings.Contains(view, "below") {
		t.Error("sky view should mark planets relative to the horizon")
	}
}

func TestSkyModel_CursorStaysInRange(t *testing.T) {
	m := NewSkyModel().UpdateData(epochSnapshot())

	m, _ = m.Update(keyMsg("k"))
	if m.cursor != 0 {
		t.Errorf("cursor after k at top = %d, want 0", m.cursor)
	}

	for i := 0; i < 20; i++ {
		m, _ = m.Update(keyMsg("j"))
	}
	if m.cursor != len(m.snapshot.Rows)-1 {
		t.Errorf("cursor after many j = %d, want %d", m.cursor, len(m.snapshot.Rows)-1)
	}
}

func TestSkyModel_UpdateDataResetsStaleCursor(t *testing.T) {
	m := NewSkyModel().UpdateData(epochSnapshot())
	for i := 0; i < 7; i++ {
		m, _ = m.Update(keyMsg("j"))
	}

	small := epochSnapshot()
	small.Rows = small.Rows[:3]
	m = m.UpdateData(small)

	if m.cursor != 0 {
		t.Errorf("cursor after shrinking data = %d, want 0", m.cursor)
	}
}

func TestElevationBar(t *testing.T) {
	tests := []struct {
		el   float64
		want int
	}{
		{0.5, 1},
		{15, 1},
		{25, 2},
		{45, 4},
		{89, 8},
		{90, 9},
	}

	for _, tt := range tests {
		bar := elevationBar(tt.el)
		if got := strings.Count(bar, "▮"); got != tt.want {
			t.Errorf("elevationBar(%v) cells = %d, want %d", tt.el, got, tt.want)
		}
	}
}
