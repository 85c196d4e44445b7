package ui

import (
	"strings"
	"testing"

	"github.com/litescript/ls-planets/internal/astro"
)

func TestOrreryModel_EmptyView(t *testing.T) {
	m := NewOrreryModel()

	view := m.View()
	if !strings.Contains(view, "No data yet") {
		t.Errorf("empty orrery view = %q, want placeholder", view)
	}
}

func TestOrreryModel_TooSmall(t *testing.T) {
	m := NewOrreryModel().SetSize(10, 5).UpdateData(epochSnapshot())

	view := m.View()
	if !strings.Contains(view, "too small") {
		t.Errorf("tiny orrery view = %q, want size warning", view)
	}
}

func TestOrreryModel_ViewContainsSunAndPlanets(t *testing.T) {
	m := NewOrreryModel().SetSize(120, 40).UpdateData(epochSnapshot())

	view := m.View()
	if !strings.Contains(view, "☉") {
		t.Error("orrery view should contain the Sun glyph")
	}

	// With a 120x40 grid every planet cell is distinct, so all eight
	// glyphs should appear.
	for name, glyph := range planetGlyphs {
		if !strings.Contains(view, string(glyph)) {
			t.Errorf("orrery view missing glyph %c for %s", glyph, name)
		}
	}
}

func TestOrreryModel_ScaleModeToggle(t *testing.T) {
	m := NewOrreryModel().SetSize(120, 40).UpdateData(epochSnapshot())

	if m.scaleMode != astro.ScaleLogR {
		t.Fatalf("initial scale mode = %v, want log", m.scaleMode)
	}

	m, _ = m.Update(keyMsg("z"))
	if m.scaleMode != astro.ScaleInner {
		t.Errorf("scale mode after z = %v, want inner", m.scaleMode)
	}

	m, _ = m.Update(keyMsg("z"))
	if m.scaleMode != astro.ScaleLogR {
		t.Errorf("scale mode after zz = %v, want log", m.scaleMode)
	}
}

func TestOrreryModel_FocusNavigation(t *testing.T) {
	m := NewOrreryModel().SetSize(120, 40).UpdateData(epochSnapshot())

	// Default focus is the Sun.
	if m.focusIdx != -1 {
		t.Fatalf("initial focus = %d, want -1", m.focusIdx)
	}
	if !strings.Contains(m.View(), "Sun at origin") {
		t.Error("legend should describe the Sun when nothing is focused")
	}

	m, _ = m.Update(keyMsg("k"))
	if m.focusIdx != 0 {
		t.Errorf("focus after k = %d, want 0", m.focusIdx)
	}
	if !strings.Contains(m.View(), "Mercury") {
		t.Error("legend should name the focused planet")
	}

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("j"))
	if m.focusIdx != -1 {
		t.Errorf("focus never goes below -1, got %d", m.focusIdx)
	}
}

func TestOrreryModel_LabelToggle(t *testing.T) {
	m := NewOrreryModel().SetSize(120, 40).UpdateData(epochSnapshot())

	if !strings.Contains(m.View(), "Sun at origin") {
		t.Fatal("labels should be on by default")
	}

	m, _ = m.Update(keyMsg("l"))
	if strings.Contains(m.View(), "Sun at origin") {
		t.Error("legend text should disappear when labels are off")
	}
	if !strings.Contains(m.View(), "scale:") {
		t.Error("scale mode should stay visible with labels off")
	}
}
