package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"voxview/internal/config"
)

func keyMsg(s string) tea.Msg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(config.DefaultConfig())
	var err error
	m.planar, err = NewPlanarDisplay(testArray(t, 4, 2, 2), m.reg, "viridis", -100, 1000)
	if err != nil {
		t.Fatalf("NewPlanarDisplay: %v", err)
	}
	m.vol, err = NewVolumeDisplay(testArray(t, 4, 2, 2), m.reg)
	if err != nil {
		t.Fatalf("NewVolumeDisplay: %v", err)
	}
	return m
}

func TestSidebarGatesDisplayKeys(t *testing.T) {
	m := newTestModel(t)
	m.showSidebar = true

	// with the sidebar focused the display controls must stay put
	for _, key := range []string{"a", "c", "]", "}"} {
		res, _ := m.Update(keyMsg(key))
		m = res.(Model)
	}
	if got := m.planar.AspectControl().Index(); got != 0 {
		t.Errorf("aspect moved with sidebar focused: index %d", got)
	}
	if got := m.planar.ColormapControl().Index(); got != 0 {
		t.Errorf("colormap moved with sidebar focused: index %d", got)
	}
	if lo, hi := m.planar.Window(); lo != 0 || hi != 15 {
		t.Errorf("window moved with sidebar focused: (%v, %v)", lo, hi)
	}

	m.showSidebar = false
	res, _ := m.Update(keyMsg("a"))
	m = res.(Model)
	if got := m.planar.AspectControl().Index(); got != 1 {
		t.Errorf("aspect: got index %d", got)
	}
	res, _ = m.Update(keyMsg("c"))
	m = res.(Model)
	if got := m.planar.ColormapControl().Index(); got != 1 {
		t.Errorf("colormap: got index %d", got)
	}
}

func TestSidebarGatesSliceKeys(t *testing.T) {
	m := newTestModel(t)

	m.showSidebar = true
	res, _ := m.Update(keyMsg("k"))
	m = res.(Model)
	if got := m.planar.SliceControl().Value(); got != 0 {
		t.Errorf("slice moved with sidebar focused: %d", got)
	}

	m.showSidebar = false
	res, _ = m.Update(keyMsg("k"))
	m = res.(Model)
	if got := m.planar.SliceControl().Value(); got != 1 {
		t.Errorf("slice: got %d", got)
	}
}
