package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"voxview/internal/control"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "enter":
			if m.showSidebar {
				switch it := m.l.SelectedItem().(type) {
				case fileItem:
					m.openFile(it.path)
				case datasetItem:
					m.loadDataset(it.path)
				}
			}
		case "esc":
			switch {
			case m.showAttrs:
				m.showAttrs = false
			case m.showSidebar && m.browsingSet:
				m.refreshDir()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "f":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "v":
			if m.vol != nil {
				m.volumetric = !m.volumetric
				if m.volumetric {
					m.status = "volumetric projection"
				} else {
					m.status = "planar slices"
				}
			}
		case "up", "k":
			if !m.showSidebar && m.planar != nil && !m.volumetric {
				m.planar.SliceControl().Step(1)
				m.status = m.sliceStatus()
			}
		case "down", "j":
			if !m.showSidebar && m.planar != nil && !m.volumetric {
				m.planar.SliceControl().Step(-1)
				m.status = m.sliceStatus()
			}
		case "a":
			if !m.showSidebar && m.planar != nil && !m.volumetric {
				m.planar.AspectControl().Cycle()
				m.status = fmt.Sprintf("aspect %d", m.planar.AspectControl().Index()+1)
			}
		case "c":
			if d := m.activeCmap(); !m.showSidebar && d != nil {
				d.Cycle()
				m.status = "colormap: " + d.Selected()
			}
		case "[", "]", "{", "}":
			if !m.showSidebar {
				m.adjustWindow(msg.String())
			}
		case "+", "=":
			if !m.showSidebar && m.vol != nil && m.volumetric {
				m.vol.SetOpacity(m.vol.Opacity() + 0.05)
				m.status = fmt.Sprintf("opacity: %.2f", m.vol.Opacity())
			}
		case "-", "_":
			if !m.showSidebar && m.vol != nil && m.volumetric {
				m.vol.SetOpacity(m.vol.Opacity() - 0.05)
				m.status = fmt.Sprintf("opacity: %.2f", m.vol.Opacity())
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) sliceStatus() string {
	s := m.planar.SliceControl()
	return fmt.Sprintf("slice %d/%d", s.Value(), s.Max())
}

// activeCmap returns the colormap choice of whichever display is shown.
func (m Model) activeCmap() *control.Choice {
	if m.volumetric && m.vol != nil {
		return m.vol.ColormapControl()
	}
	if m.planar != nil {
		return m.planar.ColormapControl()
	}
	return nil
}

// adjustWindow nudges one end of the active window by 2% of the data
// extent: [ and ] move the low end, { and } move the high end.
func (m *Model) adjustWindow(key string) {
	var sl *control.RangeSlider
	switch {
	case m.volumetric && m.vol != nil:
		sl = m.vol.WindowControl()
	case m.planar != nil:
		sl = m.planar.WindowControl()
	default:
		return
	}
	step := (sl.Max() - sl.Min()) / 50
	if step == 0 {
		step = 1
	}
	lo, hi := sl.Value()
	switch key {
	case "[":
		lo -= step
	case "]":
		lo += step
	case "{":
		hi -= step
	case "}":
		hi += step
	}
	sl.SetRange(lo, hi)
	lo, hi = sl.Value()
	m.status = fmt.Sprintf("window: [%.1f, %.1f]", lo, hi)
}
