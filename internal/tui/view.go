package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 32

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	sbWidth := 0
	if m.showSidebar {
		sbWidth = sidebarWidth
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}

	// Header
	header := titleStyle.Render(" voxview ─ terminal volume viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sbWidth).Render(m.l.View())
	}

	// Raster viewport
	rasterWidth := contentWidth - sbWidth - 1
	if rasterWidth < 10 {
		rasterWidth = 10
	}
	rasterHeight := contentHeight

	var rasterView string
	if m.showAttrs {
		// Render the fingerprint table centered in the raster area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(rasterWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(rasterHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		rasterView = lipgloss.Place(rasterWidth, rasterHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	} else {
		img := m.renderRaster(max(8, rasterWidth), max(4, rasterHeight))
		rasterView = lipgloss.NewStyle().Width(rasterWidth).Height(rasterHeight).Render(img)
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", rasterView)
	} else {
		body = rasterView
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	// control readout at bottom-right
	readout := ""
	if s := m.controlReadout(); s != "" {
		readout = dimStyle.Render("  " + s + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(readout))
	right := lipgloss.Place(spacerW+lipgloss.Width(readout), 1, lipgloss.Right, lipgloss.Center, readout)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderRaster draws whichever display is active, or a hint when no
// dataset is loaded yet.
func (m Model) renderRaster(w, h int) string {
	switch {
	case m.volumetric && m.vol != nil:
		return m.vol.Raster(w, h)
	case m.planar != nil:
		return m.planar.Raster(w, h)
	default:
		hint := dimStyle.Render("open an hdf5 file to begin")
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, hint)
	}
}

// controlReadout summarizes the active controls for the footer.
func (m Model) controlReadout() string {
	if m.volumetric && m.vol != nil {
		lo, hi := m.vol.Window()
		return fmt.Sprintf("MIP  %s  [%.1f, %.1f]  opacity %.2f",
			m.vol.Colormap(), lo, hi, m.vol.Opacity())
	}
	if m.planar != nil {
		lo, hi := m.planar.Window()
		return fmt.Sprintf("%s  %s  %s  [%.1f, %.1f]",
			m.planar.IndexLabel(), m.planar.AspectLabel(), m.planar.Colormap(), lo, hi)
	}
	return ""
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓ slice",
		"a aspect",
		"c colormap",
		"[]{} window",
		"v volumetric",
		"+/- opacity",
		"f fingerprint",
		"Tab sidebar",
		"Enter open",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
