package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"voxview/internal/colormap"
)

// halfBlockRaster renders a plane of samples into a w x h cell image.
// Each terminal cell packs two vertical pixels using the upper half
// block: the glyph's foreground is the top pixel and its background the
// bottom pixel, so the effective resolution is w x 2h. Samples are
// mapped to colors through the table with the given window; opacity
// blends the result toward black (1 = opaque).
func halfBlockRaster(plane [][]float64, w, h int, tbl *colormap.Table, lo, hi, opacity float64) string {
	if w <= 0 || h <= 0 || len(plane) == 0 || len(plane[0]) == 0 {
		return ""
	}
	rows, cols := len(plane), len(plane[0])
	black := colorful.Color{}

	sample := func(px, py int) colorful.Color {
		// nearest neighbor into the plane
		r := py * rows / (2 * h)
		c := px * cols / w
		if r >= rows {
			r = rows - 1
		}
		if c >= cols {
			c = cols - 1
		}
		col := tbl.At(plane[r][c], lo, hi)
		if opacity < 1 {
			col = black.BlendRgb(col, opacity).Clamped()
		}
		return col
	}

	var sb strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			top := sample(x, 2*y)
			bot := sample(x, 2*y+1)
			st := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bot.Hex()))
			sb.WriteString(st.Render("▀"))
		}
	}
	return sb.String()
}
