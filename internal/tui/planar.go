package tui

import (
	"fmt"

	"voxview/internal/colormap"
	"voxview/internal/control"
	"voxview/internal/volume"
)

// PlanarDisplay shows one slice of a rank-3 grid at a time. It owns
// four controls (slice index, cross-section axis, window levels,
// colormap) and keeps the rendered plane in sync with them through
// registered change handlers.
type PlanarDisplay struct {
	grid *volume.Grid
	reg  *colormap.Registry

	slice  *control.IntSlider
	aspect *control.Choice
	window *control.RangeSlider
	cmap   *control.Choice

	table  *colormap.Table
	lo, hi float64
	plane  [][]float64
}

// NewPlanarDisplay validates that a is rank 3 and builds the display
// with its controls wired. The window pair may exceed the data extent;
// it is clamped by the control.
func NewPlanarDisplay(a *volume.Array, reg *colormap.Registry, cmapName string, winLo, winHi float64) (*PlanarDisplay, error) {
	g, err := volume.NewGrid(a)
	if err != nil {
		return nil, err
	}

	d := &PlanarDisplay{grid: g, reg: reg}
	d.slice = control.NewSliceSlider(g)
	d.aspect = control.NewAspectChoice(g.Shape())
	d.window = control.NewWindowSlider(g, winLo, winHi)
	d.cmap = control.NewCmapChoice(reg, cmapName)

	d.slice.OnChange(d.onSlice)
	d.aspect.OnChange(d.onAspect)
	d.window.OnChange(d.onWindow)
	d.cmap.OnChange(d.onCmap)

	d.table, _ = reg.Lookup(d.cmap.Selected())
	d.lo, d.hi = d.window.Value()
	d.plane = g.Slice(0)
	return d, nil
}

func (d *PlanarDisplay) onSlice(old, new int) {
	d.plane = d.grid.Slice(new)
}

// onAspect swaps the chosen axis with the current slice axis. Swaps
// accumulate: each choice acts on the orientation left by the previous
// one. The slice slider is rebounded to the new leading axis and
// rewound to zero.
func (d *PlanarDisplay) onAspect(old, new int) {
	d.grid.SwapAxes(new)
	d.slice.Reset(0, d.grid.Len()-1, 0)
	d.plane = d.grid.Slice(0)
}

func (d *PlanarDisplay) onWindow(oldLo, oldHi, newLo, newHi float64) {
	d.lo, d.hi = newLo, newHi
}

func (d *PlanarDisplay) onCmap(old, new int) {
	d.table, _ = d.reg.Lookup(d.cmap.Selected())
}

// SliceControl returns the slice-index slider.
func (d *PlanarDisplay) SliceControl() *control.IntSlider { return d.slice }

// AspectControl returns the cross-section choice.
func (d *PlanarDisplay) AspectControl() *control.Choice { return d.aspect }

// WindowControl returns the window-levels slider.
func (d *PlanarDisplay) WindowControl() *control.RangeSlider { return d.window }

// ColormapControl returns the colormap choice.
func (d *PlanarDisplay) ColormapControl() *control.Choice { return d.cmap }

// Shape returns the grid dimensions under the current orientation.
func (d *PlanarDisplay) Shape() [3]int { return d.grid.Shape() }

// Plane returns the currently displayed slice.
func (d *PlanarDisplay) Plane() [][]float64 { return d.plane }

// Window returns the active window levels.
func (d *PlanarDisplay) Window() (lo, hi float64) { return d.lo, d.hi }

// Colormap returns the active colormap name.
func (d *PlanarDisplay) Colormap() string { return d.table.Name() }

// IndexLabel is the caption above the slice slider.
func (d *PlanarDisplay) IndexLabel() string {
	return fmt.Sprintf("Slice Index: %d", d.slice.Value())
}

// AspectLabel is the caption for the current cross-section.
func (d *PlanarDisplay) AspectLabel() string {
	return fmt.Sprintf("Aspect %d", d.aspect.Index()+1)
}

// Raster renders the current slice into a w x h cell image.
func (d *PlanarDisplay) Raster(w, h int) string {
	return halfBlockRaster(d.plane, w, h, d.table, d.lo, d.hi, 1)
}
