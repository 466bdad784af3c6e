package tui

import (
	"voxview/internal/colormap"
	"voxview/internal/control"
	"voxview/internal/volume"
)

const (
	defaultWindowLow  = -100
	defaultWindowHigh = 1000
	defaultOpacity    = 0.25
	defaultCmap       = "viridis"
)

// VolumeOption overrides a rendering default of a VolumeDisplay.
type VolumeOption func(*VolumeDisplay)

// WithWindow sets the initial window levels.
func WithWindow(lo, hi float64) VolumeOption {
	return func(d *VolumeDisplay) { d.lo, d.hi = lo, hi }
}

// WithOpacity sets the projection opacity in [0, 1].
func WithOpacity(o float64) VolumeOption {
	return func(d *VolumeDisplay) { d.opacity = o }
}

// WithColormap sets the initial colormap name.
func WithColormap(name string) VolumeOption {
	return func(d *VolumeDisplay) { d.cmapName = name }
}

// VolumeDisplay shows a maximum-intensity projection of the whole grid.
// It carries two controls: the window levels and the colormap.
type VolumeDisplay struct {
	grid *volume.Grid
	reg  *colormap.Registry

	window *control.RangeSlider
	cmap   *control.Choice

	table    *colormap.Table
	lo, hi   float64
	opacity  float64
	cmapName string
	proj     [][]float64
}

// NewVolumeDisplay validates that a is rank 3 and builds the display.
// Defaults are window (-100, 1000), opacity 0.25 and the viridis
// colormap; options override them.
func NewVolumeDisplay(a *volume.Array, reg *colormap.Registry, opts ...VolumeOption) (*VolumeDisplay, error) {
	g, err := volume.NewGrid(a)
	if err != nil {
		return nil, err
	}

	d := &VolumeDisplay{
		grid: g, reg: reg,
		lo: defaultWindowLow, hi: defaultWindowHigh,
		opacity:  defaultOpacity,
		cmapName: defaultCmap,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.opacity = clamp01(d.opacity)

	d.window = control.NewWindowSlider(g, d.lo, d.hi)
	d.cmap = control.NewCmapChoice(reg, d.cmapName)
	d.window.OnChange(d.onWindow)
	d.cmap.OnChange(d.onCmap)

	d.table, _ = reg.Lookup(d.cmap.Selected())
	d.lo, d.hi = d.window.Value()
	d.proj = g.MaxProject()
	return d, nil
}

func (d *VolumeDisplay) onWindow(oldLo, oldHi, newLo, newHi float64) {
	d.lo, d.hi = newLo, newHi
}

func (d *VolumeDisplay) onCmap(old, new int) {
	d.table, _ = d.reg.Lookup(d.cmap.Selected())
}

// WindowControl returns the window-levels slider.
func (d *VolumeDisplay) WindowControl() *control.RangeSlider { return d.window }

// ColormapControl returns the colormap choice.
func (d *VolumeDisplay) ColormapControl() *control.Choice { return d.cmap }

// Window returns the active window levels.
func (d *VolumeDisplay) Window() (lo, hi float64) { return d.lo, d.hi }

// Colormap returns the active colormap name.
func (d *VolumeDisplay) Colormap() string { return d.table.Name() }

// Opacity returns the projection opacity.
func (d *VolumeDisplay) Opacity() float64 { return d.opacity }

// SetOpacity adjusts the projection opacity, clamped to [0, 1].
func (d *VolumeDisplay) SetOpacity(o float64) { d.opacity = clamp01(o) }

// Projection returns the cached maximum-intensity projection.
func (d *VolumeDisplay) Projection() [][]float64 { return d.proj }

// Raster renders the projection into a w x h cell image.
func (d *VolumeDisplay) Raster(w, h int) string {
	return halfBlockRaster(d.proj, w, h, d.table, d.lo, d.hi, d.opacity)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
