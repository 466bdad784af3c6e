// Package control provides the interactive value holders that drive the
// displays. A control carries a value, its bounds, and a subscriber list;
// setting a new value notifies every subscriber with the old and new
// values. All dispatch is synchronous on the caller's goroutine.
package control

import (
	"fmt"

	"voxview/internal/colormap"
	"voxview/internal/volume"
)

// IntFunc receives the old and new value of an IntSlider.
type IntFunc func(old, new int)

// IntSlider is an integer control with inclusive bounds.
type IntSlider struct {
	Label    string
	min, max int
	value    int
	handlers []IntFunc
}

// NewIntSlider builds a slider with the given bounds and initial value
// clamped into them.
func NewIntSlider(label string, min, max, value int) *IntSlider {
	s := &IntSlider{Label: label, min: min, max: max}
	s.value = clampInt(value, min, max)
	return s
}

// OnChange registers a change handler.
func (s *IntSlider) OnChange(fn IntFunc) { s.handlers = append(s.handlers, fn) }

// Value returns the current value.
func (s *IntSlider) Value() int { return s.value }

// Min returns the lower bound.
func (s *IntSlider) Min() int { return s.min }

// Max returns the upper bound.
func (s *IntSlider) Max() int { return s.max }

// SetValue clamps v into the bounds and notifies subscribers when the
// stored value actually changed.
func (s *IntSlider) SetValue(v int) {
	v = clampInt(v, s.min, s.max)
	if v == s.value {
		return
	}
	old := s.value
	s.value = v
	for _, fn := range s.handlers {
		fn(old, v)
	}
}

// Step moves the value by delta, clamped to the bounds.
func (s *IntSlider) Step(delta int) { s.SetValue(s.value + delta) }

// Reset replaces bounds and value in one step without notifying. It is
// used when the underlying data layout changed and the owner re-derives
// the displayed state itself; bounds always bracket the value on return.
func (s *IntSlider) Reset(min, max, value int) {
	s.min, s.max = min, max
	s.value = clampInt(value, min, max)
}

// RangeFunc receives the old and new (lo, hi) pair of a RangeSlider.
type RangeFunc func(oldLo, oldHi, newLo, newHi float64)

// RangeSlider is a (lo, hi) float pair bounded by [min, max].
type RangeSlider struct {
	Label    string
	min, max float64
	lo, hi   float64
	handlers []RangeFunc
}

// NewRangeSlider builds a range control with the initial pair clamped
// into [min, max]. An initial pair lying outside the data extent is not
// an error; it is silently pulled to the nearest bound.
func NewRangeSlider(label string, min, max, lo, hi float64) *RangeSlider {
	return &RangeSlider{
		Label: label,
		min:   min, max: max,
		lo: clampFloat(lo, min, max),
		hi: clampFloat(hi, min, max),
	}
}

// OnChange registers a change handler.
func (s *RangeSlider) OnChange(fn RangeFunc) { s.handlers = append(s.handlers, fn) }

// Value returns the current (lo, hi) pair.
func (s *RangeSlider) Value() (lo, hi float64) { return s.lo, s.hi }

// Min returns the lower bound.
func (s *RangeSlider) Min() float64 { return s.min }

// Max returns the upper bound.
func (s *RangeSlider) Max() float64 { return s.max }

// SetRange clamps both ends into the bounds and notifies subscribers if
// either end changed.
func (s *RangeSlider) SetRange(lo, hi float64) {
	lo = clampFloat(lo, s.min, s.max)
	hi = clampFloat(hi, s.min, s.max)
	if lo == s.lo && hi == s.hi {
		return
	}
	oldLo, oldHi := s.lo, s.hi
	s.lo, s.hi = lo, hi
	for _, fn := range s.handlers {
		fn(oldLo, oldHi, lo, hi)
	}
}

// ChoiceFunc receives the old and new selected index of a Choice.
type ChoiceFunc func(old, new int)

// Choice is an ordered set of labeled options with one selected index.
type Choice struct {
	Label    string
	options  []string
	index    int
	handlers []ChoiceFunc
}

// NewChoice builds a choice control. An initial label that is not among
// the options leaves the first option selected; this mirrors the
// fail-silent behavior of the widget toolkits this package stands in for.
func NewChoice(label string, options []string, initial string) *Choice {
	c := &Choice{Label: label, options: options}
	for i, opt := range options {
		if opt == initial {
			c.index = i
			break
		}
	}
	return c
}

// OnChange registers a change handler.
func (c *Choice) OnChange(fn ChoiceFunc) { c.handlers = append(c.handlers, fn) }

// Options returns the option labels.
func (c *Choice) Options() []string { return c.options }

// Index returns the selected index.
func (c *Choice) Index() int { return c.index }

// Selected returns the selected label.
func (c *Choice) Selected() string { return c.options[c.index] }

// Select picks option i and notifies subscribers; out-of-range indices
// are ignored.
func (c *Choice) Select(i int) {
	if i < 0 || i >= len(c.options) || i == c.index {
		return
	}
	old := c.index
	c.index = i
	for _, fn := range c.handlers {
		fn(old, i)
	}
}

// SelectLabel picks the option with the given label. Unknown labels are
// a silent no-op.
func (c *Choice) SelectLabel(label string) {
	for i, opt := range c.options {
		if opt == label {
			c.Select(i)
			return
		}
	}
}

// Cycle advances the selection by one, wrapping around.
func (c *Choice) Cycle() { c.Select((c.index + 1) % len(c.options)) }

// NewSliceSlider builds the slice-index control for a grid: bounds
// [0, shape[0]-1], initial index 0.
func NewSliceSlider(g *volume.Grid) *IntSlider {
	return NewIntSlider("Slice Index", 0, g.Len()-1, 0)
}

// NewWindowSlider builds the windowing control with bounds derived from
// the grid's extremal values and the given initial pair.
func NewWindowSlider(g *volume.Grid, lo, hi float64) *RangeSlider {
	return NewRangeSlider("Window Levels", g.Min(), g.Max(), lo, hi)
}

// NewAspectChoice builds the cross-section control with one option per
// array dimension; the selected index is the axis index.
func NewAspectChoice(shape [3]int) *Choice {
	opts := make([]string, len(shape))
	for i := range shape {
		opts[i] = fmt.Sprintf("aspect %d", i+1)
	}
	return NewChoice("Cross Section", opts, opts[0])
}

// NewCmapChoice builds the colormap control over the registered names.
func NewCmapChoice(reg *colormap.Registry, initial string) *Choice {
	return NewChoice("Colormap", reg.Names(), initial)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
