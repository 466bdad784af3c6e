package volume

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrNotVolumetric is returned when a rank-3 view is requested of data
// that does not have exactly three dimensions.
var ErrNotVolumetric = errors.New("volume: data is not 3-dimensional")

// Array is an N-dimensional numeric grid stored row-major.
type Array struct {
	data  []float64
	shape []int
}

// NewArray wraps flat row-major data with the given shape.
func NewArray(data []float64, shape []int) (*Array, error) {
	if len(shape) == 0 {
		return nil, errors.New("volume: empty shape")
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("volume: invalid dimension %d in shape %v", d, shape)
		}
		n *= d
	}
	if n != len(data) {
		return nil, fmt.Errorf("volume: shape %v wants %d elements, got %d", shape, n, len(data))
	}
	s := make([]int, len(shape))
	copy(s, shape)
	return &Array{data: data, shape: s}, nil
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the dimensions.
func (a *Array) Shape() []int {
	s := make([]int, len(a.shape))
	copy(s, a.shape)
	return s
}

// Data returns the backing row-major buffer.
func (a *Array) Data() []float64 { return a.data }

// Min returns the smallest element.
func (a *Array) Min() float64 { return floats.Min(a.data) }

// Max returns the largest element.
func (a *Array) Max() float64 { return floats.Max(a.data) }

// Grid is a rank-3 array whose first axis is the slice axis. It is
// exclusively owned by the display that reads it; the only in-place
// mutation is SwapAxes, which re-assigns the slice axis.
type Grid struct {
	data  []float64
	shape [3]int
}

// NewGrid validates that a has exactly three dimensions and adopts its
// buffer. This is the single precondition checked anywhere in the viewer.
func NewGrid(a *Array) (*Grid, error) {
	if a.Rank() != 3 {
		return nil, fmt.Errorf("%w: rank = %d", ErrNotVolumetric, a.Rank())
	}
	return &Grid{
		data:  a.data,
		shape: [3]int{a.shape[0], a.shape[1], a.shape[2]},
	}, nil
}

// NewGridFromData builds a Grid directly from flat data and a shape.
func NewGridFromData(data []float64, shape []int) (*Grid, error) {
	a, err := NewArray(data, shape)
	if err != nil {
		return nil, err
	}
	return NewGrid(a)
}

// Shape returns the current dimensions.
func (g *Grid) Shape() [3]int { return g.shape }

// Len returns the extent of the slice axis.
func (g *Grid) Len() int { return g.shape[0] }

// At returns the element at (i, j, k).
func (g *Grid) At(i, j, k int) float64 {
	return g.data[(i*g.shape[1]+j)*g.shape[2]+k]
}

// Min returns the smallest element.
func (g *Grid) Min() float64 { return floats.Min(g.data) }

// Max returns the largest element.
func (g *Grid) Max() float64 { return floats.Max(g.data) }

// Slice copies plane i along the slice axis as rows x cols.
func (g *Grid) Slice(i int) [][]float64 {
	rows, cols := g.shape[1], g.shape[2]
	plane := make([][]float64, rows)
	base := i * rows * cols
	for r := 0; r < rows; r++ {
		row := make([]float64, cols)
		copy(row, g.data[base+r*cols:base+(r+1)*cols])
		plane[r] = row
	}
	return plane
}

// SwapAxes permutes the grid in place so that axis k becomes the slice
// axis and the old slice axis takes its place. Swapping with axis 0 is
// a no-op. The caller is responsible for resetting any slice index that
// depended on the old layout.
func (g *Grid) SwapAxes(k int) error {
	if k < 0 || k > 2 {
		return fmt.Errorf("volume: axis %d out of range [0, 2]", k)
	}
	if k == 0 {
		return nil
	}
	old := g.data
	os := g.shape
	ns := os
	ns[0], ns[k] = os[k], os[0]

	out := make([]float64, len(old))
	for i := 0; i < os[0]; i++ {
		for j := 0; j < os[1]; j++ {
			for l := 0; l < os[2]; l++ {
				var ni, nj, nl int
				if k == 1 {
					ni, nj, nl = j, i, l
				} else {
					ni, nj, nl = l, j, i
				}
				out[(ni*ns[1]+nj)*ns[2]+nl] = old[(i*os[1]+j)*os[2]+l]
			}
		}
	}
	g.data = out
	g.shape = ns
	return nil
}

// MaxProject collapses the slice axis with a running maximum, yielding
// the maximum-intensity projection used by the volumetric rendering.
func (g *Grid) MaxProject() [][]float64 {
	rows, cols := g.shape[1], g.shape[2]
	proj := g.Slice(0)
	for i := 1; i < g.shape[0]; i++ {
		base := i * rows * cols
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if v := g.data[base+r*cols+c]; v > proj[r][c] {
					proj[r][c] = v
				}
			}
		}
	}
	return proj
}
