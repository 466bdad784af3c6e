package volume

import (
	"errors"
	"reflect"
	"testing"
)

// seq returns [0, 1, ..., n-1] as float64.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestNewArrayShapeMismatch(t *testing.T) {
	if _, err := NewArray(seq(10), []int{3, 4}); err == nil {
		t.Fatal("expected error for 10 elements with shape [3 4]")
	}
	if _, err := NewArray(seq(6), []int{2, 0, 3}); err == nil {
		t.Fatal("expected error for zero dimension")
	}
	if _, err := NewArray(nil, nil); err == nil {
		t.Fatal("expected error for empty shape")
	}
}

func TestNewGridRank(t *testing.T) {
	for _, shape := range [][]int{{16}, {4, 4}, {2, 2, 2, 2}} {
		n := 1
		for _, d := range shape {
			n *= d
		}
		a, err := NewArray(seq(n), shape)
		if err != nil {
			t.Fatalf("NewArray(%v): %v", shape, err)
		}
		if _, err := NewGrid(a); !errors.Is(err, ErrNotVolumetric) {
			t.Errorf("NewGrid rank %d: got %v, want ErrNotVolumetric", len(shape), err)
		}
	}

	a, err := NewArray(seq(16), []int{4, 2, 2})
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	if _, err := NewGrid(a); err != nil {
		t.Errorf("NewGrid rank 3: unexpected error %v", err)
	}
}

func TestGridSlice(t *testing.T) {
	g, err := NewGridFromData(seq(16), []int{4, 2, 2})
	if err != nil {
		t.Fatalf("NewGridFromData: %v", err)
	}

	want0 := [][]float64{{0, 1}, {2, 3}}
	if got := g.Slice(0); !reflect.DeepEqual(got, want0) {
		t.Errorf("Slice(0) = %v, want %v", got, want0)
	}
	want3 := [][]float64{{12, 13}, {14, 15}}
	if got := g.Slice(3); !reflect.DeepEqual(got, want3) {
		t.Errorf("Slice(3) = %v, want %v", got, want3)
	}
}

func TestGridSwapAxes(t *testing.T) {
	g, err := NewGridFromData(seq(16), []int{4, 2, 2})
	if err != nil {
		t.Fatalf("NewGridFromData: %v", err)
	}
	if err := g.SwapAxes(1); err != nil {
		t.Fatalf("SwapAxes(1): %v", err)
	}
	if got, want := g.Shape(), [3]int{2, 4, 2}; got != want {
		t.Fatalf("shape after swap = %v, want %v", got, want)
	}
	// element (i,j,l) of the original lands at (j,i,l)
	if got := g.At(1, 3, 0); got != 14 {
		t.Errorf("At(1,3,0) = %v, want 14", got)
	}
	// swapping back restores the original layout
	if err := g.SwapAxes(1); err != nil {
		t.Fatalf("SwapAxes(1) back: %v", err)
	}
	want := [][]float64{{0, 1}, {2, 3}}
	if got := g.Slice(0); !reflect.DeepEqual(got, want) {
		t.Errorf("Slice(0) after double swap = %v, want %v", got, want)
	}
}

func TestGridSwapAxesLast(t *testing.T) {
	g, err := NewGridFromData(seq(24), []int{2, 3, 4})
	if err != nil {
		t.Fatalf("NewGridFromData: %v", err)
	}
	if err := g.SwapAxes(2); err != nil {
		t.Fatalf("SwapAxes(2): %v", err)
	}
	if got, want := g.Shape(), [3]int{4, 3, 2}; got != want {
		t.Fatalf("shape after swap = %v, want %v", got, want)
	}
	// original (1,2,3) == 23 lands at (3,2,1)
	if got := g.At(3, 2, 1); got != 23 {
		t.Errorf("At(3,2,1) = %v, want 23", got)
	}

	if err := g.SwapAxes(3); err == nil {
		t.Error("SwapAxes(3): expected out of range error")
	}
}

func TestGridMinMax(t *testing.T) {
	g, err := NewGridFromData([]float64{3, -7, 2, 9, 0, 1, 4, 5}, []int{2, 2, 2})
	if err != nil {
		t.Fatalf("NewGridFromData: %v", err)
	}
	if g.Min() != -7 {
		t.Errorf("Min = %v, want -7", g.Min())
	}
	if g.Max() != 9 {
		t.Errorf("Max = %v, want 9", g.Max())
	}
}

func TestGridMaxProject(t *testing.T) {
	g, err := NewGridFromData(seq(16), []int{4, 2, 2})
	if err != nil {
		t.Fatalf("NewGridFromData: %v", err)
	}
	// the last slab dominates a monotonically increasing ramp
	want := [][]float64{{12, 13}, {14, 15}}
	if got := g.MaxProject(); !reflect.DeepEqual(got, want) {
		t.Errorf("MaxProject = %v, want %v", got, want)
	}
}
