package lut

import (
	"testing"

	"github.com/gogpu/sight/colorspace"
)

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestBakeSize(t *testing.T) {
	c := Bake(Dimension, Identity)
	if got, want := c.Len(), 1048576; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for b := 0; b < Dimension; b++ {
		for g := 0; g < Dimension; g++ {
			for r := 0; r < Dimension; r++ {
				if a := c.Data[((b*64+g)*64+r)*4+3]; a != 1 {
					t.Fatalf("alpha at (%d,%d,%d) = %v, want 1", r, g, b, a)
				}
			}
		}
	}
}

func TestBakeOrder(t *testing.T) {
	const dim = 4
	c := Bake(dim, Identity)

	// r changes fastest, b slowest.
	tests := []struct {
		r, g, b int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{3, 2, 1},
		{3, 3, 3},
	}
	for _, tt := range tests {
		i := ((tt.b*dim+tt.g)*dim + tt.r) * 4
		if got := c.Index(tt.r, tt.g, tt.b); got != i {
			t.Errorf("Index(%d,%d,%d) = %d, want %d", tt.r, tt.g, tt.b, got, i)
		}
		want := colorspace.RGB{R: float32(tt.r) / 3, G: float32(tt.g) / 3, B: float32(tt.b) / 3}
		got := c.At(tt.r, tt.g, tt.b)
		if absf32(got.R-want.R) > 1e-6 || absf32(got.G-want.G) > 1e-6 || absf32(got.B-want.B) > 1e-6 {
			t.Errorf("At(%d,%d,%d) = %v, want %v", tt.r, tt.g, tt.b, got, want)
		}
	}
}

func TestBakeCallsTransformInOrder(t *testing.T) {
	const dim = 3
	var seen []colorspace.RGB
	Bake(dim, func(c colorspace.RGB) colorspace.RGB {
		seen = append(seen, c)
		return c
	})
	if len(seen) != dim*dim*dim {
		t.Fatalf("transform called %d times, want %d", len(seen), dim*dim*dim)
	}
	if seen[1].R != 0.5 || seen[1].G != 0 || seen[1].B != 0 {
		t.Errorf("second sample = %v, want r to advance first", seen[1])
	}
	if seen[dim].G != 0.5 || seen[dim].R != 0 {
		t.Errorf("sample %d = %v, want g to advance second", dim, seen[dim])
	}
	if seen[dim*dim].B != 0.5 {
		t.Errorf("sample %d = %v, want b to advance last", dim*dim, seen[dim*dim])
	}
}

func TestBakeRaisesTinyDimension(t *testing.T) {
	for _, d := range []int{-1, 0, 1} {
		c := Bake(d, Identity)
		if c.Dimension != MinDimension {
			t.Errorf("Bake(%d).Dimension = %d, want %d", d, c.Dimension, MinDimension)
		}
	}
}

func TestLookupIdentity(t *testing.T) {
	c := Bake(17, Identity)
	tests := []colorspace.RGB{
		{R: 0, G: 0, B: 0},
		{R: 1, G: 1, B: 1},
		{R: 0.3, G: 0.61, B: 0.92},
		{R: 0.05, G: 0.5, B: 0.77},
	}
	for _, in := range tests {
		got := c.Lookup(in)
		if absf32(got.R-in.R) > 1e-5 || absf32(got.G-in.G) > 1e-5 || absf32(got.B-in.B) > 1e-5 {
			t.Errorf("Lookup(%v) = %v, want identity", in, got)
		}
	}
}

func TestLookupClampsDomain(t *testing.T) {
	c := Bake(8, Identity)
	got := c.Lookup(colorspace.RGB{R: -0.5, G: 2, B: 0.5})
	want := colorspace.RGB{R: 0, G: 1, B: 0.5}
	if absf32(got.R-want.R) > 1e-5 || absf32(got.G-want.G) > 1e-5 || absf32(got.B-want.B) > 1e-5 {
		t.Errorf("Lookup = %v, want %v", got, want)
	}
}

func TestDeuteranopiaCubeKeepsGray(t *testing.T) {
	c := Bake(Dimension, colorspace.SimulateDeuteranopia)
	for _, v := range []float32{0, 0.2, 0.37, 0.5, 0.81, 1} {
		in := colorspace.RGB{R: v, G: v, B: v}
		got := c.Lookup(in)
		if absf32(got.R-v) > 1e-3 || absf32(got.G-v) > 1e-3 || absf32(got.B-v) > 1e-3 {
			t.Errorf("Lookup(gray %v) = %v, want unchanged", v, got)
		}
	}
}
