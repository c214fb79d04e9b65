package filter

import "testing"

func TestBumpOutsideRadiusUnchanged(t *testing.T) {
	src := rampBuffer(40, 40)
	got := Bump(src, 20, 20, 8, -0.5)

	for _, p := range [][2]int{{0, 0}, {39, 39}, {5, 20}, {20, 34}} {
		r1, g1, _, _ := src.Pixel(p[0], p[1])
		r2, g2, _, _ := got.Pixel(p[0], p[1])
		if r1 != r2 || g1 != g2 {
			t.Errorf("pixel %v changed outside the bump radius", p)
		}
	}
}

func TestBumpCenterFixed(t *testing.T) {
	src := rampBuffer(41, 41)
	got := Bump(src, 20, 20, 10, 0.7)
	r1, g1, _, _ := src.Pixel(20, 20)
	r2, g2, _, _ := got.Pixel(20, 20)
	if !approx(r1, r2, 1e-6) || !approx(g1, g2, 1e-6) {
		t.Errorf("center moved: (%v %v) -> (%v %v)", r1, g1, r2, g2)
	}
}

func TestBumpDirection(t *testing.T) {
	src := rampBuffer(41, 41)
	// Right of center, red rises with x. A pinch samples farther out,
	// a bulge samples closer in.
	pinch := Bump(src, 20, 20, 10, -0.5)
	bulge := Bump(src, 20, 20, 10, 0.5)

	orig, _, _, _ := src.Pixel(24, 20)
	p, _, _, _ := pinch.Pixel(24, 20)
	b, _, _, _ := bulge.Pixel(24, 20)
	if !(p > orig && b < orig) {
		t.Errorf("orig %v, pinch %v, bulge %v", orig, p, b)
	}
}

func TestBumpNoopParameters(t *testing.T) {
	src := rampBuffer(10, 10)
	if got := Bump(src, 5, 5, 0, 1); !sameBuffer(got, src, 0) {
		t.Error("zero radius should copy")
	}
	if got := Bump(src, 5, 5, 4, 0); !sameBuffer(got, src, 0) {
		t.Error("zero scale should copy")
	}
}

func TestOpTileRepeatsCells(t *testing.T) {
	src := solidBuffer(40, 40, 0.3, 0.6, 0.9, 1)
	got := OpTile(src, 20, 20, 10, 2)
	if !sameBuffer(got, src, 1e-6) {
		t.Error("tiling a solid image should not change it")
	}
}

func TestOpTileCellCenterFixed(t *testing.T) {
	src := rampBuffer(40, 40)
	got := OpTile(src, 20, 20, 10, 2)
	// Cell [20,30) has its center at 25; sampling there is the identity.
	r1, _, _, _ := src.Pixel(25, 25)
	r2, _, _, _ := got.Pixel(25, 25)
	if !approx(r1, r2, 1e-6) {
		t.Errorf("cell center = %v, want %v", r2, r1)
	}
	// Near the cell edge the scale pushes samples outward.
	e1, _, _, _ := src.Pixel(28, 25)
	e2, _, _, _ := got.Pixel(28, 25)
	if !(e2 > e1) {
		t.Errorf("edge sample = %v, want > %v", e2, e1)
	}
}

func TestOpTileTinyWidthCopies(t *testing.T) {
	src := rampBuffer(5, 5)
	if got := OpTile(src, 2, 2, 0.5, 2); !sameBuffer(got, src, 0) {
		t.Error("width < 1 should copy")
	}
}
