package filter

import "testing"

func TestGaussianZeroIsCopy(t *testing.T) {
	src := rampBuffer(8, 8)
	got := Gaussian(src, 0)
	if got == src {
		t.Fatal("Gaussian must return a new buffer")
	}
	if !sameBuffer(got, src, 0) {
		t.Error("Gaussian(0) changed pixels")
	}
}

func TestGaussianKeepsSolidColor(t *testing.T) {
	src := solidBuffer(20, 12, 0.2, 0.4, 0.6, 1)
	got := Gaussian(src, 4)
	if !sameBuffer(got, src, 1e-5) {
		t.Error("blurring a solid image should leave it unchanged (edges extend)")
	}
}

func TestGaussianSmoothsEdge(t *testing.T) {
	src := solidBuffer(21, 5, 0, 0, 0, 1)
	for y := range 5 {
		for x := 11; x < 21; x++ {
			src.SetPixel(x, y, 1, 1, 1, 1)
		}
	}
	got := Gaussian(src, 2)

	left, _, _, _ := got.Pixel(9, 2)
	mid, _, _, _ := got.Pixel(10, 2)
	right, _, _, _ := got.Pixel(11, 2)
	if !(left > 0 && left < mid && mid < right && right < 1) {
		t.Errorf("edge not smoothed: %v %v %v", left, mid, right)
	}
	if r, _, _, _ := got.Pixel(0, 2); !approx(r, 0, 1e-4) {
		t.Errorf("far left = %v, want ~0", r)
	}
}

func TestGaussianDoesNotModifySource(t *testing.T) {
	src := rampBuffer(16, 16)
	before := src.Clone()
	Gaussian(src, 3)
	if !sameBuffer(src, before, 0) {
		t.Error("Gaussian modified its input")
	}
}
