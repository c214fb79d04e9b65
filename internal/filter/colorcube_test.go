package filter

import (
	"errors"
	"testing"

	"github.com/gogpu/sight/accel"
	"github.com/gogpu/sight/colorspace"
	"github.com/gogpu/sight/lut"
)

func TestApplyCubeIdentity(t *testing.T) {
	src := rampBuffer(9, 9)
	got := ApplyCube(src, lut.Bake(17, lut.Identity))
	if !sameBuffer(got, src, 1e-5) {
		t.Error("identity cube changed pixels")
	}
}

func TestApplyCubeInvert(t *testing.T) {
	invert := func(c colorspace.RGB) colorspace.RGB {
		return colorspace.RGB{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B}
	}
	got := ApplyCube(solidBuffer(3, 3, 0.25, 0.5, 1, 0.75), lut.Bake(5, invert))
	r, g, b, a := got.Pixel(0, 0)
	if !approx(r, 0.75, 1e-5) || !approx(g, 0.5, 1e-5) || !approx(b, 0, 1e-5) {
		t.Errorf("rgb = (%v %v %v), want (0.75 0.5 0)", r, g, b)
	}
	if a != 0.75 {
		t.Errorf("alpha = %v, want 0.75 (kept)", a)
	}
}

func TestApplyCubeDeuteranopiaGray(t *testing.T) {
	cube := lut.Bake(lut.Dimension, colorspace.SimulateDeuteranopia)
	got := ApplyCube(solidBuffer(2, 2, 0.42, 0.42, 0.42, 1), cube)
	r, g, b, _ := got.Pixel(0, 0)
	if !approx(r, 0.42, 1e-3) || !approx(g, 0.42, 1e-3) || !approx(b, 0.42, 1e-3) {
		t.Errorf("gray became (%v %v %v)", r, g, b)
	}
}

// fakeAccelerator writes a constant, or fails with err.
type fakeAccelerator struct {
	err   error
	calls int
}

func (f *fakeAccelerator) Name() string                   { return "fake" }
func (f *fakeAccelerator) Init() error                    { return nil }
func (f *fakeAccelerator) Close()                         {}
func (f *fakeAccelerator) CanAccelerate(op accel.Op) bool { return op == accel.OpColorCube }

func (f *fakeAccelerator) ApplyColorCube(t accel.Target, _ []float32, _ int) error {
	f.calls++
	for i := range t.Pix {
		t.Pix[i] = 7
	}
	return f.err
}

func TestApplyCubeUsesAccelerator(t *testing.T) {
	fake := &fakeAccelerator{}
	if err := accel.Register(fake); err != nil {
		t.Fatal(err)
	}
	defer accel.Unregister()

	got := ApplyCube(solidBuffer(2, 2, 0.1, 0.1, 0.1, 1), lut.Bake(4, lut.Identity))
	if fake.calls != 1 {
		t.Fatalf("accelerator called %d times, want 1", fake.calls)
	}
	if got.Pix[0] != 7 {
		t.Errorf("result = %v, want accelerator output", got.Pix[0])
	}
}

func TestApplyCubeFallsBack(t *testing.T) {
	for _, err := range []error{accel.ErrFallbackToCPU, errors.New("device lost")} {
		fake := &fakeAccelerator{err: err}
		if err := accel.Register(fake); err != nil {
			t.Fatal(err)
		}

		src := rampBuffer(4, 4)
		got := ApplyCube(src, lut.Bake(9, lut.Identity))
		accel.Unregister()

		if !sameBuffer(got, src, 1e-5) {
			t.Errorf("fallback after %v did not produce the CPU result", err)
		}
	}
}
