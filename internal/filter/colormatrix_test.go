package filter

import "testing"

func TestColorMatrixTransform(t *testing.T) {
	tests := []struct {
		name string
		m    ColorMatrix
		in   [4]float32
		want [4]float32
	}{
		{"identity", IdentityMatrix(), [4]float32{0.1, 0.2, 0.3, 1}, [4]float32{0.1, 0.2, 0.3, 1}},
		{"brightness", BrightnessMatrix(0.25), [4]float32{0.1, 0.2, 0.3, 1}, [4]float32{0.35, 0.45, 0.55, 1}},
		{"brightness unclamped", BrightnessMatrix(-0.5), [4]float32{0.1, 0.2, 0.3, 1}, [4]float32{-0.4, -0.3, -0.2, 1}},
		{"exposure +1", ExposureMatrix(1), [4]float32{0.1, 0.2, 0.6, 1}, [4]float32{0.2, 0.4, 1.2, 1}},
		{"exposure -2", ExposureMatrix(-2), [4]float32{0.4, 0.8, 1, 1}, [4]float32{0.1, 0.2, 0.25, 1}},
		{"contrast 2", ContrastMatrix(2), [4]float32{0.25, 0.5, 0.75, 1}, [4]float32{0, 0.5, 1, 1}},
		{"saturation 0 gray", SaturationMatrix(0), [4]float32{1, 0, 0, 1}, [4]float32{lumR, lumR, lumR, 1}},
		{"saturation keeps gray", SaturationMatrix(1.7), [4]float32{0.4, 0.4, 0.4, 1}, [4]float32{0.4, 0.4, 0.4, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.m.Transform(tt.in[0], tt.in[1], tt.in[2], tt.in[3])
			got := [4]float32{r, g, b, a}
			for i := range got {
				if !approx(got[i], tt.want[i], 1e-5) {
					t.Fatalf("Transform(%v) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestColorMatrixThen(t *testing.T) {
	a := BrightnessMatrix(0.1)
	b := ExposureMatrix(1)
	combined := a.Then(b)

	in := [4]float32{0.2, 0.3, 0.4, 1}
	r1, g1, b1, a1 := a.Transform(in[0], in[1], in[2], in[3])
	r2, g2, b2, a2 := b.Transform(r1, g1, b1, a1)
	r, g, bl, al := combined.Transform(in[0], in[1], in[2], in[3])

	if !approx(r, r2, 1e-5) || !approx(g, g2, 1e-5) || !approx(bl, b2, 1e-5) || !approx(al, a2, 1e-5) {
		t.Errorf("Then = (%v %v %v %v), sequential = (%v %v %v %v)", r, g, bl, al, r2, g2, b2, a2)
	}
}

func TestColorMatrixApply(t *testing.T) {
	src := solidBuffer(5, 40, 0.5, 0.5, 0.5, 1)
	got := ExposureMatrix(1).Apply(src)
	for i := 0; i < len(got.Pix); i += 4 {
		if !approx(got.Pix[i], 1, 1e-6) || got.Pix[i+3] != 1 {
			t.Fatalf("pixel %d = %v", i/4, got.Pix[i:i+4])
		}
	}
	if src.Pix[0] != 0.5 {
		t.Error("Apply modified its input")
	}
}
