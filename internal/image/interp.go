package image

import "github.com/chewxy/math32"

// SampleBilinear interpolates b at continuous pixel coordinates, where
// integer coordinates address pixel centers. Coordinates outside the
// buffer clamp to the edge.
func SampleBilinear(b *Buffer, fx, fy float32) (r, g, bl, a float32) {
	x0f := math32.Floor(fx)
	y0f := math32.Floor(fy)
	tx := fx - x0f
	ty := fy - y0f
	x0 := clamp(int(x0f), 0, b.Width-1)
	y0 := clamp(int(y0f), 0, b.Height-1)
	x1 := clamp(int(x0f)+1, 0, b.Width-1)
	y1 := clamp(int(y0f)+1, 0, b.Height-1)

	p00 := b.Pix[b.Offset(x0, y0):]
	p10 := b.Pix[b.Offset(x1, y0):]
	p01 := b.Pix[b.Offset(x0, y1):]
	p11 := b.Pix[b.Offset(x1, y1):]

	var out [4]float32
	for c := range 4 {
		top := p00[c] + (p10[c]-p00[c])*tx
		bottom := p01[c] + (p11[c]-p01[c])*tx
		out[c] = top + (bottom-top)*ty
	}
	return out[0], out[1], out[2], out[3]
}
