package filter

import "github.com/gogpu/sight/internal/image"

// solidBuffer returns a w×h buffer filled with one color.
func solidBuffer(w, h int, r, g, b, a float32) *image.Buffer {
	buf, _ := image.NewBuffer(w, h)
	buf.Fill(r, g, b, a)
	return buf
}

// rampBuffer returns a w×h buffer whose red channel rises left to right and
// whose green channel rises top to bottom.
func rampBuffer(w, h int) *image.Buffer {
	buf, _ := image.NewBuffer(w, h)
	for y := range h {
		for x := range w {
			buf.SetPixel(x, y, float32(x)/float32(max(w-1, 1)), float32(y)/float32(max(h-1, 1)), 0.5, 1)
		}
	}
	return buf
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func approx(a, b, tol float32) bool {
	return absf32(a-b) <= tol
}

// sameBuffer reports whether two buffers hold the same pixels within tol.
func sameBuffer(a, b *image.Buffer, tol float32) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	for i := range a.Pix {
		if !approx(a.Pix[i], b.Pix[i], tol) {
			return false
		}
	}
	return true
}
