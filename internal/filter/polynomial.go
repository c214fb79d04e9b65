package filter

import (
	"github.com/gogpu/sight/internal/image"
	"github.com/gogpu/sight/internal/parallel"
)

// Polynomial maps each channel x through c0 + c1·x + c2·x² + c3·x³.
type Polynomial struct {
	R, G, B, A [4]float32
}

// IdentityCoefficients leave a channel unchanged.
var IdentityCoefficients = [4]float32{0, 1, 0, 0}

// IdentityPolynomial passes every channel through.
func IdentityPolynomial() Polynomial {
	return Polynomial{R: IdentityCoefficients, G: IdentityCoefficients, B: IdentityCoefficients, A: IdentityCoefficients}
}

func eval(c *[4]float32, x float32) float32 {
	return c[0] + x*(c[1]+x*(c[2]+x*c[3]))
}

// Apply returns src with the polynomial applied per channel.
func (p Polynomial) Apply(src *image.Buffer) *image.Buffer {
	dst := src.Alloc()
	w := src.Width
	parallel.Rows(src.Height, func(y0, y1 int) {
		for i := y0 * w * 4; i < y1*w*4; i += 4 {
			dst.Pix[i] = eval(&p.R, src.Pix[i])
			dst.Pix[i+1] = eval(&p.G, src.Pix[i+1])
			dst.Pix[i+2] = eval(&p.B, src.Pix[i+2])
			dst.Pix[i+3] = eval(&p.A, src.Pix[i+3])
		}
	})
	return dst
}
