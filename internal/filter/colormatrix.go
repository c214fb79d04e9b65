package filter

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/sight/internal/image"
	"github.com/gogpu/sight/internal/parallel"
)

// Rec. 709 luma weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// Luma returns the Rec. 709 luma of a linear color.
func Luma(r, g, b float32) float32 {
	return lumR*r + lumG*g + lumB*b
}

// ColorMatrix is a 4x5 row-major color transform on [0,1] channel values:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
type ColorMatrix [20]float32

// IdentityMatrix passes colors through unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// BrightnessMatrix adds offset to every color channel.
func BrightnessMatrix(offset float32) ColorMatrix {
	m := IdentityMatrix()
	m[4], m[9], m[14] = offset, offset, offset
	return m
}

// ExposureMatrix scales color channels by 2^ev.
func ExposureMatrix(ev float32) ColorMatrix {
	f := math32.Pow(2, ev)
	m := IdentityMatrix()
	m[0], m[6], m[12] = f, f, f
	return m
}

// SaturationMatrix blends between luma (0) and the input (1); values
// above 1 oversaturate.
func SaturationMatrix(s float32) ColorMatrix {
	inv := 1 - s
	return ColorMatrix{
		lumR*inv + s, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + s, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// ContrastMatrix scales channels around mid-gray: (x-0.5)*c + 0.5.
func ContrastMatrix(c float32) ColorMatrix {
	off := 0.5 * (1 - c)
	return ColorMatrix{
		c, 0, 0, 0, off,
		0, c, 0, 0, off,
		0, 0, c, 0, off,
		0, 0, 0, 1, 0,
	}
}

// Then returns the matrix that applies m first and next second.
func (m ColorMatrix) Then(next ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for row := range 4 {
		for col := range 4 {
			var sum float32
			for k := range 4 {
				sum += next[row*5+k] * m[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = next[row*5]*m[4] + next[row*5+1]*m[9] +
			next[row*5+2]*m[14] + next[row*5+3]*m[19] + next[row*5+4]
	}
	return r
}

// Transform applies m to a single color.
func (m *ColorMatrix) Transform(r, g, b, a float32) (float32, float32, float32, float32) {
	return m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4],
		m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9],
		m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14],
		m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]
}

// Apply returns src transformed by m. Results are not clamped.
func (m ColorMatrix) Apply(src *image.Buffer) *image.Buffer {
	dst := src.Alloc()
	w := src.Width
	parallel.Rows(src.Height, func(y0, y1 int) {
		for i := y0 * w * 4; i < y1*w*4; i += 4 {
			p := src.Pix[i : i+4]
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = m.Transform(p[0], p[1], p[2], p[3])
		}
	})
	return dst
}
