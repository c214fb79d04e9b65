package colorspace

// RGB is a linear RGB sample. Channels are nominally in [0,1].
type RGB struct {
	R, G, B float32
}

// LMS is a cone-response sample (long, medium, short wavelength).
type LMS struct {
	L, M, S float32
}

// mat3 is a row-major 3x3 matrix.
type mat3 [3][3]float32

func (m *mat3) mul(x, y, z float32) (float32, float32, float32) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// rgbToLMS64 is the cone-response matrix M.
var rgbToLMS64 = [3][3]float64{
	{17.8824, 43.5161, 4.1193},
	{3.4557, 27.1554, 3.8671},
	{0.02996, 0.18431, 1.4670},
}

var (
	rgbToLMS mat3
	lmsToRGB mat3
)

// deuteranopia replaces M with a mix of L and S.
var deuteranopia = mat3{
	{1, 0, 0},
	{0.494207, 0, 1.24827},
	{0, 0, 1},
}

func init() {
	inv := invert(rgbToLMS64)
	for i := range 3 {
		for j := range 3 {
			rgbToLMS[i][j] = float32(rgbToLMS64[i][j])
			lmsToRGB[i][j] = float32(inv[i][j])
		}
	}
}

// invert returns the inverse of a non-singular 3x3 matrix via the adjugate.
func invert(m [3][3]float64) [3][3]float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	det := a*A + b*B + c*C

	return [3][3]float64{
		{A / det, -(b*i - c*h) / det, (b*f - c*e) / det},
		{B / det, (a*i - c*g) / det, -(a*f - c*d) / det},
		{C / det, -(a*h - b*g) / det, (a*e - b*d) / det},
	}
}

// RGBToLMS converts a linear RGB sample to LMS.
func RGBToLMS(c RGB) LMS {
	l, m, s := rgbToLMS.mul(c.R, c.G, c.B)
	return LMS{L: l, M: m, S: s}
}

// LMSToRGB converts an LMS sample back to linear RGB.
func LMSToRGB(c LMS) RGB {
	r, g, b := lmsToRGB.mul(c.L, c.M, c.S)
	return RGB{R: r, G: g, B: b}
}

// Deuteranopia projects c onto the plane seen by an observer missing the
// medium-wavelength cone. L and S pass through unchanged.
func Deuteranopia(c LMS) LMS {
	l, m, s := deuteranopia.mul(c.L, c.M, c.S)
	return LMS{L: l, M: m, S: s}
}

// LMS returns c in cone-response space.
func (c RGB) LMS() LMS { return RGBToLMS(c) }

// RGB returns c in linear RGB.
func (c LMS) RGB() RGB { return LMSToRGB(c) }

// Deuteranopia returns the deuteranopic projection of c.
func (c LMS) Deuteranopia() LMS { return Deuteranopia(c) }

// SimulateDeuteranopia is the full RGB to RGB deuteranopia transform.
func SimulateDeuteranopia(c RGB) RGB {
	return c.LMS().Deuteranopia().RGB()
}
