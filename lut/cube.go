package lut

import "github.com/gogpu/sight/colorspace"

// Cube is a baked color lookup table. It is immutable once built.
type Cube struct {
	// Dimension is the number of samples along each axis.
	Dimension int

	// Data holds Dimension³ RGBA entries, b-major, g-mid, r-minor.
	Data []float32
}

// Len returns the number of float32 values in the cube.
func (c *Cube) Len() int {
	return len(c.Data)
}

// Index returns the offset of the entry for quantized input (r, g, b).
func (c *Cube) Index(r, g, b int) int {
	return ((b*c.Dimension+g)*c.Dimension + r) * 4
}

// At returns the stored output for quantized input (r, g, b).
func (c *Cube) At(r, g, b int) colorspace.RGB {
	i := c.Index(r, g, b)
	return colorspace.RGB{R: c.Data[i], G: c.Data[i+1], B: c.Data[i+2]}
}

// Lookup maps in through the cube with trilinear interpolation.
// Inputs outside [0,1] are clamped to the cube domain.
func (c *Cube) Lookup(in colorspace.RGB) colorspace.RGB {
	r, g, b := c.LookupRGB(in.R, in.G, in.B)
	return colorspace.RGB{R: r, G: g, B: b}
}

// LookupRGB is Lookup on unpacked channels; used on hot pixel loops.
func (c *Cube) LookupRGB(r, g, b float32) (float32, float32, float32) {
	dim := c.Dimension
	scale := float32(dim - 1)

	r0, fr := split(r, scale, dim)
	g0, fg := split(g, scale, dim)
	b0, fb := split(b, scale, dim)
	r1 := min(r0+1, dim-1)
	g1 := min(g0+1, dim-1)
	b1 := min(b0+1, dim-1)

	d := c.Data
	i000 := c.Index(r0, g0, b0)
	i100 := c.Index(r1, g0, b0)
	i010 := c.Index(r0, g1, b0)
	i110 := c.Index(r1, g1, b0)
	i001 := c.Index(r0, g0, b1)
	i101 := c.Index(r1, g0, b1)
	i011 := c.Index(r0, g1, b1)
	i111 := c.Index(r1, g1, b1)

	var out [3]float32
	for ch := range 3 {
		c00 := lerp(d[i000+ch], d[i100+ch], fr)
		c10 := lerp(d[i010+ch], d[i110+ch], fr)
		c01 := lerp(d[i001+ch], d[i101+ch], fr)
		c11 := lerp(d[i011+ch], d[i111+ch], fr)
		out[ch] = lerp(lerp(c00, c10, fg), lerp(c01, c11, fg), fb)
	}
	return out[0], out[1], out[2]
}

// split clamps v to [0,1] and returns the lower grid index and the
// fractional distance to the next one.
func split(v, scale float32, dim int) (int, float32) {
	if !(v > 0) {
		return 0, 0
	}
	if v >= 1 {
		return dim - 1, 0
	}
	p := v * scale
	i := int(p)
	return i, p - float32(i)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
