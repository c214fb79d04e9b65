package filter

import (
	stdimage "image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/sight/colorspace"
	"github.com/gogpu/sight/internal/image"
	"github.com/gogpu/sight/internal/parallel"
)

// GradientSize is the number of entries in a Gradient.
const GradientSize = 256

// Gradient is a 1-D color lookup indexed by luma, stored in linear RGB.
type Gradient [GradientSize][3]float32

// NewGradient spreads stops evenly over [0,1] and blends between
// neighbours in CIE L*a*b*. Fewer than two stops yield a gray ramp.
func NewGradient(stops ...colorful.Color) *Gradient {
	if len(stops) < 2 {
		stops = []colorful.Color{{R: 0, G: 0, B: 0}, {R: 1, G: 1, B: 1}}
	}
	g := new(Gradient)
	segments := float64(len(stops) - 1)
	for i := range GradientSize {
		t := float64(i) / (GradientSize - 1) * segments
		seg := min(int(t), len(stops)-2)
		c := stops[seg].BlendLab(stops[seg+1], t-float64(seg)).Clamped()
		r, gr, b := c.LinearRgb()
		g[i] = [3]float32{float32(r), float32(gr), float32(b)}
	}
	return g
}

// GradientFromImage samples the middle row of img across its width, the
// way gradient strip images are laid out.
func GradientFromImage(img stdimage.Image) *Gradient {
	b := img.Bounds()
	if b.Empty() {
		return NewGradient()
	}
	g := new(Gradient)
	y := b.Min.Y + b.Dy()/2
	for i := range GradientSize {
		x := b.Min.X + i*(b.Dx()-1)/(GradientSize-1)
		r, gr, bl, _ := img.At(x, y).RGBA()
		g[i] = [3]float32{
			colorspace.SRGBToLinearFast(uint8(r >> 8)),
			colorspace.SRGBToLinearFast(uint8(gr >> 8)),
			colorspace.SRGBToLinearFast(uint8(bl >> 8)),
		}
	}
	return g
}

// Lookup returns the gradient color at t in [0,1], interpolating between
// entries. t is clamped.
func (g *Gradient) Lookup(t float32) (float32, float32, float32) {
	if !(t > 0) {
		e := g[0]
		return e[0], e[1], e[2]
	}
	if t >= 1 {
		e := g[GradientSize-1]
		return e[0], e[1], e[2]
	}
	p := t * (GradientSize - 1)
	i := int(p)
	f := p - float32(i)
	a, b := g[i], g[min(i+1, GradientSize-1)]
	return a[0] + (b[0]-a[0])*f, a[1] + (b[1]-a[1])*f, a[2] + (b[2]-a[2])*f
}

// ColorMap replaces each pixel with the gradient entry for its luma.
func ColorMap(src *image.Buffer, g *Gradient) *image.Buffer {
	dst := src.Alloc()
	w := src.Width
	parallel.Rows(src.Height, func(y0, y1 int) {
		for i := y0 * w * 4; i < y1*w*4; i += 4 {
			p := src.Pix[i : i+4]
			r, gr, b := g.Lookup(Luma(p[0], p[1], p[2]))
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = r, gr, b, p[3]
		}
	})
	return dst
}
