package filter

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/sight/internal/image"
	"github.com/gogpu/sight/internal/parallel"
)

// Bump displaces pixels inside a circle around (cx, cy). Positive scale
// bulges the center outward, negative scale pinches it. Pixels outside the
// radius are unchanged.
func Bump(src *image.Buffer, cx, cy, radius, scale float32) *image.Buffer {
	if radius <= 0 || scale == 0 {
		return src.Clone()
	}
	dst := src.Alloc()
	w := src.Width
	parallel.Rows(src.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range w {
				o := (y*w + x) * 4
				dx, dy := float32(x)-cx, float32(y)-cy
				d := math32.Sqrt(dx*dx + dy*dy)
				if d >= radius {
					copy(dst.Pix[o:o+4], src.Pix[o:o+4])
					continue
				}
				t := d / radius
				f := 1 - scale*(1-t*t)
				r, g, b, a := image.SampleBilinear(src, cx+dx*f, cy+dy*f)
				dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2], dst.Pix[o+3] = r, g, b, a
			}
		}
	})
	return dst
}

// OpTile splits the image into square cells of side width on a grid
// anchored at (cx, cy). Each cell shows the area around its own center
// magnified by 1/scale, so scale > 1 packs a wider view into every cell.
func OpTile(src *image.Buffer, cx, cy, width, scale float32) *image.Buffer {
	if width < 1 {
		return src.Clone()
	}
	dst := src.Alloc()
	w := src.Width
	parallel.Rows(src.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			ry := float32(y) - cy
			centerY := cy + (math32.Floor(ry/width)+0.5)*width
			for x := range w {
				rx := float32(x) - cx
				centerX := cx + (math32.Floor(rx/width)+0.5)*width
				sx := centerX + (float32(x)-centerX)*scale
				sy := centerY + (float32(y)-centerY)*scale
				r, g, b, a := image.SampleBilinear(src, sx, sy)
				o := (y*w + x) * 4
				dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2], dst.Pix[o+3] = r, g, b, a
			}
		}
	})
	return dst
}
