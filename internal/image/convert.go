package image

import (
	stdimage "image"
	"image/color"
	"image/draw"

	"github.com/gogpu/sight/colorspace"
)

// FromImage converts any standard image into a linear buffer. Empty images
// yield a single black pixel.
func FromImage(img stdimage.Image) *Buffer {
	bounds := img.Bounds()
	if bounds.Empty() {
		return newLike(1, 1)
	}
	rgba, ok := img.(*stdimage.RGBA)
	if !ok || bounds.Min != (stdimage.Point{}) {
		rgba = stdimage.NewRGBA(stdimage.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	buf, _ := FromRaw(rgba.Pix, bounds.Dx(), bounds.Dy(), rgba.Stride, FormatRGBA8)
	return buf
}

// ToRGBA encodes b as an sRGB image, clamping out-of-range values.
// Alpha is forced opaque; the pipeline never produces transparency.
func (b *Buffer) ToRGBA() *stdimage.RGBA {
	out := stdimage.NewRGBA(stdimage.Rect(0, 0, b.Width, b.Height))
	for y := range b.Height {
		row := out.Pix[y*out.Stride:]
		for x := range b.Width {
			s := b.Pix[(y*b.Width+x)*4:]
			d := row[x*4:]
			d[0] = colorspace.LinearToSRGBFast(s[0])
			d[1] = colorspace.LinearToSRGBFast(s[1])
			d[2] = colorspace.LinearToSRGBFast(s[2])
			d[3] = 255
		}
	}
	return out
}

// At returns pixel (x, y) as an sRGB color. Intended for tests and debugging.
func (b *Buffer) At(x, y int) color.RGBA {
	r, g, bl, _ := b.Pixel(x, y)
	return color.RGBA{
		R: colorspace.LinearToSRGBFast(r),
		G: colorspace.LinearToSRGBFast(g),
		B: colorspace.LinearToSRGBFast(bl),
		A: 255,
	}
}
