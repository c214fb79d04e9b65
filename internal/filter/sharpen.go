package filter

import (
	"github.com/anthonynsimon/bild/effect"

	"github.com/gogpu/sight/internal/image"
	"github.com/gogpu/sight/internal/parallel"
)

// SharpenRadius is the unsharp mask radius used for luminance sharpening.
const SharpenRadius = 1.69

// SharpenLuminance sharpens only the luma of src. The unsharp mask runs on
// an 8-bit copy; its luma change is added back to the float pixels so
// chroma and out-of-range values survive.
func SharpenLuminance(src *image.Buffer, amount float64) *image.Buffer {
	if amount <= 0 {
		return src.Clone()
	}
	base := src.ToRGBA()
	sharp := image.FromImage(effect.UnsharpMask(base, SharpenRadius, amount))
	flat := image.FromImage(base)

	dst := src.Alloc()
	w := src.Width
	parallel.Rows(src.Height, func(y0, y1 int) {
		for i := y0 * w * 4; i < y1*w*4; i += 4 {
			s, f := sharp.Pix[i:i+3], flat.Pix[i:i+3]
			d := Luma(s[0], s[1], s[2]) - Luma(f[0], f[1], f[2])
			dst.Pix[i] = src.Pix[i] + d
			dst.Pix[i+1] = src.Pix[i+1] + d
			dst.Pix[i+2] = src.Pix[i+2] + d
			dst.Pix[i+3] = src.Pix[i+3]
		}
	})
	return dst
}
