package filter

import (
	stdimage "image"

	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sight/internal/image"
)

// Scaler selects the resampling kernel.
type Scaler uint8

const (
	// ScalerLanczos is a Lanczos-3 resampler (bild).
	ScalerLanczos Scaler = iota

	// ScalerCatmullRom is a Catmull-Rom cubic (x/image/draw).
	ScalerCatmullRom

	// ScalerBilinear is bilinear interpolation (x/image/draw).
	ScalerBilinear

	// ScalerNearest picks the nearest pixel (x/image/draw).
	ScalerNearest
)

// String returns the scaler name.
func (s Scaler) String() string {
	switch s {
	case ScalerLanczos:
		return "lanczos"
	case ScalerCatmullRom:
		return "catmullrom"
	case ScalerBilinear:
		return "bilinear"
	case ScalerNearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// ParseScaler maps a name to a Scaler. Unknown names return false.
func ParseScaler(name string) (Scaler, bool) {
	for s := ScalerLanczos; s <= ScalerNearest; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return ScalerLanczos, false
}

// Resize returns src resampled to size. Resampling runs on 8-bit sRGB, so
// values outside [0,1] are clamped; it is meant as one of the last steps
// before presentation.
func Resize(src *image.Buffer, size image.Size, s Scaler) *image.Buffer {
	size = image.Size{Width: max(size.Width, 1), Height: max(size.Height, 1)}
	if size == src.Size() {
		return src.Clone()
	}
	rgba := src.ToRGBA()

	var out *stdimage.RGBA
	switch s {
	case ScalerCatmullRom, ScalerBilinear, ScalerNearest:
		out = stdimage.NewRGBA(stdimage.Rect(0, 0, size.Width, size.Height))
		interp(s).Scale(out, out.Bounds(), rgba, rgba.Bounds(), xdraw.Src, nil)
	default:
		out = transform.Resize(rgba, size.Width, size.Height, transform.Lanczos)
	}
	return image.FromImage(out)
}

func interp(s Scaler) xdraw.Interpolator {
	switch s {
	case ScalerCatmullRom:
		return xdraw.CatmullRom
	case ScalerBilinear:
		return xdraw.BiLinear
	default:
		return xdraw.NearestNeighbor
	}
}

// Crop returns the part of src inside r, sized exactly r.Dx()×r.Dy().
// Parts of r outside src repeat the nearest edge pixel.
func Crop(src *image.Buffer, r stdimage.Rectangle) *image.Buffer {
	dst := image.AllocSize(image.Size{Width: r.Dx(), Height: r.Dy()})
	for y := range dst.Height {
		sy := clampInt(r.Min.Y+y, 0, src.Height-1)
		for x := range dst.Width {
			sx := clampInt(r.Min.X+x, 0, src.Width-1)
			si := src.Offset(sx, sy)
			di := dst.Offset(x, y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}
