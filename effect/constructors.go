package effect

import (
	stdimage "image"
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/sight/colorspace"
	"github.com/gogpu/sight/internal/filter"
	"github.com/gogpu/sight/lut"
)

// Scaler selects the resampling kernel of a Scale stage.
type Scaler = filter.Scaler

// Scalers.
const (
	ScalerLanczos    = filter.ScalerLanczos
	ScalerCatmullRom = filter.ScalerCatmullRom
	ScalerBilinear   = filter.ScalerBilinear
	ScalerNearest    = filter.ScalerNearest
)

// ParseScaler returns the scaler with the given name.
func ParseScaler(name string) (Scaler, bool) {
	return filter.ParseScaler(name)
}

// clamp limits v to [lo, hi]. NaN maps to the value nearest zero.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return math.Max(lo, math.Min(0, hi))
	}
	return math.Max(lo, math.Min(v, hi))
}

// Brightness darkens or lightens the image. adj is clamped to [-2, 2] and
// yields two stages: a small additive nudge of (adj+0.5)/4, then an
// exposure change of adj*4 stops.
func Brightness(adj float64) Effect {
	adj = clamp(adj, -2, 2)
	nudge := float32((adj + 0.5) * 0.25)
	return Concat(
		Of(&matrixStage{kind: KindBrightness, value: nudge, m: filter.BrightnessMatrix(nudge)}),
		Exposure(adj*4),
	)
}

// Exposure multiplies linear color by 2^ev.
func Exposure(ev float64) Effect {
	ev = clamp(ev, -10, 10)
	return Of(&matrixStage{kind: KindExposure, value: float32(ev), m: filter.ExposureMatrix(float32(ev))})
}

// Saturation scales chroma around Rec. 709 luma by 1+adj, adj in [-1, 1].
func Saturation(adj float64) Effect {
	adj = clamp(adj, -1, 1)
	f := float32(1 + adj)
	return Of(&matrixStage{kind: KindSaturation, value: f, m: filter.SaturationMatrix(f)})
}

// Contrast scales distance from mid gray by 1+adj, adj in [-1, 1].
func Contrast(adj float64) Effect {
	adj = clamp(adj, -1, 1)
	f := float32(1 + adj)
	return Of(&matrixStage{kind: KindContrast, value: f, m: filter.ContrastMatrix(f)})
}

// LUT bakes transform into a color cube of lut.Dimension and returns it as
// a one-stage effect. Cubes are cached by name, so name must identify
// transform.
func LUT(name string, transform lut.Transform) Effect {
	return FromCube(name, lut.Baked(name, transform))
}

// FromCube wraps an already baked or loaded cube. A nil cube is the
// identity effect.
func FromCube(name string, cube *lut.Cube) Effect {
	if cube == nil {
		return None()
	}
	return Of(&cubeStage{name: name, cube: cube})
}

// Deuteranopia simulates red-green color blindness through a color cube
// baked from the LMS projection.
func Deuteranopia() Effect {
	return LUT("deuteranopia", colorspace.SimulateDeuteranopia)
}

// Ultraviolet approximates ultraviolet sensitivity by boosting blue 2.5x.
func Ultraviolet() Effect {
	return Polynomial(filter.IdentityCoefficients, filter.IdentityCoefficients, [4]float32{0, 2.5, 0, 0})
}

// Polynomial maps each color channel x through c0 + c1·x + c2·x² + c3·x³.
// Alpha passes through.
func Polynomial(r, g, b [4]float32) Effect {
	return Of(&polynomialStage{p: filter.Polynomial{R: r, G: g, B: b, A: filter.IdentityCoefficients}})
}

var heatmapGradient = sync.OnceValue(func() *filter.Gradient {
	return filter.NewGradient(
		colorful.Color{R: 0, G: 0, B: 0},
		colorful.Color{R: 0, G: 0, B: 0.5},
		colorful.Color{R: 0.5, G: 0, B: 0.5},
		colorful.Color{R: 1, G: 0, B: 0},
		colorful.Color{R: 1, G: 0.647, B: 0},
		colorful.Color{R: 1, G: 1, B: 0},
		colorful.Color{R: 1, G: 1, B: 1},
	)
})

// Heatmap maps luma onto a thermal gradient running from black through
// navy, purple, red, orange and yellow to white.
func Heatmap() Effect {
	return Of(&colorMapStage{name: "heatmap", gradient: heatmapGradient()})
}

// HeatmapFromImage maps luma onto the gradient read from the middle row
// of img.
func HeatmapFromImage(img stdimage.Image) Effect {
	return Of(&colorMapStage{name: "image", gradient: filter.GradientFromImage(img)})
}

// Blur applies a gaussian blur. radius is clamped to [0, 100]; 0 leaves the
// image unchanged.
func Blur(radius float64) Effect {
	return Of(&blurStage{radius: float32(clamp(radius, 0, 100))})
}

// Sharpen sharpens luminance only. intensity is clamped to [0, 1].
func Sharpen(intensity float64) Effect {
	return Of(&sharpenStage{intensity: float32(clamp(intensity, 0, 1))})
}

// Bump distorts a circle centered on the image. radius 1 gives a circle
// as wide as the short side of the target, radius 2 as wide as the long
// side. Negative scale pinches, positive scale bulges; scale is clamped to
// [-1, 1].
func Bump(radius, scale float64) Effect {
	return Of(&bumpStage{radius: float32(clamp(radius, 0, 10)), scale: float32(clamp(scale, -1, 1))})
}

// OpTile splits the image into a compound-eye grid of ten cells across
// the long side of the target.
func OpTile() Effect {
	return Of(&opTileStage{})
}

// Scale resamples by factor. Non-positive or non-finite factors leave the
// size unchanged.
func Scale(factor float64, s Scaler) Effect {
	if !(factor > 0) || math.IsInf(factor, 0) {
		factor = 1
	}
	return Of(&scaleStage{factor: factor, scaler: s})
}

// Crop cuts rect out of the image. Parts outside the image repeat its edge.
func Crop(rect stdimage.Rectangle) Effect {
	rect = rect.Canon()
	if rect.Empty() {
		rect.Max = rect.Min.Add(stdimage.Pt(1, 1))
	}
	return Of(&cropStage{rect: rect})
}
