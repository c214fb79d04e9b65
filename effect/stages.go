package effect

import (
	"fmt"
	stdimage "image"
	"math"

	"github.com/gogpu/sight/internal/filter"
	"github.com/gogpu/sight/internal/image"
	"github.com/gogpu/sight/lut"
)

// matrixStage covers the color matrix kinds: brightness, exposure,
// saturation and contrast.
type matrixStage struct {
	kind  Kind
	value float32
	m     filter.ColorMatrix
}

func (s *matrixStage) Kind() Kind { return s.kind }

func (s *matrixStage) Apply(src *image.Buffer, _ image.Size) *image.Buffer {
	return s.m.Apply(src)
}

func (s *matrixStage) String() string {
	return fmt.Sprintf("%s(%.4g)", s.kind, s.value)
}

type cubeStage struct {
	name string
	cube *lut.Cube
}

func (s *cubeStage) Kind() Kind { return KindColorCube }

func (s *cubeStage) Apply(src *image.Buffer, _ image.Size) *image.Buffer {
	return filter.ApplyCube(src, s.cube)
}

func (s *cubeStage) String() string {
	return fmt.Sprintf("ColorCube(%s, %d)", s.name, s.cube.Dimension)
}

type polynomialStage struct {
	p filter.Polynomial
}

func (s *polynomialStage) Kind() Kind { return KindPolynomial }

func (s *polynomialStage) Apply(src *image.Buffer, _ image.Size) *image.Buffer {
	return s.p.Apply(src)
}

func (s *polynomialStage) String() string {
	return fmt.Sprintf("Polynomial(b=%v)", s.p.B)
}

type colorMapStage struct {
	name     string
	gradient *filter.Gradient
}

func (s *colorMapStage) Kind() Kind { return KindColorMap }

func (s *colorMapStage) Apply(src *image.Buffer, _ image.Size) *image.Buffer {
	return filter.ColorMap(src, s.gradient)
}

func (s *colorMapStage) String() string {
	return fmt.Sprintf("ColorMap(%s)", s.name)
}

type blurStage struct {
	radius float32
}

func (s *blurStage) Kind() Kind { return KindBlur }

func (s *blurStage) Apply(src *image.Buffer, _ image.Size) *image.Buffer {
	return filter.Gaussian(src, s.radius)
}

func (s *blurStage) String() string {
	return fmt.Sprintf("Blur(%.4g)", s.radius)
}

type sharpenStage struct {
	intensity float32
}

func (s *sharpenStage) Kind() Kind { return KindSharpen }

func (s *sharpenStage) Apply(src *image.Buffer, _ image.Size) *image.Buffer {
	return filter.SharpenLuminance(src, float64(s.intensity)*2)
}

func (s *sharpenStage) String() string {
	return fmt.Sprintf("Sharpen(%.4g)", s.intensity)
}

// bumpStage scales its radius between the short and long side of the
// target: radius 1 spans the short side, radius 2 the long side.
type bumpStage struct {
	radius float32
	scale  float32
}

func (s *bumpStage) Kind() Kind { return KindBump }

func (s *bumpStage) effectiveRadius(target image.Size) float32 {
	lo, hi := float32(target.Min()), float32(target.Max())
	return (lo + (s.radius-1)*(hi-lo)) / 2
}

func (s *bumpStage) Apply(src *image.Buffer, target image.Size) *image.Buffer {
	cx, cy := float32(src.Width)/2, float32(src.Height)/2
	return filter.Bump(src, cx, cy, s.effectiveRadius(target), s.scale)
}

func (s *bumpStage) String() string {
	return fmt.Sprintf("Bump(%.4g, %.4g)", s.radius, s.scale)
}

// opTileScale is the magnification applied inside each compound-eye cell.
const opTileScale = 2

type opTileStage struct{}

func (s *opTileStage) Kind() Kind { return KindOpTile }

func (s *opTileStage) width(target image.Size) float32 {
	return float32(target.Max()) / 10
}

func (s *opTileStage) Apply(src *image.Buffer, target image.Size) *image.Buffer {
	cx, cy := float32(src.Width)/2, float32(src.Height)/2
	return filter.OpTile(src, cx, cy, s.width(target), opTileScale)
}

func (s *opTileStage) String() string { return "OpTile" }

type scaleStage struct {
	factor float64
	scaler Scaler
}

func (s *scaleStage) Kind() Kind { return KindScale }

// ScaledSize returns the size src takes after scaling by factor. Sizes are
// rounded up so a scale-to-fill result never falls short of the target.
func ScaledSize(src image.Size, factor float64) image.Size {
	return image.Size{
		Width:  max(1, int(math.Ceil(float64(src.Width)*factor-1e-6))),
		Height: max(1, int(math.Ceil(float64(src.Height)*factor-1e-6))),
	}
}

func (s *scaleStage) Apply(src *image.Buffer, _ image.Size) *image.Buffer {
	return filter.Resize(src, ScaledSize(src.Size(), s.factor), s.scaler)
}

func (s *scaleStage) String() string {
	return fmt.Sprintf("Scale(%.4g, %s)", s.factor, s.scaler)
}

type cropStage struct {
	rect stdimage.Rectangle
}

func (s *cropStage) Kind() Kind { return KindCrop }

func (s *cropStage) Apply(src *image.Buffer, _ image.Size) *image.Buffer {
	return filter.Crop(src, s.rect)
}

func (s *cropStage) String() string {
	return fmt.Sprintf("Crop(%v)", s.rect)
}
