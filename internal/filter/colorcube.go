package filter

import (
	"errors"

	"github.com/gogpu/sight/accel"
	"github.com/gogpu/sight/internal/image"
	"github.com/gogpu/sight/internal/logging"
	"github.com/gogpu/sight/internal/parallel"
	"github.com/gogpu/sight/lut"
)

// ApplyCube maps every pixel of src through cube with trilinear
// interpolation. Inputs are clamped to the cube domain and alpha is kept.
// A registered accelerator is tried first.
func ApplyCube(src *image.Buffer, cube *lut.Cube) *image.Buffer {
	dst := src.Clone()

	if a := accel.Current(); a != nil && a.CanAccelerate(accel.OpColorCube) {
		target := accel.Target{Pix: dst.Pix, Width: dst.Width, Height: dst.Height}
		err := a.ApplyColorCube(target, cube.Data, cube.Dimension)
		if err == nil {
			return dst
		}
		if !errors.Is(err, accel.ErrFallbackToCPU) {
			logging.Logger().Warn("color cube: accelerator failed, using CPU", "accelerator", a.Name(), "err", err)
		}
		copy(dst.Pix, src.Pix)
	}

	w := dst.Width
	parallel.Rows(dst.Height, func(y0, y1 int) {
		for i := y0 * w * 4; i < y1*w*4; i += 4 {
			p := dst.Pix[i : i+3]
			p[0], p[1], p[2] = cube.LookupRGB(p[0], p[1], p[2])
		}
	})
	return dst
}
