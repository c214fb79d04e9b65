package filter

import (
	"sync"

	"github.com/gogpu/sight/internal/image"
	"github.com/gogpu/sight/internal/parallel"
)

// floatPool recycles the intermediate pass buffer.
var floatPool = sync.Pool{
	New: func() any { return new([]float32) },
}

func getFloats(n int) *[]float32 {
	p := floatPool.Get().(*[]float32)
	if cap(*p) < n {
		*p = make([]float32, n)
	}
	*p = (*p)[:n]
	return p
}

// Gaussian blurs src with a separable Gaussian of standard deviation sigma.
// Samples beyond the edge repeat the edge pixel, so the output keeps the
// input size with no darkened border.
func Gaussian(src *image.Buffer, sigma float32) *image.Buffer {
	if sigma <= 0 {
		return src.Clone()
	}
	kernel := CachedGaussianKernel(sigma)
	half := len(kernel) / 2
	w, h := src.Width, src.Height

	tmpPtr := getFloats(len(src.Pix))
	defer floatPool.Put(tmpPtr)
	tmp := *tmpPtr
	dst := src.Alloc()

	parallel.Rows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := src.Pix[y*w*4 : (y+1)*w*4]
			for x := range w {
				var r, g, b, a float32
				for k, kv := range kernel {
					i := clampInt(x+k-half, 0, w-1) * 4
					r += row[i] * kv
					g += row[i+1] * kv
					b += row[i+2] * kv
					a += row[i+3] * kv
				}
				o := (y*w + x) * 4
				tmp[o], tmp[o+1], tmp[o+2], tmp[o+3] = r, g, b, a
			}
		}
	})

	parallel.Rows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range w {
				var r, g, b, a float32
				for k, kv := range kernel {
					i := (clampInt(y+k-half, 0, h-1)*w + x) * 4
					r += tmp[i] * kv
					g += tmp[i+1] * kv
					b += tmp[i+2] * kv
					a += tmp[i+3] * kv
				}
				o := (y*w + x) * 4
				dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2], dst.Pix[o+3] = r, g, b, a
			}
		}
	})
	return dst
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
