// Package image provides the float working buffer that frames travel
// through while filter stages are applied.
//
// Pixels are stored as four float32 values (r, g, b, a) in linear light,
// row by row with no padding. Values are not clamped, so intermediate
// results may leave [0,1]; only conversion back to bytes clamps.
package image

import "errors"

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the pixel format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than width*4.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Size is a width and height in pixels.
type Size struct {
	Width, Height int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Min returns the smaller dimension.
func (s Size) Min() int { return min(s.Width, s.Height) }

// Max returns the larger dimension.
func (s Size) Max() int { return max(s.Width, s.Height) }

// Buffer is a float RGBA image.
//
// Buffers handed between filter stages are treated as immutable: a stage
// allocates its output and never writes to its input.
type Buffer struct {
	Pix    []float32
	Width  int
	Height int
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		Pix:    make([]float32, width*height*4),
		Width:  width,
		Height: height,
	}, nil
}

// newLike allocates a buffer with the given size. Callers guarantee the
// size is valid.
func newLike(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]float32, width*height*4),
		Width:  width,
		Height: height,
	}
}

// Alloc allocates a zeroed buffer with the size of b.
func (b *Buffer) Alloc() *Buffer {
	return newLike(b.Width, b.Height)
}

// AllocSize allocates a zeroed buffer of size s. Empty sizes are raised to 1x1.
func AllocSize(s Size) *Buffer {
	return newLike(max(s.Width, 1), max(s.Height, 1))
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	c := b.Alloc()
	copy(c.Pix, b.Pix)
	return c
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() Size {
	return Size{Width: b.Width, Height: b.Height}
}

// Offset returns the index of pixel (x, y) in Pix.
func (b *Buffer) Offset(x, y int) int {
	return (y*b.Width + x) * 4
}

// Pixel returns the channels of pixel (x, y), clamping coordinates to the edge.
func (b *Buffer) Pixel(x, y int) (r, g, bl, a float32) {
	x = clamp(x, 0, b.Width-1)
	y = clamp(y, 0, b.Height-1)
	i := b.Offset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// SetPixel writes pixel (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) SetPixel(x, y int, r, g, bl, a float32) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	i := b.Offset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = r, g, bl, a
}

// Fill sets every pixel to the given color.
func (b *Buffer) Fill(r, g, bl, a float32) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = r, g, bl, a
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
