// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"time"

	"github.com/gogpu/sight/internal/image"
)

// Format is the packed layout of a PixelBuffer.
type Format = image.Format

// Pixel formats.
const (
	FormatBGRA8 = image.FormatBGRA8
	FormatRGBA8 = image.FormatRGBA8
)

// PixelBuffer is one raw camera frame. It is immutable once submitted;
// producers allocate a new buffer per frame.
type PixelBuffer struct {
	Data   []byte
	Width  int
	Height int
	Stride int
	Format Format

	// Timestamp is the capture time, zero if unknown.
	Timestamp time.Time
}

// NewPixelBuffer allocates a tightly packed buffer.
func NewPixelBuffer(width, height int, format Format) *PixelBuffer {
	width, height = max(width, 1), max(height, 1)
	stride := width * format.BytesPerPixel()
	return &PixelBuffer{
		Data:   make([]byte, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}
}

// Size returns the frame dimensions.
func (p *PixelBuffer) Size() image.Size {
	return image.Size{Width: p.Width, Height: p.Height}
}

// Decode converts the frame into a linear working buffer.
func (p *PixelBuffer) Decode() (*image.Buffer, error) {
	return image.FromRaw(p.Data, p.Width, p.Height, p.Stride, p.Format)
}
