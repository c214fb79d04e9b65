// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	stdimage "image"
	"image/draw"
	"sync"

	"github.com/gogpu/sight/internal/image"
)

// Drawable is the destination of one presented frame.
type Drawable interface {
	// Size returns the drawable size in pixels.
	Size() image.Size

	// Present shows img, which is exactly Size() large. The drawable must
	// not retain img after returning.
	Present(img *stdimage.RGBA) error
}

// Surface hands out a drawable per tick. It reports false when no drawable
// is available right now, for example while a window is minimized.
type Surface interface {
	Drawable() (Drawable, bool)
}

// ImageSurface is an in-memory surface that keeps the last presented frame.
//
// Example:
//
//	s := render.NewImageSurface(320, 240)
//	r := render.NewRenderer(s)
//	r.Submit(frame)
//	r.Draw(ctx)
//	img := s.Snapshot()
type ImageSurface struct {
	mu        sync.Mutex
	size      image.Size
	img       *stdimage.RGBA
	available bool
	presented int
}

// NewImageSurface creates a surface of the given size. Non-positive
// dimensions are raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{available: true}
	s.Resize(width, height)
	return s
}

// Resize changes the surface size. The last frame is discarded.
func (s *ImageSurface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.size = image.Size{Width: max(width, 1), Height: max(height, 1)}
	s.img = stdimage.NewRGBA(stdimage.Rect(0, 0, s.size.Width, s.size.Height))
}

// SetAvailable toggles whether Drawable succeeds.
func (s *ImageSurface) SetAvailable(ok bool) {
	s.mu.Lock()
	s.available = ok
	s.mu.Unlock()
}

// Drawable returns the surface itself while it is available.
func (s *ImageSurface) Drawable() (Drawable, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.available {
		return nil, false
	}
	return s, true
}

// Size returns the surface size.
func (s *ImageSurface) Size() image.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Present copies img into the surface.
func (s *ImageSurface) Present(img *stdimage.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if img.Bounds().Dx() != s.size.Width || img.Bounds().Dy() != s.size.Height {
		return ErrSizeMismatch
	}
	draw.Draw(s.img, s.img.Bounds(), img, img.Bounds().Min, draw.Src)
	s.presented++
	return nil
}

// Snapshot returns a copy of the last presented frame.
func (s *ImageSurface) Snapshot() *stdimage.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := stdimage.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Presented returns how many frames were presented.
func (s *ImageSurface) Presented() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presented
}

// Ensure ImageSurface implements Surface and Drawable.
var (
	_ Surface  = (*ImageSurface)(nil)
	_ Drawable = (*ImageSurface)(nil)
)
