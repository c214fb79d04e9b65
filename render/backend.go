// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	stdimage "image"
	"image/color"

	"github.com/gogpu/sight/accel"
	"github.com/gogpu/sight/effect"
	"github.com/gogpu/sight/internal/image"
)

// Errors returned by backends and drawables. The renderer treats all of
// them as a dropped frame.
var (
	ErrNoFrame        = errors.New("render: no frame")
	ErrSizeMismatch   = errors.New("render: image size does not match drawable")
	ErrUnknownBackend = errors.New("render: unknown backend")
)

// Backend executes an effect chain for one tick.
type Backend interface {
	// Name identifies the backend in logs and configuration.
	Name() string

	// RequiresFrame reports whether Render needs a camera frame. Backends
	// that do not are drawn even before the first frame arrives.
	RequiresFrame() bool

	// Render runs chain over frame and returns an image of exactly target
	// size. frame may be nil when RequiresFrame is false.
	Render(frame *image.Buffer, chain effect.Effect, target image.Size) (*stdimage.RGBA, error)
}

// Software runs the chain on the CPU. The color cube stage is offloaded to
// the registered accelerator, if any.
type Software struct{}

// Name returns "software".
func (Software) Name() string { return "software" }

// RequiresFrame returns true.
func (Software) RequiresFrame() bool { return true }

// Render applies chain to frame.
func (Software) Render(frame *image.Buffer, chain effect.Effect, target image.Size) (*stdimage.RGBA, error) {
	if frame == nil {
		return nil, ErrNoFrame
	}
	out := chain.Apply(frame, target)
	if out.Size() != target {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrSizeMismatch, out.Width, out.Height, target.Width, target.Height)
	}
	return out.ToRGBA(), nil
}

// PlaceholderColor is the fill used by Placeholder.
var PlaceholderColor = color.RGBA{R: 255, A: 255}

// Placeholder ignores frames and fills the target with PlaceholderColor.
// It stands in on hosts that cannot run the pipeline.
type Placeholder struct{}

// Name returns "placeholder".
func (Placeholder) Name() string { return "placeholder" }

// RequiresFrame returns false.
func (Placeholder) RequiresFrame() bool { return false }

// Render returns a solid image of target size.
func (Placeholder) Render(_ *image.Buffer, _ effect.Effect, target image.Size) (*stdimage.RGBA, error) {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, max(target.Width, 1), max(target.Height, 1)))
	c := PlaceholderColor
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img, nil
}

// Capabilities describes what the host can do.
type Capabilities struct {
	// Processing reports whether frames can be processed at all.
	Processing bool

	// Accelerator names the registered accelerator, empty if none.
	Accelerator string
}

// DetectCapabilities reports the capabilities of this process.
func DetectCapabilities() Capabilities {
	c := Capabilities{Processing: true}
	if a := accel.Current(); a != nil {
		c.Accelerator = a.Name()
	}
	return c
}

// Probe picks a backend for c.
func Probe(c Capabilities) Backend {
	if !c.Processing {
		return Placeholder{}
	}
	return Software{}
}

// BackendByName returns the named backend. "auto" and "" defer to Probe.
func BackendByName(name string, c Capabilities) (Backend, error) {
	switch name {
	case "", "auto":
		return Probe(c), nil
	case "software":
		return Software{}, nil
	case "placeholder":
		return Placeholder{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}
