// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	stdimage "image"

	"github.com/gogpu/sight/effect"
	"github.com/gogpu/sight/internal/image"
)

// Fill is a scale-to-fill result.
type Fill struct {
	// Scale is the uniform factor applied to the source.
	Scale float64

	// Scaled is the source size after scaling. It is never smaller than
	// the target in either dimension.
	Scaled image.Size
}

// ScaleToFill scales src to cover target, overflowing on one axis when the
// aspect ratios differ. It never letterboxes.
func ScaleToFill(src, target image.Size) Fill {
	if src.Empty() {
		return Fill{Scaled: target}
	}
	if target.Empty() {
		return Fill{Scale: 1, Scaled: src}
	}
	s := max(float64(target.Width)/float64(src.Width), float64(target.Height)/float64(src.Height))
	scaled := effect.ScaledSize(src, s)
	return Fill{
		Scale: s,
		Scaled: image.Size{
			Width:  max(scaled.Width, target.Width),
			Height: max(scaled.Height, target.Height),
		},
	}
}

// CropAnchor places the crop rectangle inside the scaled frame.
type CropAnchor uint8

const (
	// AnchorCenter centers the crop on the scaled frame.
	AnchorCenter CropAnchor = iota

	// AnchorOrigin offsets the crop by max(0, target-scaled) on each axis,
	// which pins it to the frame origin whenever the frame covers the
	// target.
	AnchorOrigin
)

// String returns "center" or "origin".
func (a CropAnchor) String() string {
	if a == AnchorOrigin {
		return "origin"
	}
	return "center"
}

// ParseCropAnchor returns the anchor named s.
func ParseCropAnchor(s string) (CropAnchor, bool) {
	switch s {
	case "center":
		return AnchorCenter, true
	case "origin":
		return AnchorOrigin, true
	}
	return AnchorCenter, false
}

// CropRect returns the rectangle of the scaled frame shown in target. The
// rectangle is always exactly target sized.
func CropRect(scaled, target image.Size, anchor CropAnchor) stdimage.Rectangle {
	var x, y int
	switch anchor {
	case AnchorOrigin:
		x = max(0, target.Width-scaled.Width)
		y = max(0, target.Height-scaled.Height)
	default:
		x = max(0, (scaled.Width-target.Width)/2)
		y = max(0, (scaled.Height-target.Height)/2)
	}
	return stdimage.Rect(x, y, x+target.Width, y+target.Height)
}
