// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// MagneticFieldOfView is the heading span, in degrees either side of the
// view center, across which pole markers move from one edge to the other.
const MagneticFieldOfView = 45

// Poles are the horizontal positions of the north and south markers, in
// the same units as the view width. Positions may fall outside the view.
type Poles struct {
	North float64
	South float64
}

// PoleOffsets places the magnetic pole markers for a compass heading in
// degrees [0, 360). The front camera looks the other way and is mirrored,
// so its heading is reflected. marker is the marker width; positions are
// of the marker's left edge.
func PoleOffsets(heading float64, position CameraPosition, width, marker float64) Poles {
	adjusted := heading
	if position == CameraFront {
		adjusted = 180 - heading
	}

	north := adjusted
	if north >= 180 {
		north -= 360
	}
	south := adjusted - 180
	if adjusted < 0 {
		south = adjusted + 180
	}

	place := func(h float64) float64 {
		return (width/2)*(1-h/MagneticFieldOfView) - marker/2
	}
	return Poles{North: place(north), South: place(south)}
}

// Visible reports whether a marker at x with the given width overlaps a
// view of the given width.
func Visible(x, marker, width float64) bool {
	return x+marker > 0 && x < width
}

// HeadingReference returns the orientation the heading sensor should be
// calibrated to. Landscape orientations swap, since interface and device
// landscape are named from opposite sides.
func HeadingReference(d DeviceOrientation) DeviceOrientation {
	switch d {
	case DeviceLandscapeLeft:
		return DeviceLandscapeRight
	case DeviceLandscapeRight:
		return DeviceLandscapeLeft
	case DevicePortraitUpsideDown:
		return DevicePortraitUpsideDown
	default:
		return DevicePortrait
	}
}
