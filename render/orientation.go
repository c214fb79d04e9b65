// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/sight/internal/image"

// DeviceOrientation is the physical orientation of the device.
type DeviceOrientation uint8

// Device orientations. Unknown is treated as Portrait.
const (
	DeviceUnknown DeviceOrientation = iota
	DevicePortrait
	DevicePortraitUpsideDown
	DeviceLandscapeLeft
	DeviceLandscapeRight
)

// String returns the orientation name.
func (d DeviceOrientation) String() string {
	switch d {
	case DeviceUnknown:
		return "unknown"
	case DevicePortrait:
		return "portrait"
	case DevicePortraitUpsideDown:
		return "portraitUpsideDown"
	case DeviceLandscapeLeft:
		return "landscapeLeft"
	case DeviceLandscapeRight:
		return "landscapeRight"
	default:
		return "invalid"
	}
}

// Next cycles through the known orientations, skipping Unknown.
func (d DeviceOrientation) Next() DeviceOrientation {
	if d >= DeviceLandscapeRight {
		return DevicePortrait
	}
	return d + 1
}

// ParseDeviceOrientation returns the orientation named s.
func ParseDeviceOrientation(s string) (DeviceOrientation, bool) {
	for d := DeviceUnknown; d <= DeviceLandscapeRight; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return DeviceUnknown, false
}

// CameraPosition selects the back or front camera.
type CameraPosition uint8

// Camera positions.
const (
	CameraBack CameraPosition = iota
	CameraFront
)

// String returns "back" or "front".
func (p CameraPosition) String() string {
	if p == CameraFront {
		return "front"
	}
	return "back"
}

// Toggle returns the other camera.
func (p CameraPosition) Toggle() CameraPosition {
	if p == CameraFront {
		return CameraBack
	}
	return CameraFront
}

// ParseCameraPosition returns the position named s.
func ParseCameraPosition(s string) (CameraPosition, bool) {
	switch s {
	case "back":
		return CameraBack, true
	case "front":
		return CameraFront, true
	}
	return CameraBack, false
}

// Orientation is one of the eight rotation/mirror transforms applied to raw
// frames.
type Orientation = image.Orientation

// Orientations, in EXIF order.
const (
	OrientationUp            = image.OrientationUp
	OrientationUpMirrored    = image.OrientationUpMirrored
	OrientationDown          = image.OrientationDown
	OrientationDownMirrored  = image.OrientationDownMirrored
	OrientationLeftMirrored  = image.OrientationLeftMirrored
	OrientationRight         = image.OrientationRight
	OrientationRightMirrored = image.OrientationRightMirrored
	OrientationLeft          = image.OrientationLeft
)

// orientationTable is indexed by device orientation, then camera position.
// Sensors deliver landscape frames; the front camera is mirrored.
var orientationTable = [...][2]Orientation{
	DeviceUnknown:            {OrientationRight, OrientationLeftMirrored},
	DevicePortrait:           {OrientationRight, OrientationLeftMirrored},
	// Every front entry is the back view flipped horizontally. Upside down,
	// that is RightMirrored; LeftMirrored would show the selfie view
	// rotated a half turn.
	DevicePortraitUpsideDown: {OrientationLeft, OrientationRightMirrored},
	DeviceLandscapeLeft:      {OrientationDown, OrientationDownMirrored},
	DeviceLandscapeRight:     {OrientationUp, OrientationUpMirrored},
}

// OrientationFor returns the transform that brings a raw frame upright.
// Out-of-range values are treated as Unknown and Back.
func OrientationFor(d DeviceOrientation, p CameraPosition) Orientation {
	if int(d) >= len(orientationTable) {
		d = DeviceUnknown
	}
	if p > CameraFront {
		p = CameraBack
	}
	return orientationTable[d][p]
}
