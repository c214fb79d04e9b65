// Package sight simulates how animals see a live camera feed.
//
// # Overview
//
// A Sight is an animal with a day and a night view. Each view is a
// Descriptor: an effect.Effect applied to every camera frame, and a flag
// that turns on the magnetic field overlay. Two sights are shown side by
// side in a Comparison, one fixed on the left and one picked from a list
// on the right.
//
// # Quick Start
//
//	left := sight.LeftDefaults()
//	right := sight.RightDefaults()
//	cmp := sight.NewComparison(left[0], right[0])
//	cmp.SetMode(sight.Night)
//	l, r := cmp.Active()
//
// The descriptors returned by Active are handed to render.Renderer, which
// orients, filters, scales and crops each frame for display.
//
// # Architecture
//
// The repository is organized into:
//   - colorspace: RGB, LMS and sRGB conversions
//   - lut: color cube baking and .cube files
//   - effect: stage composition and animal presets
//   - render: the per-frame pipeline and display plumbing
//   - capture, present: camera, heading and display collaborators
//   - accel, gpu: optional GPU offload of the color cube stage
//
// # Logging
//
// The library is silent by default. Call SetLogger to route diagnostics
// to a slog.Logger.
package sight
