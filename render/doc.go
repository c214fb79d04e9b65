// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns camera frames into displayed images.
//
// A Renderer owns one displayed view. Camera frames arrive through Submit
// on the capture goroutine and land in a latest-wins Mailbox. Each display
// tick, Draw runs the pipeline:
//
//	Idle -> Orient -> ScaleCrop -> ApplyChain -> Present
//
// Orient rotates and mirrors the raw frame upright using the device
// orientation and camera position. ScaleCrop computes a scale-to-fill
// factor and a crop rectangle sized exactly to the drawable. ApplyChain
// runs the view's effect with the scale and crop stages appended, so the
// animal stages see the full oriented frame and cropping happens last.
// Present hands the result to the drawable.
//
// A tick with no frame, no backend pass or no drawable is dropped silently;
// the next tick starts over. Nothing in the pipeline returns an error to
// the caller.
//
// # Backends
//
// Software runs the chain on the CPU and offloads the color cube stage to
// the registered accelerator when there is one. Placeholder fills the
// drawable with solid red for hosts that cannot process frames. Probe picks
// one from the host Capabilities.
package render
