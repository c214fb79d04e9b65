// Package capture provides frame and heading sources for the renderer.
//
// A Camera delivers raw BGRA frames on its own goroutine to a FrameSink,
// usually a render.Renderer's Submit method. Two sources are included:
// SyntheticCamera draws a moving test pattern and StillCamera replays
// decoded image files. HeadingPoller samples a HeadingSource at 60 Hz for
// the magnetic overlay.
//
// Stop is idempotent on every source. It waits for the delivery goroutine
// to exit and drops the sink reference.
package capture
