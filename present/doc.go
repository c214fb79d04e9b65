// Package present holds display surfaces for render.Renderer.
//
// Terminal splits a tcell screen into a left and a right view separated by
// a movable divider, drawing two pixel rows per cell with the upper half
// block. Each view can carry a caption and the magnetic pole markers.
// FrameDir writes presented frames to numbered image files.
package present
