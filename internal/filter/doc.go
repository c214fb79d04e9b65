// Package filter implements the CPU kernels behind effect stages.
//
// Every function takes a source buffer and returns a newly allocated
// result; sources are never modified. Work is split into row bands on the
// shared worker pool.
//
// Kernels:
//   - Gaussian blur (separable, edge extended)
//   - 4x5 color matrices (brightness, exposure, saturation, contrast)
//   - per-channel cubic polynomials
//   - 3-D color cube lookup (accelerated when available)
//   - 1-D luminance color maps
//   - luminance sharpening
//   - bump and op-tile distortions
//   - resampling and cropping
package filter
