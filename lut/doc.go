// Package lut bakes arbitrary RGB to RGB transforms into dense 3-D lookup
// tables ("color cubes") that can be applied per pixel in constant time.
//
// Cube data is a flat slice of Dimension³ × 4 float32 values (RGBA, alpha
// always 1) in b-major, g-mid, r-minor order, so the entry for quantized
// input (r, g, b) starts at ((b·dim + g)·dim + r)·4. Filter backends read
// this layout directly.
//
// Cubes can also be exported to and read from the .cube text format.
package lut
