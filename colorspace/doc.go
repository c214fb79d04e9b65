// Package colorspace converts color samples between linear RGB and the LMS
// cone-response space, and models deuteranopia as a projection in LMS.
//
// All math is float32 and nothing is clamped: transforms built from these
// functions may leave [0,1], and downstream stages are expected to cope.
//
// The package also carries the sRGB transfer functions used to move camera
// bytes into the linear working space and back.
package colorspace
