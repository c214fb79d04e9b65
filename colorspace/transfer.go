package colorspace

import "github.com/chewxy/math32"

// SRGBToLinear converts an sRGB component to linear.
// if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB.
// if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1.0/2.4) - 0.055
}

// sRGBToLinearLUT maps an sRGB byte to linear float32. 1KB.
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT maps linear [0,1] at 12-bit precision to an sRGB byte.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range 256 {
		sRGBToLinearLUT[i] = SRGBToLinear(float32(i) / 255)
	}
	for i := range 4096 {
		s := int(LinearToSRGB(float32(i)/4095)*255 + 0.5)
		s = max(0, min(255, s))
		//nolint:gosec // G115: s is clamped to [0,255]
		linearToSRGBLUT[i] = uint8(s)
	}
}

// SRGBToLinearFast converts an sRGB byte to linear float32 by table lookup.
//
//	r := SRGBToLinearFast(128) // ~0.2159
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts linear float32 to an sRGB byte by table lookup.
// Input is clamped to [0,1].
//
//	s := LinearToSRGBFast(0.5) // 188
func LinearToSRGBFast(l float32) uint8 {
	if !(l > 0) { // also catches NaN
		return 0
	}
	if l >= 1 {
		return 255
	}
	return linearToSRGBLUT[int(l*4095+0.5)]
}
