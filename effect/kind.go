package effect

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Kind identifies the type of a stage for inspection and debugging.
type Kind uint8

// Stage kinds.
const (
	KindBrightness Kind = iota
	KindExposure
	KindSaturation
	KindContrast
	KindColorCube
	KindPolynomial
	KindColorMap
	KindBlur
	KindSharpen
	KindBump
	KindOpTile
	KindScale
	KindCrop
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBrightness:
		return "Brightness"
	case KindExposure:
		return "Exposure"
	case KindSaturation:
		return "Saturation"
	case KindContrast:
		return "Contrast"
	case KindColorCube:
		return "ColorCube"
	case KindPolynomial:
		return "Polynomial"
	case KindColorMap:
		return "ColorMap"
	case KindBlur:
		return "Blur"
	case KindSharpen:
		return "Sharpen"
	case KindBump:
		return "Bump"
	case KindOpTile:
		return "OpTile"
	case KindScale:
		return "Scale"
	case KindCrop:
		return "Crop"
	default:
		return unknownStr
	}
}

// SizeDependent reports whether stages of this kind read the target size.
func (k Kind) SizeDependent() bool {
	switch k {
	case KindBump, KindOpTile, KindScale, KindCrop:
		return true
	default:
		return false
	}
}
