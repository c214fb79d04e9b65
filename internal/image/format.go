package image

import "github.com/gogpu/sight/colorspace"

// Format is a packed 8-bit pixel layout accepted from capture devices.
type Format uint8

const (
	// FormatBGRA8 is 32-bit BGRA in sRGB. Camera devices deliver this.
	FormatBGRA8 Format = iota

	// FormatRGBA8 is 32-bit RGBA in sRGB.
	FormatRGBA8

	formatCount
)

// BytesPerPixel returns the packed pixel size.
func (f Format) BytesPerPixel() int { return 4 }

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool { return f < formatCount }

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatBGRA8:
		return "BGRA8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// channelOrder returns the byte offsets of r, g, b, a within a pixel.
func (f Format) channelOrder() (r, g, b, a int) {
	if f == FormatBGRA8 {
		return 2, 1, 0, 3
	}
	return 0, 1, 2, 3
}

// FromRaw decodes packed sRGB bytes into a new linear buffer. The data is
// only read; callers may reuse it once FromRaw returns.
func FromRaw(data []byte, width, height, stride int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < width*format.BytesPerPixel() {
		return nil, ErrInvalidStride
	}
	if len(data) < stride*(height-1)+width*format.BytesPerPixel() {
		return nil, ErrDataTooSmall
	}

	ri, gi, bi, ai := format.channelOrder()
	buf := newLike(width, height)
	for y := range height {
		row := data[y*stride:]
		for x := range width {
			s := row[x*4:]
			d := buf.Pix[(y*width+x)*4:]
			d[0] = colorspace.SRGBToLinearFast(s[ri])
			d[1] = colorspace.SRGBToLinearFast(s[gi])
			d[2] = colorspace.SRGBToLinearFast(s[bi])
			d[3] = float32(s[ai]) / 255
		}
	}
	return buf, nil
}
