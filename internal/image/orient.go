package image

// Orientation is one of the eight rotation/mirror transforms that bring a
// raw sensor frame upright. Values follow the EXIF orientation tag: each
// names how the stored image must be transformed for display.
type Orientation uint8

const (
	// OrientationUp leaves the frame unchanged.
	OrientationUp Orientation = iota + 1

	// OrientationUpMirrored flips horizontally.
	OrientationUpMirrored

	// OrientationDown rotates by 180°.
	OrientationDown

	// OrientationDownMirrored flips vertically.
	OrientationDownMirrored

	// OrientationLeftMirrored transposes (mirror, then rotate 90° counter-clockwise).
	OrientationLeftMirrored

	// OrientationRight rotates 90° clockwise.
	OrientationRight

	// OrientationRightMirrored transverses (mirror, then rotate 90° clockwise).
	OrientationRightMirrored

	// OrientationLeft rotates 90° counter-clockwise.
	OrientationLeft
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientationUp:
		return "Up"
	case OrientationUpMirrored:
		return "UpMirrored"
	case OrientationDown:
		return "Down"
	case OrientationDownMirrored:
		return "DownMirrored"
	case OrientationLeftMirrored:
		return "LeftMirrored"
	case OrientationRight:
		return "Right"
	case OrientationRightMirrored:
		return "RightMirrored"
	case OrientationLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// SwapsAxes reports whether the transform exchanges width and height.
func (o Orientation) SwapsAxes() bool {
	return o >= OrientationLeftMirrored && o <= OrientationLeft
}

// OrientedSize returns the size of a w×h frame after applying o.
func (o Orientation) OrientedSize(s Size) Size {
	if o.SwapsAxes() {
		return Size{Width: s.Height, Height: s.Width}
	}
	return s
}

// SourceTransform maps output pixel coordinates of an oriented w×h frame to
// source pixel coordinates.
func (o Orientation) SourceTransform(s Size) Affine {
	w, h := float64(s.Width-1), float64(s.Height-1)
	switch o {
	case OrientationUpMirrored:
		return Translate(w, 0).Multiply(Scale(-1, 1))
	case OrientationDown:
		return Translate(w, h).Multiply(Scale(-1, -1))
	case OrientationDownMirrored:
		return Translate(0, h).Multiply(Scale(1, -1))
	case OrientationLeftMirrored:
		return Swap()
	case OrientationRight:
		// out(x, y) = src(y, h-x)
		return Translate(0, h).Multiply(Scale(1, -1)).Multiply(Swap())
	case OrientationRightMirrored:
		// out(x, y) = src(w-y, h-x)
		return Translate(w, h).Multiply(Scale(-1, -1)).Multiply(Swap())
	case OrientationLeft:
		// out(x, y) = src(w-y, x)
		return Translate(w, 0).Multiply(Scale(-1, 1)).Multiply(Swap())
	default:
		return Identity()
	}
}

// Orient returns a new buffer with o applied to src. Unknown orientations
// copy the frame unchanged.
func Orient(src *Buffer, o Orientation) *Buffer {
	if o <= OrientationUp || o > OrientationLeft {
		return src.Clone()
	}
	size := o.OrientedSize(src.Size())
	m := o.SourceTransform(src.Size())
	dst := newLike(size.Width, size.Height)

	for y := range size.Height {
		for x := range size.Width {
			fx, fy := m.TransformPoint(float64(x), float64(y))
			si := src.Offset(int(fx+0.5), int(fy+0.5))
			di := dst.Offset(x, y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}
