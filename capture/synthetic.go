package capture

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/sight/render"
)

// SyntheticCamera draws a hue sweep that scrolls one column per frame,
// darkening toward the bottom edge. It stands in for a sensor in demos and
// tests.
type SyntheticCamera struct {
	*stream
	width, height int
}

// NewSyntheticCamera returns a camera producing width×height BGRA frames
// at fps. Non-positive sizes are raised to 1.
func NewSyntheticCamera(width, height, fps int) *SyntheticCamera {
	c := &SyntheticCamera{width: max(width, 1), height: max(height, 1)}
	c.stream = newStream("synthetic", fps, c.Frame)
	return c
}

// Frame renders the pattern for tick seq.
func (c *SyntheticCamera) Frame(seq uint64, now time.Time) *render.PixelBuffer {
	pb := render.NewPixelBuffer(c.width, c.height, render.FormatBGRA8)
	pb.Timestamp = now

	row := make([]byte, c.width*3)
	for x := range c.width {
		hue := float64((uint64(x)+seq)%uint64(c.width)) / float64(c.width) * 360
		r, g, b := colorful.Hsv(hue, 0.8, 1).RGB255()
		row[x*3], row[x*3+1], row[x*3+2] = r, g, b
	}

	for y := range c.height {
		v := 255 - y*191/max(c.height-1, 1)
		line := pb.Data[y*pb.Stride:]
		for x := range c.width {
			d := line[x*4:]
			d[0] = uint8(int(row[x*3+2]) * v / 255)
			d[1] = uint8(int(row[x*3+1]) * v / 255)
			d[2] = uint8(int(row[x*3]) * v / 255)
			d[3] = 255
		}
	}
	return pb
}

// Size returns the frame size.
func (c *SyntheticCamera) Size() (width, height int) {
	return c.width, c.height
}
