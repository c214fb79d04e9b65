package capture

import (
	"fmt"
	stdimage "image"
	"os"
	"sync"
	"time"

	"golang.org/x/image/draw"

	// Decoders registered for DecodeFile.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/sight/render"
)

// StillCamera replays a fixed set of images, one at a time, at the
// configured rate. Next switches to the following image.
type StillCamera struct {
	*stream

	mu     sync.Mutex
	frames []*render.PixelBuffer
	index  int
}

// NewStillCamera converts images to BGRA frames once and returns a camera
// that delivers them at fps.
func NewStillCamera(fps int, images ...stdimage.Image) (*StillCamera, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	c := &StillCamera{frames: make([]*render.PixelBuffer, len(images))}
	for i, img := range images {
		c.frames[i] = FrameFromImage(img)
	}
	c.stream = newStream("still", fps, c.frame)
	return c, nil
}

// LoadStillCamera decodes the files at paths and returns a camera over them.
func LoadStillCamera(fps int, paths ...string) (*StillCamera, error) {
	if len(paths) == 0 {
		return nil, ErrNoImages
	}
	images := make([]stdimage.Image, 0, len(paths))
	for _, p := range paths {
		img, err := DecodeFile(p)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return NewStillCamera(fps, images...)
}

// Next advances to the following image, wrapping around, and returns its
// index.
func (c *StillCamera) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % len(c.frames)
	return c.index
}

// Len returns the number of images.
func (c *StillCamera) Len() int {
	return len(c.frames)
}

// Current returns the frame that will be delivered next.
func (c *StillCamera) Current() *render.PixelBuffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames[c.index]
}

// frame delivers a shallow copy stamped with now. The pixel data is shared;
// frames are immutable once delivered.
func (c *StillCamera) frame(_ uint64, now time.Time) *render.PixelBuffer {
	pb := *c.Current()
	pb.Timestamp = now
	return &pb
}

// DecodeFile decodes a PNG, JPEG, BMP, TIFF or WebP file.
func DecodeFile(path string) (stdimage.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("capture: open image: %w", err)
	}
	defer f.Close()

	img, _, err := stdimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("capture: decode %s: %w", path, err)
	}
	return img, nil
}

// FrameFromImage converts img into a tightly packed BGRA frame.
func FrameFromImage(img stdimage.Image) *render.PixelBuffer {
	b := img.Bounds()
	rgba := stdimage.NewRGBA(stdimage.Rect(0, 0, max(b.Dx(), 1), max(b.Dy(), 1)))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	pb := render.NewPixelBuffer(rgba.Rect.Dx(), rgba.Rect.Dy(), render.FormatBGRA8)
	for y := range pb.Height {
		src := rgba.Pix[y*rgba.Stride:]
		dst := pb.Data[y*pb.Stride:]
		for x := range pb.Width {
			s, d := src[x*4:x*4+4], dst[x*4:x*4+4]
			d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
		}
	}
	return pb
}
