package present

import (
	"errors"
	"fmt"
	stdimage "image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/sight/internal/image"
	"github.com/gogpu/sight/internal/logging"
	"github.com/gogpu/sight/render"
)

// ErrUnknownEncoding is returned for an unsupported image file format.
var ErrUnknownEncoding = errors.New("present: unknown image encoding")

// encoders maps a file extension to its encoder.
var encoders = map[string]func(io.Writer, stdimage.Image) error{
	"png": png.Encode,
	"bmp": bmp.Encode,
	"tiff": func(w io.Writer, img stdimage.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
}

// FrameDir writes each presented frame to a numbered file in a directory.
// It stops offering drawables once Limit frames are written.
type FrameDir struct {
	dir    string
	prefix string
	ext    string
	encode func(io.Writer, stdimage.Image) error
	limit  int

	mu      sync.Mutex
	size    image.Size
	written int
}

// NewFrameDir creates dir if needed. encoding is "png", "bmp" or "tiff";
// limit <= 0 writes without bound.
func NewFrameDir(dir, prefix, encoding string, width, height, limit int) (*FrameDir, error) {
	ext := strings.ToLower(strings.TrimPrefix(encoding, "."))
	if ext == "" {
		ext = "png"
	}
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("present: create frame dir: %w", err)
	}
	if prefix == "" {
		prefix = "frame"
	}
	return &FrameDir{
		dir:    dir,
		prefix: prefix,
		ext:    ext,
		encode: enc,
		limit:  limit,
		size:   image.Size{Width: max(width, 1), Height: max(height, 1)},
	}, nil
}

// Drawable returns the directory until the frame limit is reached.
func (d *FrameDir) Drawable() (render.Drawable, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.limit > 0 && d.written >= d.limit {
		return nil, false
	}
	return d, true
}

// Size returns the frame size.
func (d *FrameDir) Size() image.Size {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size
}

// Present encodes img to the next numbered file.
func (d *FrameDir) Present(img *stdimage.RGBA) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if img.Bounds().Dx() != d.size.Width || img.Bounds().Dy() != d.size.Height {
		return render.ErrSizeMismatch
	}

	path := filepath.Join(d.dir, fmt.Sprintf("%s-%06d.%s", d.prefix, d.written, d.ext))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("present: create frame: %w", err)
	}
	if err := d.encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("present: encode frame: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("present: close frame: %w", err)
	}
	d.written++
	logging.Logger().Debug("frame written", "path", path)
	return nil
}

// Written returns the number of frames written.
func (d *FrameDir) Written() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.written
}

// Done reports whether the frame limit has been reached.
func (d *FrameDir) Done() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.limit > 0 && d.written >= d.limit
}

var (
	_ render.Surface  = (*FrameDir)(nil)
	_ render.Drawable = (*FrameDir)(nil)
)
