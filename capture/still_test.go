package capture

import (
	"context"
	"errors"
	stdimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *stdimage.RGBA {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestFrameFromImageSwizzles(t *testing.T) {
	pb := FrameFromImage(solidImage(3, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255}))
	if pb.Width != 3 || pb.Height != 2 || pb.Stride != 12 {
		t.Fatalf("frame = %dx%d stride %d", pb.Width, pb.Height, pb.Stride)
	}
	for i := 0; i < len(pb.Data); i += 4 {
		if got := pb.Data[i : i+4]; got[0] != 30 || got[1] != 20 || got[2] != 10 || got[3] != 255 {
			t.Fatalf("pixel %d = %v, want [30 20 10 255]", i/4, got)
		}
	}
}

func TestFrameFromImageOffsetBounds(t *testing.T) {
	img := solidImage(4, 4, color.RGBA{G: 200, A: 255}).SubImage(stdimage.Rect(1, 1, 3, 4))
	pb := FrameFromImage(img)
	if pb.Width != 2 || pb.Height != 3 {
		t.Fatalf("size = %dx%d, want 2x3", pb.Width, pb.Height)
	}
	if pb.Data[1] != 200 {
		t.Errorf("green = %d, want 200", pb.Data[1])
	}
}

func TestNewStillCameraNoImages(t *testing.T) {
	if _, err := NewStillCamera(30); !errors.Is(err, ErrNoImages) {
		t.Errorf("NewStillCamera() error = %v, want ErrNoImages", err)
	}
	if _, err := LoadStillCamera(30); !errors.Is(err, ErrNoImages) {
		t.Errorf("LoadStillCamera() error = %v, want ErrNoImages", err)
	}
}

func TestStillCameraNext(t *testing.T) {
	c, err := NewStillCamera(30,
		solidImage(1, 1, color.RGBA{R: 255, A: 255}),
		solidImage(1, 1, color.RGBA{B: 255, A: 255}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.Current().Data[2] != 255 {
		t.Error("first image should be red")
	}
	if got := c.Next(); got != 1 {
		t.Errorf("Next() = %d, want 1", got)
	}
	if c.Current().Data[0] != 255 {
		t.Error("second image should be blue")
	}
	if got := c.Next(); got != 0 {
		t.Errorf("Next() = %d, want 0 after wrap", got)
	}
}

func TestStillCameraDeliversSharedData(t *testing.T) {
	c, err := NewStillCamera(200, solidImage(2, 2, color.RGBA{R: 1, A: 255}))
	if err != nil {
		t.Fatal(err)
	}
	col := newCollector(2)
	if err := c.Start(context.Background(), col.sink); err != nil {
		t.Fatal(err)
	}
	col.wait(t)
	c.Stop()

	a, b := col.frames[0], col.frames[1]
	if a == b {
		t.Error("each delivery should be a distinct PixelBuffer")
	}
	if &a.Data[0] != &b.Data[0] {
		t.Error("deliveries should share pixel data")
	}
	if a.Timestamp.IsZero() {
		t.Error("delivered frame has no timestamp")
	}
}

func TestLoadStillCamera(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solidImage(5, 3, color.RGBA{R: 9, G: 8, B: 7, A: 255})); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	c, err := LoadStillCamera(30, path)
	if err != nil {
		t.Fatalf("LoadStillCamera() error = %v", err)
	}
	pb := c.Current()
	if pb.Width != 5 || pb.Height != 3 {
		t.Errorf("size = %dx%d, want 5x3", pb.Width, pb.Height)
	}
	if got := pb.Data[:4]; got[0] != 7 || got[1] != 8 || got[2] != 9 {
		t.Errorf("pixel = %v, want [7 8 9 255]", got)
	}
}

func TestDecodeFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := DecodeFile(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeFile(bad); err == nil {
		t.Error("expected error for undecodable file")
	}
}
