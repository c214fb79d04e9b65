package main

import (
	"context"
	"errors"
	stdimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gogpu/sight"
	"github.com/gogpu/sight/effect"
	"github.com/gogpu/sight/internal/config"
	"github.com/gogpu/sight/internal/logger"
	"github.com/gogpu/sight/lut"
)

func filesConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Mode = config.OutputFiles
	cfg.Output.Dir = t.TempDir()
	cfg.Output.Frames = 2
	cfg.Camera.Width, cfg.Camera.Height = 32, 24
	cfg.Heading.Enabled = false
	return cfg
}

func TestChoices(t *testing.T) {
	right := sight.RightDefaults()

	got, i := choices(right, sight.NameCat, nil)
	if len(got) != len(right) || got[i].DisplayName != "Cat" {
		t.Errorf("cat: index %d in %d sights", i, len(got))
	}

	got, i = choices(right, sight.NameHuman, nil)
	if len(got) != len(right)+1 || i != 0 || got[0].DisplayName != "Human" {
		t.Errorf("human not prepended: index %d in %d sights", i, len(got))
	}

	got, i = choices(right, "unicorn", nil)
	if len(got) != len(right) || i != 0 {
		t.Errorf("unknown name changed the list: index %d in %d sights", i, len(got))
	}
}

func TestHandleKey(t *testing.T) {
	a, err := newApp(filesConfig(t))
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	before := a.cmp.Right().DisplayName

	if !a.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)) {
		t.Fatal("right arrow quit the demo")
	}
	if got := a.cmp.Right().DisplayName; got == before {
		t.Errorf("right sight still %q after cycling", got)
	}

	if !a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)) {
		t.Fatal("c quit the demo")
	}
	if got := a.sides[0].renderer.CameraPosition(); got != a.position {
		t.Errorf("renderer camera = %v, want %v", got, a.position)
	}

	if a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q did not quit")
	}
}

func TestRunWritesFrames(t *testing.T) {
	a, err := newApp(filesConfig(t))
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.run(ctx, ""); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("run() stopped on timeout, not on full frame directories")
	}
	for i, s := range a.sides {
		if got := s.files.Written(); got != 2 {
			t.Errorf("side %d wrote %d frames, want 2", i, got)
		}
	}
}

func TestConfigChanged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	saved := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = saved })

	a, err := newApp(filesConfig(t))
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	right := a.cmp.Right().DisplayName

	a.configChanged(nil, errors.New("yaml: line 3: bad indentation"))
	if got := logs.FilterMessage("config reload failed").Len(); got != 1 {
		t.Fatalf("reload failure logged %d times, want 1", got)
	}
	if got := a.cmp.Right().DisplayName; got != right {
		t.Errorf("failed reload changed the right sight to %q", got)
	}

	cfg := filesConfig(t)
	cfg.Render.Scaler = "nearest"
	a.configChanged(cfg, nil)
	if logs.Len() != 1 {
		t.Errorf("successful reload logged a warning: %v", logs.All())
	}
}

func writeCubeFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "film.cube")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := lut.Bake(2, lut.Identity).WriteCube(f, "film"); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportedCubeSight(t *testing.T) {
	cfg := filesConfig(t)
	cfg.Sights.CubeFile = writeCubeFile(t)

	a, err := newApp(cfg)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	got := a.cmp.Right()
	if got.DisplayName != "film" {
		t.Fatalf("right sight = %q, want film", got.DisplayName)
	}
	if k := got.Set.Day().Effect.Stage(0).Kind(); k != effect.KindColorCube {
		t.Errorf("imported sight stage = %v, want ColorCube", k)
	}

	cfg.Sights.CubeFile = filepath.Join(t.TempDir(), "missing.cube")
	if _, err := newApp(cfg); err == nil {
		t.Error("newApp() with a missing .cube file should fail")
	}
}

func TestPresetOptionsHeatmapGradient(t *testing.T) {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, 4, 1))
	for x := range 4 {
		img.SetRGBA(x, 0, color.RGBA{B: 255, A: 255})
	}
	path := filepath.Join(t.TempDir(), "thermal.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg := config.Default()
	cfg.Presets.HeatmapGradient = path
	opts, err := presetOptions(cfg)
	if err != nil {
		t.Fatalf("presetOptions() error = %v", err)
	}
	if len(opts) != 1 {
		t.Fatalf("got %d options, want 1", len(opts))
	}
	if got := effect.Snake(false, opts...).Stage(1).String(); got == effect.Snake(false).Stage(1).String() {
		t.Errorf("gradient image did not replace the heat map: %s", got)
	}

	cfg.Presets.HeatmapGradient = filepath.Join(t.TempDir(), "missing.png")
	if _, err := presetOptions(cfg); err == nil {
		t.Error("presetOptions() with a missing image should fail")
	}
}
