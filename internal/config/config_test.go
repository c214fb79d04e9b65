package config

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Camera.Source != SourceSynthetic {
		t.Errorf("expected synthetic source, got %s", cfg.Camera.Source)
	}
	if cfg.Render.FPS != 60 {
		t.Errorf("expected render fps 60, got %d", cfg.Render.FPS)
	}
	if cfg.Render.CropAnchor != "center" {
		t.Errorf("expected center crop, got %s", cfg.Render.CropAnchor)
	}
	if cfg.Presets.NightContrast != nil {
		t.Error("expected night contrast to be off by default")
	}
	if cfg.PresetOptions() != nil {
		t.Error("expected no preset options by default")
	}
	if cfg.Sights.Left != "human" || cfg.Sights.Right != "dog" {
		t.Errorf("expected human vs dog, got %s vs %s", cfg.Sights.Left, cfg.Sights.Right)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "sight.yaml", `
log:
  level: debug
  file: sight.log
camera:
  source: still
  images: [a.png, b.jpg]
  position: front
render:
  scaler: nearest
  crop_anchor: origin
sights:
  right: eagle
  night: true
presets:
  night_contrast: 0.3
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "sight.log" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Camera.Source != SourceStill || len(cfg.Camera.Images) != 2 || cfg.Camera.Position != "front" {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.Camera.FPS != 30 {
		t.Errorf("unset camera.fps should keep default, got %d", cfg.Camera.FPS)
	}
	if cfg.Render.Scaler != "nearest" || cfg.Render.CropAnchor != "origin" {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Sights.Right != "eagle" || !cfg.Sights.Night {
		t.Errorf("sights = %+v", cfg.Sights)
	}
	if cfg.Presets.NightContrast == nil || *cfg.Presets.NightContrast != 0.3 {
		t.Errorf("night contrast = %v", cfg.Presets.NightContrast)
	}
	if cfg.Presets.HeatmapGradient != "thermal.png" || cfg.Sights.CubeFile != "film.cube" {
		t.Errorf("paths = %q, %q", cfg.Presets.HeatmapGradient, cfg.Sights.CubeFile)
	}
	if len(cfg.PresetOptions()) != 1 {
		t.Errorf("expected one preset option")
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "sight.toml", `
[render]
fps = 24
backend = "placeholder"

[output]
mode = "files"
dir = "out"
format = "bmp"
frames = 5
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Render.FPS != 24 || cfg.Render.Backend != "placeholder" {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Output.Mode != OutputFiles || cfg.Output.Dir != "out" || cfg.Output.Format != "bmp" || cfg.Output.Frames != 5 {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("unset log.level should keep default, got %s", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"invalid yaml", "bad.yaml", "render:\n  fps: not a number\n"},
		{"invalid toml", "bad.toml", "[render\nfps = 1"},
		{"unknown extension", "sight.json", "{}"},
		{"invalid value", "sight.yaml", "render:\n  scaler: cubic\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeFile(t, tt.file, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	_, err := LoadFile(writeFile(t, "sight.ini", ""))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "sight.yaml", "render:\n  fps: 24\n  scaler: bilinear\n")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := BindFlags(fs)
	args := []string{"-config", path, "-fps", "12", "-debug", "-right", "bee", "-images", "a.png, b.png,", "-night-contrast", "0.3", "-heatmap", "thermal.png", "-import-lut", "film.cube"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.FPS != 12 {
		t.Errorf("flag should win: fps = %d", cfg.Render.FPS)
	}
	if cfg.Render.Scaler != "bilinear" {
		t.Errorf("file should win over default: scaler = %s", cfg.Render.Scaler)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %s, want debug", cfg.Log.Level)
	}
	if cfg.Sights.Right != "bee" {
		t.Errorf("right = %s, want bee", cfg.Sights.Right)
	}
	if got := strings.Join(cfg.Camera.Images, "|"); got != "a.png|b.png" {
		t.Errorf("images = %q", got)
	}
	if c := cfg.Presets.NightContrast; c == nil || *c != 0.3 {
		t.Errorf("night contrast = %v, want 0.3", c)
	}
	if cfg.Presets.HeatmapGradient != "thermal.png" || cfg.Sights.CubeFile != "film.cube" {
		t.Errorf("paths = %q, %q", cfg.Presets.HeatmapGradient, cfg.Sights.CubeFile)
	}
	if len(cfg.PresetOptions()) != 1 {
		t.Error("night contrast should produce one preset option")
	}
}

func TestLoadUnsetFlagsKeepFile(t *testing.T) {
	path := writeFile(t, "sight.yaml", "sights:\n  night: true\n")
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := BindFlags(fs)
	if err := fs.Parse([]string{"-config", path}); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(flags)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Sights.Night {
		t.Error("an unset -night flag must not reset the file value")
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	cfg.Camera.Source = SourceStill
	cfg.Render.Orientation = "sideways"
	cfg.Sights.Left = "cow"
	cfg.Output.Mode = "window"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"log.level", "camera.images", "render.orientation", "sights.left", "output.mode"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestSaveTo(t *testing.T) {
	dir := t.TempDir()
	contrast := -0.2
	cfg := Default()
	cfg.Sights.Right = "snake"
	cfg.Presets.NightContrast = &contrast

	for _, name := range []string{"nested/sight.yaml", "sight.toml"} {
		path := filepath.Join(dir, name)
		if err := cfg.SaveTo(path); err != nil {
			t.Fatalf("SaveTo(%s) error = %v", name, err)
		}
		got, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s) error = %v", name, err)
		}
		if got.Sights.Right != "snake" {
			t.Errorf("%s: right = %s", name, got.Sights.Right)
		}
		if got.Presets.NightContrast == nil || *got.Presets.NightContrast != contrast {
			t.Errorf("%s: night contrast = %v", name, got.Presets.NightContrast)
		}
	}

	if err := cfg.SaveTo(filepath.Join(dir, "sight.xml")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("SaveTo(xml) error = %v, want ErrUnknownFormat", err)
	}
}

func TestSaveUsesConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Sights.CubeFile = "film.cube"
	cfg.Presets.HeatmapGradient = "thermal.png"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := LoadFile(filepath.Join(ConfigDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got.Sights.CubeFile != "film.cube" || got.Presets.HeatmapGradient != "thermal.png" {
		t.Errorf("saved paths = %q, %q", got.Sights.CubeFile, got.Presets.HeatmapGradient)
	}
}

func TestWatchReloads(t *testing.T) {
	path := writeFile(t, "sight.yaml", "render:\n  fps: 24\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config, err error) {
			if err == nil {
				changes <- cfg
			}
		})
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case cfg := <-changes:
			if cfg.Render.FPS != 48 {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch() error = %v", err)
			}
			return
		case <-tick.C:
			// Keep writing until the watcher is registered and sees one.
			if err := os.WriteFile(path, []byte("render:\n  fps: 48\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "sight.yaml"), func(*Config, error) {})
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
