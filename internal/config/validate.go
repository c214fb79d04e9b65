package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/sight"
	"github.com/gogpu/sight/effect"
	"github.com/gogpu/sight/render"
)

var (
	logLevels = []string{"debug", "info", "warn", "error"}
	formats   = []string{"png", "bmp", "tiff"}
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(key string, value any) {
		errs = append(errs, fmt.Errorf("config: invalid %s %v", key, value))
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		bad("log.level", c.Log.Level)
	}

	switch c.Camera.Source {
	case SourceSynthetic:
	case SourceStill:
		if len(c.Camera.Images) == 0 {
			errs = append(errs, errors.New("config: camera.images required for the still source"))
		}
	default:
		bad("camera.source", c.Camera.Source)
	}
	if c.Camera.FPS <= 0 {
		bad("camera.fps", c.Camera.FPS)
	}
	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		bad("camera size", fmt.Sprintf("%dx%d", c.Camera.Width, c.Camera.Height))
	}
	if _, ok := render.ParseCameraPosition(c.Camera.Position); !ok {
		bad("camera.position", c.Camera.Position)
	}

	if c.Render.FPS <= 0 {
		bad("render.fps", c.Render.FPS)
	}
	if _, ok := effect.ParseScaler(c.Render.Scaler); !ok {
		bad("render.scaler", c.Render.Scaler)
	}
	if _, ok := render.ParseCropAnchor(c.Render.CropAnchor); !ok {
		bad("render.crop_anchor", c.Render.CropAnchor)
	}
	if _, err := render.BackendByName(c.Render.Backend, render.Capabilities{Processing: true}); err != nil {
		bad("render.backend", c.Render.Backend)
	}
	if _, ok := render.ParseDeviceOrientation(c.Render.Orientation); !ok {
		bad("render.orientation", c.Render.Orientation)
	}

	names := sight.Names()
	if !slices.Contains(names, c.Sights.Left) {
		bad("sights.left", c.Sights.Left)
	}
	if !slices.Contains(names, c.Sights.Right) {
		bad("sights.right", c.Sights.Right)
	}

	switch c.Output.Mode {
	case OutputTerminal:
	case OutputFiles:
		if c.Output.Dir == "" {
			errs = append(errs, errors.New("config: output.dir required for file output"))
		}
		if !slices.Contains(formats, c.Output.Format) {
			bad("output.format", c.Output.Format)
		}
	default:
		bad("output.mode", c.Output.Mode)
	}

	return errors.Join(errs...)
}

// PresetOptions returns the preset options selected by the config.
func (c *Config) PresetOptions() []effect.PresetOption {
	if c.Presets.NightContrast == nil {
		return nil
	}
	return []effect.PresetOption{effect.WithNightContrast(*c.Presets.NightContrast)}
}
