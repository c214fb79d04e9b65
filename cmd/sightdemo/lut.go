package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/sight"
	"github.com/gogpu/sight/capture"
	"github.com/gogpu/sight/colorspace"
	"github.com/gogpu/sight/effect"
	"github.com/gogpu/sight/internal/config"
	"github.com/gogpu/sight/lut"
)

func writeDeuteranopiaCube(path string) error {
	cube := lut.Bake(lut.Dimension, colorspace.SimulateDeuteranopia)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export lut: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := cube.WriteCube(w, "Deuteranopia"); err != nil {
		f.Close()
		return fmt.Errorf("export lut: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("export lut: %w", err)
	}
	return f.Close()
}

// cubeIcons marks sights built from an imported .cube file.
var cubeIcons = []string{"🎨"}

// loadCubeSight reads a .cube file into a sight named after the file.
func loadCubeSight(path string) (sight.Sight, error) {
	f, err := os.Open(path)
	if err != nil {
		return sight.Sight{}, fmt.Errorf("import lut: %w", err)
	}
	defer f.Close()

	cube, err := lut.ReadCube(bufio.NewReader(f))
	if err != nil {
		return sight.Sight{}, fmt.Errorf("import lut %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return sight.NewSimpleSight(cubeIcons, name, effect.FromCube(name, cube), false), nil
}

// presetOptions returns the config's preset options plus the heat-map
// gradient image, if one is configured.
func presetOptions(cfg *config.Config) ([]effect.PresetOption, error) {
	opts := cfg.PresetOptions()
	if path := cfg.Presets.HeatmapGradient; path != "" {
		img, err := capture.DecodeFile(path)
		if err != nil {
			return nil, fmt.Errorf("heat-map gradient: %w", err)
		}
		opts = append(opts, effect.WithHeatmapGradient(img))
	}
	return opts, nil
}
