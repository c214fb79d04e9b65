// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Log     LogConfig     `yaml:"log" toml:"log"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Render  RenderConfig  `yaml:"render" toml:"render"`
	Heading HeadingConfig `yaml:"heading" toml:"heading"`
	Sights  SightsConfig  `yaml:"sights" toml:"sights"`
	Presets PresetsConfig `yaml:"presets" toml:"presets"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

// CameraConfig selects and sizes the frame source.
type CameraConfig struct {
	Source   string   `yaml:"source" toml:"source"` // synthetic or still
	FPS      int      `yaml:"fps" toml:"fps"`
	Width    int      `yaml:"width" toml:"width"`
	Height   int      `yaml:"height" toml:"height"`
	Position string   `yaml:"position" toml:"position"` // back or front
	Images   []string `yaml:"images" toml:"images"`
}

// RenderConfig holds per-view renderer settings.
type RenderConfig struct {
	FPS         int    `yaml:"fps" toml:"fps"`
	Scaler      string `yaml:"scaler" toml:"scaler"`
	CropAnchor  string `yaml:"crop_anchor" toml:"crop_anchor"`
	Backend     string `yaml:"backend" toml:"backend"`
	GPU         bool   `yaml:"gpu" toml:"gpu"`
	Orientation string `yaml:"orientation" toml:"orientation"`
}

// HeadingConfig controls the simulated compass.
type HeadingConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Start   float64 `yaml:"start" toml:"start"`
	Rate    float64 `yaml:"rate" toml:"rate"` // degrees per second
}

// SightsConfig picks the initial comparison.
type SightsConfig struct {
	Left  string `yaml:"left" toml:"left"`
	Right string `yaml:"right" toml:"right"`
	Night bool   `yaml:"night" toml:"night"`

	// CubeFile, when set, adds a sight that applies this .cube table to
	// the right side.
	CubeFile string `yaml:"cube_file,omitempty" toml:"cube_file,omitempty"`
}

// PresetsConfig tunes the animal presets.
type PresetsConfig struct {
	// NightContrast, when set, adds a contrast stage to the dog and cat
	// night chains.
	NightContrast *float64 `yaml:"night_contrast,omitempty" toml:"night_contrast,omitempty"`

	// HeatmapGradient is an image whose middle row replaces the snake's
	// thermal gradient.
	HeatmapGradient string `yaml:"heatmap_gradient,omitempty" toml:"heatmap_gradient,omitempty"`
}

// OutputConfig selects the display.
type OutputConfig struct {
	Mode   string `yaml:"mode" toml:"mode"` // terminal or files
	Dir    string `yaml:"dir" toml:"dir"`
	Format string `yaml:"format" toml:"format"`
	Frames int    `yaml:"frames" toml:"frames"`
}

// Output modes.
const (
	OutputTerminal = "terminal"
	OutputFiles    = "files"
)

// Camera sources.
const (
	SourceSynthetic = "synthetic"
	SourceStill     = "still"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
		Camera: CameraConfig{
			Source:   SourceSynthetic,
			FPS:      30,
			Width:    640,
			Height:   480,
			Position: "back",
		},
		Render: RenderConfig{
			FPS:         60,
			Scaler:      "lanczos",
			CropAnchor:  "center",
			Backend:     "auto",
			GPU:         false,
			Orientation: "landscapeRight",
		},
		Heading: HeadingConfig{
			Enabled: true,
			Start:   0,
			Rate:    15,
		},
		Sights: SightsConfig{
			Left:  "human",
			Right: "dog",
		},
		Output: OutputConfig{
			Mode:   OutputTerminal,
			Dir:    "frames",
			Format: "png",
			Frames: 30,
		},
	}
}
