package config

import "flag"

// Flags are the command-line overrides. Only flags that were set on the
// command line override the file.
type Flags struct {
	fs *flag.FlagSet

	Config   *string
	Debug    *bool
	LogFile  *string
	Source   *string
	Images   *string
	Position *string
	Scaler   *string
	Anchor   *string
	Backend  *string
	GPU      *bool
	Left     *string
	Right    *string
	Night    *bool
	Contrast *float64
	Heatmap  *string
	CubeFile *string
	Output   *string
	Dir      *string
	Frames   *int
	FPS      *int
}

// BindFlags registers the overrides on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:       fs,
		Config:   fs.String("config", "", "Path to config file (.yaml, .yml or .toml)"),
		Debug:    fs.Bool("debug", false, "Enable debug logging"),
		LogFile:  fs.String("log-file", "", "Write logs to this file"),
		Source:   fs.String("source", "", "Camera source: synthetic or still"),
		Images:   fs.String("images", "", "Comma-separated image files for the still camera"),
		Position: fs.String("position", "", "Camera position: back or front"),
		Scaler:   fs.String("scaler", "", "Resampling filter: lanczos, catmullrom, bilinear or nearest"),
		Anchor:   fs.String("crop", "", "Crop anchor: center or origin"),
		Backend:  fs.String("backend", "", "Render backend: auto, software or placeholder"),
		GPU:      fs.Bool("gpu", false, "Enable the GPU color cube accelerator"),
		Left:     fs.String("left", "", "Sight shown on the left"),
		Right:    fs.String("right", "", "Sight shown on the right"),
		Night:    fs.Bool("night", false, "Start in night mode"),
		Contrast: fs.Float64("night-contrast", 0, "Contrast added to the dog and cat night views"),
		Heatmap:  fs.String("heatmap", "", "Image whose middle row is the snake's heat-map gradient"),
		CubeFile: fs.String("import-lut", "", "Offer a sight that applies this .cube file on the right"),
		Output:   fs.String("output", "", "Output: terminal or files"),
		Dir:      fs.String("dir", "", "Directory for file output"),
		Frames:   fs.Int("frames", 0, "Number of frames to write in file output"),
		FPS:      fs.Int("fps", 0, "Render rate"),
	}
}

// ConfigPath returns the explicit config path, if any.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.Config
}

// apply copies set flags onto cfg.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if *f.Debug {
				cfg.Log.Level = "debug"
			}
		case "log-file":
			cfg.Log.File = *f.LogFile
		case "source":
			cfg.Camera.Source = *f.Source
		case "images":
			cfg.Camera.Images = splitList(*f.Images)
		case "position":
			cfg.Camera.Position = *f.Position
		case "scaler":
			cfg.Render.Scaler = *f.Scaler
		case "crop":
			cfg.Render.CropAnchor = *f.Anchor
		case "backend":
			cfg.Render.Backend = *f.Backend
		case "gpu":
			cfg.Render.GPU = *f.GPU
		case "left":
			cfg.Sights.Left = *f.Left
		case "right":
			cfg.Sights.Right = *f.Right
		case "night":
			cfg.Sights.Night = *f.Night
		case "night-contrast":
			v := *f.Contrast
			cfg.Presets.NightContrast = &v
		case "heatmap":
			cfg.Presets.HeatmapGradient = *f.Heatmap
		case "import-lut":
			cfg.Sights.CubeFile = *f.CubeFile
		case "output":
			cfg.Output.Mode = *f.Output
		case "dir":
			cfg.Output.Dir = *f.Dir
		case "frames":
			cfg.Output.Frames = *f.Frames
		case "fps":
			cfg.Render.FPS = *f.FPS
		}
	})
}
