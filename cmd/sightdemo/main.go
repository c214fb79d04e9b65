// Command sightdemo compares a human and an animal view of a live frame
// source side by side in the terminal, or writes both views to image files.
//
// Keys: ←/→ change the left/right sight, n toggles night, c switches camera,
// o rotates the device, [ and ] move the divider, space shows the next still
// image, q quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/sight"
	"github.com/gogpu/sight/accel"
	_ "github.com/gogpu/sight/gpu"
	"github.com/gogpu/sight/internal/config"
	"github.com/gogpu/sight/internal/logger"
)

func main() {
	flags := config.BindFlags(flag.CommandLine)
	exportLUT := flag.String("export-lut", "", "Write the deuteranopia color cube to this .cube file and exit")
	saveConfig := flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
	flag.Parse()

	if *exportLUT != "" {
		if err := writeDeuteranopiaCube(*exportLUT); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *saveConfig {
		if err := cfg.Save(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("config written to", config.ConfigDir())
		return
	}

	if err := run(cfg, flags.ConfigPath()); err != nil {
		logger.Error(err.Error())
		logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config, configPath string) error {
	// The terminal owns stdout; log to the file only.
	var fileCfg logger.FileConfig
	if cfg.Log.File != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Log.File)
	}
	var console io.Writer = os.Stderr
	if cfg.Output.Mode == config.OutputTerminal {
		console = nil
	}
	if err := logger.InitWithFileConfig(cfg.Log.Level, fileCfg, console); err != nil {
		return err
	}
	sight.SetLogger(logger.Slog())

	if !cfg.Render.GPU {
		accel.Unregister()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	return a.run(ctx, configPath)
}
