package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/sight"
	"github.com/gogpu/sight/capture"
	"github.com/gogpu/sight/effect"
	"github.com/gogpu/sight/internal/config"
	"github.com/gogpu/sight/internal/logger"
	"github.com/gogpu/sight/present"
	"github.com/gogpu/sight/render"
)

const knobStep = 2

// side is the per-view state: the sights offered, the renderer and its
// display.
type side struct {
	choices  []sight.Sight
	index    int
	icon     string
	renderer *render.Renderer
	files    *present.FrameDir // nil in terminal output
}

type app struct {
	cfg *config.Config

	mu       sync.Mutex
	cmp      *sight.Comparison
	sides    [2]*side
	icons    *sight.IconPicker
	device   render.DeviceOrientation
	position render.CameraPosition

	mailbox *render.Mailbox
	camera  capture.Camera
	still   *capture.StillCamera
	heading *capture.HeadingPoller

	screen tcell.Screen
	term   *present.Terminal
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{
		cfg:     cfg,
		icons:   sight.NewIconPicker(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), //nolint:gosec // icon choice only
		mailbox: render.NewMailbox(),
	}
	a.device, _ = render.ParseDeviceOrientation(cfg.Render.Orientation)
	a.position, _ = render.ParseCameraPosition(cfg.Camera.Position)

	if err := a.openCamera(); err != nil {
		return nil, err
	}
	if cfg.Heading.Enabled {
		compass := capture.NewSimulatedCompass(cfg.Heading.Start, cfg.Heading.Rate)
		a.heading = capture.NewHeadingPoller(compass, capture.DefaultHeadingInterval)
		a.heading.Recalibrate(a.device)
	}

	backend, err := render.BackendByName(cfg.Render.Backend, render.DetectCapabilities())
	if err != nil {
		return nil, err
	}
	surfaces, files, err := a.openSurfaces()
	if err != nil {
		return nil, err
	}
	scaler, _ := effect.ParseScaler(cfg.Render.Scaler)
	anchor, _ := render.ParseCropAnchor(cfg.Render.CropAnchor)

	opts, err := presetOptions(cfg)
	if err != nil {
		return nil, err
	}
	left, li := choices(sight.Catalog(opts...), cfg.Sights.Left, opts)
	right, ri := choices(sight.RightDefaults(opts...), cfg.Sights.Right, opts)
	if cfg.Sights.CubeFile != "" {
		custom, err := loadCubeSight(cfg.Sights.CubeFile)
		if err != nil {
			return nil, err
		}
		right = append(right, custom)
		ri = len(right) - 1
	}
	lists := [2][]sight.Sight{left, right}
	picked := [2]int{li, ri}

	for i := range a.sides {
		s := &side{
			choices: lists[i],
			index:   picked[i],
			files:   files[i],
			renderer: render.NewRenderer(surfaces[i],
				render.WithName(present.Side(i).String()),
				render.WithBackend(backend),
				render.WithMailbox(a.mailbox),
				render.WithScaler(scaler),
				render.WithCropAnchor(anchor),
			),
		}
		s.icon = a.icons.Pick(s.current())
		a.sides[i] = s
	}

	a.cmp = sight.NewComparison(left[li], right[ri])
	if cfg.Sights.Night {
		a.cmp.SetMode(sight.Night)
	}
	a.apply()

	logger.Info("demo ready",
		zap.String("left", left[li].DisplayName),
		zap.String("right", right[ri].DisplayName),
		zap.String("backend", backend.Name()),
		zap.String("output", cfg.Output.Mode),
	)
	return a, nil
}

func (s *side) current() sight.Sight { return s.choices[s.index] }

// choices returns base with the named sight included, and its index.
func choices(base []sight.Sight, name string, opts []effect.PresetOption) ([]sight.Sight, int) {
	want, ok := sight.ByName(name, opts...)
	if !ok {
		return base, 0
	}
	if i := slices.IndexFunc(base, func(s sight.Sight) bool { return s.DisplayName == want.DisplayName }); i >= 0 {
		return base, i
	}
	return append([]sight.Sight{want}, base...), 0
}

func (a *app) openCamera() error {
	c := a.cfg.Camera
	switch c.Source {
	case config.SourceStill:
		still, err := capture.LoadStillCamera(c.FPS, c.Images...)
		if err != nil {
			return err
		}
		a.still = still
		a.camera = still
	default:
		a.camera = capture.NewSyntheticCamera(c.Width, c.Height, c.FPS)
	}
	return nil
}

func (a *app) openSurfaces() ([2]render.Surface, [2]*present.FrameDir, error) {
	var (
		surfaces [2]render.Surface
		files    [2]*present.FrameDir
	)
	o := a.cfg.Output

	if o.Mode == config.OutputFiles {
		w, h := a.cfg.Camera.Width, a.cfg.Camera.Height
		for i := range surfaces {
			name := present.Side(i).String()
			fd, err := present.NewFrameDir(filepath.Join(o.Dir, name), name, o.Format, w, h, o.Frames)
			if err != nil {
				return surfaces, files, err
			}
			surfaces[i], files[i] = fd, fd
		}
		return surfaces, files, nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return surfaces, files, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return surfaces, files, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()
	a.screen = screen
	a.term = present.NewTerminal(screen)
	surfaces[0], surfaces[1] = a.term.View(present.Left), a.term.View(present.Right)
	return surfaces, files, nil
}

// apply pushes the comparison's active effects and the overlay state to
// both views.
func (a *app) apply() {
	a.mu.Lock()
	defer a.mu.Unlock()

	left, right := a.cmp.Active()
	active := [2]sight.Descriptor{left, right}
	mode := a.cmp.EffectiveMode()

	for i, s := range a.sides {
		s.renderer.SetEffect(active[i].Effect)
		s.renderer.SetDeviceOrientation(a.device)
		s.renderer.SetCameraPosition(a.position)
		if a.term == nil {
			continue
		}
		region := a.term.View(present.Side(i))
		caption := fmt.Sprintf(" %s %s ", s.icon, s.current().DisplayName)
		if mode == sight.Night {
			caption += "(night) "
		}
		region.SetCaption(caption)
		region.SetMagnetic(active[i].ShowsMagneticOverlay, a.position)
	}

	if a.term != nil {
		night := "n night"
		if !a.cmp.NightAvailable() {
			night = "night unavailable"
		}
		a.term.SetStatus(fmt.Sprintf(" ←/→ sight  %s  c camera:%s  o device:%s  [ ] divider  q quit",
			night, a.position, a.device))
	}
	logger.Debug("views updated",
		zap.String("left", active[0].Effect.String()),
		zap.String("right", active[1].Effect.String()),
		zap.Stringer("mode", mode),
	)
}

// cycle advances side i to its next sight.
func (a *app) cycle(i int) {
	a.mu.Lock()
	s := a.sides[i]
	s.index = (s.index + 1) % len(s.choices)
	s.icon = a.icons.Pick(s.current())
	a.mu.Unlock()
	a.selectSide(i)
}

func (a *app) selectSide(i int) {
	a.mu.Lock()
	current := a.sides[i].current()
	a.mu.Unlock()
	if i == 0 {
		a.cmp.SelectLeft(current)
	} else {
		a.cmp.SelectRight(current)
	}
}

// handleKey applies one key press. It reports false when the user quits.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		a.cycle(0)
	case tcell.KeyRight:
		a.cycle(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'n':
			a.cmp.SetMode(a.cmp.Mode().Toggle())
		case 'c':
			a.mu.Lock()
			a.position = a.position.Toggle()
			a.mu.Unlock()
		case 'o':
			a.mu.Lock()
			a.device = a.device.Next()
			d := a.device
			a.mu.Unlock()
			if a.heading != nil {
				a.heading.Recalibrate(d)
			}
		case '[':
			if a.term != nil {
				a.term.MoveKnob(-knobStep)
			}
			return true
		case ']':
			if a.term != nil {
				a.term.MoveKnob(knobStep)
			}
			return true
		case ' ':
			if a.still != nil {
				a.still.Next()
			}
			return true
		default:
			return true
		}
	default:
		return true
	}
	a.apply()
	return true
}

// setHeading forwards a compass reading to both views.
func (a *app) setHeading(h *float64) {
	if a.term == nil {
		return
	}
	a.term.View(present.Left).SetHeading(h)
	a.term.View(present.Right).SetHeading(h)
}

// configChanged handles one reload from the config watcher. A file that
// fails to load or validate leaves the running views as they are.
func (a *app) configChanged(cfg *config.Config, err error) {
	if err != nil {
		logger.Warn("config reload failed", zap.Error(err))
		return
	}
	a.reconfigure(cfg)
}

// reconfigure applies a reloaded config to the running views.
func (a *app) reconfigure(cfg *config.Config) {
	scaler, _ := effect.ParseScaler(cfg.Render.Scaler)
	anchor, _ := render.ParseCropAnchor(cfg.Render.CropAnchor)
	for _, s := range a.sides {
		s.renderer.SetScaler(scaler)
		s.renderer.SetCropAnchor(anchor)
	}

	opts, err := presetOptions(cfg)
	if err != nil {
		logger.Warn("config reload: presets unchanged", zap.Error(err))
		opts = cfg.PresetOptions()
	}
	a.mu.Lock()
	for _, s := range a.sides {
		for j, c := range s.choices {
			if rebuilt, ok := sight.ByName(strings.ToLower(c.DisplayName), opts...); ok {
				s.choices[j] = rebuilt
			}
		}
	}
	a.mu.Unlock()
	a.selectSide(0)
	a.selectSide(1)
	logger.Info("config reloaded", zap.String("scaler", scaler.String()), zap.Stringer("anchor", anchor))
	a.apply()
}

func (a *app) run(ctx context.Context, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	if err := a.camera.Start(ctx, func(pb *render.PixelBuffer) { a.mailbox.Put(pb) }); err != nil {
		return err
	}
	g.Go(func() error {
		<-ctx.Done()
		a.camera.Stop()
		a.mailbox.Close()
		return nil
	})

	if a.heading != nil {
		if err := a.heading.Start(ctx, a.setHeading); err != nil {
			return err
		}
		g.Go(func() error {
			<-ctx.Done()
			a.heading.Stop()
			return nil
		})
	}

	g.Go(func() error { return a.renderLoop(ctx, cancel) })

	if a.screen != nil {
		var fini sync.Once
		finish := func() { fini.Do(a.screen.Fini) }
		defer finish()
		g.Go(func() error {
			<-ctx.Done()
			finish()
			return nil
		})
		g.Go(func() error {
			for {
				ev := a.screen.PollEvent()
				switch ev := ev.(type) {
				case nil:
					return nil
				case *tcell.EventKey:
					if !a.handleKey(ev) {
						cancel()
						return nil
					}
				case *tcell.EventResize:
					a.term.Resize()
					a.screen.Sync()
				}
			}
		})
	}

	if configPath != "" {
		g.Go(func() error {
			return config.Watch(ctx, configPath, a.configChanged)
		})
	}

	err := g.Wait()
	for _, s := range a.sides {
		st := s.renderer.Stats()
		logger.Info("view stats",
			zap.String("view", s.renderer.Name()),
			zap.Uint64("presented", st.Presented),
			zap.Uint64("dropped", st.Dropped),
			zap.Uint64("replaced", st.Replaced),
		)
	}
	return err
}

// renderLoop draws both views on every tick. In file output it ends the
// demo once both directories are full.
func (a *app) renderLoop(ctx context.Context, done context.CancelFunc) error {
	// Ticks before the first camera frame would only count drops.
	first, err := a.mailbox.Take(ctx)
	if err != nil {
		return nil
	}
	logger.Debug("first frame", zap.Int("width", first.Width), zap.Int("height", first.Height))

	ticker := time.NewTicker(time.Second / time.Duration(max(a.cfg.Render.FPS, 1)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for _, s := range a.sides {
				s.renderer.Draw(ctx)
			}
			if a.filesDone() {
				done()
				return nil
			}
		}
	}
}

func (a *app) filesDone() bool {
	for _, s := range a.sides {
		if s.files == nil || !s.files.Done() {
			return false
		}
	}
	return true
}
