package capture

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/sight/internal/logging"
	"github.com/gogpu/sight/render"
)

// DefaultHeadingInterval is the heading sampling period (60 Hz).
const DefaultHeadingInterval = time.Second / 60

// HeadingSource reads a magnetic compass.
type HeadingSource interface {
	// Heading returns the heading in degrees [0, 360) measured for a device
	// held in the reference orientation. ok is false when no reading is
	// available.
	Heading(reference render.DeviceOrientation) (degrees float64, ok bool)
}

// HeadingFunc receives heading updates. A nil heading means no reading is
// available; the poller sends one nil on Stop.
type HeadingFunc func(heading *float64)

// FixedHeading is a source that always reports the same heading.
type FixedHeading float64

// Heading implements HeadingSource.
func (f FixedHeading) Heading(render.DeviceOrientation) (float64, bool) {
	return normalizeDegrees(float64(f)), true
}

// SimulatedCompass turns at a constant rate from Start.
type SimulatedCompass struct {
	Start            float64
	DegreesPerSecond float64

	origin time.Time
	now    func() time.Time
}

// NewSimulatedCompass returns a compass that begins at start degrees and
// turns at rate degrees per second.
func NewSimulatedCompass(start, rate float64) *SimulatedCompass {
	return &SimulatedCompass{Start: start, DegreesPerSecond: rate, origin: time.Now(), now: time.Now}
}

// Heading implements HeadingSource. The reference orientation rotates the
// reading by the device's turn away from portrait.
func (c *SimulatedCompass) Heading(reference render.DeviceOrientation) (float64, bool) {
	elapsed := c.now().Sub(c.origin).Seconds()
	return normalizeDegrees(c.Start + c.DegreesPerSecond*elapsed + referenceOffset(reference)), true
}

func referenceOffset(d render.DeviceOrientation) float64 {
	switch d {
	case render.DeviceLandscapeLeft:
		return 90
	case render.DevicePortraitUpsideDown:
		return 180
	case render.DeviceLandscapeRight:
		return 270
	default:
		return 0
	}
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// HeadingPoller samples a HeadingSource on a fixed interval and forwards
// readings to a callback.
type HeadingPoller struct {
	src      HeadingSource
	interval time.Duration

	reference atomic.Uint32

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	once    *sync.Once
	wg      sync.WaitGroup
	fn      HeadingFunc
}

// NewHeadingPoller returns a poller over src. A non-positive interval uses
// DefaultHeadingInterval.
func NewHeadingPoller(src HeadingSource, interval time.Duration) *HeadingPoller {
	if interval <= 0 {
		interval = DefaultHeadingInterval
	}
	p := &HeadingPoller{src: src, interval: interval}
	p.reference.Store(uint32(render.DevicePortrait))
	return p
}

// Recalibrate sets the reference orientation for a device now held in d.
func (p *HeadingPoller) Recalibrate(d render.DeviceOrientation) {
	ref := render.HeadingReference(d)
	p.reference.Store(uint32(ref))
	logging.Logger().Debug("heading recalibrated", "device", d, "reference", ref)
}

// Reference returns the current reference orientation.
func (p *HeadingPoller) Reference() render.DeviceOrientation {
	return render.DeviceOrientation(p.reference.Load()) //nolint:gosec // stored from a DeviceOrientation
}

// Start begins polling until ctx is done or Stop is called.
func (p *HeadingPoller) Start(ctx context.Context, fn HeadingFunc) error {
	if fn == nil {
		return ErrNilSink
	}
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return ErrRunning
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.once = &sync.Once{}
	p.fn = fn
	stopCh := p.stopCh
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run(ctx, stopCh, fn)
	return nil
}

func (p *HeadingPoller) run(ctx context.Context, stopCh <-chan struct{}, fn HeadingFunc) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.C:
			p.poll(fn)
		}
	}
}

func (p *HeadingPoller) poll(fn HeadingFunc) {
	if p.src == nil {
		fn(nil)
		return
	}
	h, ok := p.src.Heading(p.Reference())
	if !ok {
		fn(nil)
		return
	}
	fn(&h)
}

// Stop halts polling, waits for the goroutine and sends a final nil
// heading. Safe to call more than once.
func (p *HeadingPoller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	once, stopCh := p.once, p.stopCh
	p.mu.Unlock()

	once.Do(func() { close(stopCh) })
	p.wg.Wait()

	p.mu.Lock()
	fn := p.fn
	p.fn = nil
	p.running = false
	p.mu.Unlock()

	if fn != nil {
		fn(nil)
	}
}
