// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/sight/effect"
	"github.com/gogpu/sight/internal/image"
	"github.com/gogpu/sight/internal/logging"
)

// DefaultFPS is the display rate used by Run when none is given.
const DefaultFPS = 60

// Option configures a Renderer during creation.
type Option func(*options)

type options struct {
	name    string
	backend Backend
	mailbox *Mailbox
	scaler  effect.Scaler
	anchor  CropAnchor
}

// WithName labels the renderer in logs.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithBackend sets the backend. The default is Probe(DetectCapabilities()).
func WithBackend(b Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithMailbox makes the renderer read frames from m instead of a private
// mailbox.
func WithMailbox(m *Mailbox) Option {
	return func(o *options) { o.mailbox = m }
}

// WithScaler sets the initial scale-to-fill resampler.
func WithScaler(s effect.Scaler) Option {
	return func(o *options) { o.scaler = s }
}

// WithCropAnchor sets the initial crop anchor.
func WithCropAnchor(a CropAnchor) Option {
	return func(o *options) { o.anchor = a }
}

// Stats are running counters of a Renderer.
type Stats struct {
	// Presented counts frames handed to a drawable.
	Presented uint64

	// Dropped counts ticks that presented nothing.
	Dropped uint64

	// Replaced counts camera frames overwritten before any tick read them.
	Replaced uint64
}

// Renderer draws one view. Submit may be called from any goroutine; the
// setters are atomic and take effect on the next tick. Draw and Run are
// meant for a single display goroutine.
type Renderer struct {
	name    string
	surface Surface
	backend Backend
	mailbox *Mailbox

	effect   atomic.Pointer[effect.Effect]
	device   atomic.Uint32
	position atomic.Uint32
	anchor   atomic.Uint32
	scaler   atomic.Uint32

	presented atomic.Uint64
	dropped   atomic.Uint64

	// drawMu serializes passes and guards the oriented frame cache.
	drawMu    sync.Mutex
	cachedSeq uint64
	cachedOri Orientation
	cachedBuf *image.Buffer
}

// NewRenderer creates a renderer drawing to surface.
func NewRenderer(surface Surface, opts ...Option) *Renderer {
	o := options{name: "view", scaler: effect.ScalerLanczos}
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		o.backend = Probe(DetectCapabilities())
	}
	if o.mailbox == nil {
		o.mailbox = NewMailbox()
	}

	r := &Renderer{
		name:    o.name,
		surface: surface,
		backend: o.backend,
		mailbox: o.mailbox,
	}
	none := effect.None()
	r.effect.Store(&none)
	r.anchor.Store(uint32(o.anchor))
	r.scaler.Store(uint32(o.scaler))

	logging.Logger().Debug("render: renderer created",
		"name", r.name, "backend", r.backend.Name())
	return r
}

// Name returns the renderer label.
func (r *Renderer) Name() string { return r.name }

// Backend returns the backend chosen at creation.
func (r *Renderer) Backend() Backend { return r.backend }

// Mailbox returns the mailbox frames are read from.
func (r *Renderer) Mailbox() *Mailbox { return r.mailbox }

// Submit hands a camera frame to the renderer. It never blocks; the frame
// replaces any frame not yet drawn.
func (r *Renderer) Submit(frame *PixelBuffer) {
	r.mailbox.Put(frame)
}

// SetEffect replaces the effect applied to frames.
func (r *Renderer) SetEffect(e effect.Effect) {
	r.effect.Store(&e)
}

// Effect returns the current effect.
func (r *Renderer) Effect() effect.Effect {
	return *r.effect.Load()
}

// SetDeviceOrientation updates the device orientation.
func (r *Renderer) SetDeviceOrientation(d DeviceOrientation) {
	r.device.Store(uint32(d))
}

// DeviceOrientation returns the current device orientation.
func (r *Renderer) DeviceOrientation() DeviceOrientation {
	return DeviceOrientation(r.device.Load())
}

// SetCameraPosition updates the camera position.
func (r *Renderer) SetCameraPosition(p CameraPosition) {
	r.position.Store(uint32(p))
}

// CameraPosition returns the current camera position.
func (r *Renderer) CameraPosition() CameraPosition {
	return CameraPosition(r.position.Load())
}

// SetCropAnchor updates the crop anchor.
func (r *Renderer) SetCropAnchor(a CropAnchor) {
	r.anchor.Store(uint32(a))
}

// SetScaler updates the scale-to-fill resampler.
func (r *Renderer) SetScaler(s effect.Scaler) {
	r.scaler.Store(uint32(s))
}

// Stats returns the running counters.
func (r *Renderer) Stats() Stats {
	return Stats{
		Presented: r.presented.Load(),
		Dropped:   r.dropped.Load(),
		Replaced:  r.mailbox.Drops(),
	}
}

// Draw runs one pass of the pipeline. It reports whether a frame was
// presented; any missing resource drops the tick without error.
func (r *Renderer) Draw(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	r.drawMu.Lock()
	defer r.drawMu.Unlock()

	// Orient
	frame, ok := r.orientedFrame()
	if !ok && r.backend.RequiresFrame() {
		return r.drop("no frame", nil)
	}

	d, ok := r.surface.Drawable()
	if !ok || d == nil {
		return r.drop("no drawable", nil)
	}
	target := d.Size()
	if target.Empty() {
		return r.drop("empty drawable", nil)
	}

	// ScaleCrop
	chain := r.Effect()
	if frame != nil {
		fill := ScaleToFill(frame.Size(), target)
		crop := CropRect(fill.Scaled, target, CropAnchor(r.anchor.Load()))
		chain = effect.Concat(chain,
			effect.Scale(fill.Scale, effect.Scaler(r.scaler.Load())),
			effect.Crop(crop),
		)
	}

	// ApplyChain
	img, err := r.backend.Render(frame, chain, target)
	if err != nil {
		return r.drop("backend pass failed", err)
	}

	// Present
	if err := d.Present(img); err != nil {
		return r.drop("present failed", err)
	}
	r.presented.Add(1)
	return true
}

// orientedFrame decodes and orients the latest frame, reusing the previous
// result while neither the frame nor the orientation changed.
func (r *Renderer) orientedFrame() (*image.Buffer, bool) {
	pb, seq := r.mailbox.Latest()
	if pb == nil {
		return nil, false
	}
	o := OrientationFor(r.DeviceOrientation(), r.CameraPosition())
	if r.cachedBuf != nil && r.cachedSeq == seq && r.cachedOri == o {
		return r.cachedBuf, true
	}
	buf, err := pb.Decode()
	if err != nil {
		logging.Logger().Debug("render: frame decode failed", "name", r.name, "err", err)
		return nil, false
	}
	buf = image.Orient(buf, o)
	r.cachedSeq, r.cachedOri, r.cachedBuf = seq, o, buf
	return buf, true
}

func (r *Renderer) drop(reason string, err error) bool {
	r.dropped.Add(1)
	log := logging.Logger()
	if err != nil {
		log.Debug("render: frame dropped", "name", r.name, "reason", reason, "err", err)
	} else {
		log.Debug("render: frame dropped", "name", r.name, "reason", reason)
	}
	return false
}

// Run calls Draw at fps until ctx is done or the mailbox is closed. A
// non-positive fps uses DefaultFPS.
func (r *Renderer) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = DefaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if r.mailbox.Closed() {
				return nil
			}
			r.Draw(ctx)
		}
	}
}

// Close closes the mailbox, releasing the last frame and ending Run.
func (r *Renderer) Close() {
	r.mailbox.Close()
	r.drawMu.Lock()
	r.cachedBuf = nil
	r.drawMu.Unlock()
}
