package capture

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/sight/internal/logging"
	"github.com/gogpu/sight/render"
)

// DefaultFPS is the delivery rate used when a source is given a
// non-positive rate.
const DefaultFPS = 30

// Errors.
var (
	// ErrRunning is returned by Start on a source that is already running.
	ErrRunning = errors.New("capture: source already running")

	// ErrNilSink is returned by Start when no sink is given.
	ErrNilSink = errors.New("capture: nil sink")

	// ErrNoImages is returned when a still camera has nothing to show.
	ErrNoImages = errors.New("capture: no images")
)

// FrameSink receives delivered frames. It is called from the source's
// goroutine and must not block for long.
type FrameSink func(*render.PixelBuffer)

// Camera is a frame source.
type Camera interface {
	// Start begins delivering frames to sink until ctx is done or Stop is
	// called.
	Start(ctx context.Context, sink FrameSink) error

	// Stop halts delivery and waits for the delivery goroutine. Safe to
	// call more than once.
	Stop()

	// Stats reports delivery counters for the current session.
	Stats() Stats
}

// Stats describes a capture session.
type Stats struct {
	Session string
	Source  string
	Frames  uint64
	FPS     int
	Running bool
	Started time.Time
}

// Rate returns the measured delivery rate.
func (s Stats) Rate() float64 {
	if !s.Running || s.Frames == 0 {
		return 0
	}
	elapsed := time.Since(s.Started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / elapsed
}

// producer returns the frame for tick seq.
type producer func(seq uint64, now time.Time) *render.PixelBuffer

// stream runs the delivery goroutine shared by all cameras.
type stream struct {
	source  string
	fps     int
	produce producer

	mu      sync.Mutex
	running bool
	session string
	started time.Time
	stopCh  chan struct{}
	once    *sync.Once
	wg      sync.WaitGroup
	sink    FrameSink

	frames atomic.Uint64
}

func newStream(source string, fps int, produce producer) *stream {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &stream{source: source, fps: fps, produce: produce}
}

func (s *stream) Start(ctx context.Context, sink FrameSink) error {
	if sink == nil {
		return ErrNilSink
	}
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrRunning
	}
	s.running = true
	s.session = uuid.NewString()
	s.started = time.Now()
	s.stopCh = make(chan struct{})
	s.once = &sync.Once{}
	s.sink = sink
	s.frames.Store(0)
	stopCh := s.stopCh
	s.mu.Unlock()

	logging.Logger().Info("capture starting",
		"source", s.source,
		"session", s.session,
		"fps", s.fps,
	)

	s.wg.Add(1)
	go s.run(ctx, stopCh, sink)
	return nil
}

func (s *stream) run(ctx context.Context, stopCh <-chan struct{}, sink FrameSink) {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()

	var seq uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case now := <-ticker.C:
			if frame := s.produce(seq, now); frame != nil {
				sink(frame)
				s.frames.Add(1)
			}
			seq++
		}
	}
}

func (s *stream) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	once, stopCh := s.once, s.stopCh
	s.mu.Unlock()

	once.Do(func() { close(stopCh) })
	s.wg.Wait()

	s.mu.Lock()
	s.running = false
	s.sink = nil
	s.mu.Unlock()

	logging.Logger().Info("capture stopped",
		"source", s.source,
		"session", s.session,
		"frames", s.frames.Load(),
		"duration", time.Since(s.started),
	)
}

func (s *stream) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Session: s.session,
		Source:  s.source,
		Frames:  s.frames.Load(),
		FPS:     s.fps,
		Running: s.running,
		Started: s.started,
	}
}
