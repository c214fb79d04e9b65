// Package accel is the registry for an optional hardware accelerator.
//
// The CPU implementation of every filter stage is always present. When an
// accelerator is registered, stages that it reports support for try it first
// and fall back to the CPU path on any error.
//
// Accelerators are provided by backend packages and enabled via blank import:
//
//	import _ "github.com/gogpu/sight/gpu"
package accel

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/gogpu/sight/internal/logging"
)

// ErrFallbackToCPU indicates the accelerator cannot handle this operation.
// The caller should transparently fall back to the CPU path.
var ErrFallbackToCPU = errors.New("accel: falling back to CPU rendering")

// Op describes operation types for capability checking.
type Op uint32

const (
	// OpColorCube represents 3-D color cube application.
	OpColorCube Op = 1 << iota

	// OpColorMatrix represents 4x5 color matrix application.
	OpColorMatrix
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpColorCube:
		return "ColorCube"
	case OpColorMatrix:
		return "ColorMatrix"
	default:
		return "Unknown"
	}
}

// Target is a float RGBA working image, 4 floats per pixel, row by row with
// no padding. Accelerators write their result back into Pix.
type Target struct {
	Pix           []float32
	Width, Height int
}

// Accelerator is an optional compute provider.
type Accelerator interface {
	// Name returns the accelerator name (e.g., "wgpu").
	Name() string

	// Init initializes device resources. Called once during registration.
	Init() error

	// Close releases device resources.
	Close()

	// CanAccelerate reports whether the accelerator supports op.
	CanAccelerate(op Op) bool

	// ApplyColorCube maps every pixel of target through a cube of the given
	// dimension laid out b-major, g-mid, r-minor with 4 floats per entry.
	// Returns ErrFallbackToCPU if the work cannot be offloaded.
	ApplyColorCube(target Target, cube []float32, dimension int) error
}

// DeviceProviderAware is implemented by accelerators that can reuse a device
// owned by the host application instead of creating their own.
type DeviceProviderAware interface {
	SetDeviceProvider(provider any) error
}

var (
	mu      sync.RWMutex
	current Accelerator
)

// Register installs a as the accelerator. Init is called first; if it fails
// a is not registered and the error is returned. A previously registered
// accelerator is closed.
func Register(a Accelerator) error {
	if a == nil {
		return errors.New("accel: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	propagateLogger(a, logging.Logger())

	mu.Lock()
	old := current
	current = a
	mu.Unlock()
	if old != nil {
		old.Close()
	}
	logging.Logger().Info("accelerator registered", "name", a.Name())
	return nil
}

// Unregister removes and closes the current accelerator, if any.
func Unregister() {
	mu.Lock()
	old := current
	current = nil
	mu.Unlock()
	if old != nil {
		old.Close()
	}
}

// Current returns the registered accelerator, or nil if none.
func Current() Accelerator {
	mu.RLock()
	a := current
	mu.RUnlock()
	return a
}

// Supports reports whether a registered accelerator can handle op.
func Supports(op Op) bool {
	a := Current()
	return a != nil && a.CanAccelerate(op)
}

// SetDeviceProvider passes a device provider to the registered accelerator.
// It is a no-op when none is registered or it does not share devices.
func SetDeviceProvider(provider any) error {
	a := Current()
	if a == nil {
		return nil
	}
	if dpa, ok := a.(DeviceProviderAware); ok {
		return dpa.SetDeviceProvider(provider)
	}
	return nil
}

// SetLogger forwards l to the registered accelerator if it accepts one.
func SetLogger(l *slog.Logger) {
	if a := Current(); a != nil {
		propagateLogger(a, l)
	}
}

type loggerSetter interface {
	SetLogger(*slog.Logger)
}

func propagateLogger(a Accelerator, l *slog.Logger) {
	if ls, ok := a.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
