package sight

import (
	"log/slog"

	"github.com/gogpu/sight/accel"
	"github.com/gogpu/sight/internal/logging"
)

// SetLogger configures the logger for sight and all its sub-packages.
// By default nothing is logged. Pass nil to restore silence.
//
// Log levels used:
//   - [slog.LevelDebug]: dropped frames, backend selection details
//   - [slog.LevelInfo]: lifecycle events (accelerator registered, camera started)
//   - [slog.LevelWarn]: non-fatal issues (CPU fallback, config reload errors)
//
// Example:
//
//	sight.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
	accel.SetLogger(logging.Logger())
}

// Logger returns the logger shared by the sight packages.
func Logger() *slog.Logger {
	return logging.Logger()
}
