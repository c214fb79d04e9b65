package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/sight/internal/logging"
)

// settle is how long Watch waits after the last event before reloading.
// Editors often write a file in several steps.
const settle = 50 * time.Millisecond

// Watch reloads the file at path whenever it changes and passes the result
// to onChange. A reload that fails to parse or validate is passed as an
// error and the previous config stays in effect for the caller. Watch
// blocks until ctx is done.
//
// The directory is watched rather than the file so that editors which
// replace the file on save are followed.
func Watch(ctx context.Context, path string, onChange func(*Config, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(settle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logger().Warn("config watcher error", "err", err)
		case <-timer.C:
			cfg, err := LoadFile(abs)
			if err != nil {
				logging.Logger().Warn("config reload failed", "path", abs, "err", err)
			} else {
				logging.Logger().Info("config reloaded", "path", abs)
			}
			onChange(cfg, err)
		}
	}
}
