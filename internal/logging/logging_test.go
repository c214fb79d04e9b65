package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	Set(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should not be enabled at any level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer Set(nil)

	Logger().Info("frame dropped", "reason", "no drawable")
	if !strings.Contains(buf.String(), "frame dropped") {
		t.Errorf("output = %q, want it to contain the message", buf.String())
	}
}

func TestNopHandlerChains(t *testing.T) {
	l := Nop().With("k", "v").WithGroup("g")
	if l.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("derived nop logger should stay disabled")
	}
}
