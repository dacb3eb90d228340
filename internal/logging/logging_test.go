package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestNopHandler_WithAttrsAndGroup(t *testing.T) {
	h := nopHandler{}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("k", "v")}).(nopHandler); !ok {
		t.Error("WithAttrs should return nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup should return nopHandler")
	}
}

func TestDefaultSilent(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	if Debug() {
		t.Error("default logger should not be debug-enabled")
	}
}

func TestSet(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { Set(orig) })

	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if !Debug() {
		t.Error("Debug() = false after setting a debug logger")
	}
	Logger().Info("hello", "frame", 3)
	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "frame=3") {
		t.Errorf("log output = %q, want message and attribute", buf.String())
	}

	Set(nil)
	if Debug() {
		t.Error("Set(nil) should restore the silent logger")
	}
}
