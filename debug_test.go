package vitrine

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// captureLogs installs a debug-level text logger for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	buf := captureLogs(t)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	for i := 0; i <= debugMaxChildCount; i++ {
		s.Add(NewObject(ObjectConfig{}))
	}
	if !strings.Contains(buf.String(), "child count") {
		t.Errorf("expected a child count warning, got: %q", buf.String())
	}
}

func TestDebugMode_NoWarningWhenDisabled(t *testing.T) {
	buf := captureLogs(t)
	g := NewGroup()
	for i := 0; i <= debugMaxChildCount; i++ {
		g.Add(NewObject(ObjectConfig{}))
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output with debug off, got: %q", buf.String())
	}
}

func TestDebugMode_SuppressedClickLogged(t *testing.T) {
	buf := captureLogs(t)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	s.PointerDown(0, 0, false)
	s.PointerUp(5, 0, false)
	s.Click()
	if !strings.Contains(buf.String(), "click suppressed") {
		t.Errorf("expected a suppressed click message, got: %q", buf.String())
	}
}

func TestFrameStatsInterval(t *testing.T) {
	var s frameStats
	stats := RenderStats{DrawCalls: 2, Triangles: 48}
	for i := 1; i < debugStatsInterval; i++ {
		if s.addDraw(time.Millisecond, 3, stats) {
			t.Fatalf("interval reported full after %d frames", i)
		}
	}
	if !s.addDraw(time.Millisecond, 3, stats) {
		t.Fatal("interval not full after debugStatsInterval frames")
	}
	if s.render.DrawCalls != 2*debugStatsInterval {
		t.Errorf("DrawCalls = %d, want %d", s.render.DrawCalls, 2*debugStatsInterval)
	}
}

func TestFrameStatsFlush(t *testing.T) {
	buf := captureLogs(t)
	var s frameStats
	s.addUpdate(2 * time.Millisecond)
	s.addDraw(4*time.Millisecond, 7, RenderStats{DrawCalls: 7, Triangles: 168})
	s.flush()

	out := buf.String()
	for _, want := range []string{"frame stats", "objects=7", "drawCalls=7", "triangles=168"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
	if s.frames != 0 {
		t.Error("flush did not reset the counters")
	}
}

func TestLoggerDefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}
