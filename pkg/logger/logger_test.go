package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestGetWithoutInit(t *testing.T) {
	// Get must hand out a working default even before Init runs.
	global = nil

	l := Get()
	if l == nil {
		t.Fatal("logger is nil before Init")
	}

	ctx := context.Background()
	l.Info(ctx, "default logger message", String("k", "v"))
}

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	l := Get()
	if l == nil {
		t.Fatal("logger is nil after initialization")
	}

	// Re-initialization resets the level back to info.
	SetLevel(slog.LevelError)
	if err := Init(); err != nil {
		t.Fatalf("failed to re-initialize logger: %v", err)
	}
	if got := levelVar.Level(); got != slog.LevelInfo {
		t.Fatalf("level after re-init = %v, want %v", got, slog.LevelInfo)
	}
}

func TestLoggerLevels(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	l := Get()
	l.Debug(ctx, "debug message")
	l.Info(ctx, "info message", Int("n", 1))
	l.Warn(ctx, "warn message", Float64("f", 2.5))
	l.Error(ctx, "error message", Error(nil), Any("v", struct{}{}))
}

func TestLoggerNamed(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	named := Named("worker")
	if named == nil {
		t.Fatal("named logger is nil")
	}

	named.Info(context.Background(), "named message", String("k", "v"))
}

func TestSetLevelString(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"  error  ", slog.LevelError},
	}
	for _, c := range cases {
		if err := SetLevelString(c.in); err != nil {
			t.Fatalf("SetLevelString(%q) returned error: %v", c.in, err)
		}
		if got := levelVar.Level(); got != c.want {
			t.Fatalf("SetLevelString(%q) set level %v, want %v", c.in, got, c.want)
		}
	}

	if err := SetLevelString("shout"); err == nil {
		t.Fatal("SetLevelString accepted an unknown level")
	}
}
