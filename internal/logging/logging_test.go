package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJSONLoggerWritesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf}).With(String("file", "f10.eng"))
	log.Info(context.Background(), "loaded", Int("samples", 27), Float("impulse", 68.2), Err(errors.New("boom")))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	checks := map[string]any{
		"msg":     "loaded",
		"file":    "f10.eng",
		"samples": 27.0,
		"impulse": 68.2,
		"error":   "boom",
	}
	for k, want := range checks {
		if rec[k] != want {
			t.Errorf("record[%q] = %v, want %v", k, rec[k], want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})
	ctx := context.Background()
	log.Debug(ctx, "hidden debug")
	log.Info(ctx, "hidden info")
	log.Warn(ctx, "shown warn")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level records written:\n%s", out)
	}
	if !strings.Contains(out, "shown warn") {
		t.Errorf("warn record missing:\n%s", out)
	}
}

func TestNoopLogger(t *testing.T) {
	t.Parallel()

	log := Noop().With(String("k", "v"))
	log.Error(context.Background(), "dropped", Any("x", 1))
	if _, ok := log.(noopLogger); !ok {
		t.Errorf("Noop().With() = %T, want noopLogger", log)
	}
}
