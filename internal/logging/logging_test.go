package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_HasComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, "text", &buf)

	logger := New("solver")
	logger.Info("starting search")

	output := buf.String()
	if !strings.Contains(output, "component=solver") {
		t.Errorf("expected component=solver in output, got: %s", output)
	}
	if !strings.Contains(output, "starting search") {
		t.Errorf("expected message in output, got: %s", output)
	}
}

func TestInit_Formats(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		Init(slog.LevelInfo, "text", &buf)
		New("fmt").Info("text check")
		if out := buf.String(); !strings.Contains(out, "level=INFO") {
			t.Errorf("expected level=INFO in text output, got: %s", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		Init(slog.LevelInfo, "json", &buf)
		New("fmt").Info("json check")
		out := buf.String()
		if !strings.Contains(out, `"level":"INFO"`) {
			t.Errorf("expected JSON level field, got: %s", out)
		}
		if !strings.Contains(out, `"component":"fmt"`) {
			t.Errorf("expected JSON component field, got: %s", out)
		}
	})
}

func TestInit_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelWarn, "text", &buf)

	logger := New("gate")
	logger.Info("suppressed")
	logger.Warn("visible")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Error("Info message should be suppressed at Warn level")
	}
	if !strings.Contains(output, "visible") {
		t.Error("Warn message should appear at Warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(\"verbose\") accepted an unknown level")
	}
}
