package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want zapcore.Level
	}{
		{name: "", want: zapcore.InfoLevel},
		{name: "debug", want: zapcore.DebugLevel},
		{name: " WARN ", want: zapcore.WarnLevel},
		{name: "error", want: zapcore.ErrorLevel},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.name)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error = %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected unknown level to be rejected")
	}
}

func TestNewAppliesLevel(t *testing.T) {
	t.Parallel()

	logger, err := New("web", Config{Level: "warn"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("warn should be enabled at warn level")
	}
}

func TestNewDevelopment(t *testing.T) {
	t.Parallel()

	logger, err := New("", Config{Level: "debug", Development: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug should be enabled")
	}
}

func TestOrNop(t *testing.T) {
	t.Parallel()

	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}
}
