package observe

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WithCacheAndFields(t *testing.T) {
	core, logs := zapobserver.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core)).WithCache("underscore")

	logger.Warn(context.Background(), "slow compute", Field{Key: "duration_ms", Value: 12.5})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Level != zapcore.WarnLevel {
		t.Errorf("expected warn level, got %v", entry.Level)
	}
	if entry.Message != "slow compute" {
		t.Errorf("expected message 'slow compute', got %q", entry.Message)
	}

	fields := entry.ContextMap()
	if fields["cache.name"] != "underscore" {
		t.Errorf("expected cache.name=underscore, got %v", fields["cache.name"])
	}
	if fields["duration_ms"] != 12.5 {
		t.Errorf("expected duration_ms=12.5, got %v", fields["duration_ms"])
	}
}

func TestZapLogger_ErrorField(t *testing.T) {
	core, logs := zapobserver.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Error(context.Background(), "compute failed", Field{Key: "error", Value: errors.New("boom")})

	entry := logs.All()[0]
	if entry.ContextMap()["error"] != "boom" {
		t.Errorf("expected error=boom, got %v", entry.ContextMap()["error"])
	}
}

func TestZapLogger_CoreFilters(t *testing.T) {
	core, logs := zapobserver.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "shown")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	if logs.FilterMessage("hidden").Len() != 0 {
		t.Error("debug entry should be filtered by the core")
	}
}

func TestNewZapProduction_Levels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		l, err := newZapProduction(level)
		if err != nil {
			t.Fatalf("level %q: %v", level, err)
		}
		_ = l.Sync()
	}

	if _, err := newZapProduction("loud"); !errors.Is(err, ErrInvalidLogLevel) {
		t.Errorf("expected ErrInvalidLogLevel, got %v", err)
	}
}
