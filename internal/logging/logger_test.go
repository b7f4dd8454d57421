package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	logger, err := New("warn", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer logger.Sync()
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn should be enabled at warn level")
	}
}

func TestNewVerboseWins(t *testing.T) {
	logger, err := New("error", true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer logger.Sync()
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("verbose should force debug level")
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New("loud", false); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestWithRunID(t *testing.T) {
	logger, err := New("info", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer logger.Sync()

	withID, id := WithRunID(logger)
	if withID == nil || id == "" {
		t.Fatalf("WithRunID returned %v, %q", withID, id)
	}
	another, other := WithRunID(logger)
	if another == nil || other == id {
		t.Fatalf("run ids should be unique, got %q twice", id)
	}
}
