package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	logger, err := New("warn")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if logger.Core().Enabled(zap.InfoLevel) || !logger.Core().Enabled(zap.WarnLevel) {
		t.Fatalf("expected warn level logger")
	}

	logger, err = New(" DEBUG ")
	if err != nil {
		t.Fatalf("new debug: %v", err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Fatalf("expected debug enabled")
	}

	if _, err := New(""); err != nil {
		t.Fatalf("expected default level, got %v", err)
	}
	if _, err := New("chatty"); err == nil {
		t.Fatalf("expected unknown level to fail")
	}
}
