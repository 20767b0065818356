package utils

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

// TestGetLogger verifies singleton pattern - same instance returned
func TestGetLogger(t *testing.T) {
	logger1 := GetLogger()
	logger2 := GetLogger()

	if logger1 != logger2 {
		t.Error("GetLogger() should return same singleton instance")
	}
}

// TestLoggerDefaultVerboseMode verifies verbose is false by default
func TestLoggerDefaultVerboseMode(t *testing.T) {
	// Reset singleton for clean test
	once = sync.Once{}
	loggerInstance = nil

	logger := GetLogger()
	if logger.IsVerbose() {
		t.Error("Logger should have verbose=false by default")
	}
}

// TestSetVerboseMode verifies SetVerboseMode changes verbose state
func TestSetVerboseMode(t *testing.T) {
	// Reset singleton for clean test
	once = sync.Once{}
	loggerInstance = nil

	SetVerboseMode(true)
	logger := GetLogger()
	if !logger.IsVerbose() {
		t.Error("SetVerboseMode(true) should enable verbose mode")
	}

	SetVerboseMode(false)
	if logger.IsVerbose() {
		t.Error("SetVerboseMode(false) should disable verbose mode")
	}
}

// captureStderr runs fn with stderr redirected and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// TestDebugSuppressedWhenNotVerbose verifies debug output is gated on verbose
func TestDebugSuppressedWhenNotVerbose(t *testing.T) {
	once = sync.Once{}
	loggerInstance = nil
	SetVerboseMode(false)

	out := captureStderr(t, func() {
		Debugf("hidden %s", "message")
	})
	if out != "" {
		t.Errorf("debug output should be suppressed, got %q", out)
	}
}

// TestDebugShownWhenVerbose verifies debug output appears in verbose mode
func TestDebugShownWhenVerbose(t *testing.T) {
	once = sync.Once{}
	loggerInstance = nil
	SetVerboseMode(true)
	defer SetVerboseMode(false)

	out := captureStderr(t, func() {
		Debugf("visible %d", 42)
	})
	if !strings.Contains(out, "[DEBUG] visible 42") {
		t.Errorf("expected debug output, got %q", out)
	}
}

// TestLogLevelPrefixes verifies each level carries its prefix
func TestLogLevelPrefixes(t *testing.T) {
	once = sync.Once{}
	loggerInstance = nil

	out := captureStderr(t, func() {
		Infof("info %s", "msg")
		Warnf("warn msg")
		Errorf("error msg")
	})

	for _, want := range []string{"[INFO] info msg", "[WARN] warn msg", "[ERROR] error msg"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
