package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/ledit/internal/config"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLogger_Filtering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn %d", 1)
	logger.Error("error")

	out := buf.String()
	for _, absent := range []string{"[DEBUG]", "[INFO]"} {
		if strings.Contains(out, absent) {
			t.Errorf("%s should be filtered out:\n%s", absent, out)
		}
	}
	for _, present := range []string{"[WARN] test: warn 1", "[ERROR] test: error"} {
		if !strings.Contains(out, present) {
			t.Errorf("missing %q:\n%s", present, out)
		}
	}
}

func TestLogger_FieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	logger.WithFields(map[string]any{"b": 2, "a": "x"}).WithComponent("engine").Info("hello")

	if !strings.HasSuffix(buf.String(), "hello {a=x, b=2, component=engine}\n") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogger_DerivedSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})
	child := logger.WithComponent("app")

	child.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("unexpected output %q", buf.String())
	}

	logger.SetLevel(LogLevelInfo)
	if !child.Enabled(LogLevelInfo) {
		t.Error("child did not follow SetLevel on its parent")
	}
	child.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Error("dropped")
	if l.Enabled(LogLevelError) {
		t.Error("null logger reports itself enabled")
	}
}

func TestOpenLogger(t *testing.T) {
	logger, closer, err := OpenLogger(config.LoggingConfig{Level: "debug"})
	if err != nil {
		t.Fatal(err)
	}
	if logger.Enabled(LogLevelError) {
		t.Error("logger without a file must be disabled")
	}
	if err := closer.Close(); err != nil {
		t.Error(err)
	}

	path := filepath.Join(t.TempDir(), "ledit.log")
	logger, closer, err = OpenLogger(config.LoggingConfig{Level: "debug", File: path})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("to file")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[DEBUG] ledit: to file") {
		t.Errorf("log file = %q", data)
	}

	if _, _, err := OpenLogger(config.LoggingConfig{File: filepath.Join(t.TempDir(), "missing", "x.log")}); err == nil {
		t.Error("OpenLogger() succeeded for a missing directory")
	}
}
