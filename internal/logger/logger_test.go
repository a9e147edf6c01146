package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "orrery.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}

	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Info("frame loop started")
	Debug("debug detail")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "frame loop started") {
		t.Error("info message missing from log file")
	}
	if !strings.Contains(string(data), "debug detail") {
		t.Error("debug message missing at debug level")
	}
}

func TestLevelFiltering(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "orrery.log")

	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}
	if err := InitWithFileConfig("warn", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Info("should be filtered")
	Warn("should appear")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(data), "should be filtered") {
		t.Error("info message leaked through warn level")
	}
	if !strings.Contains(string(data), "should appear") {
		t.Error("warn message missing")
	}
}

func TestNamed(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "orrery.log")

	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}
	if err := InitWithFileConfig("info", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Named("raster").Info("cleared framebuffer")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "raster") {
		t.Error("named logger did not tag output with subsystem name")
	}
}

func TestNamedBeforeInit(t *testing.T) {
	saved := Log
	Log = nil
	defer func() { Log = saved }()

	// Must not panic.
	Named("camera").Info("ignored")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"warn", "warn"},
		{"error", "error"},
		{"info", "info"},
		{"bogus", "info"},
		{"", "info"},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in).String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
