package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from an empty directory so logs/ lands there
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(io.Discard) })
}

func TestSetupLogging_Disabled(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Error("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_Debug(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file when debug=true")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("Expected log output away from stdout and stderr")
	}

	log.Printf("cursor at %d,%d", 3, 0)

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "cursor at 3,0") {
		t.Errorf("Expected message in log file, got %q", data)
	}
}

func TestSetupLogging_RotatesLargeFile(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	var rotated string
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "tilde-") {
			rotated = e.Name()
		}
	}
	if rotated == "" {
		t.Fatal("Expected a rotated tilde-<timestamp>.log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log file, got %d bytes", info.Size())
	}
}
