// Package testutil provides testing utilities for Sentinel tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// SetupInstallDir creates a temporary installation directory with the
// data/ subdirectory the monitor task writes into. The directory is
// cleaned up when the test completes.
func SetupInstallDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	return dir
}

// WritePIDMarker writes a PID marker the way the monitor task does and
// returns its path.
func WritePIDMarker(t *testing.T, installDir string, pid int) string {
	t.Helper()

	path := filepath.Join(installDir, "data", "alert_monitor.pid")
	if err := os.WriteFile(path, []byte(fmt.Sprintf("%d\n", pid)), 0644); err != nil {
		t.Fatalf("failed to write pid marker: %v", err)
	}
	return path
}

// WritePerformanceRecord writes a performance record file and returns
// its path. The contents are opaque to the supervisor, so any JSON will do.
func WritePerformanceRecord(t *testing.T, installDir string, content string) string {
	t.Helper()

	path := filepath.Join(installDir, "data", "signal_performance.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write performance record: %v", err)
	}
	return path
}

// WriteFakeMonitor creates an executable script that stands in for the
// monitor's reporting entry point: it ignores its arguments and prints
// the given report. Returns the argv to invoke it.
func WriteFakeMonitor(t *testing.T, installDir, report string) []string {
	t.Helper()

	reportPath := filepath.Join(installDir, "report.txt")
	if err := os.WriteFile(reportPath, []byte(report+"\n"), 0644); err != nil {
		t.Fatalf("failed to write report fixture: %v", err)
	}

	script := filepath.Join(installDir, "fake_monitor.sh")
	body := fmt.Sprintf("#!/bin/sh\ncat %q\n", reportPath)
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		t.Fatalf("failed to write fake monitor script: %v", err)
	}
	return []string{script, "--performance"}
}

// WriteFailingMonitor creates an executable script that exits non-zero,
// standing in for a monitor whose reporting entry point is broken.
func WriteFailingMonitor(t *testing.T, installDir string) []string {
	t.Helper()

	script := filepath.Join(installDir, "broken_monitor.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0755); err != nil {
		t.Fatalf("failed to write failing monitor script: %v", err)
	}
	return []string{script, "--performance"}
}
