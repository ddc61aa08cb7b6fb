package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no file", nil},
		{"two files", []string{"a.txt", "b.txt"}},
		{"unknown flag", []string{"-bogus", "a.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Errorf("run() = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), "Usage: ledit") {
				t.Errorf("stderr = %q, want usage text", stderr.String())
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want nothing", stdout.String())
			}
		})
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if !strings.HasPrefix(stdout.String(), "ledit dev\n") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
}

func TestRunInvalidLogLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-log-level", "loud", "a.txt"}, &stdout, &stderr); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "logging.level") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunBadConfig(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	path := dir + "/none.toml"
	t.Setenv("LEDIT_TERMINAL_BACKEND", "gui")
	if code := run([]string{"-config", path, "a.txt"}, &stdout, &stderr); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "terminal.backend") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
