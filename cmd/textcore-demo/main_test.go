package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/textcore"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit=%d, want 0 (stderr %q)", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != textcore.Banner("textcore-demo") {
		t.Fatalf("stdout=%q, want banner", got)
	}
}

// Startup failures come back as exit codes instead of exiting the process.
func TestRun_FailuresReturnExitCode(t *testing.T) {
	dir := t.TempDir()
	badConfig := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badConfig, []byte(`{"page_size": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "unknown flag", args: []string{"-nope"}, code: 2},
		{name: "missing config", args: []string{"-config", filepath.Join(dir, "missing.json")}, code: 1},
		{name: "invalid config", args: []string{"-config", badConfig}, code: 1},
		{name: "missing file", args: []string{filepath.Join(dir, "missing.go")}, code: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.code {
				t.Fatalf("exit=%d, want %d", code, tt.code)
			}
			if stderr.Len() == 0 {
				t.Fatalf("expected a message on stderr")
			}
		})
	}
}
