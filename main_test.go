package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func shell(t *testing.T, stdin string, argv ...string) (int, string, string) {
	t.Helper()

	home := t.TempDir()

	t.Setenv("HOME", home)
	t.Setenv("CARAPACE_HISTORY", filepath.Join(home, "history"))

	argv = append([]string{"--config=" + filepath.Join(home, "config.json")}, argv...)

	stdout := &strings.Builder{}
	stderr := &strings.Builder{}

	code := run(argv, strings.NewReader(stdin), stdout, stderr)

	return code, stdout.String(), stderr.String()
}

func TestCommand(t *testing.T) {
	code, stdout, _ := shell(t, "", "-c", "export GREETING=hello\nG2=${GREETING}! export\nexit 4")
	if code != 4 {
		t.Fatalf("exit status %d, want 4", code)
	}

	if !strings.Contains(stdout, "G2=hello!\n") {
		t.Fatalf("stdout %q", stdout)
	}
}

func TestStdin(t *testing.T) {
	code, stdout, _ := shell(t, "export A=1\nset -x\nset\n", "-s")
	if code != 0 {
		t.Fatalf("exit status %d, want 0", code)
	}

	if !strings.Contains(stdout, "xtrace     on\n") {
		t.Fatalf("stdout %q", stdout)
	}
}

func TestConfigWritten(t *testing.T) {
	code, _, _ := shell(t, "", "-c", "quit")
	if code != 0 {
		t.Fatalf("exit status %d, want 0", code)
	}

	home := os.Getenv("HOME")
	if _, err := os.Stat(filepath.Join(home, "config.json")); err != nil {
		t.Fatalf("config not written: %v", err)
	}
}

func TestUsage(t *testing.T) {
	tests := []struct {
		argv   []string
		code   int
		stdout string
		stderr string
	}{
		{[]string{"-h"}, 0, "Usage:", ""},
		{[]string{"--version"}, 0, "carapace ", ""},
		{[]string{"--bogus"}, 2, "", "Usage:"},
	}

	for _, tt := range tests {
		stdout := &strings.Builder{}
		stderr := &strings.Builder{}

		code := run(tt.argv, strings.NewReader(""), stdout, stderr)
		if code != tt.code {
			t.Errorf("run(%q) = %d, want %d", tt.argv, code, tt.code)
		}

		if !strings.Contains(stdout.String(), tt.stdout) || !strings.Contains(stderr.String(), tt.stderr) {
			t.Errorf("run(%q) wrote %q, %q", tt.argv, stdout, stderr)
		}
	}
}
