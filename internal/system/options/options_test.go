package options

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		argv     []string
		terminal bool
		want     T
	}{
		{nil, true, T{Interactive: true}},
		{nil, false, T{Stdin: true}},
		{[]string{"-c", "export"}, true, T{Command: "export"}},
		{[]string{"--command=pwd", "-vv"}, false, T{Command: "pwd", Verbose: 2}},
		{[]string{"-s"}, true, T{Stdin: true}},
		{[]string{"--config=/tmp/c.json", "-v"}, true, T{Config: "/tmp/c.json", Interactive: true, Verbose: 1}},
		{[]string{"-h"}, true, T{Help: true, Interactive: true}},
		{[]string{"--version"}, true, T{Version: true, Interactive: true}},
	}

	for _, tt := range tests {
		got, err := parse(tt.argv, tt.terminal)
		if err != nil {
			t.Fatalf("parse(%q): %v", tt.argv, err)
		}

		if diff := cmp.Diff(tt.want, *got); diff != "" {
			t.Errorf("parse(%q) mismatch (-want +got):\n%s", tt.argv, diff)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, argv := range [][]string{
		{"--bogus"},
		{"-c"},
		{"-c", "x", "-s"},
		{"extra"},
	} {
		if _, err := parse(argv, true); !errors.Is(err, ErrUsage) {
			t.Errorf("parse(%q) = %v, want ErrUsage", argv, err)
		}
	}
}
