// Released under an MIT license. See LICENSE.

// Package options parses the command line used to start carapace.
package options

import (
	"errors"
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by --version.
const Version = "carapace 0.1.0"

// ErrUsage is returned when the command line does not match the usage.
var ErrUsage = errors.New("invalid usage")

// T (options) holds the settings taken from the command line.
type T struct {
	Command     string
	Config      string
	Help        bool
	Interactive bool
	Stdin       bool
	Verbose     int
	Version     bool
}

//nolint:gochecknoglobals
var usage = `carapace

Usage:
  carapace [-v...] [--config=PATH] [-c COMMAND]
  carapace [-v...] [--config=PATH] -s
  carapace -h
  carapace --version

Options:
  -c, --command=COMMAND  Run the specified command and exit.
  --config=PATH          Read configuration from PATH.
  -s, --stdin            Read commands from stdin.
  -v, --verbose          Echo each line before it is processed.
  -h, --help             Display this help.
  --version              Print carapace version.

If carapace's stdin is a TTY, and neither a command nor -s is given, the
shell is interactive. Otherwise, commands are read from stdin.
`

// Parse parses argv, the command line without the program name. The
// shell is interactive only if the process's stdin is a terminal.
func Parse(argv []string) (*T, error) {
	return parse(argv, isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

// Usage returns the help text.
func Usage() string {
	return usage
}

func parse(argv []string, terminal bool) (*T, error) {
	if argv == nil {
		argv = []string{}
	}

	p := &docopt.Parser{
		HelpHandler:   docopt.NoHelpHandler,
		SkipHelpFlags: true,
	}

	opts, err := p.ParseArgs(usage, argv, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	t := &T{}

	t.Command, _ = opts.String("--command")
	t.Config, _ = opts.String("--config")
	t.Help, _ = opts.Bool("--help")
	t.Stdin, _ = opts.Bool("--stdin")
	t.Version, _ = opts.Bool("--version")

	if n, ok := opts["--verbose"].(int); ok {
		t.Verbose = n
	}

	t.Interactive = t.Command == "" && !t.Stdin && terminal
	if t.Command == "" && !terminal {
		t.Stdin = true
	}

	return t, nil
}
