/*
Carapace is a small interactive Unix shell. Each line is expanded and then
run as either a builtin or an external program:

    export GREETING=hello
    echo $GREETING ${USER}
    LANG=C sort ~/notes.txt
    ls *.go
    pushd /tmp
    popd
    set -x
    exit 3

Settings are read from ~/.carapace/config.json.

Carapace is released under an MIT license.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carapace-shell/carapace/internal/engine"
	"github.com/carapace-shell/carapace/internal/session"
	"github.com/carapace-shell/carapace/internal/system/config"
	"github.com/carapace-shell/carapace/internal/system/env"
	"github.com/carapace-shell/carapace/internal/system/options"
	"github.com/carapace-shell/carapace/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := options.Parse(argv)
	if err != nil {
		fmt.Fprintf(stderr, "carapace: %v\n\n%s", err, options.Usage())

		return 2
	}

	switch {
	case opts.Help:
		fmt.Fprint(stdout, options.Usage())

		return 0
	case opts.Version:
		fmt.Fprintln(stdout, options.Version)

		return 0
	}

	path := opts.Config
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "carapace: %v\n", err)

		cfg = config.Default()
	}

	s := session.New(cfg, env.FromOS())
	s.Stdin = stdin
	s.Stdout = stdout
	s.Stderr = stderr
	s.SetVerbose(opts.Verbose)

	e := engine.New(s)

	switch {
	case opts.Command != "":
		return e.Source(strings.NewReader(opts.Command))
	case opts.Interactive:
		return interactive(e, stderr)
	}

	return e.Source(stdin)
}

func interactive(e *engine.T, stderr io.Writer) int {
	u, err := ui.New(e)
	if err != nil {
		fmt.Fprintf(stderr, "carapace: %v\n", err)

		return 1
	}

	code := u.Run()

	if err := u.Close(); err != nil {
		fmt.Fprintf(stderr, "carapace: %v\n", err)
	}

	return code
}
