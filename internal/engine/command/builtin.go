// Released under an MIT license. See LICENSE.

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carapace-shell/carapace/internal/session"
	"github.com/docopt/docopt-go"
)

// builtin is embedded in every builtin command. It records the builtin's
// usage and any problem found while validating its arguments.
type builtin struct {
	name    string
	problem error
}

func (b *builtin) command() {}

// Problem returns the argument validation error, if any.
func (b *builtin) Problem() error {
	return b.problem
}

// valid reports whether the arguments were valid. If not, it writes a
// diagnostic and the builtin's usage to the session's error stream.
func (b *builtin) valid(s *session.T) bool {
	if b.problem == nil {
		return true
	}

	if msg := b.problem.Error(); msg != "" {
		s.Errorf("%s: %s", b.name, msg)
	}

	fmt.Fprint(s.Stderr, usages[b.name])

	return false
}

// parse validates args against the builtin's usage.
func (b *builtin) parse(args []string) docopt.Opts {
	if args == nil {
		// docopt reads os.Args when given nil.
		args = []string{}
	}

	p := &docopt.Parser{
		HelpHandler:   docopt.NoHelpHandler,
		SkipHelpFlags: true,
	}

	opts, err := p.ParseArgs(usages[b.name], args, "")
	if err != nil {
		b.problem = err
		if err.Error() == "" {
			b.problem = fmt.Errorf("invalid arguments: %s", strings.Join(args, " "))
		}
	} else if opts == nil {
		b.problem = errors.New("invalid arguments")
	}

	return opts
}

func (b *builtin) fail(format string, args ...interface{}) {
	b.problem = fmt.Errorf(format, args...)
}

func boolean(opts docopt.Opts, key string) bool {
	v, _ := opts.Bool(key)

	return v
}

func str(opts docopt.Opts, key string) string {
	v, _ := opts.String(key)

	return v
}

func strs(opts docopt.Opts, key string) []string {
	v, _ := opts[key].([]string)

	return v
}
