// Released under an MIT license. See LICENSE.

package session

import (
	"fmt"
	"strings"
)

type option struct {
	code string
	name string
	get  func(*Options) bool
	set  func(*Options, bool)
}

// Options mirrored in $- appear in this order.
//
//nolint:gochecknoglobals
var table = []option{
	{
		code: "e",
		name: "errexit",
		get:  func(o *Options) bool { return o.Errexit },
		set:  func(o *Options, on bool) { o.Errexit = on },
	},
	{
		name: "ignoreeof",
		get:  func(o *Options) bool { return o.IgnoreEOF },
		set:  func(o *Options, on bool) { o.IgnoreEOF = on },
	},
	{
		code: "v",
		name: "verbose",
		get:  func(o *Options) bool { return o.Verbose > 0 },
		set: func(o *Options, on bool) {
			switch {
			case !on:
				o.Verbose = 0
			case o.Verbose == 0:
				o.Verbose = 1
			}
		},
	},
	{
		code: "x",
		name: "xtrace",
		get:  func(o *Options) bool { return o.Xtrace },
		set:  func(o *Options, on bool) { o.Xtrace = on },
	},
}

func lookup(name string) (option, bool) {
	for _, o := range table {
		if name == o.name || (o.code != "" && name == o.code) {
			return o, true
		}
	}

	return option{}, false
}

// KnownOption returns true if name is an option code or name.
func KnownOption(name string) bool {
	_, ok := lookup(name)

	return ok
}

// OptionNames returns the long names of all options.
func OptionNames() []string {
	l := make([]string, 0, len(table))
	for _, o := range table {
		l = append(l, o.name)
	}

	return l
}

// Option reports whether the option called name (code or long name) is on.
func (s *T) Option(name string) (bool, error) {
	o, ok := lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}

	return o.get(&s.Options), nil
}

// SetOption turns the option called name on or off and updates $-.
func (s *T) SetOption(name string, on bool) error {
	o, ok := lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}

	o.set(&s.Options, on)
	s.mirror()

	return nil
}

// SetVerbose sets the verbosity level and updates $-.
func (s *T) SetVerbose(level int) {
	if level < 0 {
		level = 0
	}

	s.Options.Verbose = level
	s.mirror()
}

// mirror rewrites $- from the options that have a one-letter code.
func (s *T) mirror() {
	var b strings.Builder

	for _, o := range table {
		if o.code != "" && o.get(&s.Options) {
			b.WriteString(o.code)
		}
	}

	s.Env.Set("-", b.String())
}
