// Released under an MIT license. See LICENSE.

package command

import (
	"fmt"
	"strings"

	"github.com/carapace-shell/carapace/internal/session"
	"github.com/carapace-shell/carapace/internal/system/config"
)

// Export sets environment variables or, with no arguments, lists them.
type Export struct {
	builtin
	Vars []string
}

// Set turns shell options on and off and switches the edit mode.
type Set struct {
	builtin
	Disable  []string
	EditMode config.EditMode
	Enable   []string
}

// Unset removes environment variables.
type Unset struct {
	builtin
	Vars []string
}

func newExport(args []string) *Export {
	c := &Export{builtin: builtin{name: "export"}}

	opts := c.parse(args)
	if opts == nil {
		return c
	}

	c.Vars = strs(opts, "VAR")
	for _, v := range c.Vars {
		if strings.HasPrefix(v, "=") {
			c.fail("not a valid identifier: %s", v)
		}
	}

	return c
}

func newSet(args []string) *Set {
	c := &Set{builtin: builtin{name: "set"}}

	opts := c.parse(args)
	if opts == nil {
		return c
	}

	for _, flag := range []string{"-e", "-v", "-x"} {
		if boolean(opts, flag) {
			c.Enable = append(c.Enable, flag[1:])
		}
	}

	switch name := str(opts, "-o"); {
	case name == "":
	case name == string(config.Emacs) || name == string(config.Vi):
		c.EditMode = config.EditMode(name)
	case session.KnownOption(name):
		c.Enable = append(c.Enable, name)
	default:
		c.fail("unknown option name: %s", name)
	}

	for _, arg := range strs(opts, "OPTION") {
		name := strings.TrimPrefix(arg, "+")

		switch {
		case name == arg:
			c.fail("argument to unset must start with '+', like '+x'")
		case name == string(config.Emacs) || name == string(config.Vi):
			c.fail("edit mode cannot be unset: %s", name)
		case !session.KnownOption(name):
			c.fail("unknown option: %s", name)
		default:
			c.Disable = append(c.Disable, name)
		}
	}

	return c
}

func newUnset(args []string) *Unset {
	c := &Unset{builtin: builtin{name: "unset"}}
	if opts := c.parse(args); opts != nil {
		c.Vars = strs(opts, "VAR")
	}

	return c
}

func export(c *Export, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	if len(c.Vars) == 0 {
		for _, k := range s.Env.Keys() {
			fmt.Fprintf(s.Stdout, "%s=%s\n", k, s.Env.Value(k))
		}

		return true, nil
	}

	for _, kv := range c.Vars {
		k, v, _ := strings.Cut(kv, "=")
		s.Env.Set(k, v)
	}

	return true, nil
}

func set(c *Set, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	if len(c.Enable) == 0 && len(c.Disable) == 0 && c.EditMode == "" {
		for _, name := range session.OptionNames() {
			on, _ := s.Option(name)

			state := "off"
			if on {
				state = "on"
			}

			fmt.Fprintf(s.Stdout, "%-10s %s\n", name, state)
		}

		fmt.Fprintf(s.Stdout, "%-10s %s\n", "editmode", s.EditMode)

		return true, nil
	}

	if c.EditMode != "" {
		if err := c.EditMode.Supported(); err != nil {
			s.Errorf("set: %v", err)

			return false, nil
		}
	}

	if c.EditMode != "" && c.EditMode != s.EditMode {
		if s.Editor != nil {
			if err := s.Editor.SetEditMode(c.EditMode); err != nil {
				s.Errorf("set: %v", err)

				return false, nil
			}
		}

		s.EditMode = c.EditMode
	}

	for _, name := range c.Enable {
		if err := s.SetOption(name, true); err != nil {
			s.Errorf("set: %v", err)

			return false, nil
		}
	}

	for _, name := range c.Disable {
		if err := s.SetOption(name, false); err != nil {
			s.Errorf("set: %v", err)

			return false, nil
		}
	}

	return true, nil
}

func unset(c *Unset, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	for _, k := range c.Vars {
		s.Env.Remove(k)
	}

	return true, nil
}
