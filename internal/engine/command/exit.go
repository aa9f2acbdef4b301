// Released under an MIT license. See LICENSE.

package command

import (
	"strconv"

	"github.com/carapace-shell/carapace/internal/session"
)

// Exit terminates the shell with Code, or with $? when no code was given.
type Exit struct {
	builtin
	Code     int
	Explicit bool
}

// Quit terminates the shell with status 0.
type Quit struct {
	builtin
}

func newExit(args []string) *Exit {
	c := &Exit{builtin: builtin{name: "exit"}}

	// A negative code would otherwise be read as a flag.
	if len(args) == 1 {
		if code, err := strconv.Atoi(args[0]); err == nil {
			c.Code = code
			c.Explicit = true

			return c
		}
	}

	opts := c.parse(args)
	if opts == nil {
		return c
	}

	if v := str(opts, "CODE"); v != "" {
		code, err := strconv.Atoi(v)
		if err != nil {
			c.fail("argument not an integer: %s", v)

			return c
		}

		c.Code = code
		c.Explicit = true
	}

	return c
}

func newQuit(args []string) *Quit {
	c := &Quit{builtin: builtin{name: "quit"}}
	c.parse(args)

	return c
}

func exit(c *Exit, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	code := c.Code
	if !c.Explicit {
		code = s.Status()
	}

	return false, &Termination{Code: code}
}

func quit(c *Quit, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	return false, &Termination{Code: 0}
}
