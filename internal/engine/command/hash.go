// Released under an MIT license. See LICENSE.

package command

import (
	"fmt"

	"github.com/carapace-shell/carapace/internal/session"
	"github.com/carapace-shell/carapace/internal/system/history"
)

// Hash checks whether a command is known and optionally rehashes.
type Hash struct {
	builtin
	Command string
	Rehash  bool
}

// History lists, clears or saves the command history.
type History struct {
	builtin
	Clear bool
	Write bool
}

// Rehash rescans $PATH for executables.
type Rehash struct {
	builtin
}

func newHash(args []string) *Hash {
	c := &Hash{builtin: builtin{name: "hash"}}
	if opts := c.parse(args); opts != nil {
		c.Command = str(opts, "COMMAND")
		c.Rehash = boolean(opts, "--rehash")
	}

	return c
}

func newHistory(args []string) *History {
	c := &History{builtin: builtin{name: "history"}}
	if opts := c.parse(args); opts != nil {
		c.Clear = boolean(opts, "-c")
		c.Write = boolean(opts, "-w")
	}

	return c
}

func newRehash(args []string) *Rehash {
	c := &Rehash{builtin: builtin{name: "rehash"}}
	c.parse(args)

	return c
}

func hash(c *Hash, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	if c.Rehash {
		s.Commands.Rehash(s.Env.Value("PATH"))
	}

	if c.Command == "" {
		return true, nil
	}

	known := s.Commands.Contains(c.Command)
	if known {
		s.SetStatus(0)
	} else {
		s.SetStatus(1)
		s.Errorf("hash: %s: not found", c.Command)
	}

	return known, nil
}

func hist(c *History, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	switch {
	case c.Clear:
		s.History.Clear()

		if s.Editor != nil {
			s.Editor.ClearHistory()
		}
	case c.Write:
		if err := history.Save(s.History.Write); err != nil {
			s.Errorf("history: %v", err)

			return false, nil
		}
	default:
		for i, line := range s.History.Lines() {
			fmt.Fprintf(s.Stdout, "%5d  %s\n", i+1, line)
		}
	}

	return true, nil
}

func rehash(c *Rehash, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	s.Commands.Rehash(s.Env.Value("PATH"))

	return true, nil
}
