// Released under an MIT license. See LICENSE.

package command

import (
	"fmt"

	"github.com/carapace-shell/carapace/internal/session"
)

// Cd changes the working directory.
type Cd struct {
	builtin
	Path string
}

// Dirs lists the directory stack.
type Dirs struct {
	builtin
	Verbose bool
}

// Popd pops the top of the directory stack and changes to it.
type Popd struct {
	builtin
}

// Pushd pushes the working directory on the stack and changes directory.
type Pushd struct {
	builtin
	Path string
}

func newCd(args []string) *Cd {
	c := &Cd{builtin: builtin{name: "cd"}}
	if opts := c.parse(args); opts != nil {
		c.Path = str(opts, "DIR")
	}

	if c.Path == "" {
		c.Path = "~"
	}

	return c
}

func newDirs(args []string) *Dirs {
	c := &Dirs{builtin: builtin{name: "dirs"}}
	if opts := c.parse(args); opts != nil {
		c.Verbose = boolean(opts, "-v")
	}

	return c
}

func newPopd(args []string) *Popd {
	c := &Popd{builtin: builtin{name: "popd"}}
	c.parse(args)

	return c
}

func newPushd(args []string) *Pushd {
	c := &Pushd{builtin: builtin{name: "pushd"}}
	if opts := c.parse(args); opts != nil {
		c.Path = str(opts, "DIR")
	}

	return c
}

func cd(c *Cd, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	path := c.Path
	if path == "-" {
		oldpwd, ok := s.Env.Get("OLDPWD")
		if !ok {
			s.Errorf("cd: OLDPWD not set")

			return false, nil
		}

		path = oldpwd
	}

	if _, _, err := s.Chdir(path); err != nil {
		s.Errorf("Could not change to %s: %v", path, err)

		return false, nil
	}

	if c.Path == "-" {
		fmt.Fprintln(s.Stdout, path)
	}

	return true, nil
}

func dirs(c *Dirs, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	s.PrintDirs(c.Verbose)

	return true, nil
}

func popd(c *Popd, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	dir, ok := s.Dirs.Pop()
	if !ok {
		fmt.Fprintln(s.Stdout, "Directory stack is empty")

		return true, nil
	}

	if _, _, err := s.Chdir(dir); err != nil {
		s.Dirs.Push(dir)
		s.Errorf("Could not change to %s: %v", dir, err)

		return false, nil
	}

	s.PrintDirs(false)

	return true, nil
}

func pushd(c *Pushd, s *session.T) (bool, error) {
	if !c.valid(s) {
		return false, nil
	}

	if c.Path != "" {
		old, changed, err := s.Chdir(c.Path)
		if err != nil {
			s.Errorf("Could not change to %s: %v", c.Path, err)

			return false, nil
		}

		if changed {
			s.Dirs.Push(old)
		}
	}

	s.PrintDirs(false)

	return true, nil
}
