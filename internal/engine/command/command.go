// Released under an MIT license. See LICENSE.

// Package command provides the commands the shell can execute: its
// builtins and the general command that runs an external program.
package command

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/carapace-shell/carapace/internal/session"
)

// T (command) is a command ready to be executed. The set of commands is
// closed; every T is one of the pointer types declared in this package.
type T interface {
	command()
}

// Termination is the error returned by Execute when the shell should exit.
type Termination struct {
	Code int
}

func (t *Termination) Error() string {
	return "exit status " + strconv.Itoa(t.Code)
}

// Execute runs c against the session s. It returns true if the command
// succeeded and false if it failed in a way the shell can carry on from.
// A non-nil error is always a *Termination.
func Execute(c T, s *session.T) (bool, error) {
	switch c := c.(type) {
	case *Cd:
		return cd(c, s)
	case *Dirs:
		return dirs(c, s)
	case *Exit:
		return exit(c, s)
	case *Export:
		return export(c, s)
	case *General:
		return general(c, s)
	case *Hash:
		return hash(c, s)
	case *History:
		return hist(c, s)
	case *Popd:
		return popd(c, s)
	case *Pushd:
		return pushd(c, s)
	case *Quit:
		return quit(c, s)
	case *Rehash:
		return rehash(c, s)
	case *Set:
		return set(c, s)
	case *Unset:
		return unset(c, s)
	}

	panic(fmt.Sprintf("unexpected command %T", c))
}

// New creates the command named by program with the arguments args.
// Names that are not builtins produce a *General.
func New(program string, args []string) T {
	switch program {
	case "cd":
		return newCd(args)
	case "dirs":
		return newDirs(args)
	case "exit":
		return newExit(args)
	case "export":
		return newExport(args)
	case "hash":
		return newHash(args)
	case "history", "hist", "h":
		return newHistory(args)
	case "popd":
		return newPopd(args)
	case "pushd":
		return newPushd(args)
	case "quit":
		return newQuit(args)
	case "rehash":
		return newRehash(args)
	case "set":
		return newSet(args)
	case "unset":
		return newUnset(args)
	}

	return &General{Program: program, Args: args}
}

// Builtins returns the names that New resolves to builtins.
func Builtins() []string {
	l := make([]string, 0, len(usages)+2)
	for name := range usages {
		l = append(l, name)
	}

	l = append(l, "hist", "h")
	sort.Strings(l)

	return l
}
