// Released under an MIT license. See LICENSE.

// Package ui provides the interactive command-line interface for carapace.
package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/carapace-shell/carapace/internal/engine"
	"github.com/carapace-shell/carapace/internal/session"
	"github.com/carapace-shell/carapace/internal/system/config"
	"github.com/carapace-shell/carapace/internal/system/history"
	"github.com/peterh/liner"
)

// T (ui) is a line-editing front end for an engine.
type T struct {
	cli      *liner.State
	cooked   liner.ModeApplier
	engine   *engine.T
	session  *session.T
	uncooked liner.ModeApplier
}

// New prepares the terminal and attaches the front end to e's session.
func New(e *engine.T) (*T, error) {
	// We assume the terminal starts in cooked mode.
	cooked, err := liner.TerminalMode()
	if err != nil {
		return nil, err
	}

	cli := liner.NewLiner()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		_ = cli.Close()

		return nil, err
	}

	u := &T{
		cli:      cli,
		cooked:   cooked,
		engine:   e,
		session:  e.Session(),
		uncooked: uncooked,
	}

	s := u.session
	s.Editor = u

	if err := s.Config.EditMode.Supported(); err != nil {
		s.Errorf("carapace: %v, using emacs", err)
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(s, line, pos)
	})

	if s.Config.CompletionType == config.Circular {
		cli.SetTabCompletionStyle(liner.TabCircular)
	} else {
		cli.SetTabCompletionStyle(liner.TabPrints)
	}

	for _, read := range []func(io.Reader) (int, error){cli.ReadHistory, s.History.Read} {
		err = history.Load(read)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.Errorf("carapace: reading history: %v", err)

			break
		}
	}

	return u, nil
}

// ClearHistory empties the editor's recall buffer.
func (u *T) ClearHistory() {
	u.cli.ClearHistory()
}

// Close saves the editor's history and restores the terminal.
func (u *T) Close() error {
	if err := history.Save(u.cli.WriteHistory); err != nil {
		u.session.Errorf("carapace: writing history: %v", err)
	}

	u.session.Editor = nil

	return u.cli.Close()
}

// SetEditMode switches key bindings. Only emacs bindings are available.
func (u *T) SetEditMode(mode config.EditMode) error {
	return mode.Supported()
}

// Run reads and evaluates lines until the shell exits. It returns the
// exit status.
func (u *T) Run() int {
	s := u.session

	for {
		line, err := u.prompt(Prompt(s))

		switch {
		case err == nil:
			if history.Recordable(line) {
				u.cli.AppendHistory(line)
			}
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(s.Stdout, "^C")

			continue
		case errors.Is(err, io.EOF):
			if s.Options.IgnoreEOF {
				fmt.Fprintln(s.Stdout, `Use "exit" to leave the shell.`)

				continue
			}

			fmt.Fprintln(s.Stdout, "exit")

			return 0
		default:
			s.Errorf("carapace: %v", err)

			return 1
		}

		if code, done := u.engine.Evaluate(line); done {
			return code
		}
	}
}

func (u *T) prompt(p string) (string, error) {
	if err := u.uncooked.ApplyMode(); err != nil {
		return "", err
	}

	line, err := u.cli.Prompt(p)

	if merr := u.cooked.ApplyMode(); merr != nil && err == nil {
		err = merr
	}

	return line, err
}

// Prompt returns the prompt for s: the working directory, with the home
// directory abbreviated to ~.
func Prompt(s *session.T) string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = s.Env.Value("PWD")
	}

	return "carapace " + abbreviate(cwd, s.Home()) + "> "
}

func abbreviate(path, home string) string {
	home = strings.TrimRight(home, "/")
	if home == "" {
		return path
	}

	if path == home {
		return "~"
	}

	if strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}

	return path
}
