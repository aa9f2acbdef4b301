// Released under an MIT license. See LICENSE.

// Package engine evaluates lines of input for a session.
package engine

import (
	"bufio"
	"errors"
	"io"

	"github.com/carapace-shell/carapace/internal/engine/command"
	"github.com/carapace-shell/carapace/internal/reader"
	"github.com/carapace-shell/carapace/internal/session"
)

// T (engine) is a facade in front of the machinery for evaluating lines.
type T struct {
	reader  *reader.T
	session *session.T
}

// New creates a new T for the session s.
func New(s *session.T) *T {
	return &T{
		reader:  reader.New(),
		session: s,
	}
}

// Session returns the session e evaluates commands for.
func (e *T) Session() *session.T {
	return e.session
}

// Evaluate processes and executes line. If the shell should exit, done
// is true and code is the exit status.
func (e *T) Evaluate(line string) (code int, done bool) {
	c, err := e.reader.Process(line, e.session)
	if errors.Is(err, reader.ErrNoCommand) {
		return 0, false
	} else if err != nil {
		e.session.Errorf("carapace: %v", err)

		return 0, false
	}

	_, err = command.Execute(c, e.session)

	var term *command.Termination
	if errors.As(err, &term) {
		return term.Code, true
	}

	return 0, false
}

// Source evaluates each line read from r. It returns the exit status of
// the command that terminated the shell or, if the input ran out, the
// status of the last command.
func (e *T) Source(r io.Reader) int {
	s := bufio.NewScanner(r)
	for s.Scan() {
		if code, done := e.Evaluate(s.Text()); done {
			return code
		}
	}

	if err := s.Err(); err != nil {
		e.session.Errorf("carapace: %v", err)

		return 1
	}

	e.reader.Restore(e.session)

	return e.session.Status()
}
