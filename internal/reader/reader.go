// Released under an MIT license. See LICENSE.

// Package reader turns a line of input into a command.
//
// Processing a line applies, in order: restoration of variables assigned
// inline on the previous line, history recording, variable substitution,
// inline assignment, alias substitution, tilde expansion, glob expansion,
// quote-aware splitting of arguments and auto-cd detection.
package reader

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/carapace-shell/carapace/internal/engine/command"
	"github.com/carapace-shell/carapace/internal/reader/lexer"
	"github.com/carapace-shell/carapace/internal/session"
	"github.com/michaelmacinnis/adapted"
	"mvdan.cc/sh/v3/syntax"
)

// Errors returned by Process.
var (
	ErrCommandArgsSplit = errors.New("could not split command arguments")
	ErrNoCommand        = errors.New("no command")
)

//nolint:gochecknoglobals
var assignment = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// T (reader) processes lines for a session. It remembers the variables
// assigned inline on the most recent line so that they can be undone
// before the next line is processed.
type T struct {
	remove  []string
	restore map[string]string
}

// New creates a new reader.
func New() *T {
	return &T{restore: map[string]string{}}
}

// Pending returns the names that will be restored or removed before the
// next line is processed.
func (r *T) Pending() (restore map[string]string, remove []string) {
	restore = make(map[string]string, len(r.restore))
	for k, v := range r.restore {
		restore[k] = v
	}

	return restore, append([]string(nil), r.remove...)
}

// Process expands line and returns the command it names.
func (r *T) Process(line string, s *session.T) (command.T, error) {
	r.Restore(s)

	s.History.Add(line)

	if s.Options.Verbose > 0 {
		fmt.Fprintln(s.Stderr, line)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrNoCommand
	}

	words := strings.Fields(s.Env.Substitute(line))

	words = r.assign(words, s)
	if len(words) == 0 {
		return nil, ErrNoCommand
	}

	words = alias(words, s.Config.Aliases)

	for i, w := range words {
		words[i] = s.ExpandTilde(w)
	}

	words = glob(words)

	program := words[0]

	args, err := lexer.Split(strings.Join(words[1:], " "))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommandArgsSplit, err)
	}

	if len(args) == 0 && s.Config.AutoCD && directory(program) {
		args = []string{program}
		program = "cd"
	}

	if s.Options.Xtrace {
		trace(s, program, args)
	}

	return command.New(program, args), nil
}

// Restore undoes the inline assignments made by the previous line.
func (r *T) Restore(s *session.T) {
	for k, v := range r.restore {
		s.Env.Set(k, v)
	}

	for _, k := range r.remove {
		s.Env.Remove(k)
	}

	r.restore = map[string]string{}
	r.remove = nil
}

// assign applies leading NAME=VALUE words to the environment and returns
// the words that remain, substituted against the updated environment.
func (r *T) assign(words []string, s *session.T) []string {
	i := 0

	for ; i < len(words); i++ {
		m := assignment.FindStringSubmatch(words[i])
		if m == nil {
			break
		}

		k, v := m[1], m[2]

		if _, saved := r.restore[k]; !saved && !r.removing(k) {
			if prev, ok := s.Env.Get(k); ok {
				r.restore[k] = prev
			} else {
				r.remove = append(r.remove, k)
			}
		}

		s.Env.Set(k, v)
	}

	if i == 0 {
		return words
	}

	rest := words[i:]
	for j, w := range rest {
		rest[j] = s.Env.Substitute(w)
	}

	return rest
}

func (r *T) removing(k string) bool {
	for _, v := range r.remove {
		if v == k {
			return true
		}
	}

	return false
}

// alias replaces the first word with its expansion, if it has one.
// Expansions are not themselves expanded.
func alias(words []string, aliases map[string]string) []string {
	expansion, ok := aliases[words[0]]
	if !ok {
		return words
	}

	replaced := strings.Fields(expansion)
	if len(replaced) == 0 {
		return words
	}

	return append(replaced, words[1:]...)
}

func directory(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

// glob expands each word containing * to the paths it matches.
// A word that matches nothing is kept as it is.
func glob(words []string) []string {
	expanded := make([]string, 0, len(words))

	for _, w := range words {
		if !strings.Contains(w, "*") {
			expanded = append(expanded, w)

			continue
		}

		m, err := adapted.Glob(w)
		if err != nil || len(m) == 0 {
			expanded = append(expanded, w)

			continue
		}

		expanded = append(expanded, m...)
	}

	return expanded
}

func trace(s *session.T, program string, args []string) {
	words := append([]string{program}, args...)

	for i, w := range words {
		if q, err := syntax.Quote(w, syntax.LangBash); err == nil {
			words[i] = q
		}
	}

	fmt.Fprintln(s.Stderr, "+ "+strings.Join(words, " "))
}
