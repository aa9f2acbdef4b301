// Released under an MIT license. See LICENSE.

// Package session holds the state shared by everything that runs in the shell.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/carapace-shell/carapace/internal/system/cache"
	"github.com/carapace-shell/carapace/internal/system/config"
	"github.com/carapace-shell/carapace/internal/system/env"
	"github.com/carapace-shell/carapace/internal/system/history"
)

// Editor is the line-editing front end, as seen by builtins.
type Editor interface {
	ClearHistory()
	SetEditMode(mode config.EditMode) error
}

// Options are the toggles manipulated by the set builtin.
type Options struct {
	Errexit   bool
	IgnoreEOF bool
	Verbose   int
	Xtrace    bool
}

// T (session) is the state of a running shell.
type T struct {
	Commands *cache.T
	Config   *config.T
	Dirs     Stack
	EditMode config.EditMode
	Editor   Editor
	Env      *env.T
	History  *history.T
	Options  Options

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ErrUnknownOption is returned when an option name is not recognized.
var ErrUnknownOption = errors.New("unknown option")

// New creates a session using cfg. The environment is seeded from the
// process environment and then from cfg.Env, with each configured value
// substituted before it is inserted. The edit mode starts as emacs, the
// only one the line editor supports.
func New(cfg *config.T, e *env.T) *T {
	if cfg == nil {
		cfg = config.Default()
	}

	if e == nil {
		e = env.FromOS()
	}

	s := &T{
		Commands: cache.New(),
		Config:   cfg,
		EditMode: config.Emacs,
		Env:      e,
		History:  history.New(cfg.MaxHistorySize),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}

	keys := make([]string, 0, len(cfg.Env))
	for k := range cfg.Env {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		s.Env.Set(k, s.Env.Substitute(cfg.Env[k]))
	}

	s.SetStatus(0)
	s.mirror()

	s.Commands.Rehash(s.Env.Value("PATH"))

	return s
}

// Errorf writes a diagnostic to the session's error stream.
func (s *T) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(s.Stderr, format+"\n", args...)
}

// Home returns the user's home directory.
func (s *T) Home() string {
	if h, ok := s.Env.Get("HOME"); ok && h != "" {
		return h
	}

	h, err := os.UserHomeDir()
	if err != nil {
		return string(os.PathSeparator)
	}

	return h
}

// ExpandTilde replaces a leading "~" or "~/" in path with the home directory.
func (s *T) ExpandTilde(path string) string {
	if path == "~" {
		return s.Home()
	}

	if strings.HasPrefix(path, "~/") {
		return strings.TrimRight(s.Home(), "/") + path[1:]
	}

	return path
}

// Chdir changes the working directory to path ("" or "~" mean home).
// If the canonical target is the current directory nothing happens and
// changed is false. Otherwise OLDPWD is set to old and PWD to the target.
func (s *T) Chdir(path string) (old string, changed bool, err error) {
	if path == "" {
		path = "~"
	}

	target, err := filepath.Abs(s.ExpandTilde(path))
	if err != nil {
		return "", false, err
	}

	target, err = filepath.EvalSymlinks(target)
	if err != nil {
		return "", false, err
	}

	old, err = os.Getwd()
	if err != nil {
		return "", false, err
	}

	if canonical, err := filepath.EvalSymlinks(old); err == nil {
		old = canonical
	}

	if old == target {
		return old, false, nil
	}

	if err = os.Chdir(target); err != nil {
		return "", false, err
	}

	s.Env.Set("OLDPWD", old)
	s.Env.Set("PWD", target)

	return old, true, nil
}

// PrintDirs writes the directory stack to the session's output.
func (s *T) PrintDirs(verbose bool) {
	l := s.Dirs.Entries()
	if len(l) == 0 {
		return
	}

	if verbose {
		for _, dir := range l {
			fmt.Fprintln(s.Stdout, dir)
		}

		return
	}

	l[0] = "[" + l[0] + "]"

	fmt.Fprintln(s.Stdout, strings.Join(l, " "))
}

// SetStatus records code as the exit status of the last command ($?).
func (s *T) SetStatus(code int) {
	s.Env.Set("?", strconv.Itoa(code))
}

// Status returns the exit status of the last command or 0 if unknown.
func (s *T) Status() int {
	code, err := strconv.Atoi(s.Env.Value("?"))
	if err != nil {
		return 0
	}

	return code
}
