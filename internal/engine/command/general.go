// Released under an MIT license. See LICENSE.

package command

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/carapace-shell/carapace/internal/session"
	"github.com/michaelmacinnis/adapted"
)

// General runs an external program and waits for it to finish.
type General struct {
	Program string
	Args    []string
}

func (*General) command() {}

func general(c *General, s *session.T) (bool, error) {
	path, executable, err := adapted.LookPath(local(c.Program), s.Env.Value("PATH"))
	if err == nil && !executable {
		err = errors.New(c.Program + ": is a directory")
	}

	if err != nil {
		return failed(s, err)
	}

	cmd := exec.Command(path, c.Args...)
	cmd.Args[0] = c.Program
	cmd.Env = s.Env.Environ()
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	err = cmd.Run()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return failed(s, err)
	}

	code := status(cmd.ProcessState)
	s.SetStatus(code)

	if code != 0 && s.Options.Errexit {
		return false, &Termination{Code: code}
	}

	return code == 0, nil
}

// failed handles a program that could not be started.
func failed(s *session.T, err error) (bool, error) {
	s.Errorf("carapace: %v", err)
	s.SetStatus(1)

	if s.Options.Errexit {
		return false, &Termination{Code: 1}
	}

	return false, nil
}

// local makes a name containing a slash relative to the working directory
// so that it is not searched for in $PATH.
func local(name string) string {
	if !strings.Contains(name, "/") {
		return name
	}

	for _, prefix := range []string{"/", "./", "../"} {
		if strings.HasPrefix(name, prefix) {
			return name
		}
	}

	return "./" + name
}
