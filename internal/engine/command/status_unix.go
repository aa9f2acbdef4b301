// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package command

import (
	"os"
	"syscall"
)

// status converts a finished process's state to a shell exit status.
// A process killed by a signal has the status 128 plus the signal number.
func status(ps *os.ProcessState) int {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}

	return ps.ExitCode()
}
