// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package command

import "os"

func status(ps *os.ProcessState) int {
	if code := ps.ExitCode(); code >= 0 {
		return code
	}

	return 1
}
