// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package cache

import (
	"os"

	"golang.org/x/sys/unix"
)

func executable(path string, info os.FileInfo) bool {
	if info.Mode()&0o111 == 0 {
		return false
	}

	return unix.Access(path, unix.X_OK) == nil
}
