// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package cache

import "os"

func executable(_ string, info os.FileInfo) bool {
	return info.Mode()&0o111 != 0
}
