// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package history

import (
	"os"
	"path/filepath"
)

// Path returns the location of the history file.
func Path() string {
	if p := os.Getenv("CARAPACE_HISTORY"); p != "" {
		return p
	}

	return filepath.Join(os.Getenv("HOME"), ".carapace", "history")
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	p := Path()

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return nil, err
	}

	return op(p)
}
