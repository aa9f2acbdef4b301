// Released under an MIT license. See LICENSE.

// Package cache keeps the set of executable names found on PATH.
package cache

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//nolint:gochecknoglobals
var pathListSeparator = string(os.PathListSeparator)

// T (cache) is a set of executable basenames.
type T struct {
	executables map[string]struct{}
}

// New creates an empty cache.
func New() *T {
	return &T{executables: map[string]struct{}{}}
}

// Contains returns true if name is a known executable.
func (c *T) Contains(name string) bool {
	_, ok := c.executables[name]

	return ok
}

// Empty returns true if no executables are known.
func (c *T) Empty() bool {
	return len(c.executables) == 0
}

// Insert adds name to the set of known executables.
func (c *T) Insert(name string) {
	c.executables[name] = struct{}{}
}

// Len returns the number of known executables.
func (c *T) Len() int {
	return len(c.executables)
}

// Names returns the known executables in sorted order.
func (c *T) Names() []string {
	l := make([]string, 0, len(c.executables))
	for name := range c.executables {
		l = append(l, name)
	}

	sort.Strings(l)

	return l
}

// Rehash discards everything known and rescans each directory in dirnames,
// a PATH-style list. Only the top level of each directory is examined.
// Directories that are missing or unreadable are skipped.
func (c *T) Rehash(dirnames string) {
	c.executables = map[string]struct{}{}

	for _, dirname := range strings.Split(dirnames, pathListSeparator) {
		if dirname == "" {
			continue
		}

		c.scan(filepath.Clean(dirname))
	}
}

func (c *T) scan(dirname string) {
	stat, err := os.Stat(dirname)
	if err != nil || !stat.IsDir() {
		return
	}

	entries, err := os.ReadDir(dirname)
	if err != nil {
		return
	}

	for _, entry := range entries {
		p := filepath.Join(dirname, entry.Name())

		// Follow symlinks; most of /usr/bin is links.
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		if executable(p, info) {
			c.Insert(entry.Name())
		}
	}
}
