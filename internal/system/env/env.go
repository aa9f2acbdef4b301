// Released under an MIT license. See LICENSE.

// Package env provides the shell's environment variable store.
//
// The store is owned by the session. It is never written back to the
// process environment; child processes receive Environ() instead.
package env

import (
	"os"
	"regexp"
	"sort"
	"strings"
)

//nolint:gochecknoglobals
var (
	// A bare reference is $ followed by one special parameter character
	// or by the longest run of letters, digits and underscores.
	bare = regexp.MustCompile(`\$([?\-#!@*$]|[\p{L}\p{N}_]+)`)

	// Any name without braces can be bracketed.
	bracketed = regexp.MustCompile(`\$\{([^{}]+)\}`)

	// Used when completing: an unterminated bracketed reference or a bare one.
	partial = regexp.MustCompile(`\$\{[^{}\s]*\}?|\$[\p{L}\p{N}_?\-#!@*]*`)
)

// T (env) maps variable names to values. Names are case-sensitive.
type T struct {
	vars map[string]string
}

// New creates an empty env.
func New() *T {
	return &T{vars: map[string]string{}}
}

// FromOS creates an env seeded with the current process environment.
func FromOS() *T {
	e := New()

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		e.vars[k] = v
	}

	return e
}

// Contains returns true if k is defined in e.
func (e *T) Contains(k string) bool {
	_, ok := e.vars[k]

	return ok
}

// Copy returns an independent copy of e.
func (e *T) Copy() *T {
	c := New()
	for k, v := range e.vars {
		c.vars[k] = v
	}

	return c
}

// Environ returns the contents of e as sorted "key=value" strings
// suitable for a child process.
func (e *T) Environ() []string {
	keys := e.Keys()

	l := make([]string, 0, len(keys))
	for _, k := range keys {
		l = append(l, k+"="+e.vars[k])
	}

	return l
}

// Get returns the value of k and whether it was defined.
func (e *T) Get(k string) (string, bool) {
	v, ok := e.vars[k]

	return v, ok
}

// Keys returns the names defined in e in sorted order.
func (e *T) Keys() []string {
	keys := make([]string, 0, len(e.vars))
	for k := range e.vars {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Len returns the number of variables in e.
func (e *T) Len() int {
	return len(e.vars)
}

// Remove deletes k from e. It returns false if k was not defined.
func (e *T) Remove(k string) bool {
	if _, ok := e.vars[k]; !ok {
		return false
	}

	delete(e.vars, k)

	return true
}

// Set associates the value v with the name k.
func (e *T) Set(k, v string) {
	e.vars[k] = v
}

// Value returns the value of k or "" if k is not defined.
func (e *T) Value(k string) string {
	return e.vars[k]
}

// Substitute replaces variable references in text with their values.
//
// Bracketed references (${NAME}) are always replaced when NAME is defined,
// whatever follows them. Bare references ($NAME) are replaced only when the
// whole scanned name is defined: with USER defined and USERNAME undefined,
// "$USERNAME" is left alone. References to undefined names are kept verbatim.
func (e *T) Substitute(text string) string {
	if !strings.Contains(text, "$") {
		return text
	}

	text = bracketed.ReplaceAllStringFunc(text, func(m string) string {
		if v, ok := e.vars[m[2:len(m)-1]]; ok {
			return v
		}

		return m
	})

	return bare.ReplaceAllStringFunc(text, func(m string) string {
		if v, ok := e.vars[m[1:]]; ok {
			return v
		}

		return m
	})
}

// PartialVarAt returns the (possibly incomplete) variable reference that
// spans the byte offset pos in text, or "" if there is none.
func PartialVarAt(pos int, text string) string {
	if pos < 0 || pos > len(text) {
		return ""
	}

	for _, loc := range partial.FindAllStringIndex(text, -1) {
		if pos >= loc[0] && pos <= loc[1] {
			return text[loc[0]:loc[1]]
		}
	}

	return ""
}
