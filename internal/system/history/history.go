// Released under an MIT license. See LICENSE.

// Package history records command lines and persists them to disk.
package history

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// T (history) is a bounded list of command lines, oldest first.
type T struct {
	limit int
	lines []string
}

// New creates a history holding at most limit lines.
// A limit less than one means no limit.
func New(limit int) *T {
	return &T{limit: limit}
}

// Add records line. Lines that are not Recordable, and repeats of the
// previous line, are ignored. It returns true if the line was recorded.
func (h *T) Add(line string) bool {
	line = strings.TrimRight(line, "\r\n")
	if !Recordable(line) {
		return false
	}

	if n := len(h.lines); n > 0 && h.lines[n-1] == line {
		return false
	}

	h.lines = append(h.lines, line)

	if h.limit > 0 && len(h.lines) > h.limit {
		h.lines = append([]string(nil), h.lines[len(h.lines)-h.limit:]...)
	}

	return true
}

// Recordable reports whether line belongs in a history. Blank lines and
// lines starting with a space do not.
func Recordable(line string) bool {
	return strings.TrimSpace(line) != "" && !strings.HasPrefix(line, " ")
}

// Clear forgets all recorded lines.
func (h *T) Clear() {
	h.lines = nil
}

// Len returns the number of recorded lines.
func (h *T) Len() int {
	return len(h.lines)
}

// Lines returns a copy of the recorded lines, oldest first.
func (h *T) Lines() []string {
	return append([]string(nil), h.lines...)
}

// Read adds each line read from r. It returns the number of lines recorded.
func (h *T) Read(r io.Reader) (int, error) {
	n := 0

	s := bufio.NewScanner(r)
	for s.Scan() {
		if h.Add(s.Text()) {
			n++
		}
	}

	return n, s.Err()
}

// Write writes each recorded line to w. It returns the number of lines written.
func (h *T) Write(w io.Writer) (int, error) {
	b := bufio.NewWriter(w)

	for i, line := range h.lines {
		if _, err := b.WriteString(line + "\n"); err != nil {
			return i, err
		}
	}

	return len(h.lines), b.Flush()
}

// Load passes the history file to read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// Save truncates the history file and passes it to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

func create(name string) (*os.File, error) {
	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
}
