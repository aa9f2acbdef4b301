// Released under an MIT license. See LICENSE.

package session

// Stack is the directory stack manipulated by pushd and popd.
// The top is the most recently pushed directory.
type Stack struct {
	dirs []string
}

// Entries returns the stack's contents, top first.
func (d *Stack) Entries() []string {
	l := make([]string, 0, len(d.dirs))
	for i := len(d.dirs) - 1; i >= 0; i-- {
		l = append(l, d.dirs[i])
	}

	return l
}

// Len returns the number of directories on the stack.
func (d *Stack) Len() int {
	return len(d.dirs)
}

// Pop removes and returns the top of the stack.
func (d *Stack) Pop() (string, bool) {
	n := len(d.dirs)
	if n == 0 {
		return "", false
	}

	dir := d.dirs[n-1]
	d.dirs = d.dirs[:n-1]

	return dir, true
}

// Push puts dir on top of the stack unless it is already the top.
// It returns false if the stack was unchanged.
func (d *Stack) Push(dir string) bool {
	if top, ok := d.Top(); ok && top == dir {
		return false
	}

	d.dirs = append(d.dirs, dir)

	return true
}

// Top returns the directory on top of the stack.
func (d *Stack) Top() (string, bool) {
	if len(d.dirs) == 0 {
		return "", false
	}

	return d.dirs[len(d.dirs)-1], true
}
