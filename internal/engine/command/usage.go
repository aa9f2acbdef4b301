// Released under an MIT license. See LICENSE.

package command

// Usage strings double as docopt argument grammars.
//
//nolint:gochecknoglobals
var usages = map[string]string{
	"cd": `Usage:
  cd [DIR]

Change the working directory to DIR, ~ when omitted, or $OLDPWD for -.
`,
	"dirs": `Usage:
  dirs [-v]

Options:
  -v  List one directory per line.
`,
	"exit": `Usage:
  exit [CODE]

Exit the shell with CODE, or with the last command's status ($?).
`,
	"export": `Usage:
  export [VAR...]

Each VAR is NAME or NAME=VALUE. With no VAR, list the environment.
`,
	"hash": `Usage:
  hash [-r] [COMMAND]

Options:
  -r, --rehash  Detect commands from $PATH from scratch.

With COMMAND, check if it is known. $? is 0 if so and 1 otherwise.
`,
	"history": `Usage:
  history [-c | -w]

Options:
  -c  Clear the history.
  -w  Write the history to disk.
`,
	"popd": `Usage:
  popd

Pop the top of the directory stack and change to it.
`,
	"pushd": `Usage:
  pushd [DIR]

Push the working directory and change to DIR. Without DIR, list the stack.
`,
	"quit": `Usage:
  quit
`,
	"rehash": `Usage:
  rehash

Detect commands from $PATH from scratch.
`,
	"set": `Usage:
  set [-e] [-v] [-x] [-o NAME] [OPTION...]

Options:
  -e       Exit when a command fails (errexit).
  -o NAME  Enable NAME: errexit, ignoreeof, verbose, xtrace, emacs or vi.
  -v       Echo input lines as they are read (verbose).
  -x       Print commands and their arguments when executed (xtrace).

Each OPTION is +NAME and disables NAME, like +x for xtrace.
Options currently set can be displayed via $-.
`,
	"unset": `Usage:
  unset VAR...

Remove each VAR from the environment.
`,
}
