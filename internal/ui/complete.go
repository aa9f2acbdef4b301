// Released under an MIT license. See LICENSE.

package ui

import (
	"os"
	"sort"
	"strings"

	"github.com/carapace-shell/carapace/internal/engine/command"
	"github.com/carapace-shell/carapace/internal/session"
	"github.com/carapace-shell/carapace/internal/system/env"
	"github.com/michaelmacinnis/adapted"
)

func complete(s *session.T, line string, pos int) (string, []string, string) {
	if pos > len(line) {
		pos = len(line)
	}

	head := line[:pos]
	tail := line[pos:]

	start := strings.LastIndexAny(head, " \t") + 1
	word := head[start:]

	var completions []string

	if v := env.PartialVarAt(len(head), head); v != "" && strings.HasSuffix(head, v) {
		head = head[:len(head)-len(v)]
		completions = variables(s, v)
	} else {
		head = head[:start]
		if start == 0 || strings.TrimSpace(head) == "" {
			completions = programs(s, word)
		}

		completions = append(completions, files(s, word)...)
	}

	if len(completions) == 0 {
		if word == "" {
			return head, nil, tail
		}

		return head, []string{word}, tail
	}

	return head, unique(completions), tail
}

func files(s *session.T, word string) []string {
	pattern := s.ExpandTilde(word)

	matches, err := adapted.Glob(pattern + "*")
	if err != nil {
		return nil
	}

	completions := make([]string, 0, len(matches))

	for _, m := range matches {
		if !strings.HasPrefix(m, pattern) {
			continue
		}

		c := word + m[len(pattern):]

		if info, err := os.Stat(m); err == nil && info.IsDir() {
			c += "/"
		}

		completions = append(completions, c)
	}

	return completions
}

func programs(s *session.T, word string) []string {
	if strings.ContainsRune(word, os.PathSeparator) {
		return nil
	}

	names := command.Builtins()

	for name := range s.Config.Aliases {
		names = append(names, name)
	}

	names = append(names, s.Commands.Names()...)

	completions := []string{}

	for _, name := range names {
		if strings.HasPrefix(name, word) {
			completions = append(completions, name)
		}
	}

	return completions
}

func unique(l []string) []string {
	seen := make(map[string]bool, len(l))
	completions := make([]string, 0, len(l))

	for _, c := range l {
		if !seen[c] {
			seen[c] = true
			completions = append(completions, c)
		}
	}

	sort.Strings(completions)

	return completions
}

func variables(s *session.T, partial string) []string {
	open, closing := "$", ""
	name := strings.TrimPrefix(partial, "$")

	if strings.HasPrefix(name, "{") {
		open, closing = "${", "}"
		name = strings.TrimSuffix(strings.TrimPrefix(name, "{"), "}")
	}

	completions := []string{}

	for _, k := range s.Env.Keys() {
		if strings.HasPrefix(k, name) {
			completions = append(completions, open+k+closing)
		}
	}

	return completions
}
