// Released under an MIT license. See LICENSE.

// Package lexer splits command arguments into words, honoring quotes.
//
// Like the lexer it was derived from, it adapts the state function approach
// used by Go's text/template lexer and described in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide.
package lexer

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Errors returned by Split.
var (
	ErrTrailingEscape    = errors.New("trailing escape character")
	ErrUnterminatedQuote = errors.New("unterminated quote")
)

// T holds the state of the scanner.
type T struct {
	bytes string          // Buffer being scanned.
	index int             // Index of the current byte.
	quote bool            // A quoted section was seen in the current word.
	word  strings.Builder // Current word.
	words []string        // Completed words.

	err error
}

type action func(*T) action

const eof = -1

// Split breaks s into words. Whitespace separates words. Single quotes
// preserve everything they enclose. Double quotes preserve everything
// except a backslash before one of $ ` " \ or newline. Outside quotes a
// backslash escapes the next character. Quotes are removed.
func Split(s string) ([]string, error) {
	l := &T{bytes: s}

	for state := skipWhitespace; state != nil; {
		state = state(l)
	}

	if l.err != nil {
		return nil, l.err
	}

	return l.words, nil
}

func (l *T) emit() {
	if l.word.Len() > 0 || l.quote {
		l.words = append(l.words, l.word.String())
	}

	l.quote = false
	l.word.Reset()
}

func (l *T) fail(err error) action {
	l.err = err

	return nil
}

func (l *T) next() rune {
	if l.index >= len(l.bytes) {
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.bytes[l.index:])
	l.index += w

	return r
}

func (l *T) peek() rune {
	if l.index >= len(l.bytes) {
		return eof
	}

	r, _ := utf8.DecodeRuneInString(l.bytes[l.index:])

	return r
}

// State functions.

func doubleQuoted(l *T) action {
	for {
		switch r := l.next(); r {
		case eof:
			return l.fail(ErrUnterminatedQuote)
		case '"':
			return word
		case '\\':
			switch n := l.peek(); n {
			case eof:
				return l.fail(ErrUnterminatedQuote)
			case '$', '`', '"', '\\', '\n':
				l.word.WriteRune(l.next())
			default:
				l.word.WriteRune(r)
			}
		default:
			l.word.WriteRune(r)
		}
	}
}

func escaped(l *T) action {
	r := l.next()
	if r == eof {
		return l.fail(ErrTrailingEscape)
	}

	l.word.WriteRune(r)

	return word
}

func singleQuoted(l *T) action {
	i := strings.IndexByte(l.bytes[l.index:], '\'')
	if i < 0 {
		return l.fail(ErrUnterminatedQuote)
	}

	l.word.WriteString(l.bytes[l.index : l.index+i])
	l.index += i + 1

	return word
}

func skipWhitespace(l *T) action {
	for {
		r := l.peek()
		if r == eof {
			return nil
		}

		if !unicode.IsSpace(r) {
			return word
		}

		l.next()
	}
}

func word(l *T) action {
	for {
		r := l.next()

		switch {
		case r == eof:
			l.emit()
			return nil
		case unicode.IsSpace(r):
			l.emit()
			return skipWhitespace
		case r == '\'':
			l.quote = true
			return singleQuoted
		case r == '"':
			l.quote = true
			return doubleQuoted
		case r == '\\':
			return escaped
		default:
			l.word.WriteRune(r)
		}
	}
}
