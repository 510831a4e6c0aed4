// Package comments removes source comments from a scaffolded project.
package comments

import (
	"bytes"
)

type state int

const (
	stateCode state = iota
	stateString
	stateLineComment
	stateBlockComment
)

// Strip removes "//" line comments and "/* */" block comments from src.
//
// Text inside '...', "..." and `...` literals is left alone. A line that held
// nothing but comments and whitespace is dropped entirely, and trailing
// whitespace left in front of a removed comment is trimmed. All other bytes
// are kept as they are, including line endings.
func Strip(src []byte) []byte {
	var (
		out        bytes.Buffer
		line       []byte
		st         = stateCode
		quote      byte
		hadComment bool
		hasCode    bool
	)
	out.Grow(len(src))

	flush := func(eol []byte) {
		if hadComment {
			line = bytes.TrimRight(line, " \t")
			if !hasCode && len(bytes.TrimSpace(line)) == 0 {
				line = line[:0]
				return
			}
		}
		out.Write(line)
		out.Write(eol)
		line = line[:0]
	}

	for i := 0; i < len(src); i++ {
		c := src[i]

		if c == '\n' {
			eol := []byte{'\n'}
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
				eol = []byte{'\r', '\n'}
			} else if st == stateLineComment || st == stateBlockComment {
				if i > 0 && src[i-1] == '\r' {
					eol = []byte{'\r', '\n'}
				}
			}
			if st == stateString && quote != '`' {
				st = stateCode
			}
			if st == stateLineComment {
				st = stateCode
			}
			flush(eol)
			hadComment = st == stateBlockComment
			hasCode = false
			continue
		}

		switch st {
		case stateCode:
			switch {
			case c == '/' && i+1 < len(src) && src[i+1] == '/':
				st = stateLineComment
				hadComment = true
				i++
			case c == '/' && i+1 < len(src) && src[i+1] == '*':
				st = stateBlockComment
				hadComment = true
				i++
			default:
				if c == '\'' || c == '"' || c == '`' {
					st = stateString
					quote = c
				}
				line = append(line, c)
				if c != ' ' && c != '\t' && c != '\r' {
					hasCode = true
				}
			}

		case stateString:
			line = append(line, c)
			hasCode = true
			switch c {
			case '\\':
				if i+1 < len(src) && src[i+1] != '\n' {
					i++
					line = append(line, src[i])
				}
			case quote:
				st = stateCode
			}

		case stateLineComment:
			// skipped until end of line

		case stateBlockComment:
			if c == '*' && i+1 < len(src) && src[i+1] == '/' {
				i++
				st = stateCode
				// keep words on both sides of an inline comment apart
				if n := len(line); n > 0 && isWord(line[n-1]) && i+1 < len(src) && isWord(src[i+1]) {
					line = append(line, ' ')
				}
			}
		}
	}

	if len(line) > 0 || hadComment {
		flush(nil)
	}

	return out.Bytes()
}

func isWord(c byte) bool {
	return c == '_' || c == '$' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
