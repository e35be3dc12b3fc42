package curl

import (
	"strings"
)

type lexState struct {
	token TokenState
	buf   strings.Builder
	out   []string
}

func (st *lexState) add(r rune) {
	st.buf.WriteRune(r)
}

func (st *lexState) flush() {
	if st.buf.Len() == 0 {
		return
	}
	st.out = append(st.out, st.buf.String())
	st.buf.Reset()
}

// Shell-style tokenization with single quotes (literal), double quotes
// (escape-aware), backticks, ANSI-C $'...' quoting, and backslash escaping.
// Backslash-newline acts as a line continuation so pasted multi-line commands
// tokenize like one-liners. An unterminated quote or trailing escape does not
// fail the scan; whatever was buffered becomes the final token.
func splitTokens(input string) []string {
	st := &lexState{}
	rs := []rune(input)
	opts := tokenOptions{decodeANSI: true, allowLineContinuation: true}

	for i := 0; i < len(rs); i++ {
		r := rs[i]
		step := st.token.advance(rs, &i, opts)
		if step.handled {
			if step.emit {
				st.add(step.r)
			}
			continue
		}

		if isWhitespace(r) {
			if st.token.InQuote() {
				st.add(r)
			} else {
				st.flush()
			}
			continue
		}

		st.add(r)
	}

	st.flush()
	return st.out
}

// ansiEsc decodes a $'...' escape at rs[*i]. Unknown or truncated escapes
// fall back to the raw rune.
func ansiEsc(rs []rune, i *int) rune {
	if *i >= len(rs) {
		return '\\'
	}
	r := rs[*i]
	switch r {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case '\\':
		return '\\'
	case '\'':
		return '\''
	case '"':
		return '"'
	case 'x':
		return readHex(rs, i, 2)
	case 'u':
		return readHex(rs, i, 4)
	default:
		return r
	}
}

func readHex(rs []rune, i *int, n int) rune {
	if *i+n >= len(rs) {
		return rs[*i]
	}
	val := 0
	for j := 0; j < n; j++ {
		d, ok := hexVal(rs[*i+1+j])
		if !ok {
			return rs[*i]
		}
		val = val*16 + d
	}
	*i += n
	return rune(val)
}

func hexVal(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
