package curl

type tokenOptions struct {
	decodeANSI            bool
	allowLineContinuation bool
}

type tokenStep struct {
	emit    bool
	r       rune
	handled bool
}

type TokenState struct {
	inSingle bool
	inDouble bool
	inTick   bool
	inANSI   bool
	escape   bool
	skipLF   bool
}

func (s *TokenState) Open() bool {
	return s.inSingle || s.inDouble || s.inTick || s.inANSI
}

func (s *TokenState) InQuote() bool {
	return s.inSingle || s.inDouble || s.inTick
}

func (s *TokenState) Escaping() bool {
	return s.escape
}

func (s *TokenState) ResetEscape() {
	s.escape = false
	s.skipLF = false
}

// advance consumes rs[*i] and reports how the lexer should treat it. Malformed
// escapes never abort the scan: the offending rune is emitted literally so the
// importer can still produce a partial parse.
func (s *TokenState) advance(rs []rune, i *int, opts tokenOptions) tokenStep {
	r := rs[*i]

	if s.skipLF {
		s.skipLF = false
		if r == '\n' {
			return tokenStep{handled: true}
		}
	}

	if s.escape {
		s.escape = false
		if s.inANSI {
			if opts.decodeANSI {
				return tokenStep{emit: true, r: ansiEsc(rs, i), handled: true}
			}
			return tokenStep{emit: true, r: r, handled: true}
		}
		if opts.allowLineContinuation && isLineBreak(r) {
			if r == '\r' {
				s.skipLF = true
			}
			return tokenStep{handled: true}
		}
		return tokenStep{emit: true, r: r, handled: true}
	}

	if s.inANSI {
		switch r {
		case '\\':
			s.escape = true
			return tokenStep{handled: true}
		case '\'':
			s.inANSI = false
			return tokenStep{handled: true}
		default:
			return tokenStep{emit: true, r: r, handled: true}
		}
	}

	if r == '\\' {
		if s.inSingle {
			return tokenStep{emit: true, r: r, handled: true}
		}
		s.escape = true
		return tokenStep{handled: true}
	}

	if r == '\'' {
		if !s.inDouble && !s.inTick {
			s.inSingle = !s.inSingle
			return tokenStep{handled: true}
		}
		return tokenStep{emit: true, r: r, handled: true}
	}

	if r == '"' {
		if !s.inSingle && !s.inTick {
			s.inDouble = !s.inDouble
			return tokenStep{handled: true}
		}
		return tokenStep{emit: true, r: r, handled: true}
	}

	if r == '`' {
		if !s.inSingle && !s.inDouble {
			s.inTick = !s.inTick
			return tokenStep{handled: true}
		}
		return tokenStep{emit: true, r: r, handled: true}
	}

	if !s.InQuote() && r == '$' && *i+1 < len(rs) && rs[*i+1] == '\'' {
		s.inANSI = true
		*i++
		return tokenStep{handled: true}
	}

	return tokenStep{}
}
