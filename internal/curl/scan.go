package curl

import (
	"strings"
)

// SplitCommands breaks a pasted blob into individual curl commands. A command
// starts on a line whose first real token is curl (shell prompts and wrappers
// like sudo/env/time allowed before it) and extends across continuation lines
// and open quotes; a blank line outside quotes ends it.
func SplitCommands(src string) []string {
	lines := strings.Split(src, "\n")
	out := make([]string, 0, 4)
	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])
		if line == "" || !IsStartLine(line) {
			i++
			continue
		}
		end, cmd := collectCommand(lines, i)
		if cmd != "" {
			out = append(out, cmd)
		}
		if end < i {
			i++
		} else {
			i = end + 1
		}
	}
	return out
}

func collectCommand(lines []string, start int) (end int, cmd string) {
	st := &scanState{}
	var b strings.Builder
	end = start
	for i := start; i < len(lines); i++ {
		line := lines[i]
		openBefore := st.open()
		if strings.TrimSpace(line) == "" && i > start && !openBefore {
			break
		}

		seg := line
		if !openBefore {
			seg = strings.Trim(seg, " \t")
		}

		cont := lineContinues(seg)
		if cont {
			seg = seg[:len(seg)-1]
			if !openBefore {
				seg = strings.TrimRight(seg, " \t")
			}
		}

		if b.Len() > 0 {
			if openBefore {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}

		b.WriteString(seg)
		st.consume(seg)
		end = i
		if cont {
			st.resetEsc()
			continue
		}
		if st.open() {
			continue
		}
		break
	}
	return end, strings.TrimSpace(b.String())
}

// IsStartLine reports whether a line begins a curl command once prompt
// prefixes, wrapper commands, env assignments and wrapper flags are skipped.
func IsStartLine(line string) bool {
	line = stripPromptPrefix(strings.TrimSpace(line))
	if line == "" {
		return false
	}
	prevFlag := false
	for _, tok := range strings.Fields(line) {
		lower := strings.ToLower(tok)
		if lower == cmdCurl {
			return true
		}
		switch lower {
		case cmdSudo, cmdEnv, cmdCommand, cmdTime, cmdNoGlob:
			prevFlag = false
			continue
		}
		if strings.HasPrefix(tok, "-") {
			prevFlag = true
			continue
		}
		if strings.Contains(tok, "=") {
			prevFlag = false
			continue
		}
		if prevFlag {
			// bare word after a wrapper flag is its value (sudo -u root)
			prevFlag = false
			continue
		}
		return false
	}
	return false
}

type scanState struct {
	token TokenState
}

func (s *scanState) consume(v string) {
	rs := []rune(v)
	for i := 0; i < len(rs); i++ {
		s.token.advance(rs, &i, tokenOptions{})
	}
}

func (s *scanState) open() bool {
	return s.token.Open()
}

func (s *scanState) resetEsc() {
	s.token.ResetEscape()
}

func lineContinues(v string) bool {
	if v == "" {
		return false
	}
	count := 0
	for i := len(v) - 1; i >= 0 && v[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}
