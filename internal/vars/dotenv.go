package vars

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/unkn0wn-root/restkit/internal/errdef"
)

type quoteMode int

const (
	quoteModeNone quoteMode = iota
	quoteModeSingle
	quoteModeDouble
)

// IsDotEnvPath reports whether path should be read as a dotenv file rather
// than a YAML environment file.
func IsDotEnvPath(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return false
	}
	if base == ".env" {
		return true
	}
	if strings.HasPrefix(base, ".env.") {
		return true
	}
	return strings.HasSuffix(base, ".env")
}

// LoadDotEnv reads a KEY=value file into a variable map.
func LoadDotEnv(path string) (values map[string]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "open env file %s", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errdef.Wrap(errdef.CodeFilesystem, closeErr, "close env file %s", path)
		}
	}()
	return ParseDotEnv(f, path)
}

func ParseDotEnv(r io.Reader, path string) (map[string]string, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	values := make(map[string]string)
	lineNumber := 0
	for scanner.Scan() {
		// lines resolve in order, so interpolation only sees keys defined above
		lineNumber++
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}

		key, rawValue, err := parseDotEnvAssignment(trimmed, lineNumber)
		if err != nil {
			return nil, err
		}

		value, mode, err := parseDotEnvValue(rawValue, lineNumber)
		if err != nil {
			return nil, err
		}

		finalValue := value
		if mode != quoteModeSingle {
			// single quotes stay literal so '${TOKEN}' never expands
			expanded, err := expandDotEnvValue(value, values, lineNumber)
			if err != nil {
				return nil, err
			}
			finalValue = expanded
		}
		values[key] = finalValue
	}
	if err := scanner.Err(); err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "read env file %s", path)
	}

	return values, nil
}

func parseDotEnvAssignment(line string, lineNumber int) (string, string, error) {
	trimmed := strings.TrimSpace(line)

	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "export ") || strings.HasPrefix(lower, "export\t") {
		trimmed = strings.TrimSpace(trimmed[len("export"):])
	}

	idx := strings.IndexRune(trimmed, '=')
	if idx < 0 {
		return "", "", errdef.New(errdef.CodeParse, "dotenv line %d: expected KEY=value", lineNumber)
	}

	key := strings.TrimSpace(trimmed[:idx])
	if key == "" {
		return "", "", errdef.New(errdef.CodeParse, "dotenv line %d: missing key", lineNumber)
	}

	return key, trimmed[idx+1:], nil
}

func parseDotEnvValue(raw string, lineNumber int) (string, quoteMode, error) {
	leadingTrimmed := strings.TrimLeft(raw, " \t")
	if leadingTrimmed == "" {
		return "", quoteModeNone, nil
	}

	switch leadingTrimmed[0] {
	case '"':
		value, err := parseQuotedValue(leadingTrimmed, quoteModeDouble, lineNumber)
		return value, quoteModeDouble, err
	case '\'':
		value, err := parseQuotedValue(leadingTrimmed, quoteModeSingle, lineNumber)
		return value, quoteModeSingle, err
	default:
		return stripInlineComment(leadingTrimmed), quoteModeNone, nil
	}
}

func parseQuotedValue(input string, mode quoteMode, lineNumber int) (string, error) {
	quote := byte('"')
	if mode == quoteModeSingle {
		quote = '\''
	}

	var b strings.Builder
	for i := 1; i < len(input); i++ {
		ch := input[i]
		if ch == '\\' {
			if i+1 >= len(input) {
				return "", errdef.New(errdef.CodeParse, "dotenv line %d: unfinished escape", lineNumber)
			}
			i++
			next := input[i]
			if mode == quoteModeDouble {
				if next == '$' {
					// keep the escape so the interpolation pass sees \$
					b.WriteString(`\$`)
				} else {
					b.WriteByte(resolveDoubleQuoteEscape(next))
				}
			} else {
				b.WriteByte(next)
			}
			continue
		}
		if ch == quote {
			remainder := strings.TrimSpace(input[i+1:])
			if remainder != "" && remainder[0] != '#' && remainder[0] != ';' {
				return "", errdef.New(
					errdef.CodeParse,
					"dotenv line %d: unexpected content after quoted value",
					lineNumber,
				)
			}
			return b.String(), nil
		}
		b.WriteByte(ch)
	}
	return "", errdef.New(errdef.CodeParse, "dotenv line %d: unterminated quoted value", lineNumber)
}

func stripInlineComment(value string) string {
	inWhitespace := false
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case ' ', '\t':
			inWhitespace = true
		case '#', ';':
			if i == 0 || inWhitespace {
				return strings.TrimSpace(value[:i])
			}
			inWhitespace = false
		default:
			inWhitespace = false
		}
	}
	return strings.TrimSpace(value)
}

// expandDotEnvValue resolves $NAME and ${NAME} against earlier keys and then
// the OS environment, in a single pass.
func expandDotEnvValue(value string, resolved map[string]string, lineNumber int) (string, error) {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if ch == '\\' && i+1 < len(value) && value[i+1] == '$' {
			b.WriteByte('$')
			i++
			continue
		}
		if ch != '$' || i+1 >= len(value) {
			b.WriteByte(ch)
			continue
		}
		if value[i+1] == '{' {
			end := strings.IndexByte(value[i+2:], '}')
			if end < 0 {
				return "", errdef.New(
					errdef.CodeParse,
					"dotenv line %d: missing closing brace for ${",
					lineNumber,
				)
			}
			end += i + 2
			name := strings.TrimSpace(value[i+2 : end])
			if name == "" {
				return "", errdef.New(errdef.CodeParse, "dotenv line %d: empty variable name", lineNumber)
			}
			replacement, err := resolveDotEnvRef(name, resolved, lineNumber)
			if err != nil {
				return "", err
			}
			b.WriteString(replacement)
			i = end
			continue
		}
		if isDotEnvNameChar(value[i+1]) {
			j := i + 1
			for j < len(value) && isDotEnvNameChar(value[j]) {
				j++
			}
			replacement, err := resolveDotEnvRef(value[i+1:j], resolved, lineNumber)
			if err != nil {
				return "", err
			}
			b.WriteString(replacement)
			i = j - 1
			continue
		}
		b.WriteByte(ch)
	}
	return b.String(), nil
}

func resolveDotEnvRef(name string, resolved map[string]string, lineNumber int) (string, error) {
	if value, ok := resolved[name]; ok {
		return value, nil
	}
	// OS env fallback lets secrets stay outside the file
	if envValue, ok := os.LookupEnv(name); ok {
		return envValue, nil
	}
	if envValue, ok := os.LookupEnv(strings.ToUpper(name)); ok {
		return envValue, nil
	}
	return "", errdef.New(errdef.CodeParse, "dotenv line %d: variable %q is not defined", lineNumber, name)
}

func isDotEnvNameChar(ch byte) bool {
	if ch >= 'a' && ch <= 'z' {
		return true
	}
	if ch >= 'A' && ch <= 'Z' {
		return true
	}
	if ch >= '0' && ch <= '9' {
		return true
	}
	return ch == '_'
}

func resolveDoubleQuoteEscape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case '0':
		return 0
	case '"':
		return '"'
	case '\\':
		return '\\'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	default:
		return ch
	}
}
