// Package curl converts pasted curl commands into structured request
// descriptions. The only hard failure is a command with no URL; every other
// irregularity degrades into a partial parse plus warnings so the host can
// show a correctable, pre-filled form.
package curl

import (
	"strings"

	"github.com/unkn0wn-root/restkit/internal/reqmodel"
)

func ParseCommand(command string) (*reqmodel.Request, error) {
	reqs, err := ParseCommands(command)
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, missingURLError()
	}
	return reqs[0], nil
}

// ParseCommands parses a single command, honouring curl's --next separator by
// returning one request per segment.
func ParseCommands(command string) ([]*reqmodel.Request, error) {
	tok := splitTokens(command)
	start := findCurlIndex(tok)
	return normCmd(parseCmd(tok, start))
}

// ParseAll splits a pasted blob into individual curl commands and imports
// each; fragments that fail to parse are skipped.
func ParseAll(src string) []*reqmodel.Request {
	var out []*reqmodel.Request
	for _, cmd := range SplitCommands(src) {
		reqs, err := ParseCommands(cmd)
		if err != nil {
			continue
		}
		out = append(out, reqs...)
	}
	return out
}

// findCurlIndex returns the index after the curl token, skipping shell prompt
// prefixes and common wrapper commands. Input without a curl token is scanned
// from the start so a bare "https://... -H ..." line still imports.
func findCurlIndex(tokens []string) int {
	for i, tok := range tokens {
		trimmed := strings.TrimSpace(stripPromptPrefix(tok))
		if trimmed == "" {
			continue
		}
		if strings.ToLower(trimmed) == cmdCurl {
			return i + 1
		}
	}
	return 0
}

func splitHeader(header string) (string, string) {
	name, value, ok := strings.Cut(header, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	if !ok {
		return name, ""
	}
	return name, strings.TrimSpace(value)
}

func stripPromptPrefix(token string) string {
	trimmed := strings.TrimSpace(token)
	for _, prefix := range promptPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			trimmed = strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	return trimmed
}

func sanitizeURL(raw string) string {
	return strings.Trim(raw, urlQuoteChars)
}
