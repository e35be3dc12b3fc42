package vars

import (
	"regexp"
	"strings"
)

// Validation is advisory: the resolver and the importer never call Validate
// implicitly, and resolution stays fail-open regardless of these findings.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

const (
	errUnbalancedDelimiters = "unbalanced placeholder delimiters"
	errSystemFormat         = "invalid system variable format"
)

// interior of a {{$...}} placeholder: word characters, parentheses and
// whitespace after the leading $
var systemFormatPattern = regexp.MustCompile(`^\$[\w\s()]*$`)

func Validate(text string) Validation {
	var errs []string
	if strings.Count(text, "{{") != strings.Count(text, "}}") {
		errs = append(errs, errUnbalancedDelimiters)
	}
	for _, sub := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		inner := strings.TrimSpace(sub[1])
		if !strings.HasPrefix(inner, "$") {
			continue
		}
		if !systemFormatPattern.MatchString(inner) {
			errs = append(errs, errSystemFormat)
		}
	}
	return Validation{Valid: len(errs) == 0, Errors: errs}
}
