// Package vars expands {{name}} and {{$name(args)}} placeholders inside
// request text against request-scoped and environment-scoped variables.
package vars

import (
	"crypto/rand"
	"io"
	"regexp"
	"strings"
	"time"
)

// Context is the two-tier variable namespace supplied by the host. Request
// variables win over environment variables; both maps are optional.
type Context struct {
	EnvironmentVars map[string]string
	RequestVars     map[string]string
}

// Result carries the substituted text plus the distinct placeholder names
// seen in the original input, in first-occurrence order. Referenced is
// informational (autocomplete, diagnostics) and never affects substitution.
type Result struct {
	Resolved   string
	Referenced []string
}

var placeholderPattern = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

type Resolver struct {
	clock   Clock
	entropy io.Reader
}

type Option func(*Resolver)

// WithClock replaces the time source for $timestamp/$timestampMs/$date.
func WithClock(clock Clock) Option {
	return func(r *Resolver) {
		r.clock = clock
	}
}

// WithEntropy replaces the randomness source for $randomInt/$guid.
func WithEntropy(entropy io.Reader) Option {
	return func(r *Resolver) {
		r.entropy = entropy
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{clock: time.Now, entropy: rand.Reader}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs the system pass and then the user pass over its output. It
// never fails: an unresolvable placeholder stays verbatim so partially
// configured environments remain usable.
func (r *Resolver) Resolve(text string, ctx Context) Result {
	refs := referencedNames(text)
	out := r.expandSystem(text)
	out = expandUser(out, ctx)
	return Result{Resolved: out, Referenced: refs}
}

func (r *Resolver) expandSystem(input string) string {
	return systemPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := systemPattern.FindStringSubmatch(match)
		if len(sub) < 3 {
			return match
		}
		gen := systemRegistry[sub[1]]
		if gen == nil {
			return match
		}
		out, err := gen(r, splitArgs(sub[2]))
		if err != nil {
			return match
		}
		return out
	})
}

func expandUser(input string, ctx Context) string {
	return placeholderPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := placeholderPattern.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		name := strings.TrimSpace(sub[1])
		if name == "" || strings.HasPrefix(name, "$") {
			return match
		}
		if value, ok := ctx.RequestVars[name]; ok {
			return value
		}
		if value, ok := ctx.EnvironmentVars[name]; ok {
			return value
		}
		return match
	})
}

func referencedNames(text string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, sub := range matches {
		name := strings.TrimSpace(sub[1])
		if name == "" {
			continue
		}
		if strings.HasPrefix(name, "$") {
			// drop the argument list so {{$date(YYYY)}} reports $date
			if idx := strings.Index(name, "("); idx >= 0 {
				name = strings.TrimSpace(name[:idx])
			}
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// splitArgs comma-splits a system-variable argument list, trimming whitespace
// and surrounding quote characters from each argument.
func splitArgs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		part = strings.Trim(part, "\"'`")
		out = append(out, part)
	}
	return out
}
