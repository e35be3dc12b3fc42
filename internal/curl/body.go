package curl

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/unkn0wn-root/restkit/internal/reqmodel"
)

// bodyBuilder accumulates body-bearing flags in scan order. The final kind is
// decided once at build time: a -d/--data-raw payload is sniffed as JSON
// first, falls back to form data when -F flags are present, and is kept raw
// otherwise. --data-urlencode fields only apply when no data payload exists.
type bodyBuilder struct {
	data   []string
	raw    []string
	urlenc reqmodel.FormFields
	form   reqmodel.FormFields
}

func newBodyBuilder() *bodyBuilder {
	return &bodyBuilder{}
}

func (b *bodyBuilder) addData(val string) {
	b.data = append(b.data, val)
}

func (b *bodyBuilder) addRaw(val string) {
	b.raw = append(b.raw, val)
}

func (b *bodyBuilder) addURLEncoded(raw string) {
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		name, value := splitFormPair(part)
		if name == "" && value == "" {
			continue
		}
		b.urlenc.Set(name, value)
	}
}

func (b *bodyBuilder) addFormPart(raw string) {
	name, value := splitFormPair(raw)
	if name == "" {
		return
	}
	b.form.Set(name, value)
}

func (b *bodyBuilder) hasContent() bool {
	return len(b.data) > 0 || len(b.raw) > 0 || len(b.urlenc) > 0 || len(b.form) > 0
}

// payload is the single data payload the kind decision runs on: the first -d
// value wins over the first --data-raw value.
func (b *bodyBuilder) payload() (string, bool) {
	if len(b.data) > 0 {
		return b.data[0], true
	}
	if len(b.raw) > 0 {
		return b.raw[0], true
	}
	return "", false
}

func (b *bodyBuilder) build() reqmodel.Body {
	if payload, ok := b.payload(); ok {
		if value, ok := parseStrictJSON(payload); ok {
			return reqmodel.Body{Kind: reqmodel.BodyJSON, JSON: value}
		}
		if len(b.form) > 0 {
			return reqmodel.Body{Kind: reqmodel.BodyFormData, Form: b.form}
		}
		return reqmodel.Body{Kind: reqmodel.BodyRaw, Raw: payload}
	}
	if len(b.form) > 0 {
		return reqmodel.Body{Kind: reqmodel.BodyFormData, Form: b.form}
	}
	if len(b.urlenc) > 0 {
		return reqmodel.Body{Kind: reqmodel.BodyURLEncoded, Form: b.urlenc}
	}
	return reqmodel.Body{Kind: reqmodel.BodyNone}
}

// query renders accumulated payloads as a query string for -G handling.
func (b *bodyBuilder) query() string {
	parts := make([]string, 0, len(b.data)+len(b.raw)+len(b.urlenc))
	parts = append(parts, b.data...)
	parts = append(parts, b.raw...)
	for _, f := range b.urlenc {
		if f.Name == "" {
			parts = append(parts, f.Value)
			continue
		}
		parts = append(parts, f.Name+"="+f.Value)
	}
	return strings.Join(parts, "&")
}

func splitFormPair(raw string) (string, string) {
	idx := strings.Index(raw, "=")
	if idx < 0 {
		return strings.TrimSpace(raw), ""
	}
	return strings.TrimSpace(raw[:idx]), raw[idx+1:]
}

// parseStrictJSON accepts only a payload that is a single well-formed JSON
// value with nothing trailing.
func parseStrictJSON(payload string) (any, bool) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil, false
	}
	dec := json.NewDecoder(strings.NewReader(trimmed))
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return value, true
}
