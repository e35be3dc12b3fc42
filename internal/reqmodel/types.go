// Package reqmodel holds the structured request description produced by the
// curl importer and consumed by the host request editor.
package reqmodel

import (
	"encoding/json"
	"strings"
)

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// ParseMethod normalizes raw flag input to one of the supported methods.
func ParseMethod(raw string) (Method, bool) {
	switch Method(strings.ToUpper(strings.TrimSpace(raw))) {
	case MethodGet:
		return MethodGet, true
	case MethodPost:
		return MethodPost, true
	case MethodPut:
		return MethodPut, true
	case MethodDelete:
		return MethodDelete, true
	case MethodPatch:
		return MethodPatch, true
	case MethodHead:
		return MethodHead, true
	case MethodOptions:
		return MethodOptions, true
	default:
		return MethodGet, false
	}
}

// Header is a single name/value pair. Unlike http.Header the importer keeps
// insertion order and the casing of the first occurrence, which the host
// editor round-trips back into its form.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Headers []Header

// Set overwrites the value of an existing header (name compared
// case-insensitively, original casing and position kept) or appends.
func (h *Headers) Set(name, value string) {
	for i := range *h {
		if strings.EqualFold((*h)[i].Name, name) {
			(*h)[i].Value = value
			return
		}
	}
	*h = append(*h, Header{Name: name, Value: value})
}

func (h Headers) Get(name string) string {
	for _, item := range h {
		if strings.EqualFold(item.Name, name) {
			return item.Value
		}
	}
	return ""
}

func (h Headers) Has(name string) bool {
	for _, item := range h {
		if strings.EqualFold(item.Name, name) {
			return true
		}
	}
	return false
}

// Param is one query-string pair, percent-decoded.
type Param struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Params []Param

// Set keeps the position of the first occurrence and overwrites its value,
// matching standard query-string last-wins semantics.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Param{Key: key, Value: value})
}

func (p Params) Get(key string) string {
	for _, item := range p {
		if item.Key == key {
			return item.Value
		}
	}
	return ""
}

type BodyKind int

const (
	BodyNone BodyKind = iota
	BodyJSON
	BodyFormData
	BodyURLEncoded
	BodyRaw
)

func (k BodyKind) String() string {
	switch k {
	case BodyNone:
		return "none"
	case BodyJSON:
		return "json"
	case BodyFormData:
		return "form_data"
	case BodyURLEncoded:
		return "url_encoded"
	case BodyRaw:
		return "raw"
	default:
		return "unknown"
	}
}

func (k BodyKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// FormField is one form-data or url-encoded body field.
type FormField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type FormFields []FormField

func (f *FormFields) Set(name, value string) {
	for i := range *f {
		if (*f)[i].Name == name {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, FormField{Name: name, Value: value})
}

// Body is a tagged union: exactly the field matching Kind is populated.
type Body struct {
	Kind BodyKind
	JSON any
	Form FormFields
	Raw  string
}

func (b Body) MarshalJSON() ([]byte, error) {
	type tagged struct {
		Kind  BodyKind   `json:"kind"`
		Value any        `json:"value,omitempty"`
		Form  FormFields `json:"form,omitempty"`
		Raw   string     `json:"raw,omitempty"`
	}
	out := tagged{Kind: b.Kind}
	switch b.Kind {
	case BodyJSON:
		out.Value = b.JSON
	case BodyFormData, BodyURLEncoded:
		out.Form = b.Form
	case BodyRaw:
		out.Raw = b.Raw
	}
	return json.Marshal(out)
}

type AuthKind int

const (
	AuthNone AuthKind = iota
	AuthBearer
	AuthBasic
)

func (k AuthKind) String() string {
	switch k {
	case AuthNone:
		return "none"
	case AuthBearer:
		return "bearer"
	case AuthBasic:
		return "basic"
	default:
		return "unknown"
	}
}

func (k AuthKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Auth carries at most one populated variant.
type Auth struct {
	Kind     AuthKind `json:"kind"`
	Token    string   `json:"token,omitempty"`
	Username string   `json:"username,omitempty"`
	Password string   `json:"password,omitempty"`
}

func Bearer(token string) Auth {
	return Auth{Kind: AuthBearer, Token: token}
}

func Basic(username, password string) Auth {
	return Auth{Kind: AuthBasic, Username: username, Password: password}
}

// Request is the importer output: a request description the host pre-fills
// its builder form with. URL never carries a query string; the query lives
// fully in Params.
type Request struct {
	Method   Method   `json:"method"`
	URL      string   `json:"url"`
	Headers  Headers  `json:"headers"`
	Params   Params   `json:"params"`
	Body     Body     `json:"body"`
	Auth     Auth     `json:"auth"`
	Warnings []string `json:"warnings,omitempty"`
}
