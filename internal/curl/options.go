package curl

import (
	"strings"
)

type optKind int

const (
	optNone optKind = iota
	optVal
)

type optFn func(*segState, string)

type optDef struct {
	key  string
	kind optKind
	fn   optFn
}

var defs = map[string]*optDef{
	"request":        {key: "request", kind: optVal, fn: optReq},
	"header":         {key: "header", kind: optVal, fn: optHdr},
	"user":           {key: "user", kind: optVal, fn: optUser},
	"user-agent":     {key: "user-agent", kind: optVal, fn: optHdrKey(headerUserAgent)},
	"referer":        {key: "referer", kind: optVal, fn: optHdrKey(headerReferer)},
	"cookie":         {key: "cookie", kind: optVal, fn: optHdrKey(headerCookie)},
	"head":           {key: "head", kind: optNone, fn: optHead},
	"url":            {key: "url", kind: optVal, fn: optURL},
	"data":           {key: "data", kind: optVal, fn: optData},
	"data-raw":       {key: "data-raw", kind: optVal, fn: optDataRaw},
	"data-binary":    {key: "data-binary", kind: optVal, fn: optDataRaw},
	"data-urlencode": {key: "data-urlencode", kind: optVal, fn: optDataURL},
	"json":           {key: "json", kind: optVal, fn: optData},
	"form":           {key: "form", kind: optVal, fn: optForm},
	"form-string":    {key: "form-string", kind: optVal, fn: optForm},
	"get":            {key: "get", kind: optNone, fn: optGet},

	// Transport and output flags have no representation in the request
	// description; they are accepted and reported so a pasted command still
	// imports cleanly.
	"compressed":        {key: "compressed", kind: optNone, fn: optWarn("--compressed")},
	"location":          {key: "location", kind: optNone, fn: optWarn("--location")},
	"insecure":          {key: "insecure", kind: optNone, fn: optWarn("--insecure")},
	"proxy":             {key: "proxy", kind: optVal, fn: optWarnVal("--proxy")},
	"max-time":          {key: "max-time", kind: optVal, fn: optWarnVal("--max-time")},
	"connect-timeout":   {key: "connect-timeout", kind: optVal, fn: optWarnVal("--connect-timeout")},
	"retry":             {key: "retry", kind: optVal, fn: optWarnVal("--retry")},
	"cacert":            {key: "cacert", kind: optVal, fn: optWarnVal("--cacert")},
	"cert":              {key: "cert", kind: optVal, fn: optWarnVal("--cert")},
	"key":               {key: "key", kind: optVal, fn: optWarnVal("--key")},
	"silent":            {key: "silent", kind: optNone, fn: optWarn("--silent")},
	"silent-short":      {key: "silent-short", kind: optNone, fn: optWarn("-s")},
	"show-error":        {key: "show-error", kind: optNone, fn: optWarn("--show-error")},
	"show-error-short":  {key: "show-error-short", kind: optNone, fn: optWarn("-S")},
	"verbose":           {key: "verbose", kind: optNone, fn: optWarn("--verbose")},
	"verbose-short":     {key: "verbose-short", kind: optNone, fn: optWarn("-v")},
	"include":           {key: "include", kind: optNone, fn: optWarn("--include")},
	"include-short":     {key: "include-short", kind: optNone, fn: optWarn("-i")},
	"output":            {key: "output", kind: optVal, fn: optWarnVal("--output")},
	"output-short":      {key: "output-short", kind: optVal, fn: optWarnVal("-o")},
	"remote-name":       {key: "remote-name", kind: optNone, fn: optWarn("--remote-name")},
	"remote-name-short": {key: "remote-name-short", kind: optNone, fn: optWarn("-O")},
}

var longDefs = map[string]*optDef{
	"request":         defs["request"],
	"header":          defs["header"],
	"user":            defs["user"],
	"user-agent":      defs["user-agent"],
	"referer":         defs["referer"],
	"cookie":          defs["cookie"],
	"head":            defs["head"],
	"url":             defs["url"],
	"data":            defs["data"],
	"data-ascii":      defs["data"],
	"data-raw":        defs["data-raw"],
	"data-binary":     defs["data-binary"],
	"data-urlencode":  defs["data-urlencode"],
	"json":            defs["json"],
	"form":            defs["form"],
	"form-string":     defs["form-string"],
	"get":             defs["get"],
	"compressed":      defs["compressed"],
	"location":        defs["location"],
	"insecure":        defs["insecure"],
	"proxy":           defs["proxy"],
	"max-time":        defs["max-time"],
	"connect-timeout": defs["connect-timeout"],
	"retry":           defs["retry"],
	"cacert":          defs["cacert"],
	"cert":            defs["cert"],
	"key":             defs["key"],
	"silent":          defs["silent"],
	"show-error":      defs["show-error"],
	"verbose":         defs["verbose"],
	"include":         defs["include"],
	"output":          defs["output"],
	"remote-name":     defs["remote-name"],
}

var shortDefs = map[rune]*optDef{
	'X': defs["request"],
	'H': defs["header"],
	'u': defs["user"],
	'A': defs["user-agent"],
	'e': defs["referer"],
	'b': defs["cookie"],
	'I': defs["head"],
	'd': defs["data"],
	'F': defs["form"],
	'G': defs["get"],
	'k': defs["insecure"],
	'x': defs["proxy"],
	'L': defs["location"],
	'm': defs["max-time"],
	's': defs["silent-short"],
	'S': defs["show-error-short"],
	'v': defs["verbose-short"],
	'i': defs["include-short"],
	'o': defs["output-short"],
	'O': defs["remote-name-short"],
}

func optReq(st *segState, val string) {
	st.methodRaw = val
	st.explicit = true
}

func optHdr(st *segState, val string) {
	name, value := splitHeader(val)
	if name == "" {
		return
	}
	st.hdr.Set(name, value)
	st.latchBearer(name, value)
}

func optHdrKey(k string) optFn {
	return func(st *segState, val string) {
		if strings.TrimSpace(val) == "" {
			return
		}
		st.hdr.Set(k, strings.TrimSpace(val))
	}
}

func optUser(st *segState, val string) {
	st.usr = val
}

func optHead(st *segState, _ string) {
	st.methodRaw = "HEAD"
	st.explicit = true
}

func optURL(st *segState, val string) {
	st.url = sanitizeURL(val)
}

func optData(st *segState, val string) {
	st.body.addData(val)
}

func optDataRaw(st *segState, val string) {
	st.body.addRaw(val)
}

func optDataURL(st *segState, val string) {
	st.body.addURLEncoded(val)
}

func optForm(st *segState, val string) {
	st.body.addFormPart(val)
}

func optGet(st *segState, _ string) {
	st.get = true
	st.methodRaw = "GET"
	st.explicit = true
}

func optWarn(flag string) optFn {
	return func(st *segState, _ string) {
		st.warn.Flag(flag)
	}
}

func optWarnVal(flag string) optFn {
	return func(st *segState, _ string) {
		st.warn.Flag(flag)
	}
}
