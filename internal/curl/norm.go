package curl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/unkn0wn-root/restkit/internal/errdef"
	"github.com/unkn0wn-root/restkit/internal/reqmodel"
)

type segState struct {
	methodRaw string
	explicit  bool
	hdr       reqmodel.Headers
	auth      reqmodel.Auth
	body      *bodyBuilder
	url       string
	usr       string
	get       bool
	warn      *WarningCollector
}

func normCmd(cmd *Cmd) ([]*reqmodel.Request, error) {
	if cmd == nil || len(cmd.Segs) == 0 {
		return nil, missingURLError()
	}

	out := make([]*reqmodel.Request, 0, len(cmd.Segs))
	for _, seg := range cmd.Segs {
		req, err := normSeg(seg)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func normSeg(seg Seg) (*reqmodel.Request, error) {
	st := &segState{
		methodRaw: string(reqmodel.MethodGet),
		body:      newBodyBuilder(),
		warn:      newWarningCollector(),
	}
	st.warn.UnknownFlags(seg.Unk)
	st.warn.TruncatedFlags(seg.Trunc)

	for _, it := range seg.Items {
		if it.IsOpt {
			applyOpt(st, it.Opt)
		} else {
			applyPos(st, it.Pos)
		}
	}

	if st.url == "" {
		return nil, missingURLError()
	}

	if st.get {
		applyGet(st)
	}

	method, known := reqmodel.ParseMethod(st.methodRaw)
	if st.explicit && !known {
		st.warn.Add(fmt.Sprintf("unsupported method %q (imported as GET)", st.methodRaw))
		st.explicit = false
	}

	body := st.body.build()
	if body.Kind != reqmodel.BodyNone && !st.explicit && method == reqmodel.MethodGet {
		method = reqmodel.MethodPost
	}

	req := &reqmodel.Request{
		Method:  method,
		Headers: st.hdr,
		Body:    body,
		Auth:    st.auth,
	}

	applyUser(req, st.usr)
	extractParams(req, st.url)
	req.Warnings = st.warn.List()
	return req, nil
}

func applyOpt(st *segState, opt Opt) {
	def := defs[opt.Key]
	if def == nil || def.fn == nil {
		return
	}
	def.fn(st, opt.Val)
}

func applyPos(st *segState, val string) {
	trimmed := sanitizeURL(val)
	if st.url == "" && isAbsoluteURL(trimmed) {
		st.url = trimmed
		return
	}
	st.warn.Add(fmt.Sprintf("unexpected argument %q (ignored)", val))
}

// applyGet folds accumulated body payloads into the URL query, mirroring
// curl -G.
func applyGet(st *segState) {
	if !st.body.hasContent() {
		return
	}
	q := st.body.query()
	st.body = newBodyBuilder()
	if q == "" {
		return
	}
	sep := "?"
	if strings.Contains(st.url, "?") {
		sep = "&"
	}
	st.url += sep + q
}

// latchBearer captures a bearer token while headers are scanned. Header-based
// bearer detection runs before -u is applied, so it wins the auth slot.
func (st *segState) latchBearer(name, value string) {
	if !strings.EqualFold(name, headerAuthorization) {
		return
	}
	if len(value) < len(bearerPrefix) {
		return
	}
	if !strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		return
	}
	st.auth = reqmodel.Bearer(strings.TrimSpace(value[len(bearerPrefix):]))
}

func applyUser(req *reqmodel.Request, usr string) {
	if strings.TrimSpace(usr) == "" {
		return
	}
	if req.Auth.Kind != reqmodel.AuthNone {
		return
	}
	user, pass, _ := strings.Cut(usr, ":")
	req.Auth = reqmodel.Basic(user, pass)
}

// extractParams moves the query component of raw into req.Params and strips
// it from req.URL. A URL that does not parse is kept verbatim with no params,
// per the soft-degradation policy.
func extractParams(req *reqmodel.Request, raw string) {
	req.URL = raw

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return
	}
	switch u.Scheme {
	case schemeHTTP, schemeHTTPS:
	default:
		return
	}

	for _, pair := range splitQuery(u.RawQuery) {
		req.Params.Set(pair.Key, pair.Value)
	}

	u.RawQuery = ""
	u.Fragment = ""
	req.URL = u.String()
}

// splitQuery decodes a raw query preserving appearance order. Pairs whose
// percent-escapes are invalid keep their raw text instead of being dropped.
func splitQuery(rawQuery string) []reqmodel.Param {
	if rawQuery == "" {
		return nil
	}
	var out []reqmodel.Param
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		if key == "" && value == "" {
			continue
		}
		out = append(out, reqmodel.Param{Key: key, Value: value})
	}
	return out
}

func isAbsoluteURL(tok string) bool {
	return strings.HasPrefix(tok, schemeHTTP+"://") || strings.HasPrefix(tok, schemeHTTPS+"://")
}

func missingURLError() error {
	return errdef.New(errdef.CodeParse, "could not find a URL in this command")
}
