package curl

import (
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/unkn0wn-root/restkit/internal/errdef"
	"github.com/unkn0wn-root/restkit/internal/reqmodel"
)

func TestParseCommandSimpleGET(t *testing.T) {
	req, err := ParseCommand("curl https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != reqmodel.MethodGet {
		t.Fatalf("expected GET, got %s", req.Method)
	}
	if req.URL != "https://example.com" {
		t.Fatalf("unexpected url %q", req.URL)
	}
	if req.Body.Kind != reqmodel.BodyNone {
		t.Fatalf("expected empty body, got %s", req.Body.Kind)
	}
}

func TestParseCommandJSONBodyWithBearer(t *testing.T) {
	cmd := "curl -X POST https://api.example.com/users" +
		" -H 'Content-Type: application/json'" +
		" -H 'Authorization: Bearer abc123'" +
		" -d '{\"name\":\"Alice\"}'"
	req, err := ParseCommand(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != reqmodel.MethodPost {
		t.Fatalf("expected POST, got %s", req.Method)
	}
	if req.URL != "https://api.example.com/users" {
		t.Fatalf("unexpected url %q", req.URL)
	}
	if got := req.Headers.Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := req.Headers.Get("Authorization"); got != "Bearer abc123" {
		t.Fatalf("expected authorization header kept, got %q", got)
	}
	if req.Auth.Kind != reqmodel.AuthBearer || req.Auth.Token != "abc123" {
		t.Fatalf("unexpected auth %+v", req.Auth)
	}
	if req.Body.Kind != reqmodel.BodyJSON {
		t.Fatalf("expected json body, got %s", req.Body.Kind)
	}
	value, ok := req.Body.JSON.(map[string]any)
	if !ok || value["name"] != "Alice" {
		t.Fatalf("unexpected body value %#v", req.Body.JSON)
	}
	if len(req.Params) != 0 {
		t.Fatalf("expected no params, got %#v", req.Params)
	}
}

func TestParseCommandQueryExtraction(t *testing.T) {
	req, err := ParseCommand("curl https://api.example.com/search?q=test&page=2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.URL != "https://api.example.com/search" {
		t.Fatalf("expected query stripped, got %q", req.URL)
	}
	want := reqmodel.Params{{Key: "q", Value: "test"}, {Key: "page", Value: "2"}}
	if !reflect.DeepEqual(req.Params, want) {
		t.Fatalf("unexpected params %#v", req.Params)
	}
	if req.Method != reqmodel.MethodGet || req.Body.Kind != reqmodel.BodyNone {
		t.Fatalf("unexpected method/body: %s %s", req.Method, req.Body.Kind)
	}
}

func TestParseCommandQueryDecodesPercentEncoding(t *testing.T) {
	req, err := ParseCommand("curl 'https://example.com/find?q=a%20b&tag=caf%C3%A9'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Params.Get("q"); got != "a b" {
		t.Fatalf("expected decoded space, got %q", got)
	}
	if got := req.Params.Get("tag"); got != "café" {
		t.Fatalf("expected decoded utf8, got %q", got)
	}
}

func TestParseCommandQueryDuplicateKeyLastWins(t *testing.T) {
	req, err := ParseCommand("curl https://example.com/x?a=1&b=2&a=3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := reqmodel.Params{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}
	if !reflect.DeepEqual(req.Params, want) {
		t.Fatalf("unexpected params %#v", req.Params)
	}
}

func TestParseCommandQueryRoundTrip(t *testing.T) {
	req, err := ParseCommand("curl 'https://example.com/s?q=hello%20world&page=2&empty='")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	values := url.Values{}
	for _, p := range req.Params {
		values.Set(p.Key, p.Value)
	}
	again, err := ParseCommand("curl '" + req.URL + "?" + values.Encode() + "'")
	if err != nil {
		t.Fatalf("unexpected error on reparse: %v", err)
	}
	if len(again.Params) != len(req.Params) {
		t.Fatalf("param count changed: %#v vs %#v", again.Params, req.Params)
	}
	for _, p := range req.Params {
		if got := again.Params.Get(p.Key); got != p.Value {
			t.Fatalf("param %q changed: %q vs %q", p.Key, got, p.Value)
		}
	}
}

func TestParseCommandImplicitPost(t *testing.T) {
	req, err := ParseCommand("curl https://example.com -d foo=bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != reqmodel.MethodPost {
		t.Fatalf("expected POST fallback when data provided, got %s", req.Method)
	}
	if req.Body.Kind != reqmodel.BodyRaw || req.Body.Raw != "foo=bar" {
		t.Fatalf("expected raw body, got %s %q", req.Body.Kind, req.Body.Raw)
	}
}

func TestParseCommandExplicitMethodNotOverridden(t *testing.T) {
	req, err := ParseCommand("curl -X PUT https://example.com -d payload")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != reqmodel.MethodPut {
		t.Fatalf("expected PUT, got %s", req.Method)
	}
}

func TestParseCommandJSONShortCircuitsForm(t *testing.T) {
	req, err := ParseCommand("curl https://example.com -d '{\"a\":1}' -F b=2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Body.Kind != reqmodel.BodyJSON {
		t.Fatalf("expected json to win over form, got %s", req.Body.Kind)
	}
}

func TestParseCommandInvalidJSONFallsBackToForm(t *testing.T) {
	req, err := ParseCommand("curl https://example.com -d 'not json' -F name=Sam -F file")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Body.Kind != reqmodel.BodyFormData {
		t.Fatalf("expected form body, got %s", req.Body.Kind)
	}
	want := reqmodel.FormFields{{Name: "name", Value: "Sam"}, {Name: "file", Value: ""}}
	if !reflect.DeepEqual(req.Body.Form, want) {
		t.Fatalf("unexpected form fields %#v", req.Body.Form)
	}
}

func TestParseCommandFormOnly(t *testing.T) {
	req, err := ParseCommand("curl https://example.com -F caption=hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != reqmodel.MethodPost {
		t.Fatalf("expected POST, got %s", req.Method)
	}
	if req.Body.Kind != reqmodel.BodyFormData {
		t.Fatalf("expected form body, got %s", req.Body.Kind)
	}
}

func TestParseCommandDataUrlencode(t *testing.T) {
	req, err := ParseCommand("curl https://example.com --data-urlencode 'note=hello world'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Body.Kind != reqmodel.BodyURLEncoded {
		t.Fatalf("expected url-encoded body, got %s", req.Body.Kind)
	}
	want := reqmodel.FormFields{{Name: "note", Value: "hello world"}}
	if !reflect.DeepEqual(req.Body.Form, want) {
		t.Fatalf("unexpected fields %#v", req.Body.Form)
	}
}

func TestParseCommandHeaderLastWinsKeepsFirstCasing(t *testing.T) {
	cmd := "curl https://example.com -H 'X-Trace: one' -H 'x-trace: two'"
	req, err := ParseCommand(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Headers) != 1 {
		t.Fatalf("expected a single header, got %#v", req.Headers)
	}
	if req.Headers[0].Name != "X-Trace" || req.Headers[0].Value != "two" {
		t.Fatalf("unexpected header %#v", req.Headers[0])
	}
}

func TestParseCommandHeaderOrderIndependentSet(t *testing.T) {
	a, err := ParseCommand("curl https://e.com -H 'A: 1' -H 'B: 2'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ParseCommand("curl https://e.com -H 'B: 2' -H 'A: 1'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pairs := func(h reqmodel.Headers) map[string]string {
		out := make(map[string]string, len(h))
		for _, item := range h {
			out[item.Name] = item.Value
		}
		return out
	}
	if !reflect.DeepEqual(pairs(a.Headers), pairs(b.Headers)) {
		t.Fatalf("header sets differ: %#v vs %#v", a.Headers, b.Headers)
	}
}

func TestParseCommandBasicAuth(t *testing.T) {
	req, err := ParseCommand("curl https://example.com -u user:pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Auth.Kind != reqmodel.AuthBasic {
		t.Fatalf("expected basic auth, got %s", req.Auth.Kind)
	}
	if req.Auth.Username != "user" || req.Auth.Password != "pass" {
		t.Fatalf("unexpected credentials %+v", req.Auth)
	}
}

func TestParseCommandBasicAuthWithoutPassword(t *testing.T) {
	req, err := ParseCommand("curl https://example.com -u user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Auth.Kind != reqmodel.AuthBasic || req.Auth.Username != "user" || req.Auth.Password != "" {
		t.Fatalf("unexpected auth %+v", req.Auth)
	}
}

func TestParseCommandBearerHeaderBeatsUserFlag(t *testing.T) {
	cmd := "curl https://example.com -H 'Authorization: Bearer tok' -u user:pass"
	req, err := ParseCommand(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Auth.Kind != reqmodel.AuthBearer || req.Auth.Token != "tok" {
		t.Fatalf("expected bearer to win, got %+v", req.Auth)
	}
}

func TestParseCommandBearerHeaderAfterUserFlag(t *testing.T) {
	cmd := "curl https://example.com -u user:pass -H 'authorization: bearer tok'"
	req, err := ParseCommand(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Auth.Kind != reqmodel.AuthBearer || req.Auth.Token != "tok" {
		t.Fatalf("expected bearer to win regardless of flag order, got %+v", req.Auth)
	}
}

func TestParseCommandMissingURL(t *testing.T) {
	_, err := ParseCommand("curl -X POST -H 'A: 1'")
	if err == nil {
		t.Fatalf("expected error for missing URL")
	}
	if errdef.CodeOf(err) != errdef.CodeParse {
		t.Fatalf("expected parse code, got %s", errdef.CodeOf(err))
	}
}

func TestParseCommandUnsupportedMethodDegrades(t *testing.T) {
	req, err := ParseCommand("curl -X FETCH https://example.com -d x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the bogus method is dropped, so the data payload promotes to POST
	if req.Method != reqmodel.MethodPost {
		t.Fatalf("expected POST, got %s", req.Method)
	}
	if len(req.Warnings) == 0 || !strings.Contains(req.Warnings[0], "unsupported method") {
		t.Fatalf("expected method warning, got %#v", req.Warnings)
	}
}

func TestParseCommandLineContinuation(t *testing.T) {
	cmd := "curl -X POST \\\n  https://example.com/users \\\n  -H 'A: 1'"
	req, err := ParseCommand(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != reqmodel.MethodPost || req.URL != "https://example.com/users" {
		t.Fatalf("unexpected request %s %q", req.Method, req.URL)
	}
	if got := req.Headers.Get("A"); got != "1" {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestParseCommandAttachedShortValue(t *testing.T) {
	req, err := ParseCommand("curl -XDELETE https://example.com/item/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != reqmodel.MethodDelete {
		t.Fatalf("expected DELETE, got %s", req.Method)
	}
}

func TestParseCommandLongFlagWithEquals(t *testing.T) {
	req, err := ParseCommand("curl --request=PATCH --url=https://example.com/p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != reqmodel.MethodPatch || req.URL != "https://example.com/p" {
		t.Fatalf("unexpected request %s %q", req.Method, req.URL)
	}
}

func TestParseCommandHeadFlag(t *testing.T) {
	req, err := ParseCommand("sudo curl -I https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != reqmodel.MethodHead {
		t.Fatalf("expected HEAD, got %s", req.Method)
	}
}

func TestParseCommandPromptPrefix(t *testing.T) {
	req, err := ParseCommand("$ curl https://api.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.URL != "https://api.example.com" {
		t.Fatalf("unexpected url %q", req.URL)
	}
}

func TestParseCommandWithoutCurlToken(t *testing.T) {
	req, err := ParseCommand("https://example.com/direct -H 'A: 1'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.URL != "https://example.com/direct" {
		t.Fatalf("unexpected url %q", req.URL)
	}
}

func TestParseCommandMalformedURLKeptVerbatim(t *testing.T) {
	req, err := ParseCommand("curl 'https://exa mple.com/path?x=1'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.URL != "https://exa mple.com/path?x=1" {
		t.Fatalf("expected raw url kept, got %q", req.URL)
	}
	if len(req.Params) != 0 {
		t.Fatalf("expected no params for malformed url, got %#v", req.Params)
	}
}

func TestParseCommandUnknownFlagWarns(t *testing.T) {
	req, err := ParseCommand("curl --frobnicate https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, w := range req.Warnings {
		if strings.Contains(w, "--frobnicate") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected warning for unknown flag, got %#v", req.Warnings)
	}
}

func TestParseCommandFlagMissingValueWarns(t *testing.T) {
	req, err := ParseCommand("curl https://example.com -H")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Warnings) == 0 || !strings.Contains(req.Warnings[0], "missing its value") {
		t.Fatalf("expected missing-value warning, got %#v", req.Warnings)
	}
}

func TestParseCommandTransportFlagsIgnoredWithWarnings(t *testing.T) {
	req, err := ParseCommand("curl -sSL --compressed https://example.com -o out.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != reqmodel.MethodGet || req.URL != "https://example.com" {
		t.Fatalf("unexpected request %s %q", req.Method, req.URL)
	}
	if len(req.Warnings) < 3 {
		t.Fatalf("expected warnings for ignored flags, got %#v", req.Warnings)
	}
}

func TestParseCommandWarningsSortedAndDeduplicated(t *testing.T) {
	req, err := ParseCommand("curl -s -s -L https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"unsupported flag --location (ignored)",
		"unsupported flag -s (ignored)",
	}
	if !reflect.DeepEqual(req.Warnings, want) {
		t.Fatalf("unexpected warnings %#v", req.Warnings)
	}
}

func TestParseCommandGetFoldsDataIntoQuery(t *testing.T) {
	req, err := ParseCommand("curl -G https://example.com/s -d q=test -d page=2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != reqmodel.MethodGet {
		t.Fatalf("expected GET, got %s", req.Method)
	}
	if req.Body.Kind != reqmodel.BodyNone {
		t.Fatalf("expected no body, got %s", req.Body.Kind)
	}
	if got := req.Params.Get("q"); got != "test" {
		t.Fatalf("expected folded query param, got %q", got)
	}
	if got := req.Params.Get("page"); got != "2" {
		t.Fatalf("expected folded query param, got %q", got)
	}
}

func TestParseCommandsNextSeparator(t *testing.T) {
	reqs, err := ParseCommands("curl https://a.test --next https://b.test -d x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	if reqs[0].URL != "https://a.test" || reqs[1].URL != "https://b.test" {
		t.Fatalf("unexpected urls %q %q", reqs[0].URL, reqs[1].URL)
	}
	if reqs[1].Method != reqmodel.MethodPost {
		t.Fatalf("expected POST in second segment, got %s", reqs[1].Method)
	}
}

func TestParseAllSkipsBrokenFragments(t *testing.T) {
	src := "curl https://a.test\n\ncurl -X POST\n\ncurl https://b.test"
	reqs := ParseAll(src)
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
}
