package vars

import (
	"strings"
	"testing"

	"github.com/unkn0wn-root/restkit/internal/errdef"
)

func TestIsDotEnvPath(t *testing.T) {
	t.Parallel()
	cases := []struct {
		path string
		want bool
	}{
		{".env", true},
		{"/work/.env", true},
		{".env.local", true},
		{"staging.env", true},
		{"env.yaml", false},
		{"envs.yml", false},
		{"vars.json", false},
		{"notes.txt", false},
	}
	for _, tc := range cases {
		if got := IsDotEnvPath(tc.path); got != tc.want {
			t.Fatalf("IsDotEnvPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestParseDotEnvBasic(t *testing.T) {
	t.Parallel()
	src := strings.Join([]string{
		"# comment",
		"HOST=api.test",
		"export TOKEN=abc",
		"EMPTY=",
		"PADDED =  value  ",
	}, "\n")
	values, err := ParseDotEnv(strings.NewReader(src), ".env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{
		"HOST":   "api.test",
		"TOKEN":  "abc",
		"EMPTY":  "",
		"PADDED": "value",
	}
	for k, v := range want {
		if values[k] != v {
			t.Fatalf("%s = %q, want %q", k, values[k], v)
		}
	}
}

func TestParseDotEnvQuoting(t *testing.T) {
	t.Parallel()
	src := strings.Join([]string{
		`SINGLE='literal $HOST'`,
		`DOUBLE="tab\there"`,
		`TRAILING=value # comment`,
		`HASHED=val#ue`,
	}, "\n")
	values, err := ParseDotEnv(strings.NewReader(src), ".env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["SINGLE"] != "literal $HOST" {
		t.Fatalf("SINGLE = %q", values["SINGLE"])
	}
	if values["DOUBLE"] != "tab\there" {
		t.Fatalf("DOUBLE = %q", values["DOUBLE"])
	}
	if values["TRAILING"] != "value" {
		t.Fatalf("TRAILING = %q", values["TRAILING"])
	}
	if values["HASHED"] != "val#ue" {
		t.Fatalf("HASHED = %q", values["HASHED"])
	}
}

func TestParseDotEnvInterpolation(t *testing.T) {
	t.Parallel()
	src := strings.Join([]string{
		"HOST=api.test",
		"URL=https://${HOST}/v1",
		"ALT=https://$HOST/v2",
		`ESCAPED="cost \$5"`,
	}, "\n")
	values, err := ParseDotEnv(strings.NewReader(src), ".env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["URL"] != "https://api.test/v1" {
		t.Fatalf("URL = %q", values["URL"])
	}
	if values["ALT"] != "https://api.test/v2" {
		t.Fatalf("ALT = %q", values["ALT"])
	}
	if values["ESCAPED"] != "cost $5" {
		t.Fatalf("ESCAPED = %q", values["ESCAPED"])
	}
}

func TestParseDotEnvOSFallback(t *testing.T) {
	t.Setenv("RESTKIT_TEST_SECRET", "s3cret")
	values, err := ParseDotEnv(strings.NewReader("AUTH=${RESTKIT_TEST_SECRET}"), ".env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["AUTH"] != "s3cret" {
		t.Fatalf("AUTH = %q", values["AUTH"])
	}
}

func TestParseDotEnvErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		src  string
	}{
		{"no assignment", "JUSTAKEY"},
		{"missing key", "=value"},
		{"unterminated quote", `BAD="oops`},
		{"content after quote", `BAD="ok" extra`},
		{"undefined reference", "URL=${MISSING_REF_FOR_TEST}"},
		{"unclosed brace", "URL=${HOST"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDotEnv(strings.NewReader(tc.src), ".env")
			if err == nil {
				t.Fatalf("expected error for %q", tc.src)
			}
			if errdef.CodeOf(err) != errdef.CodeParse {
				t.Fatalf("expected parse code, got %s", errdef.CodeOf(err))
			}
		})
	}
}
