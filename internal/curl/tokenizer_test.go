package curl

import (
	"reflect"
	"testing"
)

func TestSplitTokensQuoting(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "curl https://e.com", []string{"curl", "https://e.com"}},
		{"single quotes literal", `curl -d 'a "b" \n'`, []string{"curl", "-d", `a "b" \n`}},
		{"double quotes", `curl -d "a b"`, []string{"curl", "-d", "a b"}},
		{"double quote escape", `curl -d "say \"hi\""`, []string{"curl", "-d", `say "hi"`}},
		{"backticks", "curl -d `a b`", []string{"curl", "-d", "a b"}},
		{"escaped space", `curl -d a\ b`, []string{"curl", "-d", "a b"}},
		{"adjacent quoted parts", `curl -d 'a'"b"`, []string{"curl", "-d", "ab"}},
		{"empty quoted token dropped", `curl ''`, []string{"curl"}},
		{"tabs separate", "curl\t-I\thttps://e.com", []string{"curl", "-I", "https://e.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := splitTokens(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("tokens = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestSplitTokensANSIQuoting(t *testing.T) {
	got := splitTokens(`curl -d $'line1\nline2\tend'`)
	want := []string{"curl", "-d", "line1\nline2\tend"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %#v, want %#v", got, want)
	}
}

func TestSplitTokensANSIHexEscape(t *testing.T) {
	got := splitTokens(`curl -d $'\x41é'`)
	want := []string{"curl", "-d", "Aé"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %#v, want %#v", got, want)
	}
}

func TestSplitTokensLineContinuation(t *testing.T) {
	got := splitTokens("curl \\\n -I \\\n https://e.com")
	want := []string{"curl", "-I", "https://e.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %#v, want %#v", got, want)
	}
}

func TestSplitTokensNewlineInsideQuotesKept(t *testing.T) {
	got := splitTokens("curl -d 'a\nb'")
	want := []string{"curl", "-d", "a\nb"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %#v, want %#v", got, want)
	}
}

func TestSplitTokensUnterminatedQuoteDegrades(t *testing.T) {
	got := splitTokens(`curl -d 'oops`)
	want := []string{"curl", "-d", "oops"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %#v, want %#v", got, want)
	}
}

func TestSplitTokensTrailingBackslashDegrades(t *testing.T) {
	got := splitTokens(`curl https://e.com \`)
	want := []string{"curl", "https://e.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %#v, want %#v", got, want)
	}
}
