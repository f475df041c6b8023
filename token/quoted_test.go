package token

import (
	"testing"
)

func TestQuotedToString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"tab\there"`, "tab\there"},
		{`"quote \" and slash \\"`, `quote " and slash \`},
		{`"uni \u00e9"`, "uni \u00e9"},
		{`'no \escapes'`, `no \escapes`},
		{`'C:\Users\nodejs'`, `C:\Users\nodejs`},
		{"\"\"\"\nfirst line trimmed\n\"\"\"", "first line trimmed\n"},
		{"'''\nverbatim \\ content'''", "verbatim \\ content"},
		{"\"\"\"fold \\\n   me\"\"\"", "fold me"},
		{"\"\"\"fold \\\r\n   me\"\"\"", "fold me"},
		{"\"\"\"\r\nfirst line trimmed\"\"\"", "first line trimmed"},
		{`"""two quotes: """""`, `two quotes: ""`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			sz, err := ScanQuoted([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if sz != len(tt.in) {
				t.Fatalf("scanned %d bytes of %d", sz, len(tt.in))
			}
			if got := QuotedToString([]byte(tt.in)); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScanQuotedErrs(t *testing.T) {
	tests := []struct {
		in string
		e  error
	}{
		{`"open`, ErrUnterminated},
		{`'open`, ErrUnterminated},
		{"\"\"\"open\nstill open", ErrUnterminated},
		{`"\x"`, ErrBadEscape},
		{`"\u12"`, ErrUnterminated},
		{`"\uwxyz"`, ErrBadUnicode},
		{`"\uD800"`, ErrBadUnicode},
		{`"\uDFFF"`, ErrBadUnicode},
		{"\"not multi \\\r\n\"", ErrBadEscape},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if _, err := ScanQuoted([]byte(tt.in)); err != tt.e {
				t.Fatalf("got %v, want %v", err, tt.e)
			}
		})
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, v := range []string{
		"",
		"plain",
		"with \"quotes\"",
		"line\nbreak\tand tab",
		"control \x01 char",
		"unicode \u00e9\u4e16",
	} {
		q := Quote(v)
		sz, err := ScanQuoted([]byte(q))
		if err != nil {
			t.Fatalf("Quote(%q) = %q does not scan: %v", v, q, err)
		}
		if sz != len(q) {
			t.Fatalf("Quote(%q) = %q scans to %d of %d bytes", v, q, sz, len(q))
		}
		if got := QuotedToString([]byte(q)); got != v {
			t.Fatalf("round trip %q -> %q -> %q", v, q, got)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"simple", false},
		{"with-dash_and_underscore", false},
		{"1234", false},
		{"", true},
		{"has space", true},
		{"has.dot", true},
		{"caf\u00e9", true},
	}
	for _, tt := range tests {
		if got := NeedsQuote(tt.in); got != tt.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
