package token

import (
	"errors"
	"io"
	"testing"
)

type tokStep struct {
	at   Posture
	typ  TokenType
	text string
}

func runSteps(t *testing.T, doc string, steps []tokStep) {
	t.Helper()
	tk := NewTokenizer([]byte(doc))
	for i, step := range steps {
		tok, err := tk.Next(step.at)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if tok.Type != step.typ {
			t.Fatalf("step %d: got %s, want %s", i, tok.Type, step.typ)
		}
		if step.text != "" && string(tok.Bytes) != step.text {
			t.Fatalf("step %d: got %q, want %q", i, tok.Bytes, step.text)
		}
	}
	if _, err := tk.Next(AtKey); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestTokenizeKeyVal(t *testing.T) {
	runSteps(t, `name = "Tom"`, []tokStep{
		{AtKey, TKey, "name"},
		{AtKey, TEquals, "="},
		{AtValue, TString, `"Tom"`},
	})
}

// A date on the left of = is a bare key; the same spelling on the
// right is a date.  The posture argument decides.
func TestTokenizePosture(t *testing.T) {
	runSteps(t, `1979-05-27 = 1979-05-27`, []tokStep{
		{AtKey, TKey, "1979-05-27"},
		{AtKey, TEquals, "="},
		{AtValue, TLocalDate, "1979-05-27"},
	})
}

func TestTokenizeValueKinds(t *testing.T) {
	tests := []struct {
		in  string
		typ TokenType
	}{
		{`"basic"`, TString},
		{`'literal'`, TString},
		{`"""multi"""`, TString},
		{`123`, TInteger},
		{`+99`, TInteger},
		{`-17`, TInteger},
		{`0`, TInteger},
		{`1_000`, TInteger},
		{`0xDEADBEEF`, TInteger},
		{`0o755`, TInteger},
		{`0b1101`, TInteger},
		{`3.14`, TFloat},
		{`-0.01`, TFloat},
		{`5e+22`, TFloat},
		{`6.626e-34`, TFloat},
		{`inf`, TFloat},
		{`-inf`, TFloat},
		{`nan`, TFloat},
		{`true`, TTrue},
		{`false`, TFalse},
		{`1979-05-27T07:32:00Z`, TDatetime},
		{`1979-05-27T00:32:00-07:00`, TDatetime},
		{`1979-05-27T07:32:00`, TLocalDatetime},
		{`1979-05-27 07:32:00`, TLocalDatetime},
		{`1979-05-27`, TLocalDate},
		{`07:32:00`, TLocalTime},
		{`00:32:00.999999`, TLocalTime},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tk := NewTokenizer([]byte(tt.in))
			tok, err := tk.Next(AtValue)
			if err != nil {
				t.Fatal(err)
			}
			if tok.Type != tt.typ {
				t.Fatalf("got %s, want %s", tok.Type, tt.typ)
			}
			if string(tok.Bytes) != tt.in {
				t.Fatalf("got %q, want %q", tok.Bytes, tt.in)
			}
		})
	}
}

func TestTokenizeErrs(t *testing.T) {
	tests := []struct {
		in string
		at Posture
		e  error
	}{
		{`"unterminated`, AtValue, ErrUnterminated},
		{"\"raw\nnewline\"", AtValue, ErrUnterminated},
		{`"bad \q escape"`, AtValue, ErrBadEscape},
		{`"not multi \` + "\n" + `"`, AtValue, ErrBadEscape},
		{`"bad \uZZZZ"`, AtValue, ErrBadUnicode},
		{`0123`, AtValue, ErrNumberLeadingZero},
		{`0x`, AtValue, ErrNumber},
		{`1__2`, AtValue, ErrNumber},
		{`truely`, AtValue, ErrLiteral},
		{`falsey`, AtValue, ErrLiteral},
		{`1979-05-27T07:32:00Zoo`, AtValue, ErrDatetime},
		{"\ra = 1", AtKey, ErrBareCR},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tk := NewTokenizer([]byte(tt.in))
			_, err := tk.Next(tt.at)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.e) {
				t.Fatalf("got %v, want %v", err, tt.e)
			}
			var terr *TokenizeErr
			if !errors.As(err, &terr) {
				t.Fatalf("error %v is not a *TokenizeErr", err)
			}
		})
	}
}

func TestTokenizeSkipsCommentsAndWhitespace(t *testing.T) {
	doc := "# a header comment\nkey = 3 # trailing\n"
	runSteps(t, doc, []tokStep{
		{AtKey, TNewline, ""},
		{AtKey, TKey, "key"},
		{AtKey, TEquals, "="},
		{AtValue, TInteger, "3"},
		{AtKey, TNewline, ""},
	})
}

func TestTokenizeLineNumbers(t *testing.T) {
	doc := "a = 1\nb = 2\nc = 3\n"
	tk := NewTokenizer([]byte(doc))
	wantLines := []int{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3}
	postures := []Posture{AtKey, AtKey, AtValue, AtKey}
	for i, want := range wantLines {
		tok, err := tk.Next(postures[i%4])
		if err != nil {
			t.Fatal(err)
		}
		if got := tok.Pos.Line(); got != want {
			t.Fatalf("token %d: line %d, want %d", i, got, want)
		}
	}
}

func TestTokenizePeek(t *testing.T) {
	tk := NewTokenizer([]byte("a = 1"))
	p1, err := tk.Peek(AtKey)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := tk.Peek(AtKey)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Fatal("peek twice returned distinct tokens")
	}
	n, err := tk.Next(AtKey)
	if err != nil {
		t.Fatal(err)
	}
	if n != p1 {
		t.Fatal("next did not return the peeked token")
	}
	if tok, _ := tk.Next(AtKey); tok == nil || tok.Type != TEquals {
		t.Fatalf("expected '=', got %v", tok)
	}
}

func TestTokenizePunct(t *testing.T) {
	runSteps(t, "[a.b]", []tokStep{
		{AtKey, TLSquare, "["},
		{AtKey, TKey, "a"},
		{AtKey, TDot, "."},
		{AtKey, TKey, "b"},
		{AtKey, TRSquare, "]"},
	})
}
