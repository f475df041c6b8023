package token

import (
	"fmt"
)

type TokenType int

const (
	TKey TokenType = iota
	TString
	TInteger
	TFloat
	TTrue
	TFalse
	TDatetime
	TLocalDatetime
	TLocalDate
	TLocalTime
	TDot
	TEquals
	TLSquare
	TRSquare
	TLCurl
	TRCurl
	TComma
	TNewline
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TKey:           "TKey",
		TString:        "TString",
		TInteger:       "TInteger",
		TFloat:         "TFloat",
		TTrue:          "TTrue",
		TFalse:         "TFalse",
		TDatetime:      "TDatetime",
		TLocalDatetime: "TLocalDatetime",
		TLocalDate:     "TLocalDate",
		TLocalTime:     "TLocalTime",
		TDot:           "TDot",
		TEquals:        "TEquals",
		TLSquare:       "TLSquare",
		TRSquare:       "TRSquare",
		TLCurl:         "TLCurl",
		TRCurl:         "TRCurl",
		TComma:         "TComma",
		TNewline:       "TNewline",
	}[t]
}

// Posture tells the tokenizer whether the next token occurs in key or
// value position.  TOML cannot be tokenized without it: `1979-05-27`
// is a bare key left of `=` and a local date right of it.
type Posture int

const (
	AtKey Posture = iota
	AtValue
)

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token text.  For TString, the result is the
// decoded string value with quotes removed and, for basic strings,
// escapes processed.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}
func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
