package token

import (
	"bytes"
	"fmt"
	"io"
)

// Tokenizer produces a lazy token stream over an in-memory TOML
// document.  The caller states with each call whether the next token
// is read in key or value position (see Posture).  Whitespace and
// comments are consumed silently and never surface as tokens.  At end
// of input Next and Peek return io.EOF.
type Tokenizer struct {
	posDoc *PosDoc
	doc    []byte
	i      int

	peeked  *Token
	peekErr error
}

func NewTokenizer(doc []byte) *Tokenizer {
	return &Tokenizer{
		posDoc: &PosDoc{d: doc},
		doc:    doc,
	}
}

// Next returns the next token.  A Peek followed by Next must use the
// same posture: the buffered token is returned as scanned.
func (tk *Tokenizer) Next(at Posture) (*Token, error) {
	if tk.peeked != nil || tk.peekErr != nil {
		t, err := tk.peeked, tk.peekErr
		tk.peeked, tk.peekErr = nil, nil
		return t, err
	}
	return tk.scan(at)
}

// Peek returns the next token without consuming it.
func (tk *Tokenizer) Peek(at Posture) (*Token, error) {
	if tk.peeked != nil || tk.peekErr != nil {
		return tk.peeked, tk.peekErr
	}
	tk.peeked, tk.peekErr = tk.scan(at)
	return tk.peeked, tk.peekErr
}

// Pos returns the position of the next byte to be scanned.
func (tk *Tokenizer) Pos() *Pos {
	if tk.peeked != nil {
		return tk.peeked.Pos
	}
	return tk.posDoc.Pos(tk.i)
}

func (tk *Tokenizer) scan(at Posture) (*Token, error) {
	d, n := tk.doc, len(tk.doc)
	for tk.i < n {
		switch d[tk.i] {
		case ' ', '\t':
			tk.i++
			continue
		case '\r':
			if tk.i+1 >= n || d[tk.i+1] != '\n' {
				return nil, NewTokenizeErr(ErrBareCR, tk.posDoc.Pos(tk.i))
			}
			tk.i++
			continue
		case '#':
			for tk.i < n && d[tk.i] != '\n' {
				tk.i++
			}
			continue
		}
		break
	}
	if tk.i >= n {
		return nil, io.EOF
	}
	i := tk.i
	c := d[i]
	pos := tk.posDoc.Pos(i)

	switch c {
	case '\n':
		tk.posDoc.nl(i)
		tk.i++
		return &Token{Type: TNewline, Pos: pos, Bytes: d[i : i+1]}, nil
	case '=':
		return tk.punct(TEquals, pos), nil
	case '.':
		return tk.punct(TDot, pos), nil
	case '[':
		return tk.punct(TLSquare, pos), nil
	case ']':
		return tk.punct(TRSquare, pos), nil
	case '{':
		return tk.punct(TLCurl, pos), nil
	case '}':
		return tk.punct(TRCurl, pos), nil
	case ',':
		return tk.punct(TComma, pos), nil
	case '"', '\'':
		sz, err := scanString(d[i:])
		if err != nil {
			return nil, NewTokenizeErr(err, pos)
		}
		// newlines inside multiline strings still count for
		// line numbering
		for j := i; j < i+sz; j++ {
			if d[j] == '\n' {
				tk.posDoc.nl(j)
			}
		}
		tk.i += sz
		return &Token{Type: TString, Pos: pos, Bytes: d[i : i+sz]}, nil
	}

	if at == AtKey {
		sz := bareKey(d[i:])
		if sz == 0 {
			return nil, UnexpectedErr(fmt.Sprintf("character %q in key", rune(c)), pos)
		}
		tk.i += sz
		return &Token{Type: TKey, Pos: pos, Bytes: d[i : i+sz]}, nil
	}

	if sz, tt := scanDatetime(d[i:]); sz > 0 {
		if !tk.boundaryOK(i + sz) {
			return nil, NewTokenizeErr(ErrDatetime, pos)
		}
		tk.i += sz
		return &Token{Type: tt, Pos: pos, Bytes: d[i : i+sz]}, nil
	}
	switch c {
	case 't', 'f':
		kw, tt := []byte("true"), TTrue
		if c == 'f' {
			kw, tt = []byte("false"), TFalse
		}
		if !bytes.HasPrefix(d[i:], kw) || !tk.boundaryOK(i+len(kw)) {
			return nil, NewTokenizeErr(ErrLiteral, pos)
		}
		tk.i += len(kw)
		return &Token{Type: tt, Pos: pos, Bytes: d[i : i+len(kw)]}, nil
	}

	switch {
	case asciiDigit(c), c == '+', c == '-', c == 'i', c == 'n':
	default:
		return nil, UnexpectedErr(fmt.Sprintf("character %q in value", rune(c)), pos)
	}
	sz, isFloat, err := scanNumber(d[i:])
	if err != nil {
		return nil, NewTokenizeErr(err, pos)
	}
	if !tk.boundaryOK(i + sz) {
		return nil, NewTokenizeErr(ErrNumber, pos)
	}
	tk.i += sz
	tt := TInteger
	if isFloat {
		tt = TFloat
	}
	return &Token{Type: tt, Pos: pos, Bytes: d[i : i+sz]}, nil
}

func (tk *Tokenizer) punct(tt TokenType, pos *Pos) *Token {
	i := tk.i
	tk.i++
	return &Token{Type: tt, Pos: pos, Bytes: tk.doc[i : i+1]}
}

// boundaryOK reports whether a scalar ending at offset end is
// properly delimited, i.e. not run together with key-like characters.
func (tk *Tokenizer) boundaryOK(end int) bool {
	if end >= len(tk.doc) {
		return true
	}
	return !bareKeyChar(tk.doc[end])
}

func bareKey(d []byte) int {
	i := 0
	for i < len(d) && bareKeyChar(d[i]) {
		i++
	}
	return i
}

func bareKeyChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}
