package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/toml-format/go-toml/ir"
	"github.com/toml-format/go-toml/token"
)

// Date-time layouts for the four TOML forms.  time.Parse tolerates a
// fractional second in the input even when the layout has none.
const (
	localDatetimeLayout = "2006-01-02T15:04:05"
	localDateLayout     = "2006-01-02"
	localTimeLayout     = "15:04:05"
)

// Parse parses the TOML document d and returns the root table.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(pOpts)
	}
	p := &parser{
		tk:       token.NewTokenizer(d),
		root:     ir.NewTable(),
		opts:     pOpts,
		explicit: make(map[*ir.Node]bool),
		aot:      make(map[*ir.Node]bool),
	}
	p.cur = p.root
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.root, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	tk   *token.Tokenizer
	root *ir.Node
	// cur is the table key-value lines currently land in.  It is a
	// node pointer rather than a key chain so that [[array]] headers
	// can direct it at the newest array element.
	cur  *ir.Node
	opts *parseOpts

	// explicit holds tables defined by a [header] or written as an
	// inline table.  Dotted-key assignments may not extend them, and
	// a second [header] for one of them is a duplicate.
	explicit map[*ir.Node]bool
	// aot holds arrays created by [[header]].  Only these accept
	// further [[header]] elements; a static array never does.
	aot map[*ir.Node]bool
}

func (p *parser) run() error {
	for {
		t, err := p.tk.Peek(token.AtKey)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return p.wrapTokErr(err)
		}
		switch t.Type {
		case token.TNewline:
			p.tk.Next(token.AtKey)
		case token.TLSquare:
			if err := p.header(); err != nil {
				return err
			}
		case token.TKey, token.TString:
			if err := p.keyval(); err != nil {
				return err
			}
		default:
			return p.errAt(ErrStructure, t.Pos, "unexpected %s at start of line", t.Type)
		}
	}
}

// header parses a [table] or [[array-of-tables]] line and repoints
// p.cur.
func (p *parser) header() error {
	if _, err := p.tk.Next(token.AtKey); err != nil { // consume '['
		return p.wrapTokErr(err)
	}
	aot := false
	t, err := p.tk.Peek(token.AtKey)
	if err != nil {
		return p.wrapTokErr(err)
	}
	if t.Type == token.TLSquare {
		p.tk.Next(token.AtKey)
		aot = true
	}
	chain, pos, err := p.keychain()
	if err != nil {
		return err
	}
	for i := 0; i < 1+boolToInt(aot); i++ {
		t, err := p.tk.Next(token.AtKey)
		if err != nil {
			return p.wrapTokErr(err)
		}
		if t.Type != token.TRSquare {
			return p.errAt(ErrStructure, t.Pos, "expected ']' in table header, found %s", t.Type)
		}
	}
	if err := p.newlineOrEOF(); err != nil {
		return err
	}
	if aot {
		return p.openArrayElement(chain, pos)
	}
	return p.openTable(chain, pos)
}

// openTable handles a [a.b.c] header.  Intermediate segments create
// implicit tables or pass through existing ones; through an array of
// tables they land in its newest element.
func (p *parser) openTable(chain []string, pos *token.Pos) error {
	cur := p.root
	for _, key := range chain[:len(chain)-1] {
		var err error
		cur, err = p.headerDescend(cur, key, pos)
		if err != nil {
			return err
		}
	}
	last := chain[len(chain)-1]
	existing := ir.Get(cur, last)
	switch {
	case existing == nil:
		tbl := ir.NewTable()
		cur.Put(last, tbl)
		p.explicit[tbl] = true
		p.trackPos(tbl, pos)
		p.cur = tbl
	case existing.Type == ir.TableType:
		if p.explicit[existing] {
			return p.errAt(ErrDuplicateKey, pos,
				"table %q is already defined", strings.Join(chain, "."))
		}
		p.explicit[existing] = true
		p.cur = existing
	default:
		return p.errAt(ErrTypeConflict, pos,
			"key %q is bound to a %s, not a table", strings.Join(chain, "."), existing.Type)
	}
	return nil
}

// openArrayElement handles a [[a.b.c]] header by appending a fresh
// table to the array at the chain, creating the array on first use.
func (p *parser) openArrayElement(chain []string, pos *token.Pos) error {
	cur := p.root
	for _, key := range chain[:len(chain)-1] {
		var err error
		cur, err = p.headerDescend(cur, key, pos)
		if err != nil {
			return err
		}
	}
	last := chain[len(chain)-1]
	existing := ir.Get(cur, last)
	switch {
	case existing == nil:
		arr := &ir.Node{Type: ir.ArrayType}
		cur.Put(last, arr)
		p.aot[arr] = true
		p.trackPos(arr, pos)
		existing = arr
	case existing.Type != ir.ArrayType:
		return p.errAt(ErrTypeConflict, pos,
			"key %q is bound to a %s, not an array of tables",
			strings.Join(chain, "."), existing.Type)
	case !p.aot[existing]:
		return p.errAt(ErrDuplicateKey, pos,
			"array %q was not defined with [[...]] and cannot be extended",
			strings.Join(chain, "."))
	}
	elem := ir.NewTable()
	existing.Append(elem)
	p.trackPos(elem, pos)
	p.cur = elem
	return nil
}

// headerDescend resolves one intermediate header segment.  Descending
// through an array of tables lands in its last element, so [[fruit]]
// followed by [fruit.physical] nests under the newest fruit.
func (p *parser) headerDescend(cur *ir.Node, key string, pos *token.Pos) (*ir.Node, error) {
	next := ir.Get(cur, key)
	if next == nil {
		tbl := ir.NewTable()
		cur.Put(key, tbl)
		return tbl, nil
	}
	switch next.Type {
	case ir.TableType:
		return next, nil
	case ir.ArrayType:
		if p.aot[next] {
			return next.Values[len(next.Values)-1], nil
		}
		return nil, p.errAt(ErrTypeConflict, pos,
			"key %q is bound to a static array, not a table", key)
	default:
		return nil, p.errAt(ErrTypeConflict, pos,
			"key %q is bound to a %s, not a table", key, next.Type)
	}
}

// keyval parses one `key = value` line into the current table.
func (p *parser) keyval() error {
	chain, pos, err := p.keychain()
	if err != nil {
		return err
	}
	t, err := p.tk.Next(token.AtKey)
	if err != nil {
		return p.wrapTokErr(err)
	}
	if t.Type != token.TEquals {
		return p.errAt(ErrStructure, t.Pos, "expected '=' after key, found %s", t.Type)
	}
	val, err := p.value(0)
	if err != nil {
		return err
	}
	if err := p.newlineOrEOF(); err != nil {
		return err
	}
	return p.assign(p.cur, chain, val, pos)
}

// assign walks the dotted chain from cur, creating implicit tables
// for intermediates, and binds the final segment.  A table defined by
// a header or written inline rejects extension; a bound final segment
// is a duplicate.
func (p *parser) assign(cur *ir.Node, chain []string, val *ir.Node, pos *token.Pos) error {
	for _, key := range chain[:len(chain)-1] {
		next := ir.Get(cur, key)
		if next == nil {
			tbl := ir.NewTable()
			cur.Put(key, tbl)
			cur = tbl
			continue
		}
		if next.Type != ir.TableType {
			return p.errAt(ErrTypeConflict, pos,
				"key %q is bound to a %s, not a table", key, next.Type)
		}
		if p.explicit[next] {
			return p.errAt(ErrDuplicateKey, pos,
				"cannot extend table %q defined elsewhere", key)
		}
		cur = next
	}
	last := chain[len(chain)-1]
	if ir.Get(cur, last) != nil {
		return p.errAt(ErrDuplicateKey, pos,
			"duplicate key %q", strings.Join(chain, "."))
	}
	cur.Put(last, val)
	return nil
}

// keychain parses a dotted key: one or more bare or quoted segments
// joined by dots.  The position of the first segment is returned for
// error reporting.
func (p *parser) keychain() ([]string, *token.Pos, error) {
	t, err := p.tk.Next(token.AtKey)
	if err != nil {
		return nil, nil, p.wrapTokErr(err)
	}
	pos := t.Pos
	seg, err := p.keySegment(t)
	if err != nil {
		return nil, nil, err
	}
	chain := []string{seg}
	for {
		t, err := p.tk.Peek(token.AtKey)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, p.wrapTokErr(err)
		}
		if t.Type != token.TDot {
			break
		}
		p.tk.Next(token.AtKey)
		t, err = p.tk.Next(token.AtKey)
		if err != nil {
			return nil, nil, p.wrapTokErr(err)
		}
		seg, err := p.keySegment(t)
		if err != nil {
			return nil, nil, err
		}
		chain = append(chain, seg)
	}
	return chain, pos, nil
}

func (p *parser) keySegment(t *token.Token) (string, error) {
	switch t.Type {
	case token.TKey:
		return string(t.Bytes), nil
	case token.TString:
		if bytes.HasPrefix(t.Bytes, []byte(`"""`)) || bytes.HasPrefix(t.Bytes, []byte("'''")) {
			return "", p.errAt(ErrStructure, t.Pos, "multi-line string cannot be a key")
		}
		return t.String(), nil
	default:
		return "", p.errAt(ErrStructure, t.Pos, "expected key, found %s", t.Type)
	}
}

// value parses one value.  depth counts container nesting and is
// bounded by MaxDepth.
func (p *parser) value(depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, p.errAt(ErrStructure, p.tk.Pos(),
			"value nesting exceeds depth limit %d", p.opts.maxDepth)
	}
	t, err := p.tk.Next(token.AtValue)
	if err != nil {
		return nil, p.wrapTokErr(err)
	}
	var node *ir.Node
	switch t.Type {
	case token.TString:
		node = ir.FromString(t.String())
	case token.TInteger:
		// base 0 covers 0x/0o/0b prefixes and digit underscores.
		i, perr := strconv.ParseInt(string(t.Bytes), 0, 64)
		if perr != nil {
			return nil, p.errAt(ErrMalformedValue, t.Pos, "integer %s: %v", t.Bytes, perr)
		}
		node = ir.FromInt(i)
	case token.TFloat:
		s := strings.ReplaceAll(string(t.Bytes), "_", "")
		// strconv accepts signed inf but not signed nan; the sign of
		// a nan carries no meaning, so drop it
		if s == "+nan" || s == "-nan" {
			s = "nan"
		}
		f, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			return nil, p.errAt(ErrMalformedValue, t.Pos, "float %s: %v", t.Bytes, perr)
		}
		node = ir.FromFloat(f)
	case token.TTrue:
		node = ir.FromBool(true)
	case token.TFalse:
		node = ir.FromBool(false)
	case token.TDatetime, token.TLocalDatetime, token.TLocalDate, token.TLocalTime:
		var derr error
		node, derr = p.datetime(t)
		if derr != nil {
			return nil, derr
		}
	case token.TLSquare:
		return p.array(depth)
	case token.TLCurl:
		return p.inlineTable(depth)
	default:
		return nil, p.errAt(ErrMalformedValue, t.Pos, "unexpected %s in value", t.Type)
	}
	p.trackPos(node, t.Pos)
	return node, nil
}

func (p *parser) datetime(t *token.Token) (*ir.Node, error) {
	// TOML permits a space between date and time; normalize to T.
	s := strings.Replace(string(t.Bytes), " ", "T", 1)
	var (
		layout string
		tt     ir.Type
	)
	switch t.Type {
	case token.TDatetime:
		layout, tt = time.RFC3339, ir.DatetimeType
	case token.TLocalDatetime:
		layout, tt = localDatetimeLayout, ir.LocalDatetimeType
	case token.TLocalDate:
		layout, tt = localDateLayout, ir.LocalDateType
	default:
		layout, tt = localTimeLayout, ir.LocalTimeType
	}
	tm, err := time.Parse(layout, s)
	if err != nil {
		return nil, p.errAt(ErrMalformedValue, t.Pos, "date-time %s: out of range", t.Bytes)
	}
	return ir.FromTime(tt, tm), nil
}

// array parses a [...] value.  Newlines are permitted around elements
// and a trailing comma before ] is fine.
func (p *parser) array(depth int) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType}
	for {
		t, err := p.tk.Peek(token.AtValue)
		if err == io.EOF {
			return nil, p.eofErr("unterminated array")
		}
		if err != nil {
			return nil, p.wrapTokErr(err)
		}
		switch t.Type {
		case token.TNewline:
			p.tk.Next(token.AtValue)
			continue
		case token.TRSquare:
			p.tk.Next(token.AtValue)
			return arr, nil
		}
		elem, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		arr.Append(elem)
	sep:
		for {
			t, err := p.tk.Peek(token.AtValue)
			if err == io.EOF {
				return nil, p.eofErr("unterminated array")
			}
			if err != nil {
				return nil, p.wrapTokErr(err)
			}
			switch t.Type {
			case token.TNewline:
				p.tk.Next(token.AtValue)
			case token.TComma:
				p.tk.Next(token.AtValue)
				break sep
			case token.TRSquare:
				p.tk.Next(token.AtValue)
				return arr, nil
			default:
				return nil, p.errAt(ErrStructure, t.Pos,
					"expected ',' or ']' in array, found %s", t.Type)
			}
		}
	}
}

// inlineTable parses a {...} value.  Inline tables stay on one line,
// forbid trailing commas, and are closed once parsed.
func (p *parser) inlineTable(depth int) (*ir.Node, error) {
	tbl := ir.NewTable()
	p.explicit[tbl] = true
	first := true
	for {
		t, err := p.tk.Peek(token.AtKey)
		if err == io.EOF {
			return nil, p.eofErr("unterminated inline table")
		}
		if err != nil {
			return nil, p.wrapTokErr(err)
		}
		switch {
		case t.Type == token.TNewline:
			return nil, p.errAt(ErrStructure, t.Pos, "newline inside inline table")
		case t.Type == token.TRCurl && first:
			p.tk.Next(token.AtKey)
			return tbl, nil
		}
		first = false
		chain, pos, err := p.keychain()
		if err != nil {
			return nil, err
		}
		t, err = p.tk.Next(token.AtKey)
		if err != nil {
			return nil, p.wrapTokErr(err)
		}
		if t.Type != token.TEquals {
			return nil, p.errAt(ErrStructure, t.Pos, "expected '=' after key, found %s", t.Type)
		}
		val, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := p.assign(tbl, chain, val, pos); err != nil {
			return nil, err
		}
		t, err = p.tk.Next(token.AtKey)
		if err == io.EOF {
			return nil, p.eofErr("unterminated inline table")
		}
		if err != nil {
			return nil, p.wrapTokErr(err)
		}
		switch t.Type {
		case token.TComma:
		case token.TRCurl:
			return tbl, nil
		case token.TNewline:
			return nil, p.errAt(ErrStructure, t.Pos, "newline inside inline table")
		default:
			return nil, p.errAt(ErrStructure, t.Pos,
				"expected ',' or '}' in inline table, found %s", t.Type)
		}
	}
}

// newlineOrEOF requires the line to end after a key-value pair or
// table header.
func (p *parser) newlineOrEOF() error {
	t, err := p.tk.Next(token.AtKey)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return p.wrapTokErr(err)
	}
	if t.Type != token.TNewline {
		return p.errAt(ErrStructure, t.Pos, "expected end of line, found %s", t.Type)
	}
	return nil
}

func (p *parser) errAt(cat error, pos *token.Pos, format string, args ...any) error {
	line := 0
	if pos != nil {
		line = pos.Line()
	}
	return &ParseErr{
		Err:  fmt.Errorf("%w: %s", cat, fmt.Sprintf(format, args...)),
		Line: line,
	}
}

func (p *parser) eofErr(msg string) error {
	return &ParseErr{
		Err:  fmt.Errorf("%w: %s", ErrUnexpectedEOF, msg),
		Line: p.tk.Pos().Line(),
	}
}

// wrapTokErr turns a tokenizer error into a *ParseErr in the lexical
// category.  Bare EOF at a point where input may not end is an
// unexpected-EOF error.
func (p *parser) wrapTokErr(err error) error {
	if err == io.EOF {
		return p.eofErr("input ends mid-expression")
	}
	var terr *token.TokenizeErr
	if errors.As(err, &terr) {
		return &ParseErr{
			Err:  fmt.Errorf("%w: %w", ErrLexical, err),
			Line: terr.Pos.Line(),
		}
	}
	return err
}

func (p *parser) trackPos(node *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
