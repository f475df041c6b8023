// Package kpath provides dotted key paths over TOML value trees.
//
// A path is a dot-separated sequence of field names with optional
// array indices: "a.b", "servers.alpha.ip", "fruits[1].name".
// Field names containing characters outside the bare-key set are
// quoted the way TOML quotes keys: `"a.b".c`.
package kpath

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/toml-format/go-toml/token"
)

type KPath struct {
	Field *string // table field name
	Index *int    // array index
	Next  *KPath  // next segment, nil for leaf
}

func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	x := p
	for x != nil {
		if x.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			field := *x.Field
			if token.NeedsQuote(field) {
				buf.WriteString(token.Quote(field))
			} else {
				buf.WriteString(field)
			}
		} else if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		x = x.Next
	}
	return buf.String()
}

// Parse parses a kpath string.  The empty string is the root path and
// parses to nil.
func Parse(s string) (*KPath, error) {
	if s == "" {
		return nil, nil
	}
	d := []byte(s)
	var head, tail *KPath
	add := func(kp *KPath) {
		if head == nil {
			head = kp
		} else {
			tail.Next = kp
		}
		tail = kp
	}
	i := 0
	field := true // a field segment is expected next
	for i < len(d) {
		switch c := d[i]; {
		case c == '[':
			j := i + 1
			for j < len(d) && d[j] >= '0' && d[j] <= '9' {
				j++
			}
			if j == i+1 || j >= len(d) || d[j] != ']' {
				return nil, fmt.Errorf("bad index at offset %d in %q", i, s)
			}
			idx, err := strconv.Atoi(string(d[i+1 : j]))
			if err != nil {
				return nil, err
			}
			add(&KPath{Index: &idx})
			i = j + 1
			field = false
		case c == '.':
			if field {
				return nil, fmt.Errorf("empty segment at offset %d in %q", i, s)
			}
			i++
			field = true
		case !field:
			return nil, fmt.Errorf("expected '.' or '[' at offset %d in %q", i, s)
		case c == '"' || c == '\'':
			sz, err := token.ScanQuoted(d[i:])
			if err != nil {
				return nil, fmt.Errorf("bad quoted segment at offset %d in %q: %w", i, s, err)
			}
			f := token.QuotedToString(d[i : i+sz])
			add(&KPath{Field: &f})
			i += sz
			field = false
		default:
			j := i
			for j < len(d) && d[j] != '.' && d[j] != '[' {
				j++
			}
			f := string(d[i:j])
			if token.NeedsQuote(f) {
				return nil, fmt.Errorf("bad field %q in %q", f, s)
			}
			add(&KPath{Field: &f})
			i = j
			field = false
		}
	}
	if field {
		return nil, fmt.Errorf("trailing '.' in %q", s)
	}
	return head, nil
}
