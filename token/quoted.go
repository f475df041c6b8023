package token

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ScanQuoted scans a quoted string at the start of d and returns its
// length, delimiters included.
func ScanQuoted(d []byte) (int, error) {
	return scanString(d)
}

// scanString scans a TOML string starting at d[0], which must be a
// quote character.  It recognizes all four forms: basic "...",
// literal '...', multiline basic """...""" and multiline literal
// '''...'''.  It returns the total length including delimiters.
// Escapes are validated for basic forms; literal forms take content
// verbatim.  Single-line forms may not contain a raw newline.
func scanString(d []byte) (int, error) {
	qc := d[0]
	if bytes.HasPrefix(d, []byte{qc, qc, qc}) {
		return scanMultiline(d, qc)
	}
	i := 1
	n := len(d)
	for i < n {
		c := d[i]
		switch c {
		case qc:
			if !utf8.Valid(d[1:i]) {
				return 0, ErrBadUTF8
			}
			return i + 1, nil
		case '\n':
			return 0, ErrUnterminated
		case '\\':
			if qc == '\'' {
				i++
				continue
			}
			var err error
			i, err = scanEscape(d, i, false)
			if err != nil {
				return 0, err
			}
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

func scanMultiline(d []byte, qc byte) (int, error) {
	term := []byte{qc, qc, qc}
	i := 3
	n := len(d)
	for i < n {
		if d[i] == '\\' && qc == '"' {
			var err error
			i, err = scanEscape(d, i, true)
			if err != nil {
				return 0, err
			}
			continue
		}
		if bytes.HasPrefix(d[i:], term) {
			// quotes immediately before the delimiter belong
			// to the content, up to two of them
			j := i + 3
			for k := 0; k < 2 && j < n && d[j] == qc; k++ {
				j++
			}
			if !utf8.Valid(d[3 : j-3]) {
				return 0, ErrBadUTF8
			}
			return j, nil
		}
		i++
	}
	return 0, ErrUnterminated
}

// scanEscape validates the escape sequence at d[i] (a backslash) and
// returns the offset just past it.  Multiline basic strings permit a
// line-ending backslash, which is validated here and folded away in
// QuotedToString.
func scanEscape(d []byte, i int, multi bool) (int, error) {
	if i+1 >= len(d) {
		return 0, ErrUnterminated
	}
	switch d[i+1] {
	case 'b', 't', 'n', 'f', 'r', '"', '\\', '/':
		return i + 2, nil
	case 'u':
		if i+6 > len(d) {
			return 0, ErrUnterminated
		}
		if !allHex(d[i+2 : i+6]) {
			return 0, ErrBadUnicode
		}
		// surrogate halves are not Unicode scalar values
		if hi := hexNibble(d[i+2])<<4 | hexNibble(d[i+3]); hi >= 0xD8 && hi <= 0xDF {
			return 0, ErrBadUnicode
		}
		return i + 6, nil
	case '\n':
		if multi {
			return i + 2, nil
		}
		return 0, ErrBadEscape
	case '\r':
		if multi && i+2 < len(d) && d[i+2] == '\n' {
			return i + 3, nil
		}
		return 0, ErrBadEscape
	default:
		return 0, ErrBadEscape
	}
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString decodes a scanned string token, delimiters included,
// into its value.  The input must have passed scanString: malformed
// input here is an internal error.
func QuotedToString(d []byte) string {
	qc := d[0]
	multi := bytes.HasPrefix(d, []byte{qc, qc, qc})
	if multi {
		d = d[3 : len(d)-3]
		// a newline right after the opening delimiter is trimmed
		if len(d) > 0 && d[0] == '\n' {
			d = d[1:]
		} else if len(d) > 1 && d[0] == '\r' && d[1] == '\n' {
			d = d[2:]
		}
	} else {
		d = d[1 : len(d)-1]
	}
	if qc == '\'' {
		return string(d)
	}
	return unescapeBasic(d)
}

func unescapeBasic(d []byte) string {
	b := &strings.Builder{}
	i := 0
	for i < len(d) {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		switch d[i] {
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '/':
			b.WriteByte('/')
		case '\\':
			b.WriteByte('\\')
		case 'u':
			dst := []byte{0, 0}
			if _, err := hex.Decode(dst, d[i+1:i+5]); err != nil {
				panic(fmt.Sprintf("internal string %q", string(d)))
			}
			b.WriteRune(rune(dst[0])<<8 | rune(dst[1]))
			i += 4
		case '\n', '\r':
			// line-ending backslash: skip whitespace up to and
			// including the next non-blank character run
			i++
			for i < len(d) {
				switch d[i] {
				case ' ', '\t', '\n', '\r':
					i++
					continue
				}
				break
			}
			continue
		default:
			panic(fmt.Sprintf("internal string %q", string(d)))
		}
		i++
	}
	return b.String()
}

// Quote renders v as a basic TOML string.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// NeedsQuote reports whether v can stand as a bare key.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for i := 0; i < len(v); i++ {
		if !bareKeyChar(v[i]) {
			return true
		}
	}
	return false
}
