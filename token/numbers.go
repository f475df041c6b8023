package token

import "bytes"

// scanNumber scans a TOML numeric literal at the start of d and
// reports how many bytes it spans and whether it is a float.  It
// covers optional sign, underscore separators, 0x/0o/0b radix
// integers, decimal integers and floats with fraction and exponent,
// and signed inf/nan.
func scanNumber(d []byte) (int, bool, error) {
	i := 0
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		i = 1
	}
	if bytes.HasPrefix(d[i:], []byte("inf")) || bytes.HasPrefix(d[i:], []byte("nan")) {
		return i + 3, true, nil
	}
	if i == 0 && len(d) > 1 && d[0] == '0' {
		switch d[1] {
		case 'x':
			n := digitRun(d[2:], hexDigit)
			if n == 0 {
				return 0, false, ErrNumber
			}
			return 2 + n, false, nil
		case 'o':
			n := digitRun(d[2:], octalDigit)
			if n == 0 {
				return 0, false, ErrNumber
			}
			return 2 + n, false, nil
		case 'b':
			n := digitRun(d[2:], binaryDigit)
			if n == 0 {
				return 0, false, ErrNumber
			}
			return 2 + n, false, nil
		}
	}
	digits := digitRun(d[i:], asciiDigit)
	if digits == 0 {
		return 0, false, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return 0, false, ErrNumberLeadingZero
	}
	i += digits
	f := fract(d[i:])
	e := exp(d[i+f:])
	if f+e == 0 {
		return i, false, nil
	}
	return i + f + e, true, nil
}

// digitRun consumes digits of the given class with underscore
// separators between them.  A run may neither start nor end with an
// underscore.
func digitRun(d []byte, digit func(byte) bool) int {
	i := 0
	for i < len(d) {
		if digit(d[i]) {
			i++
			continue
		}
		if d[i] == '_' && i > 0 && i+1 < len(d) && digit(d[i+1]) {
			i++
			continue
		}
		break
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func octalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func binaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func fract(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	n := digitRun(d[1:], asciiDigit)
	if n == 0 {
		// . must be followed by 1 or more digits
		return 0
	}
	return 1 + n
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := digitRun(d[i:], asciiDigit)
	if n == 0 {
		return 0
	}
	return n + i
}
