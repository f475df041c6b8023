package token

// scanDatetime classifies a date-time literal at the start of d and
// returns its length and token type.  It returns 0 when d does not
// start with one.  Forms, most to least specific:
//
//	1979-05-27T07:32:00Z       offset date-time (also [+-]hh:mm offsets)
//	1979-05-27T07:32:00        local date-time (space separator allowed)
//	1979-05-27                 local date
//	07:32:00                   local time (optional fractional seconds)
func scanDatetime(d []byte) (int, TokenType) {
	if n := scanClock(d); n > 0 && !digitsAt(d, 0, 4) {
		return n, TLocalTime
	}
	if !digitsAt(d, 0, 4) || !sepAt(d, 4, '-') || !digitsAt(d, 5, 2) || !sepAt(d, 7, '-') || !digitsAt(d, 8, 2) {
		return 0, 0
	}
	i := 10
	if i >= len(d) || (d[i] != 'T' && d[i] != ' ') {
		return i, TLocalDate
	}
	clock := scanClock(d[i+1:])
	if clock == 0 {
		return i, TLocalDate
	}
	i += 1 + clock
	if i < len(d) && d[i] == 'Z' {
		return i + 1, TDatetime
	}
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		if digitsAt(d, i+1, 2) && sepAt(d, i+3, ':') && digitsAt(d, i+4, 2) {
			return i + 6, TDatetime
		}
	}
	return i, TLocalDatetime
}

// scanClock scans hh:mm:ss with optional fractional seconds.
func scanClock(d []byte) int {
	if !digitsAt(d, 0, 2) || !sepAt(d, 2, ':') || !digitsAt(d, 3, 2) || !sepAt(d, 5, ':') || !digitsAt(d, 6, 2) {
		return 0
	}
	i := 8
	if i < len(d) && d[i] == '.' {
		n := 0
		for i+1+n < len(d) && asciiDigit(d[i+1+n]) {
			n++
		}
		if n > 0 {
			i += 1 + n
		}
	}
	return i
}

func digitsAt(d []byte, i, n int) bool {
	if i+n > len(d) {
		return false
	}
	for j := i; j < i+n; j++ {
		if !asciiDigit(d[j]) {
			return false
		}
	}
	return true
}

func sepAt(d []byte, i int, c byte) bool {
	return i < len(d) && d[i] == c
}
