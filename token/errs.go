package token

import "errors"

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrUnterminated      = errors.New("unterminated")
	ErrNumber            = errors.New("bad number")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrBareCR            = errors.New("bare carriage return")
	ErrDatetime          = errors.New("bad date-time")
	ErrLiteral           = errors.New("bad literal")
)
