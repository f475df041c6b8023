package parse

import (
	"errors"
	"fmt"
)

// Error categories.  Every error returned by Parse wraps exactly one
// of these; errors.Is selects the category.
var (
	ErrLexical        = errors.New("lexical error")
	ErrStructure      = errors.New("structural error")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrTypeConflict   = errors.New("type conflict")
	ErrMalformedValue = errors.New("malformed value")
	ErrUnexpectedEOF  = errors.New("unexpected end of input")
)

// ParseErr is the error type returned by Parse.  Line is the 1-based
// source line where the problem was detected.
type ParseErr struct {
	Err  error
	Line int
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}
