// Package parse implements a recursive descent parser for TOML
// documents, producing ir.Node trees.
//
// Parse reads a whole document:
//
//	root, err := parse.Parse(d)
//
// Errors are *ParseErr values carrying a 1-based line number and
// wrapping one of the package's category errors (ErrLexical,
// ErrStructure, ErrDuplicateKey, ErrTypeConflict, ErrMalformedValue,
// ErrUnexpectedEOF), so callers can select on errors.Is.
//
// ParseOption values tune behavior: MaxDepth bounds container
// nesting, Positions records where each node came from.
package parse
