package parse

import (
	"github.com/toml-format/go-toml/ir"
	"github.com/toml-format/go-toml/token"
)

// DefaultMaxDepth bounds the nesting of inline tables and arrays.
// Recursive descent otherwise turns adversarial input into stack
// exhaustion.
const DefaultMaxDepth = 100

type parseOpts struct {
	maxDepth  int
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// MaxDepth overrides DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// Positions records the source position of each parsed node in m.
func Positions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
