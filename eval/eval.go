// Package eval runs expressions against parsed TOML documents.  The
// document's top-level fields are the expression environment, so for
// a document with `[owner]` the expression `owner.name` works
// directly.
package eval

import (
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/toml-format/go-toml/ir"
)

// Eval compiles and runs src against doc.
func Eval(src string, doc *ir.Node) (any, error) {
	prg, err := Compile(src, doc)
	if err != nil {
		return nil, err
	}
	return Run(prg, doc)
}

// Compile compiles src for later runs against doc or documents shaped
// like it.
func Compile(src string, doc *ir.Node) (*vm.Program, error) {
	return expr.Compile(src, exprOpts(doc)...)
}

// Run runs a compiled program against doc.
func Run(prg *vm.Program, doc *ir.Node) (any, error) {
	return expr.Run(prg, ToAny(doc))
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			node, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(node), nil
		},
			new(func(string) any)),
		expr.Function("keys", func(params ...any) (any, error) {
			node, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			if _, err := node.AsTable(); err != nil {
				return nil, err
			}
			res := make([]string, len(node.Fields))
			for i, f := range node.Fields {
				res[i] = f.String
			}
			return res, nil
		},
			new(func(string) []string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
