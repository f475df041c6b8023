package main

import (
	"github.com/toml-format/go-toml/ir"
)

func renderJSON(cfg *MainConfig, node *ir.Node) ([]byte, error) {
	if cfg.Compact {
		return ir.ToJSON(node)
	}
	return ir.ToJSONIndent(node)
}
