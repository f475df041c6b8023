package main

import (
	"fmt"

	"github.com/toml-format/go-toml/ir"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path := ""
	if len(args) > 0 {
		path = args[0]
		args = args[1:]
	}
	for _, arg := range docArgs(args) {
		doc, err := getDocFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		node, err := doc.GetPath(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", arg, path, err)
		}
		if node.Type != ir.TableType {
			return fmt.Errorf("%s: %q is a %s, not a table", arg, path, node.Type)
		}
		for _, f := range node.Fields {
			fmt.Fprintln(cc.Out, f.String)
		}
	}
	return nil
}
