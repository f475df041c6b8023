package main

import (
	"fmt"
	"io"

	"github.com/toml-format/go-toml/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range docArgs(args[1:]) {
		doc, err := getDocFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		node, err := doc.GetPath(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", arg, path, err)
		}
		if err := printNode(cfg, cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}

func printNode(cfg *GetConfig, w io.Writer, node *ir.Node) error {
	if cfg.Raw && node.Type == ir.StringType {
		fmt.Fprintln(w, node.String)
		return nil
	}
	d, err := renderJSON(cfg.MainConfig, node)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", d)
	return err
}
