package main

import (
	"encoding/json"
	"fmt"

	tomleval "github.com/toml-format/go-toml/eval"

	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range docArgs(args[1:]) {
		doc, err := getDocFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		res, err := tomleval.Eval(src, doc)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", src, arg, err)
		}
		if s, ok := res.(string); ok {
			fmt.Fprintln(cc.Out, s)
			continue
		}
		d, err := json.Marshal(res)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
	}
	return nil
}
