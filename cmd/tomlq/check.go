package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	okf, errf := fmt.Sprintf, fmt.Sprintf
	if cfg.useColor(cc.Out) {
		okf = color.GreenString
		errf = color.RedString
	}
	failed := false
	for _, arg := range docArgs(args) {
		_, perr := getDocFile(cc, arg, cfg.parseOpts()...)
		switch {
		case perr != nil:
			failed = true
			fmt.Fprintln(cc.Out, errf("%s: %v", arg, perr))
		case !cfg.Quiet:
			fmt.Fprintln(cc.Out, okf("%s: ok", arg))
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
