package main

import (
	"io"
	"os"

	"github.com/toml-format/go-toml/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Compact bool `cli:"name=c desc='compact JSON output'"`
	Color   bool `cli:"name=color desc='colorize output'"`
	Depth   int  `cli:"name=depth desc='max value nesting depth'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Depth > 0 {
		return []parse.ParseOption{parse.MaxDepth(cfg.Depth)}
	}
	return nil
}

// useColor reports whether output to w gets colorized.  The -color
// flag forces it on; otherwise color is used only on a terminal,
// following the usual convention for pipeline friendliness.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Raw bool `cli:"name=r desc='print scalar strings without JSON quoting'"`
	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress per-file output'"`
	Check *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}
