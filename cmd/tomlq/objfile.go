package main

import (
	"fmt"
	"io"
	"os"

	"github.com/toml-format/go-toml/ir"
	"github.com/toml-format/go-toml/parse"

	"github.com/scott-cotton/cli"
)

// getDocFile parses the TOML document at path, with "-" reading from
// the context's input.
func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// docArgs normalizes the trailing file arguments, defaulting to stdin.
func docArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
