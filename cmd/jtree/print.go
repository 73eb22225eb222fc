// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"io"

	"github.com/evetools/jtree/ast"
	"github.com/scott-cotton/cli"
)

func printTrees(cfg *PrintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Print.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(w io.Writer, in input) error {
		var root ast.Root
		defer root.Clear()
		if err := root.ParseWithOptions(in.text, cfg.parseOpts()); err != nil {
			return err
		}
		return writeTree(w, &root, cfg.JSON)
	})
}

func writeTree(w io.Writer, root *ast.Root, compact bool) error {
	var text string
	if compact {
		text = root.Top().JSON() + "\n"
	} else {
		text = root.String()
	}
	_, err := io.WriteString(w, text)
	return err
}
