// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/evetools/jtree/ast"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	ins, err := readInputs(cc.In, args)
	if err != nil {
		return err
	}
	var trees [2]*ast.Struct
	for i, in := range ins {
		s, err := cfg.parseOpts().ParseString(in.text)
		if err != nil {
			return &inputError{name: in.name, err: err}
		}
		defer ast.Release(s)
		trees[i] = s
	}
	if ast.Equal(trees[0], trees[1]) {
		return nil
	}
	fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n", ins[0].name, ins[1].name)
	writeDiff(cc.Out, cfg.painter(cc.Out), ast.FormatToString(trees[0]), ast.FormatToString(trees[1]))
	return errDiffers
}

// writeDiff writes a line-oriented diff from a to b. Deleted lines are marked
// "-", inserted lines "+", and common lines " ".
func writeDiff(w io.Writer, p *palette, a, b string) {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				fmt.Fprintln(w, p.Delete.Sprintf("-%s", line))
			case diffpatch.DiffInsert:
				fmt.Fprintln(w, p.Insert.Sprintf("+%s", line))
			case diffpatch.DiffEqual:
				fmt.Fprintf(w, " %s\n", line)
			}
		}
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
