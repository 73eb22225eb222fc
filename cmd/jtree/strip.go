// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"io"

	"github.com/evetools/jtree"
	"github.com/scott-cotton/cli"
)

func strip(cfg *StripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Strip.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(w io.Writer, in input) error {
		_, err := io.WriteString(w, stripText(in.text, cfg.Whitespace))
		return err
	})
}

func stripText(text string, whitespace bool) string {
	out := jtree.StripComments(text)
	if whitespace {
		return jtree.StripWhitespace(out) + "\n"
	}
	return out
}
