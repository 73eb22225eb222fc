// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"

	"github.com/evetools/jtree"
	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(w io.Writer, in input) error {
		return writeTokens(w, in.text)
	})
}

// writeTokens writes the tokens of text to w, one per line. On a lexical
// error, the tokens before the error are written and the error is returned.
func writeTokens(w io.Writer, text string) error {
	toks, err := jtree.Tokenize(jtree.StripComments(text))
	for _, tok := range toks {
		fmt.Fprintln(w, tok.String())
	}
	return err
}
