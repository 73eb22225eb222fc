// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jtree").
		WithSynopsis("jtree [opts] command [opts] [files]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jtreeMain(cfg, cc, args)
		}).
		WithSubs(
			TokensCommand(cfg),
			StripCommand(cfg),
			PrintCommand(cfg),
			DiffCommand(cfg))
}

const mainDescription = `jtree decodes JSON documents that may contain comments.

Each document must consist of a single object. Comments in the C style
(/* block */) and C++ style (// line) are removed before decoding, except
where they appear inside a quoted string.

Inputs are named by path; "-" or no path at all reads standard input.`

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("tok", "t").
		WithSynopsis("tokens [files]").
		WithDescription("print the tokens of each input, one per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func StripCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StripConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Strip, "strip").
		WithAliases("s").
		WithSynopsis("strip [-w] [files]").
		WithDescription("print each input with comments removed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return strip(cfg, cc, args)
		})
}

func PrintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PrintConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Print, "print").
		WithAliases("p").
		WithSynopsis("print [-json] [files]").
		WithDescription("parse each input and print its tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return printTrees(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff a b").
		WithDescription("compare the trees of two inputs; exit status 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
