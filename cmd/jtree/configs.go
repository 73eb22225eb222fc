// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"io"
	"os"

	"github.com/evetools/jtree/ast"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Strict  bool `cli:"name=strict desc='reject integers that do not fit in 64 bits'"`
	Color   bool `cli:"name=color desc='color diagnostics and diffs'"`
	NoColor bool `cli:"name=nocolor desc='never use color'"`

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() ast.Options {
	return ast.Options{StrictIntegers: cfg.Strict}
}

// useColor reports whether output to w should be colored. Unless forced on
// or off by flags, color is used only when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// painter returns a palette for output to w.
func (cfg *MainConfig) painter(w io.Writer) *palette {
	return newPalette(cfg.useColor(w))
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}

type StripConfig struct {
	*MainConfig

	Whitespace bool `cli:"name=w aliases=white desc='also remove whitespace outside strings'"`

	Strip *cli.Command
}

type PrintConfig struct {
	*MainConfig

	JSON bool `cli:"name=json desc='print compact JSON instead of the indented tree'"`

	Print *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

// A palette holds the color functions used for diagnostics and diffs.
type palette struct {
	Error, Location, Insert, Delete *color.Color
}

func newPalette(enable bool) *palette {
	p := &palette{
		Error:    color.New(color.FgRed, color.Bold),
		Location: color.New(color.FgCyan),
		Insert:   color.New(color.FgGreen),
		Delete:   color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.Error, p.Location, p.Insert, p.Delete} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
