// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/evetools/jtree"
	"github.com/scott-cotton/cli"
)

// errDiffers is reported by diff when its inputs do not match. It sets the
// exit status but is not printed.
var errDiffers = errors.New("inputs differ")

func jtreeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: must specify at most one of -color -nocolor", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cli.ErrUsage):
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	case errors.Is(err, errDiffers):
		return cli.ExitCodeErr(1)
	}
	report(os.Stderr, cfg.painter(os.Stderr), err)
	return cli.ExitCodeErr(1)
}

// An inputError records the name of the input that caused err.
type inputError struct {
	name string
	err  error
}

func (e *inputError) Error() string { return e.name + ": " + e.err.Error() }

func (e *inputError) Unwrap() error { return e.err }

// report writes a one-line diagnostic for err to w. Syntax errors are located
// by input name and line.
func report(w io.Writer, p *palette, err error) {
	label := p.Error.Sprint("error:")
	var ierr *inputError
	var serr *jtree.SyntaxError
	switch {
	case errors.As(err, &ierr) && errors.As(err, &serr):
		fmt.Fprintf(w, "%s %s: %s\n", label, p.Location.Sprintf("%s:%d", ierr.name, serr.Line), serr.Message)
	case errors.As(err, &ierr):
		fmt.Fprintf(w, "%s %s: %v\n", label, p.Location.Sprint(ierr.name), ierr.err)
	default:
		fmt.Fprintf(w, "%s %v\n", label, err)
	}
}

// An input is the complete text of a named input.
type input struct {
	name string
	text string
}

const stdinName = "<stdin>"

// readInputs reads the inputs named by args. The name "-" and an empty list
// both denote stdin, which may be named at most once.
func readInputs(stdin io.Reader, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	out := make([]input, 0, len(args))
	sawStdin := false
	for _, arg := range args {
		var data []byte
		var err error
		name := arg
		if arg == "-" {
			if sawStdin {
				return nil, fmt.Errorf("%w: stdin (-) may be named only once", cli.ErrUsage)
			}
			sawStdin = true
			name = stdinName
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(arg)
		}
		if err != nil {
			return nil, &inputError{name: name, err: err}
		}
		out = append(out, input{name: name, text: string(data)})
	}
	return out, nil
}

// eachInput calls f for each input named by args. When there is more than
// one input, each is preceded by a header line naming it.
func eachInput(cc *cli.Context, args []string, f func(io.Writer, input) error) error {
	ins, err := readInputs(cc.In, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		if len(ins) > 1 {
			fmt.Fprintf(cc.Out, "# %s\n", in.name)
		}
		if err := f(cc.Out, in); err != nil {
			return &inputError{name: in.name, err: err}
		}
	}
	return nil
}
