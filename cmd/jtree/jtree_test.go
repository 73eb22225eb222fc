// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evetools/jtree"
	"github.com/evetools/jtree/ast"
	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestWriteTokens(t *testing.T) {
	var sb strings.Builder
	if err := writeTokens(&sb, "{\"a\": /* c */ 1}\n"); err != nil {
		t.Fatalf("writeTokens: unexpected error: %v", err)
	}
	const want = `{type="{", line=1, value=""}
{type=string, line=1, value="a"}
{type=":", line=1, value=""}
{type=integer, line=1, value="1"}
{type="}", line=1, value=""}
`
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("writeTokens (-want, +got):\n%s", diff)
	}

	// Tokens before an error are still written.
	sb.Reset()
	err := writeTokens(&sb, "[1, nope]")
	var serr *jtree.SyntaxError
	if !errors.As(err, &serr) {
		t.Errorf("writeTokens: got error %v, want *SyntaxError", err)
	}
	if got := strings.Count(sb.String(), "\n"); got != 3 {
		t.Errorf("writeTokens: got %d tokens before error, want 3:\n%s", got, sb.String())
	}
}

func TestStripText(t *testing.T) {
	const input = "{ \"a b\": 1, // one\n  \"c\": 2 /* two */ }"
	if got, want := stripText(input, false), "{ \"a b\": 1, \n  \"c\": 2  }"; got != want {
		t.Errorf("stripText: got %q, want %q", got, want)
	}
	if got, want := stripText(input, true), "{\"a b\":1,\"c\":2}\n"; got != want {
		t.Errorf("stripText -w: got %q, want %q", got, want)
	}
}

func TestWriteTree(t *testing.T) {
	root := ast.NewRoot(ast.MustParse(`{"x": [1, 2.5], "y": {}}`))

	var sb strings.Builder
	if err := writeTree(&sb, root, true); err != nil {
		t.Fatalf("writeTree: unexpected error: %v", err)
	}
	if got, want := sb.String(), "{\"x\":[1,2.5],\"y\":{}}\n"; got != want {
		t.Errorf("writeTree compact: got %q, want %q", got, want)
	}

	sb.Reset()
	if err := writeTree(&sb, root, false); err != nil {
		t.Fatalf("writeTree: unexpected error: %v", err)
	}
	const want = `root
{
    "x":
    [
        1
        2.5
    ]
    "y": {}
}
`
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("writeTree (-want, +got):\n%s", diff)
	}
}

func TestWriteDiff(t *testing.T) {
	a := ast.FormatToString(ast.MustParse(`{"a": 1, "b": true}`))
	b := ast.FormatToString(ast.MustParse(`{"a": 2, "b": true}`))

	var sb strings.Builder
	writeDiff(&sb, newPalette(false), a, b)
	const want = ` {
-    "a": 1
+    "a": 2
     "b": true
 }
`
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("writeDiff (-want, +got):\n%s", diff)
	}
}

func TestReport(t *testing.T) {
	serr := jtree.NewSyntaxError(3, nil, "unexpected %q", 'x')
	tests := []struct {
		err  error
		want string
	}{
		{&inputError{name: "in.json", err: serr}, "error: in.json:3: unexpected 'x'\n"},
		{&inputError{name: "in.json", err: os.ErrNotExist}, "error: in.json: file does not exist\n"},
		{errors.New("bad"), "error: bad\n"},
	}
	for _, test := range tests {
		var sb strings.Builder
		report(&sb, newPalette(false), test.err)
		if got := sb.String(); got != test.want {
			t.Errorf("report %v: got %q, want %q", test.err, got, test.want)
		}
	}
}

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(`{"f": 1}`), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := readInputs(strings.NewReader(`{"s": 2}`), []string{path, "-"})
	if err != nil {
		t.Fatalf("readInputs: unexpected error: %v", err)
	}
	want := []input{
		{name: path, text: `{"f": 1}`},
		{name: stdinName, text: `{"s": 2}`},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(input{})); diff != "" {
		t.Errorf("readInputs (-want, +got):\n%s", diff)
	}

	// No arguments reads stdin.
	got, err = readInputs(strings.NewReader("{}"), nil)
	if err != nil || len(got) != 1 || got[0].name != stdinName {
		t.Errorf("readInputs(nil): got %+v, %v", got, err)
	}

	// Stdin cannot be read twice.
	_, err = readInputs(strings.NewReader(`{"a": 1}`), []string{"-", path, "-"})
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("readInputs(-, -): got %v, want %v", err, cli.ErrUsage)
	}

	_, err = readInputs(strings.NewReader(""), []string{filepath.Join(dir, "nonesuch")})
	var ierr *inputError
	if !errors.As(err, &ierr) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readInputs missing file: got %v, want not-exist inputError", err)
	}
}
