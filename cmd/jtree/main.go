// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jtree is a diagnostic tool for JSON documents with comments. It
// shows the comment-stripped text, the token stream, and the parsed tree of
// its inputs, and compares the trees of two documents.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
