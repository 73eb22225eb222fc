// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jtree implements the lexical layer of a decoder for JSON with
// comments.
//
// # Stripping
//
// StripComments removes C-style line (//) and block (/* */) comments from raw
// text, leaving quoted strings untouched and preserving newlines so that line
// numbers are stable. StripWhitespace removes all whitespace outside quoted
// strings:
//
//	clean := jtree.StripComments(string(raw))
//
// # Tokenizing
//
// Tokenize converts stripped text into a flat sequence of tokens, each tagged
// with its Kind and the line where it starts:
//
//	toks, err := jtree.Tokenize(clean)
//	if err != nil {
//	   log.Fatalf("Tokenize failed after %d tokens: %v", len(toks), err)
//	}
//
// The grammar is restricted: there is no null constant, a single numeric
// token class widens from Integer to Float on sight of a decimal point or
// exponent, and string escapes are kept exactly as written rather than
// decoded.
//
// Lexical errors are reported with concrete type *SyntaxError. The tokens
// produced before the error are also returned, but callers must not treat
// them as a complete scan.
//
// The tree parser that consumes these tokens is in package ast.
package jtree
