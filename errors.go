// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtree

import "fmt"

// SyntaxError is the concrete type of errors reported by the tokenizer and
// the tree parser.
type SyntaxError struct {
	Line    int // 1-based line of the offending input
	Message string

	err error
}

// NewSyntaxError constructs a *SyntaxError at the given line. The cause err
// may be nil.
func NewSyntaxError(line int, err error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Message: fmt.Sprintf(msg, args...), err: err}
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at line %d: %s", s.Line, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
