// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtree

import "strings"

type commentState byte

const (
	csNormal          commentState = iota // ordinary text
	csString                              // inside a quoted string
	csEscape                              // after "\" inside a string
	csBeginComment                        // after a "/" in ordinary text
	csLineComment                         // inside "// ..."
	csLineEscape                          // after "\" inside a line comment
	csBlockComment                        // inside "/* ... */"
	csBeginBlockClose                     // after "*" inside a block comment
)

// StripComments returns a copy of text with all line (// ...) and block
// (/* ... */) comments removed. Comment markers inside quoted strings are not
// treated as comments.
//
// Newlines are never removed, including those that end or fall inside a
// comment, so that line numbers in the result agree with text. A line comment
// continues past a newline escaped with "\".
//
// Inside a block comment, a "*" that is not followed by "/" is copied to the
// output together with the character after it, so "/* a * b */" leaves "* ".
// A "/" that does not open a comment is copied with the character after it,
// and that character is not otherwise interpreted: in `/"//"` the quote does
// not begin a string, and the "//" that follows begins a comment.
//
// An unterminated string or block comment is not an error: the remainder of
// the input is passed through (string) or discarded (comment). If the input
// ends just after a "\" inside a string, a second "\" is added to the output.
func StripComments(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	state := csNormal
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch state {
		case csNormal:
			switch ch {
			case '"':
				state = csString
				sb.WriteByte(ch)
			case '/':
				state = csBeginComment // defer the slash
			default:
				sb.WriteByte(ch)
			}

		case csString:
			switch ch {
			case '"':
				state = csNormal
			case '\\':
				state = csEscape
			}
			sb.WriteByte(ch)

		case csEscape:
			sb.WriteByte(ch)
			state = csString

		case csBeginComment:
			switch ch {
			case '/':
				state = csLineComment
			case '*':
				state = csBlockComment
			default:
				// Not a comment after all; recover the deferred slash.
				sb.WriteByte('/')
				sb.WriteByte(ch)
				state = csNormal
			}

		case csLineComment:
			switch ch {
			case '\n':
				sb.WriteByte(ch)
				state = csNormal
			case '\\':
				state = csLineEscape
			}

		case csLineEscape:
			if ch == '\n' {
				sb.WriteByte(ch)
			}
			state = csLineComment

		case csBlockComment:
			switch ch {
			case '*':
				state = csBeginBlockClose
			case '\n':
				sb.WriteByte(ch)
			}

		case csBeginBlockClose:
			if ch == '/' {
				state = csNormal
				break
			}
			// Not a close; the star and ch are passed through.
			sb.WriteByte('*')
			sb.WriteByte(ch)
			state = csBlockComment
		}
	}

	// Flush a character deferred at the very end of the input.
	switch state {
	case csBeginComment:
		sb.WriteByte('/')
	case csEscape:
		sb.WriteByte('\\')
	}
	return sb.String()
}

type spaceState byte

const (
	ssNormal spaceState = iota
	ssString
	ssEscape
)

// StripWhitespace returns a copy of text with all whitespace outside quoted
// strings removed. It does not recognize comments; run StripComments first.
func StripWhitespace(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	state := ssNormal
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch state {
		case ssNormal:
			if ch == '"' {
				state = ssString
			} else if isSpace(ch) {
				continue
			}
			sb.WriteByte(ch)

		case ssString:
			switch ch {
			case '"':
				state = ssNormal
			case '\\':
				state = ssEscape
			}
			sb.WriteByte(ch)

		case ssEscape:
			sb.WriteByte(ch)
			state = ssString
		}
	}
	return sb.String()
}

// isSpace reports whether ch is whitespace in the sense of C isspace.
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
