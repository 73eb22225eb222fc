// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtree

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Colon               // colon ":"
	Comma               // comma ","
	True                // constant: true
	False               // constant: false
	Integer             // number: integer with no fraction or exponent
	Float               // number with fraction and/or exponent
	String              // quoted string
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Colon:   `":"`,
	Comma:   `","`,
	True:    "true",
	False:   "false",
	Integer: "integer",
	Float:   "float",
	String:  "string",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical unit of the input.
//
// For Integer, Float, and String tokens, Text holds the literal payload. The
// text of a String omits the delimiting quotes, and escape sequences are left
// exactly as written (so `\t` is a backslash followed by "t"). Text is empty
// for all other kinds.
type Token struct {
	Kind Kind
	Line int // 1-based line where the token starts
	Text string
}

// String renders t for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("{type=%v, line=%d, value=%q}", t.Kind, t.Line, t.Text)
}

// Tokenize splits text into a sequence of tokens. Whitespace between tokens is
// skipped. Comments are not recognized; run StripComments first.
//
// On a lexical error, Tokenize stops scanning and returns the tokens produced
// up to that point along with an error of concrete type *SyntaxError.
func Tokenize(text string) ([]Token, error) {
	t := &tokenizer{src: mem.S(text), line: 1}
	err := t.run()
	return t.toks, err
}

type tokenizer struct {
	src  mem.RO
	pos  int // offset of the next unread byte
	line int // current line, 1-based
	toks []Token
}

var (
	textTrue  = mem.S("true")
	textFalse = mem.S("false")
)

func (t *tokenizer) run() error {
	for t.pos < t.src.Len() {
		ch := t.src.At(t.pos)
		switch {
		case ch == '\n':
			t.line++
			t.pos++
		case isSpace(ch):
			t.pos++
		case ch == '"':
			if err := t.scanString(); err != nil {
				return err
			}
		case isNumStart(ch):
			if err := t.scanNumber(); err != nil {
				return err
			}
		case ch == 't':
			if err := t.scanConstant(True, textTrue); err != nil {
				return err
			}
		case ch == 'f':
			if err := t.scanConstant(False, textFalse); err != nil {
				return err
			}
		default:
			k, ok := selfDelim(ch)
			if !ok {
				return t.failf("unexpected %q", ch)
			}
			t.emit(k, t.line, "")
			t.pos++
		}
	}
	return nil
}

func (t *tokenizer) emit(k Kind, line int, text string) {
	t.toks = append(t.toks, Token{Kind: k, Line: line, Text: text})
}

func (t *tokenizer) scanConstant(k Kind, want mem.RO) error {
	if !mem.HasPrefix(t.src.SliceFrom(t.pos), want) {
		return t.failf("unknown constant starting with %q", t.src.At(t.pos))
	}
	t.emit(k, t.line, "")
	t.pos += want.Len()
	return nil
}

// scanString consumes a quoted string. A backslash causes the following byte
// to be skipped over without interpretation, so an escaped quote does not end
// the string.
func (t *tokenizer) scanString() error {
	start, line := t.pos+1, t.line
	t.pos++ // opening quote
	if t.pos >= t.src.Len() {
		return t.failf("input ends in opening quote")
	}
	for t.pos < t.src.Len() {
		ch := t.src.At(t.pos)
		if ch == '"' {
			t.emit(String, line, t.src.Slice(start, t.pos).StringCopy())
			t.pos++
			return nil
		}
		if ch == '\\' {
			t.pos++
			if t.pos >= t.src.Len() {
				break
			}
			ch = t.src.At(t.pos)
		}
		if ch == '\n' {
			t.line++
		}
		t.pos++
	}
	return &SyntaxError{Line: line, Message: "unterminated string constant"}
}

// scanNumber consumes a numeric literal. The token is an Integer unless a
// decimal point or exponent marker is seen. The number ends at a comma, a
// closing bracket, whitespace, or the end of input; the delimiter itself is
// left for the next token.
func (t *tokenizer) scanNumber() error {
	start, kind := t.pos, Integer
	var dot, exp bool
	if t.src.At(t.pos) == '.' {
		dot, kind = true, Float
	}
	t.pos++

	for t.pos < t.src.Len() {
		ch := t.src.At(t.pos)
		switch {
		case isDigit(ch):
			t.pos++
			continue
		case isNumEnd(ch):
			// Leave the delimiter unread.
		case ch == '.':
			if dot {
				return t.failf("multiple decimal points in numeric constant")
			}
			dot, kind = true, Float
			t.pos++
			continue
		case ch == 'e' || ch == 'E':
			if exp {
				return t.failf("multiple exponents in numeric constant")
			}
			exp, kind = true, Float
			t.pos++
			if t.pos < t.src.Len() && isSign(t.src.At(t.pos)) {
				t.pos++
			}
			continue
		default:
			return t.failf("unrecognized character %q in numeric constant", ch)
		}
		break
	}
	t.emit(kind, t.line, t.src.Slice(start, t.pos).StringCopy())
	return nil
}

func (t *tokenizer) failf(msg string, args ...any) error {
	return &SyntaxError{Line: t.line, Message: fmt.Sprintf(msg, args...)}
}

func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isSign(ch byte) bool     { return ch == '-' || ch == '+' }
func isNumStart(ch byte) bool { return isDigit(ch) || isSign(ch) || ch == '.' }
func isNumEnd(ch byte) bool   { return ch == ',' || ch == '}' || ch == ']' || isSpace(ch) }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Colon, Comma}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}[]:,", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
