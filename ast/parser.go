// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/evetools/jtree"
)

var (
	// ErrNoTokens is reported when the input contains no tokens at all.
	ErrNoTokens = errors.New("no tokens in input")

	// ErrExtraInput is reported when tokens remain after the root struct.
	ErrExtraInput = errors.New("extra input after root struct")
)

// Options control the behavior of the parser. A zero value is ready for use
// with default settings.
type Options struct {
	// If true, an integer literal that does not fit in an int64 is a parse
	// error. By default such a value is clamped to the largest (or smallest)
	// representable int64.
	StrictIntegers bool
}

// Parse reads the complete contents of r and parses it with default options.
func Parse(r io.Reader) (*Struct, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Options{}.ParseString(string(data))
}

// ParseString parses text with default options.
func ParseString(text string) (*Struct, error) { return Options{}.ParseString(text) }

// ParseTokens parses toks with default options.
func ParseTokens(toks []jtree.Token) (*Struct, error) { return Options{}.ParseTokens(toks) }

// MustParse parses text with default options, and panics if parsing fails.
func MustParse(text string) *Struct {
	s, err := ParseString(text)
	if err != nil {
		panic(fmt.Sprintf("parse: %v", err))
	}
	return s
}

// ParseString strips comments from text, tokenizes it, and parses the result.
// The document must consist of exactly one struct.
func (o Options) ParseString(text string) (*Struct, error) {
	toks, err := jtree.Tokenize(jtree.StripComments(text))
	if err != nil {
		return nil, err
	}
	return o.ParseTokens(toks)
}

// ParseTokens parses a complete token sequence into a tree. The first token
// must open the root struct, and the struct must consume every token.
//
// In case of a grammar error the returned error has concrete type
// *jtree.SyntaxError and no tree is returned; any nodes already built are
// released.
//
// Tokens after the closing brace of the root struct are an error wrapping
// ErrExtraInput, rather than being ignored.
func (o Options) ParseTokens(toks []jtree.Token) (_ *Struct, err error) {
	if len(toks) == 0 {
		return nil, ErrNoTokens
	}
	if toks[0].Kind != jtree.LBrace {
		return nil, jtree.NewSyntaxError(toks[0].Line, nil,
			"first token is %v, want %v", toks[0].Kind, jtree.LBrace)
	}

	root := new(Struct)
	p := &parser{toks: toks, opts: o}
	defer p.recoverParseError(root, &err)

	end := p.parseStruct(1, root)
	if end+1 < len(toks) {
		extra := toks[end+1]
		p.syntaxError(extra.Line, ErrExtraInput, "%v (%v)", ErrExtraInput, extra.Kind)
	}
	return root, nil
}

type parser struct {
	toks []jtree.Token
	opts Options
}

// releasePartial releases the tree built before a parse failed.
var releasePartial = Release

func (p *parser) recoverParseError(root *Struct, errp *error) {
	if perr := recover(); perr != nil {
		serr, ok := perr.(*jtree.SyntaxError)
		if !ok {
			panic(perr)
		}
		releasePartial(root)
		*errp = serr
	}
}

// parseStruct consumes the members of a struct whose open brace has already
// been consumed, adding them to out.
// Precondition: i is the index of the token after "{".
// Postcondition: the result is the index of the matching "}".
func (p *parser) parseStruct(i int, out *Struct) int {
	if p.expect(i, jtree.String, jtree.RBrace).Kind == jtree.RBrace {
		return i // empty struct
	}
	for {
		// Parse a single member: "name": value
		name := p.expect(i, jtree.String)
		p.expect(i+1, jtree.Colon)
		m := &Member{Name: name.Text}
		out.Members = append(out.Members, m)
		i = p.parseValue(i+2, func(v Value) { m.Value = v })

		// Check whether we have more members (",") or are done ("}").
		if p.expect(i+1, jtree.Comma, jtree.RBrace).Kind == jtree.RBrace {
			return i + 1
		}
		i += 2
	}
}

// parseArray consumes the elements of an array whose open bracket has already
// been consumed, adding them to out.
// Precondition: i is the index of the token after "[".
// Postcondition: the result is the index of the matching "]".
func (p *parser) parseArray(i int, out *Array) int {
	if p.at(i, "value or "+jtree.RSquare.String()).Kind == jtree.RSquare {
		return i // empty array
	}
	for {
		n := len(out.Values)
		out.Values = append(out.Values, nil)
		i = p.parseValue(i, func(v Value) { out.Values[n] = v })

		// Check whether we have more values (",") or are done ("]").
		if p.expect(i+1, jtree.Comma, jtree.RSquare).Kind == jtree.RSquare {
			return i + 1
		}
		i += 2
	}
}

// parseValue consumes a single value starting at index i, and passes it to
// set. Interior nodes are passed to set before their contents are parsed, so
// a partial tree is always reachable from the root. It returns the index of
// the last token of the value.
func (p *parser) parseValue(i int, set func(Value)) int {
	tok := p.at(i, "value")
	switch tok.Kind {
	case jtree.LBrace:
		s := new(Struct)
		set(s)
		return p.parseStruct(i+1, s)
	case jtree.LSquare:
		a := new(Array)
		set(a)
		return p.parseArray(i+1, a)
	case jtree.True:
		set(Bool(true))
	case jtree.False:
		set(Bool(false))
	case jtree.Integer:
		set(p.parseInt(tok))
	case jtree.Float:
		set(p.parseFloat(tok))
	case jtree.String:
		set(String(tok.Text))
	case jtree.RBrace, jtree.RSquare, jtree.Colon, jtree.Comma:
		p.syntaxError(tok.Line, nil, "unexpected %v", tok.Kind)
	default:
		p.syntaxError(tok.Line, nil, "unknown token %v", tok.Kind)
	}
	return i
}

func (p *parser) parseInt(tok jtree.Token) Int {
	v, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		// On overflow, ParseInt reports the nearest representable value.
		if errors.Is(err, strconv.ErrRange) && !p.opts.StrictIntegers {
			return Int(v)
		}
		p.syntaxError(tok.Line, err, "invalid integer %q", tok.Text)
	}
	return Int(v)
}

func (p *parser) parseFloat(tok jtree.Token) Float {
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.syntaxError(tok.Line, err, "invalid number %q", tok.Text)
	}
	return Float(v)
}

// at returns the token at index i, or reports a syntax error mentioning want
// if the input is exhausted.
func (p *parser) at(i int, want string) jtree.Token {
	if i >= len(p.toks) {
		last := p.toks[len(p.toks)-1]
		p.syntaxError(last.Line, io.ErrUnexpectedEOF, "expected %s, got end of input", want)
	}
	return p.toks[i]
}

// expect returns the token at index i, which must have one of the given kinds.
func (p *parser) expect(i int, kinds ...jtree.Kind) jtree.Token {
	tok := p.at(i, kindLabel(kinds))
	if !slices.Contains(kinds, tok.Kind) {
		p.syntaxError(tok.Line, nil, "expected %s, got %v", kindLabel(kinds), tok.Kind)
	}
	return tok
}

func (p *parser) syntaxError(line int, err error, msg string, args ...any) {
	panic(jtree.NewSyntaxError(line, err, msg, args...))
}

// kindLabel makes a human-readable summary string for the given token kinds.
func kindLabel(kinds []jtree.Kind) string {
	if len(kinds) == 1 {
		return kinds[0].String()
	}
	last := len(kinds) - 1
	ss := make([]string, last)
	for i, k := range kinds[:last] {
		ss[i] = k.String()
	}
	return strings.Join(ss, ", ") + " or " + kinds[last].String()
}
