// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

// A Root is an owning handle to the top struct of a parsed document. The zero
// value is an empty root, ready for use.
type Root struct {
	top *Struct
}

// NewRoot returns a root that takes ownership of s. If s == nil the root is
// empty.
func NewRoot(s *Struct) *Root { return &Root{top: s} }

// Parse replaces the contents of r with the tree parsed from text. Any
// previous contents are released first; if parsing fails, r is left empty.
func (r *Root) Parse(text string) error { return r.ParseWithOptions(text, Options{}) }

// ParseWithOptions is as Parse, using the given parser options.
func (r *Root) ParseWithOptions(text string, opts Options) error {
	r.Clear()
	s, err := opts.ParseString(text)
	if err != nil {
		return err
	}
	r.top = s
	return nil
}

// Top returns the top struct of r, or nil if r is empty.
func (r *Root) Top() *Struct { return r.top }

// IsEmpty reports whether r holds no tree.
func (r *Root) IsEmpty() bool { return r.top == nil }

// Copy returns an independent deep copy of r.
func (r *Root) Copy() *Root {
	if r.top == nil {
		return new(Root)
	}
	return &Root{top: r.top.Copy()}
}

// Clear releases the tree held by r, if any, and leaves r empty. It reports
// the number of nodes released.
func (r *Root) Clear() int {
	if r.top == nil {
		return 0
	}
	n := Release(r.top)
	r.top = nil
	return n
}

// String renders r with the diagnostic Formatter, labelled "root".
func (r *Root) String() string {
	if r.top == nil {
		return "JSON tree is empty\n"
	}
	if r.top.Len() == 0 {
		return "root {}\n"
	}
	return "root\n" + FormatToString(r.top)
}
