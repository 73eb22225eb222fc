// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// A Formatter carries the settings for rendering value trees in an indented,
// human-readable diagnostic form. A zero value is ready for use with default
// settings.
//
// The output is not JSON: members and elements are written one per line with
// no separating commas, and strings are quoted without re-escaping.
type Formatter struct {
	// Indent is written once per level of nesting. If empty, four spaces
	// are used.
	Indent string
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "    "
	}
	return f.Indent
}

// Format renders an indented representation of v to w with default settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders an indented representation of v to w using the settings
// from f.
func (f Formatter) Format(w io.Writer, v Value) error {
	bw := bufio.NewWriter(w)
	f.formatValue(bw, v, "", false)
	return bw.Flush()
}

// formatValue writes v to w followed by a newline. A non-empty interior value
// is written on its own lines at the given indentation; if nested is true it
// follows a member name, and begins on a fresh line.
func (f Formatter) formatValue(w *bufio.Writer, v Value, indent string, nested bool) {
	switch t := v.(type) {
	case *Struct:
		if len(t.Members) == 0 {
			io.WriteString(w, "{}\n")
			return
		}
		f.open(w, "{", indent, nested)
		mdent := indent + f.indent()
		for _, m := range t.Members {
			fmt.Fprintf(w, "%s\"%s\":", mdent, m.Name)
			if !isOpen(m.Value) {
				io.WriteString(w, " ")
			}
			f.formatValue(w, m.Value, mdent, true)
		}
		fmt.Fprint(w, indent, "}\n")

	case *Array:
		if len(t.Values) == 0 {
			io.WriteString(w, "[]\n")
			return
		}
		f.open(w, "[", indent, nested)
		adent := indent + f.indent()
		for _, elt := range t.Values {
			if !isOpen(elt) {
				io.WriteString(w, adent)
			}
			f.formatValue(w, elt, adent, false)
		}
		fmt.Fprint(w, indent, "]\n")

	case nil:
		io.WriteString(w, "<nil>\n")

	default:
		fmt.Fprint(w, t.JSON(), "\n")
	}
}

func (f Formatter) open(w *bufio.Writer, bracket, indent string, nested bool) {
	if nested {
		io.WriteString(w, "\n")
	}
	io.WriteString(w, indent)
	io.WriteString(w, bracket)
	io.WriteString(w, "\n")
}

// isOpen reports whether v is an interior value with at least one child,
// which is rendered across multiple lines.
func isOpen(v Value) bool {
	switch t := v.(type) {
	case *Struct:
		return len(t.Members) != 0
	case *Array:
		return len(t.Values) != 0
	}
	return false
}
