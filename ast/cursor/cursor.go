// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a value tree by member name,
// offset, and expected type.
package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/evetools/jtree/ast"
)

// Path follows path from v, as Cursor.Down does, and returns the value it
// reaches, which must have concrete type T.
//
// For example, to fetch the run count of the first blueprint:
//
//	runs, err := cursor.Path[ast.Int](doc, "blueprints", 0, "runs")
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	t, ok := c.Value().(T)
	if !ok {
		return zero, c.errorf("got %v, want %v", typeOf(c.Value()), typeOf(zero))
	}
	return t, nil
}

// A Cursor records a position in a value tree, together with the path of
// steps taken from its origin to reach it.
type Cursor struct {
	org   ast.Value
	steps []step
	err   error
}

type step struct {
	label string // ".name" or "[i]"
	value ast.Value
}

// New constructs a Cursor positioned at origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the value at which c was created.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is positioned at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.steps) == 0 }

// Value returns the value at the current position.
func (c *Cursor) Value() ast.Value {
	if n := len(c.steps); n > 0 {
		return c.steps[n-1].value
	}
	return c.org
}

// Path returns the values visited from the origin to the current position,
// inclusive.
func (c *Cursor) Path() []ast.Value {
	out := make([]ast.Value, len(c.steps)+1)
	out[0] = c.org
	for i, s := range c.steps {
		out[i+1] = s.value
	}
	return out
}

// Where describes the current position as a path from the origin, for
// example ".blueprints[0].runs". At the origin it returns ".".
func (c *Cursor) Where() string {
	if len(c.steps) == 0 {
		return "."
	}
	var sb strings.Builder
	for _, s := range c.steps {
		sb.WriteString(s.label)
	}
	return sb.String()
}

// Err returns the error from the most recent call to Down, or nil.
func (c *Cursor) Err() error { return c.err }

// Up moves c one step back toward its origin. It has no effect at the origin.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.steps); n > 0 {
		c.steps = c.steps[:n-1]
	}
	return c
}

// Reset returns c to its origin and clears its error.
func (c *Cursor) Reset() { c.steps = c.steps[:0]; c.err = nil }

// Down follows path from the current position. Each element is one of:
//
//   - string: the current value must be a struct; move to the value of its
//     first member with that name.
//   - int: the current value must be an array or struct; move to the element
//     or member value at that offset. Negative offsets count from the end, so
//     -1 is the last.
//   - ast.Type: the current value must have this type. The cursor does not
//     move.
//   - func(ast.Value) (ast.Value, error): move to the value the function
//     returns for the current value.
//
// If an element cannot be followed, Down stops at the last value reached and
// records an error naming the position; use Err to retrieve it. Down returns
// c to permit chaining.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		if !c.follow(elt) {
			break
		}
	}
	return c
}

func (c *Cursor) follow(elt any) bool {
	cur := c.Value()
	switch t := elt.(type) {
	case string:
		s, ok := cur.(*ast.Struct)
		if !ok {
			return c.fail("cannot select %q from %v", t, typeOf(cur))
		}
		m := s.Find(t)
		if m == nil {
			return c.fail("no member %q", t)
		}
		c.push("."+t, m.Value)

	case int:
		var n int
		var at func(int) ast.Value
		switch e := cur.(type) {
		case *ast.Array:
			n, at = len(e.Values), func(i int) ast.Value { return e.Values[i] }
		case *ast.Struct:
			n, at = len(e.Members), func(i int) ast.Value { return e.Members[i].Value }
		default:
			return c.fail("cannot index %v", typeOf(cur))
		}
		i := t
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return c.fail("offset %d out of range (len=%d)", t, n)
		}
		c.push("["+strconv.Itoa(i)+"]", at(i))

	case ast.Type:
		if cur == nil || cur.Type() != t {
			return c.fail("got %v, want %v", typeOf(cur), t)
		}

	case func(ast.Value) (ast.Value, error):
		next, err := t(cur)
		if err != nil {
			c.err = err
			return false
		}
		c.push("()", next)

	default:
		return c.fail("invalid path element %T", elt)
	}
	return true
}

func (c *Cursor) push(label string, v ast.Value) {
	c.steps = append(c.steps, step{label: label, value: v})
}

func (c *Cursor) fail(msg string, args ...any) bool {
	c.err = c.errorf(msg, args...)
	return false
}

func (c *Cursor) errorf(msg string, args ...any) error {
	return fmt.Errorf("at %s: %s", c.Where(), fmt.Sprintf(msg, args...))
}

func typeOf(v ast.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Type().String()
}
