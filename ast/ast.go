// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree of dynamically-typed values decoded from JSON,
// and a recursive-descent parser that constructs trees from the tokens of
// package jtree.
//
// A tree consists of leaves (Bool, Int, Float, String), which hold a single
// scalar, and interior nodes (*Array, *Struct), which exclusively own their
// children. No node is shared between two parents; use Copy to duplicate a
// subtree.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the variant of a Value.
type Type byte

// Constants defining the valid Type values.
const (
	BoolType Type = iota
	IntType
	FloatType
	StringType
	ArrayType
	StructType
)

var typeStr = [...]string{
	BoolType:   "BOOLEAN",
	IntType:    "INT",
	FloatType:  "FLOAT",
	StringType: "STRING",
	ArrayType:  "ARRAY",
	StructType: "STRUCT",
}

func (t Type) String() string {
	if int(t) >= len(typeStr) {
		return "INVALID"
	}
	return typeStr[t]
}

// IsLeaf reports whether t is a scalar variant.
func (t Type) IsLeaf() bool { return t <= StringType }

// A Value is a node of a value tree. The concrete type is one of Bool, Int,
// Float, String, *Array, or *Struct.
type Value interface {
	// Type reports the variant of the value.
	Type() Type

	// JSON renders the value as compact JSON text.
	JSON() string
}

// IsLeaf reports whether v is a non-nil scalar value.
func IsLeaf(v Value) bool { return v != nil && v.Type().IsLeaf() }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Type() Type { return BoolType }

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// An Int is an integer value.
type Int int64

func (Int) Type() Type { return IntType }

func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

// A Float is a floating-point value.
type Float float64

func (Float) Type() Type { return FloatType }

// JSON renders f so that it re-parses as a Float: an integral value is given
// a trailing ".0". Infinities and NaN have no JSON representation.
func (f Float) JSON() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// A String is a string value. Its contents are the raw text between the
// quotes of the source, with escape sequences not interpreted.
type String string

func (String) Type() Type { return StringType }

func (s String) JSON() string { return `"` + string(s) + `"` }

// An Array is an ordered sequence of values, possibly of mixed types.
type Array struct {
	Values []Value
}

func (*Array) Type() Type { return ArrayType }

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

func (a *Array) JSON() string {
	if len(a.Values) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a.Values[0].JSON())
	for _, elt := range a.Values[1:] {
		sb.WriteByte(',')
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a.Values)) }

// Copy returns a deep copy of a.
func (a *Array) Copy() *Array {
	out := &Array{Values: make([]Value, len(a.Values))}
	for i, v := range a.Values {
		out.Values[i] = Copy(v)
	}
	return out
}

// A Member is a single name-value pair belonging to a Struct.
type Member struct {
	Name  string
	Value Value
}

func (m *Member) JSON() string {
	return String(m.Name).JSON() + ":" + m.Value.JSON()
}

// Field constructs a struct member with the given name and value. The value
// must be acceptable to ToValue.
func Field(name string, value any) *Member {
	return &Member{Name: name, Value: ToValue(value)}
}

// A Struct is an ordered collection of name-value members. Names need not be
// unique; lookups report the first match.
type Struct struct {
	Members []*Member
}

func (*Struct) Type() Type { return StructType }

// Len reports the number of members in s.
func (s *Struct) Len() int { return len(s.Members) }

// Add appends a member with the given name and value to s.
func (s *Struct) Add(name string, v Value) {
	s.Members = append(s.Members, &Member{Name: name, Value: v})
}

// Find returns the first member of s with the given name, or nil.
func (s *Struct) Find(name string) *Member {
	for _, m := range s.Members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (s *Struct) JSON() string {
	if len(s.Members) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(s.Members[0].JSON())
	for _, m := range s.Members[1:] {
		sb.WriteByte(',')
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (s *Struct) String() string { return fmt.Sprintf("Struct(len=%d)", len(s.Members)) }

// Copy returns a deep copy of s. Member names and order are preserved.
func (s *Struct) Copy() *Struct {
	out := &Struct{Members: make([]*Member, len(s.Members))}
	for i, m := range s.Members {
		out.Members[i] = &Member{Name: m.Name, Value: Copy(m.Value)}
	}
	return out
}

// ArrayOf constructs an array of the given values, converted by ToValue.
func ArrayOf[T any](vs ...T) *Array {
	out := &Array{Values: make([]Value, len(vs))}
	for i, v := range vs {
		out.Values[i] = ToValue(v)
	}
	return out
}

// StructOf constructs a struct with the given members.
func StructOf(ms ...*Member) *Struct { return &Struct{Members: ms} }

// ToValue converts a bool, int, int64, float64, string, or Value into a Value.
// It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}
