// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

// Lookup returns the value of the first member of s whose name is name and
// whose value has concrete type T. It reports false if there is no such
// member, including when s == nil.
//
// For example, to find a nested array of materials:
//
//	mats, ok := ast.Lookup[*ast.Array](blueprint, "input materials")
func Lookup[T Value](s *Struct, name string) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	for _, m := range s.Members {
		if m.Name != name {
			continue
		}
		if v, ok := m.Value.(T); ok {
			return v, true
		}
	}
	return zero, false
}

// Real reports the numeric value of v as a float64, if v is an Int or Float.
// Otherwise it returns 0, false.
func Real(v Value) (float64, bool) {
	switch t := v.(type) {
	case Int:
		return float64(t), true
	case Float:
		return float64(t), true
	}
	return 0, false
}

// LookupReal returns the numeric value of the first member of s named name
// whose value is an Int or Float.
func LookupReal(s *Struct, name string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	for _, m := range s.Members {
		if m.Name != name {
			continue
		}
		if f, ok := Real(m.Value); ok {
			return f, true
		}
	}
	return 0, false
}
