// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

// Copy returns a deep copy of v. Leaves are copied by value; interior nodes
// are rebuilt with freshly copied children, so the result shares no nodes
// with v. Copy(nil) returns nil.
func Copy(v Value) Value {
	if v == nil {
		return nil
	}
	switch v.Type() {
	case ArrayType:
		if a := v.(*Array); a != nil {
			return a.Copy()
		}
	case StructType:
		if s := v.(*Struct); s != nil {
			return s.Copy()
		}
	}
	return v
}

// Release recursively detaches every child of v, children before parents, so
// that the tree retains no references once released. It reports the number
// of nodes visited, including v itself; each node is visited exactly once.
//
// A released interior node is left empty and may be reused.
func Release(v Value) int {
	switch t := v.(type) {
	case nil:
		return 0
	case *Array:
		if t == nil {
			return 0
		}
		n := 1
		for i, elt := range t.Values {
			n += Release(elt)
			t.Values[i] = nil
		}
		t.Values = nil
		return n
	case *Struct:
		if t == nil {
			return 0
		}
		n := 1
		for i, m := range t.Members {
			n += Release(m.Value)
			m.Value = nil
			t.Members[i] = nil
		}
		t.Members = nil
		return n
	default:
		return 1
	}
}

// Size reports the total number of nodes in the tree rooted at v.
func Size(v Value) int {
	switch t := v.(type) {
	case nil:
		return 0
	case *Array:
		if t == nil {
			return 0
		}
		n := 1
		for _, elt := range t.Values {
			n += Size(elt)
		}
		return n
	case *Struct:
		if t == nil {
			return 0
		}
		n := 1
		for _, m := range t.Members {
			n += Size(m.Value)
		}
		return n
	default:
		return 1
	}
}

// Equal reports whether a and b are structurally equal: the same variants
// with equal scalars, in the same order, with the same member names.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch at := a.(type) {
	case *Array:
		bt := b.(*Array)
		if len(at.Values) != len(bt.Values) {
			return false
		}
		for i := range at.Values {
			if !Equal(at.Values[i], bt.Values[i]) {
				return false
			}
		}
		return true
	case *Struct:
		bt := b.(*Struct)
		if len(at.Members) != len(bt.Members) {
			return false
		}
		for i, m := range at.Members {
			if m.Name != bt.Members[i].Name || !Equal(m.Value, bt.Members[i].Value) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
