// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/evetools/jtree/ast"
	"github.com/evetools/jtree/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestValueJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Bool(true), "true"},
		{ast.Bool(false), "false"},
		{ast.Int(0), "0"},
		{ast.Int(-15), "-15"},
		{ast.Float(1), "1.0"},
		{ast.Float(-350), "-350.0"},
		{ast.Float(0.25), "0.25"},
		{ast.Float(1e21), "1e+21"},
		{ast.String(""), `""`},
		{ast.String(`a\"b`), `"a\"b"`},
		{new(ast.Array), "[]"},
		{new(ast.Struct), "{}"},
		{ast.ArrayOf(1, 2, 3), "[1,2,3]"},
		{ast.ArrayOf[any]("a", true, 2.5, ast.ArrayOf[int]()), `["a",true,2.5,[]]`},
		{ast.StructOf(
			ast.Field("x", ast.ArrayOf(1, 2)),
			ast.Field("y", ast.StructOf()),
			ast.Field("x", false),
		), `{"x":[1,2],"y":{},"x":false}`},
	}
	for _, test := range tests {
		if got := test.input.JSON(); got != test.want {
			t.Errorf("JSON %v: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestType(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  ast.Type
		str   string
		leaf  bool
	}{
		{ast.Bool(false), ast.BoolType, "BOOLEAN", true},
		{ast.Int(1), ast.IntType, "INT", true},
		{ast.Float(1), ast.FloatType, "FLOAT", true},
		{ast.String("s"), ast.StringType, "STRING", true},
		{new(ast.Array), ast.ArrayType, "ARRAY", false},
		{new(ast.Struct), ast.StructType, "STRUCT", false},
	}
	for _, test := range tests {
		got := test.input.Type()
		if got != test.want {
			t.Errorf("Type %v: got %v, want %v", test.input, got, test.want)
		}
		if s := got.String(); s != test.str {
			t.Errorf("Type %v: got string %q, want %q", test.input, s, test.str)
		}
		if leaf := ast.IsLeaf(test.input); leaf != test.leaf {
			t.Errorf("IsLeaf %v: got %v, want %v", test.input, leaf, test.leaf)
		}
	}
	if got := ast.Type(99).String(); got != "INVALID" {
		t.Errorf("Type(99): got %q, want INVALID", got)
	}
	if ast.IsLeaf(nil) {
		t.Error("IsLeaf(nil): got true, want false")
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Value
	}{
		{true, ast.Bool(true)},
		{17, ast.Int(17)},
		{int64(-4), ast.Int(-4)},
		{3.5, ast.Float(3.5)},
		{"ok", ast.String("ok")},
		{ast.Int(9), ast.Int(9)},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, ast.ToValue(test.input)); diff != "" {
			t.Errorf("ToValue %v: (-want, +got)\n%s", test.input, diff)
		}
	}

	t.Run("Invalid", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue(nil) })
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(float32(1)) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}

func TestStructFind(t *testing.T) {
	s := ast.StructOf(
		ast.Field("a", 1),
		ast.Field("b", "two"),
		ast.Field("a", 3),
	)
	if m := s.Find("a"); m == nil || m.Value != ast.Int(1) {
		t.Errorf(`Find "a": got %v, want first member`, m)
	}
	if m := s.Find("c"); m != nil {
		t.Errorf(`Find "c": got %v, want nil`, m)
	}
	s.Add("c", ast.Bool(true))
	if m := s.Find("c"); m == nil || m.Value != ast.Bool(true) {
		t.Errorf(`Find "c" after Add: got %v`, m)
	}
	if got := s.Len(); got != 4 {
		t.Errorf("Len: got %d, want 4", got)
	}
}

func TestCopy(t *testing.T) {
	orig := ast.MustParse(testutil.Blueprints)
	cp := ast.Copy(orig).(*ast.Struct)

	if diff := cmp.Diff(orig, cp); diff != "" {
		t.Fatalf("Copy (-orig, +copy):\n%s", diff)
	}
	if !ast.Equal(orig, cp) {
		t.Fatal("Equal(orig, copy): got false, want true")
	}

	// Modifying the copy must not affect the original.
	bps := cp.Find("blueprints").Value.(*ast.Array)
	bps.Values[0].(*ast.Struct).Find("runs").Value = ast.Int(99)
	bps.Values = append(bps.Values, ast.String("extra"))
	cp.Members[0].Name = "renamed"

	want := ast.MustParse(testutil.Blueprints)
	if diff := cmp.Diff(want, orig); diff != "" {
		t.Errorf("Original changed after copy was modified (-want, +got):\n%s", diff)
	}
	if ast.Equal(orig, cp) {
		t.Error("Equal(orig, modified copy): got true, want false")
	}

	// Leaves and nil copy through directly.
	if got := ast.Copy(ast.String("x")); got != ast.String("x") {
		t.Errorf("Copy leaf: got %v", got)
	}
	if got := ast.Copy(nil); got != nil {
		t.Errorf("Copy(nil): got %v, want nil", got)
	}
}

func TestRelease(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{`{}`, 1},
		{`{"a": 1}`, 2},
		{`{"x": [1, 2, 3]}`, 5},
		{`{"a": {"b": {"c": []}}, "d": [[], {}, true]}`, 8},
		{testutil.Plain, 15},
	}
	for _, test := range tests {
		s := ast.MustParse(test.input)
		if got := ast.Size(s); got != test.want {
			t.Errorf("Size %#q: got %d, want %d", test.input, got, test.want)
		}
		if got := ast.Release(s); got != test.want {
			t.Errorf("Release %#q: got %d, want %d", test.input, got, test.want)
		}
		if s.Len() != 0 {
			t.Errorf("Release %#q: struct still has %d members", test.input, s.Len())
		}
	}
	if got := ast.Release(nil); got != 0 {
		t.Errorf("Release(nil): got %d, want 0", got)
	}
	if got := ast.Release(ast.Float(1)); got != 1 {
		t.Errorf("Release(leaf): got %d, want 1", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{`{}`, `{}`, true},
		{`{"a": 1}`, `{"a": 1}`, true},
		{`{"a": 1}`, `{"a": 1.0}`, false},
		{`{"a": 1}`, `{"b": 1}`, false},
		{`{"a": 1, "b": 2}`, `{"b": 2, "a": 1}`, false},
		{`{"a": [1, "x", true]}`, `{ "a" : [ 1 , "x" , true ] }`, true},
		{`{"a": [1, 2]}`, `{"a": [1, 2, 3]}`, false},
		{`{"a": {}}`, `{"a": []}`, false},
		{testutil.Blueprints, testutil.Blueprints, true},
	}
	for _, test := range tests {
		a, b := ast.MustParse(test.a), ast.MustParse(test.b)
		if got := ast.Equal(a, b); got != test.want {
			t.Errorf("Equal(%#q, %#q): got %v, want %v", test.a, test.b, got, test.want)
		}
	}
}
