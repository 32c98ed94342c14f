package callgraph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/fnscope/internal/lang"
	"github.com/phobologic/fnscope/internal/model"
	"github.com/phobologic/fnscope/internal/parse"
	"github.com/phobologic/fnscope/internal/syntax"
)

func build(t *testing.T, langName, source string) *model.CallGraph {
	t.Helper()
	l, err := lang.Lookup(langName)
	require.NoError(t, err)
	tree, err := parse.Source(context.Background(), l, []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return FromTree(context.Background(), tree)
}

func TestBuildRust(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   map[string][]string
	}{
		{
			name:   "empty function",
			source: "fn f1() { }",
			want:   map[string][]string{},
		},
		{
			name:   "empty source",
			source: "",
			want:   map[string][]string{},
		},
		{
			name:   "single call",
			source: "fn f1() { foo(); }",
			want:   map[string][]string{"f1": {"foo"}},
		},
		{
			name:   "calls isolated per function",
			source: "fn f1() { foo(); } fn f2() { bar(); }",
			want:   map[string][]string{"f1": {"foo"}, "f2": {"bar"}},
		},
		{
			name:   "argument call recorded first",
			source: "fn f1() { foo(bar()); }",
			want:   map[string][]string{"f1": {"bar", "foo"}},
		},
		{
			name:   "siblings in source order",
			source: "fn f1() { a(b()); c(); d(e(g())); }",
			want:   map[string][]string{"f1": {"b", "a", "c", "g", "e", "d"}},
		},
		{
			name:   "repeated and recursive calls kept",
			source: "fn f() { f(); helper(); helper(); }",
			want:   map[string][]string{"f": {"f", "helper", "helper"}},
		},
		{
			name:   "method and path callees",
			source: "fn f() { obj.foo(); Vec::new(); self::util::run(); }",
			want:   map[string][]string{"f": {"obj.foo", "Vec::new", "self::util::run"}},
		},
		{
			name:   "nested function has its own scope",
			source: "fn outer() { a(); fn inner() { b(); } c(); }",
			want:   map[string][]string{"outer": {"a", "c"}, "inner": {"b"}},
		},
		{
			name:   "closure stays in enclosing scope",
			source: "fn f() { let c = || g(); c(); }",
			want:   map[string][]string{"f": {"g", "c"}},
		},
		{
			name:   "impl methods",
			source: "struct S; impl S { fn m(&self) { helper(); } }",
			want:   map[string][]string{"m": {"helper"}},
		},
		{
			name:   "file scope call",
			source: "const X: u32 = compute(); fn f() { g(); }",
			want:   map[string][]string{model.FileScope: {"compute"}, "f": {"g"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := build(t, "rust", tt.source)
			assert.Equal(t, tt.want, got.Map())
		})
	}
}

func TestBuildNoCallsIsEmpty(t *testing.T) {
	t.Parallel()

	sources := []string{
		"fn f1() { }",
		"fn f1(x: u32) -> u32 { x + 1 }",
		"struct S { a: u32 }\nenum E { A, B }",
		"fn f() { let v = 1; if v > 0 { return; } }",
	}
	for _, src := range sources {
		g := build(t, "rust", src)
		assert.Zero(t, g.Len(), src)
	}
}

func TestBuildCallerOrder(t *testing.T) {
	t.Parallel()

	g := build(t, "rust", "fn b() { x(); } fn a() { y(); } fn b2() { z(); }")
	assert.Equal(t, []string{"b", "a", "b2"}, g.Callers())
}

func TestBuildIdempotent(t *testing.T) {
	t.Parallel()

	src := "fn f1() { foo(bar()); } fn f2() { baz(); fn f3() { qux(); } } fn f4() { f1(); f2(); }"
	first := build(t, "rust", src)
	second := build(t, "rust", src)
	assert.Equal(t, first.Edges(), second.Edges())
	assert.Equal(t, first.Callers(), second.Callers())
}

func TestBuildGo(t *testing.T) {
	t.Parallel()

	src := `package main

import "fmt"

type S struct{}

func (s *S) Do() {
	s.helper()
}

func main() {
	run(fmt.Sprint(1))
}
`
	g := build(t, "go", src)
	assert.Equal(t, map[string][]string{
		"Do":   {"s.helper"},
		"main": {"fmt.Sprint", "run"},
	}, g.Map())
}

func TestBuildNilRoot(t *testing.T) {
	t.Parallel()

	g := Build(nil, nil, lang.Languages["rust"].Grammar)
	assert.Zero(t, g.Len())
}

func TestBuildSkipsMissingFields(t *testing.T) {
	t.Parallel()

	// source: "f1 foo"
	source := []byte("f1 foo")
	root := syntax.Branch("source_file",
		// function without a name: its call stays at file scope
		syntax.Branch("function_item",
			syntax.Branch("call_expression",
				syntax.Leaf("identifier", 3, 6).As("function"),
			),
		),
		syntax.Branch("function_item",
			syntax.Leaf("identifier", 0, 2).As("name"),
			// call without a function field is skipped
			syntax.Branch("call_expression",
				syntax.Leaf("arguments", 3, 6).As("arguments"),
			),
			syntax.Branch("call_expression",
				syntax.Leaf("identifier", 3, 6).As("function"),
			),
		),
	)

	g := Build(root, source, lang.Languages["rust"].Grammar)
	assert.Equal(t, map[string][]string{
		model.FileScope: {"foo"},
		"f1":            {"foo"},
	}, g.Map())
}

func TestBuildDeepNesting(t *testing.T) {
	t.Parallel()

	const depth = 50000
	source := []byte("f")
	node := syntax.Branch("call_expression", syntax.Leaf("identifier", 0, 1).As("function"))
	for i := 1; i < depth; i++ {
		node = syntax.Branch("call_expression",
			syntax.Leaf("identifier", 0, 1).As("function"),
			syntax.Branch("arguments", node),
		)
	}
	root := syntax.Branch("source_file", syntax.Branch("function_item",
		syntax.Leaf("identifier", 0, 1).As("name"),
		syntax.Branch("block", node),
	))

	g := Build(root, source, lang.Languages["rust"].Grammar)
	assert.Len(t, g.Calls("f"), depth)
}
