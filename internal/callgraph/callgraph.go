// Package callgraph attributes call expressions to their innermost enclosing
// function.
package callgraph

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/phobologic/fnscope/internal/lang"
	"github.com/phobologic/fnscope/internal/model"
	"github.com/phobologic/fnscope/internal/parse"
	"github.com/phobologic/fnscope/internal/syntax"
)

var tracer = otel.Tracer("github.com/phobologic/fnscope/internal/callgraph")

// frame is one node on the traversal stack.
type frame struct {
	node   syntax.Node
	caller string // scope enclosing node
	scope  string // scope for node's children
	next   int    // index of the next child to visit
}

// Build walks the tree rooted at root and returns every call expression keyed
// by the name of the innermost function definition that contains it. Calls
// outside any function are keyed by model.FileScope.
//
// A named function definition replaces the scope for its whole subtree;
// nested definitions never leak calls to their parent. Calls are recorded
// after their children, so for foo(bar()) bar is recorded before foo.
//
// Nodes missing an expected field contribute nothing and the walk continues.
func Build(root syntax.Node, source []byte, g lang.Grammar) *model.CallGraph {
	graph := model.NewCallGraph()
	if root == nil {
		return graph
	}

	stack := []frame{enter(root, model.FileScope, source, g)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < top.node.ChildCount() {
			child := top.node.Child(top.next)
			top.next++
			if child != nil {
				stack = append(stack, enter(child, top.scope, source, g))
			}
			continue
		}

		f := *top
		stack = stack[:len(stack)-1]

		if !g.IsCall(f.node.Kind()) {
			continue
		}
		callee, ok := syntax.FieldText(f.node, g.FunctionField, source)
		if !ok {
			slog.Debug("call without function field",
				slog.Int("offset", int(f.node.StartByte())))
			continue
		}
		graph.Add(f.caller, callee)
	}

	return graph
}

func enter(n syntax.Node, caller string, source []byte, g lang.Grammar) frame {
	f := frame{node: n, caller: caller, scope: caller}
	if !g.IsFunction(n.Kind()) {
		return f
	}
	if name, ok := syntax.FieldText(n, g.NameField, source); ok {
		f.scope = name
	}
	return f
}

// FromTree builds the call graph of a parsed file.
func FromTree(ctx context.Context, tree *parse.Tree) *model.CallGraph {
	_, span := tracer.Start(ctx, "fnscope/callgraph")
	defer span.End()

	graph := Build(tree.Root, tree.Source, tree.Language.Grammar)
	span.SetAttributes(
		attribute.String("callgraph.language", tree.Language.Name),
		attribute.Int("callgraph.callers", graph.Len()),
	)
	return graph
}
