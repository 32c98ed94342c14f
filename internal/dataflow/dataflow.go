// Package dataflow reports the declared parameters visible inside a function.
package dataflow

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/phobologic/fnscope/internal/lang"
	"github.com/phobologic/fnscope/internal/model"
	"github.com/phobologic/fnscope/internal/parse"
	"github.com/phobologic/fnscope/internal/syntax"
)

// ErrFunctionNotFound is returned, together with an empty parameter list,
// when no top-level function has the requested name.
var ErrFunctionNotFound = errors.New("function not found")

var tracer = otel.Tracer("github.com/phobologic/fnscope/internal/dataflow")

// Parameters returns the parameters declared by the first top-level function
// named function, in declaration order. Only direct children of root are
// searched. The result is never nil.
//
// Parameters missing a binding or a type are skipped.
func Parameters(root syntax.Node, source []byte, g lang.Grammar, function string) ([]model.Parameter, error) {
	params := []model.Parameter{}
	if root == nil {
		return params, ErrFunctionNotFound
	}

	fn := findFunction(root, source, g, function)
	if fn == nil {
		return params, ErrFunctionNotFound
	}

	list := fn.Field(g.ParametersField)
	if list == nil {
		return params, nil
	}

	for i := 0; i < list.ChildCount(); i++ {
		decl := list.Child(i)
		if decl == nil || !g.IsParameter(decl.Kind()) {
			continue
		}
		params = append(params, declared(decl, source, g)...)
	}

	slog.Debug("parameters found",
		slog.String("function", function),
		slog.Int("count", len(params)))
	return params, nil
}

func findFunction(root syntax.Node, source []byte, g lang.Grammar, function string) syntax.Node {
	for i := 0; i < root.ChildCount(); i++ {
		child := root.Child(i)
		if child == nil || !g.IsFunction(child.Kind()) {
			continue
		}
		name, ok := syntax.FieldText(child, g.NameField, source)
		if !ok {
			continue
		}
		slog.Debug("found function definition", slog.String("function", name))
		if name == function {
			return child
		}
	}
	return nil
}

// declared reads one parameter declaration. A declaration may bind several
// names to one type (Go's "a, b int"), so every child under the binding
// field yields a Parameter. Comments between names are reported under the
// binding field too and are skipped.
func declared(decl syntax.Node, source []byte, g lang.Grammar) []model.Parameter {
	typ, ok := syntax.FieldText(decl, g.TypeField, source)
	if !ok {
		slog.Debug("parameter without type", slog.Int("offset", int(decl.StartByte())))
		return nil
	}

	var out []model.Parameter
	for i := 0; i < decl.ChildCount(); i++ {
		if decl.FieldNameForChild(i) != g.BindingField {
			continue
		}
		name := decl.Child(i)
		if name == nil || name.IsExtra() {
			continue
		}
		out = append(out, model.Parameter{Name: syntax.Text(name, source), Type: typ})
	}
	if len(out) == 0 {
		slog.Debug("parameter without binding", slog.Int("offset", int(decl.StartByte())))
	}
	return out
}

// FromTree extracts the parameters of function from a parsed file.
func FromTree(ctx context.Context, tree *parse.Tree, function string) ([]model.Parameter, error) {
	_, span := tracer.Start(ctx, "fnscope/dataflow")
	defer span.End()

	params, err := Parameters(tree.Root, tree.Source, tree.Language.Grammar, function)
	span.SetAttributes(
		attribute.String("dataflow.language", tree.Language.Name),
		attribute.String("dataflow.function", function),
		attribute.Int("dataflow.parameters", len(params)),
		attribute.Bool("dataflow.found", err == nil),
	)
	return params, err
}
