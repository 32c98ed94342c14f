// Package parse turns source text into syntax trees using tree-sitter.
package parse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sitter "github.com/smacker/go-tree-sitter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/phobologic/fnscope/internal/lang"
	"github.com/phobologic/fnscope/internal/syntax"
)

// ErrParse reports that the source could not be parsed into a tree at all.
var ErrParse = errors.New("Failed to parse source code")

var tracer = otel.Tracer("github.com/phobologic/fnscope/internal/parse")

// Tree is a parsed source file. Close releases the underlying tree-sitter
// tree; the Root node must not be used afterwards.
type Tree struct {
	Root     syntax.Node
	Source   []byte
	Language *lang.Language
	tree     *sitter.Tree
}

// Close releases the tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// Source parses source with a fresh parser for l.
func Source(ctx context.Context, l *lang.Language, source []byte) (*Tree, error) {
	parser, err := l.NewParser()
	if err != nil {
		return nil, err
	}
	defer parser.Close()
	return withParser(ctx, l, parser, source)
}

// withParser parses source using an existing parser, which must have been
// created for l. Parsers are not safe for concurrent use.
func withParser(ctx context.Context, l *lang.Language, parser *sitter.Parser, source []byte) (*Tree, error) {
	ctx, span := tracer.Start(ctx, "fnscope/parse", trace.WithAttributes(
		attribute.String("parse.language", l.Name),
		attribute.Int("parse.size_bytes", len(source)),
	))
	defer span.End()

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if tree == nil {
		span.SetStatus(codes.Error, "no tree")
		return nil, ErrParse
	}

	root := tree.RootNode()
	if root.HasError() {
		// tree-sitter recovers from syntax errors; analyses still run on the
		// partial tree.
		slog.Debug("source contains syntax errors",
			slog.String("language", l.Name))
	}

	return &Tree{
		Root:     syntax.FromSitter(root),
		Source:   source,
		Language: l,
		tree:     tree,
	}, nil
}
