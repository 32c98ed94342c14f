package parse

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/fnscope/internal/lang"
	"github.com/phobologic/fnscope/internal/syntax"
)

func TestSourceRust(t *testing.T) {
	t.Parallel()

	src := []byte("fn f1(x: u32) { foo(); }")
	tree, err := Source(context.Background(), lang.Languages["rust"], src)
	require.NoError(t, err)
	defer tree.Close()

	assert.Equal(t, "source_file", tree.Root.Kind())
	require.Equal(t, 1, tree.Root.ChildCount())

	fn := tree.Root.Child(0)
	assert.Equal(t, "function_item", fn.Kind())
	name, ok := syntax.FieldText(fn, "name", src)
	assert.True(t, ok)
	assert.Equal(t, "f1", name)
	assert.Nil(t, fn.Field("return_type"))
}

func TestSourceEmpty(t *testing.T) {
	t.Parallel()

	tree, err := Source(context.Background(), lang.Languages["rust"], nil)
	require.NoError(t, err)
	defer tree.Close()

	assert.Zero(t, tree.Root.ChildCount())
}

func TestSourceSyntaxErrorStillParses(t *testing.T) {
	t.Parallel()

	tree, err := Source(context.Background(), lang.Languages["rust"], []byte("fn broken( {"))
	require.NoError(t, err)
	defer tree.Close()

	assert.NotNil(t, tree.Root)
}

func TestSourceMissingGrammar(t *testing.T) {
	t.Parallel()

	_, err := Source(context.Background(), &lang.Language{Name: "broken"}, []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, lang.ErrGrammarLoad))
}

func TestCloseTwice(t *testing.T) {
	t.Parallel()

	tree, err := Source(context.Background(), lang.Languages["go"], []byte("package main"))
	require.NoError(t, err)
	tree.Close()
	tree.Close()
}
