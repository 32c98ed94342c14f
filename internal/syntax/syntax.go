// Package syntax provides a read-only view of concrete syntax trees.
//
// Analyses are written against Node rather than a specific parser so that
// they can run over tree-sitter output and over hand-built trees alike.
package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Node is one node of a concrete syntax tree. Byte offsets index into the
// source text the tree was built from; children are in source order.
type Node interface {
	Kind() string
	// IsExtra reports whether the node may appear anywhere in the grammar,
	// such as a comment.
	IsExtra() bool
	StartByte() uint32
	EndByte() uint32
	ChildCount() int
	Child(i int) Node
	// FieldNameForChild returns the field the i-th child is attached under,
	// or "" if it is not a named field.
	FieldNameForChild(i int) string
	// Field returns the first child attached under name, or nil.
	Field(name string) Node
}

// Text returns a copy of the source text spanned by n.
// A nil node or an out-of-range span yields "".
func Text(n Node, source []byte) string {
	if n == nil {
		return ""
	}
	start, end := n.StartByte(), n.EndByte()
	if start > end || int(end) > len(source) {
		return ""
	}
	return string(source[start:end])
}

// FieldText returns the text of n's field, and false if the field is absent.
func FieldText(n Node, name string, source []byte) (string, bool) {
	f := n.Field(name)
	if f == nil {
		return "", false
	}
	return Text(f, source), true
}

// FromSitter wraps a tree-sitter node. A nil node yields a nil Node.
func FromSitter(n *sitter.Node) Node {
	if n == nil || n.IsNull() {
		return nil
	}
	return sitterNode{n: n}
}

type sitterNode struct {
	n *sitter.Node
}

func (s sitterNode) Kind() string      { return s.n.Type() }
func (s sitterNode) IsExtra() bool     { return s.n.IsExtra() }
func (s sitterNode) StartByte() uint32 { return s.n.StartByte() }
func (s sitterNode) EndByte() uint32   { return s.n.EndByte() }
func (s sitterNode) ChildCount() int   { return int(s.n.ChildCount()) }

func (s sitterNode) Child(i int) Node {
	return FromSitter(s.n.Child(i))
}

func (s sitterNode) FieldNameForChild(i int) string {
	return s.n.FieldNameForChild(i)
}

func (s sitterNode) Field(name string) Node {
	return FromSitter(s.n.ChildByFieldName(name))
}
