package syntax

// Synthetic is an in-memory Node. It lets callers describe a tree directly,
// e.g. to exercise shapes a grammar never produces.
type Synthetic struct {
	Type     string
	Start    uint32
	End      uint32
	Children []*Synthetic
	// FieldName is the field this node is attached under in its parent.
	FieldName string
	Extra     bool
}

// Leaf returns a childless node spanning [start, end).
func Leaf(kind string, start, end uint32) *Synthetic {
	return &Synthetic{Type: kind, Start: start, End: end}
}

// Branch returns a node whose span covers its children.
func Branch(kind string, children ...*Synthetic) *Synthetic {
	s := &Synthetic{Type: kind, Children: children}
	for i, c := range children {
		if i == 0 || c.Start < s.Start {
			s.Start = c.Start
		}
		if c.End > s.End {
			s.End = c.End
		}
	}
	return s
}

// ExtraLeaf returns a childless extra node, such as a comment.
func ExtraLeaf(kind string, start, end uint32) *Synthetic {
	return &Synthetic{Type: kind, Start: start, End: end, Extra: true}
}

// As attaches s under the given field name and returns it.
func (s *Synthetic) As(field string) *Synthetic {
	s.FieldName = field
	return s
}

func (s *Synthetic) Kind() string      { return s.Type }
func (s *Synthetic) IsExtra() bool     { return s.Extra }
func (s *Synthetic) StartByte() uint32 { return s.Start }
func (s *Synthetic) EndByte() uint32   { return s.End }
func (s *Synthetic) ChildCount() int   { return len(s.Children) }

func (s *Synthetic) Child(i int) Node {
	if i < 0 || i >= len(s.Children) {
		return nil
	}
	return s.Children[i]
}

func (s *Synthetic) FieldNameForChild(i int) string {
	if i < 0 || i >= len(s.Children) {
		return ""
	}
	return s.Children[i].FieldName
}

func (s *Synthetic) Field(name string) Node {
	for _, c := range s.Children {
		if c.FieldName == name {
			return c
		}
	}
	return nil
}
