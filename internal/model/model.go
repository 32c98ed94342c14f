// Package model defines core data structures for fnscope.
package model

// FileScope is the caller key for calls that occur outside any function body.
const FileScope = ""

// Parameter is one declared parameter of a function signature.
// Both fields are copies of the source text, so a Parameter outlives the tree
// it was read from.
type Parameter struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

func (p Parameter) String() string {
	return p.Name + ": " + p.Type
}

// Edge is a single caller → callee occurrence.
type Edge struct {
	Caller string `yaml:"caller"`
	Callee string `yaml:"callee"`
}

// CallGraph maps caller function names to the callees attributed to them, in
// discovery order. Callers are kept in the order they were first attributed a
// call, so iterating a CallGraph is deterministic.
type CallGraph struct {
	callers []string
	calls   map[string][]string
}

// NewCallGraph returns an empty call graph.
func NewCallGraph() *CallGraph {
	return &CallGraph{calls: make(map[string][]string)}
}

// Add appends callee to caller's call list, creating the entry if needed.
func (g *CallGraph) Add(caller, callee string) {
	list, ok := g.calls[caller]
	if !ok {
		g.callers = append(g.callers, caller)
	}
	g.calls[caller] = append(list, callee)
}

// Merge appends every edge of other to g, preserving other's order.
func (g *CallGraph) Merge(other *CallGraph) {
	if other == nil {
		return
	}
	for _, caller := range other.callers {
		for _, callee := range other.calls[caller] {
			g.Add(caller, callee)
		}
	}
}

// Callers returns the caller keys in first-attribution order.
func (g *CallGraph) Callers() []string {
	out := make([]string, len(g.callers))
	copy(out, g.callers)
	return out
}

// Calls returns the callees attributed to caller, or nil if there are none.
func (g *CallGraph) Calls(caller string) []string {
	list := g.calls[caller]
	if list == nil {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Len returns the number of callers with at least one call.
func (g *CallGraph) Len() int {
	return len(g.callers)
}

// Edges flattens the graph in caller order, then discovery order.
func (g *CallGraph) Edges() []Edge {
	var edges []Edge
	for _, caller := range g.callers {
		for _, callee := range g.calls[caller] {
			edges = append(edges, Edge{Caller: caller, Callee: callee})
		}
	}
	return edges
}

// Map returns a copy of the graph as a plain map. Intended for comparisons in
// tests and for encoders that do not care about caller order.
func (g *CallGraph) Map() map[string][]string {
	out := make(map[string][]string, len(g.callers))
	for _, caller := range g.callers {
		out[caller] = g.Calls(caller)
	}
	return out
}
