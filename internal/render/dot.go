package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/phobologic/fnscope/internal/model"
)

// writeDOT renders the graph as a Graphviz digraph. Repeated calls between
// the same pair collapse into one edge labeled with the call count.
func writeDOT(w io.Writer, g *model.CallGraph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "digraph CallGraph {\n")
	fmt.Fprintf(bw, "  node [shape=box, style=filled, fillcolor=lightblue];\n")

	for _, caller := range g.Callers() {
		from := dotQuote(callerLabel(caller))
		var order []string
		counts := make(map[string]int)
		for _, callee := range g.Calls(caller) {
			if counts[callee] == 0 {
				order = append(order, callee)
			}
			counts[callee]++
		}
		for _, callee := range order {
			if n := counts[callee]; n > 1 {
				fmt.Fprintf(bw, "  %s -> %s [label=\"x%d\"];\n", from, dotQuote(callee), n)
			} else {
				fmt.Fprintf(bw, "  %s -> %s;\n", from, dotQuote(callee))
			}
		}
	}

	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote returns s as a DOT quoted ID. Only backslash and double quote are
// escaped; other text, including non-ASCII, is written as is.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
