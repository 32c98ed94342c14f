package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/phobologic/fnscope/internal/model"
)

// writeCallGraphYAML emits a mapping from caller to callee list. A yaml.Node
// is built by hand so callers keep graph order instead of sorted map order.
func writeCallGraphYAML(w io.Writer, source string, g *model.CallGraph) error {
	calls := &yaml.Node{Kind: yaml.MappingNode}
	for _, caller := range g.Callers() {
		list := &yaml.Node{Kind: yaml.SequenceNode}
		for _, callee := range g.Calls(caller) {
			list.Content = append(list.Content, scalar(callee))
		}
		calls.Content = append(calls.Content, scalar(caller), list)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	if source != "" {
		doc.Content = append(doc.Content, scalar("source"), scalar(source))
	}
	doc.Content = append(doc.Content, scalar("calls"), calls)

	return encodeYAML(w, doc)
}

type parametersDoc struct {
	Function   string            `yaml:"function"`
	Parameters []model.Parameter `yaml:"parameters"`
}

func writeParametersYAML(w io.Writer, function string, params []model.Parameter) error {
	if params == nil {
		params = []model.Parameter{}
	}
	return encodeYAML(w, parametersDoc{Function: function, Parameters: params})
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
