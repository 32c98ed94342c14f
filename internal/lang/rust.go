package lang

import (
	"github.com/smacker/go-tree-sitter/rust"
)

func init() {
	Languages["rust"] = &Language{
		Name:       "rust",
		Extensions: []string{".rs"},
		lang:       rust.GetLanguage(),
		Grammar: Grammar{
			FunctionKinds:   []string{"function_item"},
			CallKinds:       []string{"call_expression"},
			ParameterKinds:  []string{"parameter"},
			NameField:       "name",
			FunctionField:   "function",
			ParametersField: "parameters",
			BindingField:    "pattern",
			TypeField:       "type",
		},
	}
}
