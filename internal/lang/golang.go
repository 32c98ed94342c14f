package lang

import (
	"github.com/smacker/go-tree-sitter/golang"
)

// Go methods are keyed by their bare name; the receiver is not a parameter.
// func_literal has no name field and so stays in the enclosing scope.
func init() {
	Languages["go"] = &Language{
		Name:       "go",
		Extensions: []string{".go"},
		lang:       golang.GetLanguage(),
		Grammar: Grammar{
			FunctionKinds:   []string{"function_declaration", "method_declaration", "func_literal"},
			CallKinds:       []string{"call_expression"},
			ParameterKinds:  []string{"parameter_declaration", "variadic_parameter_declaration"},
			NameField:       "name",
			FunctionField:   "function",
			ParametersField: "parameters",
			BindingField:    "name",
			TypeField:       "type",
		},
	}
}
