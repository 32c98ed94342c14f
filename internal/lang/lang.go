// Package lang provides a language registry mapping file extensions to
// tree-sitter grammars and the node kinds the analyses look for.
package lang

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrGrammarLoad reports that a grammar could not be initialized.
var ErrGrammarLoad = errors.New("Failed to load grammar")

// Grammar names the node kinds and field names that the call graph builder
// and the parameter extractor rely on.
type Grammar struct {
	FunctionKinds  []string
	CallKinds      []string
	ParameterKinds []string

	NameField       string // function name
	FunctionField   string // invoked expression of a call
	ParametersField string // parameter list of a function
	BindingField    string // bound name(s) of one parameter
	TypeField       string // declared type of one parameter
}

// IsFunction reports whether kind is a function definition.
func (g Grammar) IsFunction(kind string) bool { return contains(g.FunctionKinds, kind) }

// IsCall reports whether kind is a call expression.
func (g Grammar) IsCall(kind string) bool { return contains(g.CallKinds, kind) }

// IsParameter reports whether kind is a single parameter declaration.
func (g Grammar) IsParameter(kind string) bool { return contains(g.ParameterKinds, kind) }

func contains(kinds []string, kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Language holds tree-sitter configuration for a supported language.
type Language struct {
	Name       string
	Extensions []string
	Grammar    Grammar
	lang       *sitter.Language
}

// NewParser creates a fresh tree-sitter parser for this language.
// Each goroutine must use its own parser (not thread-safe).
func (l *Language) NewParser() (*sitter.Parser, error) {
	if l.lang == nil {
		return nil, fmt.Errorf("%w: %s grammar is not available", ErrGrammarLoad, l.Name)
	}
	p := sitter.NewParser()
	p.SetLanguage(l.lang)
	return p, nil
}

// Languages maps language names to their configuration.
// Populated by init() functions in per-language files.
var Languages = map[string]*Language{}

// Lookup returns the named language, or an ErrGrammarLoad error.
func Lookup(name string) (*Language, error) {
	l, ok := Languages[name]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported language %q", ErrGrammarLoad, name)
	}
	return l, nil
}

// Names returns the registered language names, sorted.
func Names() []string {
	names := make([]string, 0, len(Languages))
	for name := range Languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// extensionMap is built lazily after all init() functions have run.
var extensionMap map[string]string
var extensionOnce sync.Once

func getExtensionMap() map[string]string {
	extensionOnce.Do(func() {
		extensionMap = make(map[string]string)
		for _, l := range Languages {
			for _, ext := range l.Extensions {
				extensionMap[ext] = l.Name
			}
		}
	})
	return extensionMap
}

// ForExtension returns the language name for a file extension, or "" if unsupported.
func ForExtension(ext string) string {
	return getExtensionMap()[ext]
}
