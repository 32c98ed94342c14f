// Package render writes analysis results in the supported output formats.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/phobologic/fnscope/internal/model"
	"github.com/phobologic/fnscope/internal/toon"
)

// Format selects an output encoding.
type Format string

const (
	Text Format = "text"
	TOON Format = "toon"
	DOT  Format = "dot"
	YAML Format = "yaml"
)

// Formats lists every supported format, in help-text order.
var Formats = []Format{Text, TOON, DOT, YAML}

// FileScopeLabel is how text and DOT output show calls made outside any
// function.
const FileScopeLabel = "<top-level>"

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// CallGraph writes g to w. source names the analyzed input for formats that
// record it; it may be empty.
func CallGraph(w io.Writer, f Format, source string, g *model.CallGraph) error {
	switch f {
	case Text:
		for _, e := range g.Edges() {
			if _, err := fmt.Fprintf(w, "%s calls %s\n", callerLabel(e.Caller), e.Callee); err != nil {
				return err
			}
		}
		return nil
	case TOON:
		_, err := fmt.Fprintln(w, toon.EncodeCallGraph(source, g))
		return err
	case DOT:
		return writeDOT(w, g)
	case YAML:
		return writeCallGraphYAML(w, source, g)
	}
	return fmt.Errorf("unsupported format %q", f)
}

// Parameters writes the parameters accessible in function to w.
func Parameters(w io.Writer, f Format, function string, params []model.Parameter) error {
	switch f {
	case Text:
		_, err := fmt.Fprintf(w, "%s has access to %s\n", function, ParameterList(params))
		return err
	case TOON:
		_, err := fmt.Fprintln(w, toon.EncodeParameters(function, params))
		return err
	case YAML:
		return writeParametersYAML(w, function, params)
	case DOT:
		return fmt.Errorf("format %q is not supported for parameters", f)
	}
	return fmt.Errorf("unsupported format %q", f)
}

// ParameterList renders params as "[x: u32, f: bool]".
func ParameterList(params []model.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func callerLabel(caller string) string {
	if caller == model.FileScope {
		return FileScopeLabel
	}
	return caller
}
