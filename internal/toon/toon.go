// Package toon implements TOON (Token-Oriented Object Notation) encoding of
// analysis results.
package toon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phobologic/fnscope/internal/model"
)

var (
	needsQuoting = regexp.MustCompile(`[,:"\\{}\[\]]`)
	looksNumeric = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?$`)
	keywords     = map[string]struct{}{
		"true":  {},
		"false": {},
		"null":  {},
	}
)

// EncodeCallGraph converts a call graph into TOON format. source names the
// analyzed input and is omitted when empty.
func EncodeCallGraph(source string, g *model.CallGraph) string {
	var parts []string
	if source != "" {
		parts = append(parts, fmt.Sprintf("source: %s", encodeValue(source)))
	}

	var rows [][]string
	for _, e := range g.Edges() {
		rows = append(rows, []string{e.Caller, e.Callee})
	}
	parts = append(parts, formatTabular("calls", []string{"caller", "callee"}, rows))

	return strings.Join(parts, "\n")
}

// EncodeParameters converts the parameters of function into TOON format.
func EncodeParameters(function string, params []model.Parameter) string {
	var rows [][]string
	for _, p := range params {
		rows = append(rows, []string{p.Name, p.Type})
	}
	return fmt.Sprintf("function: %s\n%s",
		encodeValue(function),
		formatTabular("parameters", []string{"name", "type"}, rows))
}

func formatTabular(name string, columns []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%d]{%s}:", name, len(rows), strings.Join(columns, ","))
	for _, row := range rows {
		encoded := make([]string, len(row))
		for i, cell := range row {
			encoded[i] = encodeValue(cell)
		}
		fmt.Fprintf(&b, "\n  %s", strings.Join(encoded, ","))
	}
	return b.String()
}

func encodeValue(value string) string {
	if value == "" {
		return `""`
	}

	if value != strings.TrimSpace(value) {
		return quote(value)
	}

	if strings.ContainsAny(value, "\n\r\t") {
		return quote(value)
	}

	if _, ok := keywords[strings.ToLower(value)]; ok {
		return quote(value)
	}

	if looksNumeric.MatchString(value) {
		return value
	}

	if needsQuoting.MatchString(value) {
		return quote(value)
	}

	if strings.HasPrefix(value, "-") {
		return quote(value)
	}

	return value
}

func quote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	escaped = strings.ReplaceAll(escaped, "\r", `\r`)
	escaped = strings.ReplaceAll(escaped, "\t", `\t`)
	return `"` + escaped + `"`
}
