// Package lexer provides the field-level lexical splitter for InterpreCAD
// command argument lists.
package lexer

import (
	"fmt"
	"strings"
)

// SplitArgs splits the text between a command's outer parentheses into its
// top-level comma-separated fields. A comma only terminates a field when it
// is outside double quotes and at bracket depth zero, so a field like
// width=RGB(128,128,128) or height=[1,2,3] stays in one piece. A double
// quote toggles quoting unless escaped by an immediately preceding
// backslash. Fields are space-trimmed; a completely blank trailing field is
// dropped.
//
// Unbalanced brackets are not rejected here: the depth counter may go
// negative or never return to zero and splitting still completes. A
// malformed literal produced that way fails later, in the value parser.
func SplitArgs(s string) []string {
	var fields []string
	var cur strings.Builder
	depth := 0
	inQuotes := false
	prev := rune(0)

	for _, r := range s {
		switch {
		case r == '"' && prev != '\\':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case inQuotes:
			cur.WriteRune(r)
		case r == '[' || r == '(':
			depth++
			cur.WriteRune(r)
		case r == ']' || r == ')':
			depth--
			cur.WriteRune(r)
		case r == ',' && depth == 0:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
		prev = r
	}

	last := strings.TrimSpace(cur.String())
	if last != "" {
		fields = append(fields, last)
	}
	return fields
}

// SplitAssign separates one field into its parameter name and raw value
// text. The field must contain exactly one '='; zero or more than one is an
// error, as is an empty name. Name and value are space-trimmed.
func SplitAssign(field string) (name, raw string, err error) {
	switch strings.Count(field, "=") {
	case 0:
		return "", "", fmt.Errorf("field %q has no '='", field)
	case 1:
		// ok
	default:
		return "", "", fmt.Errorf("field %q has more than one '='", field)
	}
	idx := strings.Index(field, "=")
	name = strings.TrimSpace(field[:idx])
	raw = strings.TrimSpace(field[idx+1:])
	if name == "" {
		return "", "", fmt.Errorf("field %q has an empty parameter name", field)
	}
	return name, raw, nil
}
