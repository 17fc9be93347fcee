// Package vars implements the per-session variable table and the textual
// $name substitution applied to parameter values before literal parsing.
package vars

import (
	"sort"
	"strings"
)

// Binding is one name -> raw-text variable binding.
type Binding struct {
	Name string
	Raw  string
}

// Table holds the variable bindings of one parsing session. Redefining a
// name overwrites silently; there is no scoping and no versioning. A Table
// is owned by exactly one session and is not safe for concurrent use.
type Table struct {
	bindings map[string]string
}

// New creates an empty variable table.
func New() *Table {
	return &Table{bindings: make(map[string]string)}
}

// Define stores or overwrites a binding. Last write wins.
func (t *Table) Define(name, raw string) {
	t.bindings[name] = raw
}

// Len returns the number of bindings.
func (t *Table) Len() int {
	return len(t.bindings)
}

// List returns all bindings sorted by name.
func (t *Table) List() []Binding {
	out := make([]Binding, 0, len(t.bindings))
	for name, raw := range t.bindings {
		out = append(out, Binding{Name: name, Raw: raw})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Clear removes all bindings.
func (t *Table) Clear() {
	t.bindings = make(map[string]string)
}

// Substitute replaces every $name occurrence of a bound variable with its
// raw text. The text is scanned once left to right; at each '$' the longest
// bound name matching at that position wins, so $ab takes precedence over a
// binding for $a. Substituted text is inserted literally and never
// re-expanded: a '$' inside a variable's value survives as plain text.
func (t *Table) Substitute(text string) string {
	if len(t.bindings) == 0 || !strings.Contains(text, "$") {
		return text
	}

	var out strings.Builder
	for i := 0; i < len(text); {
		if text[i] != '$' {
			out.WriteByte(text[i])
			i++
			continue
		}
		name, raw, ok := t.longestMatch(text[i+1:])
		if !ok {
			out.WriteByte('$')
			i++
			continue
		}
		out.WriteString(raw)
		i += 1 + len(name)
	}
	return out.String()
}

// longestMatch finds the longest bound name that is a prefix of rest.
func (t *Table) longestMatch(rest string) (name, raw string, ok bool) {
	for n, r := range t.bindings {
		if strings.HasPrefix(rest, n) && len(n) > len(name) {
			name, raw, ok = n, r, true
		}
	}
	return name, raw, ok
}
