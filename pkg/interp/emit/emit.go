// Package emit renders parsed commands into RhinoScript source text.
//
// Every command type is described by a static Schema: an ordered parameter
// list with expected kinds and defaults, plus one template function. The
// renderer is deliberately forgiving: a missing parameter takes its default,
// a parameter of the wrong kind is coerced when possible and defaulted
// otherwise, and an unknown command type emits a comment marker. Rendering
// never fails.
package emit

import (
	"math"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/parser"
	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/value"
)

// ParamSpec describes one schema parameter. The order of specs within a
// schema is documentation order only; parameter lookup is by name.
type ParamSpec struct {
	Name    string
	Kind    value.Kind
	Default value.Value
}

// Resolved maps parameter names to values whose kinds match the schema.
// Template functions may type-assert entries to the declared kind's variant.
type Resolved map[string]value.Value

// Schema is the static description of one command type. Render receives
// parameters already resolved against Params, so every declared name is
// present with a value of the declared kind.
type Schema struct {
	Type   string
	Params []ParamSpec
	Render func(p Resolved, f *Formatter) string
}

// Registry holds all command schemas, keyed by canonical upper-case command
// type. Schemas are registered once at construction and never mutated.
type Registry struct {
	schemas *treemap.Map
	fmt     *Formatter
}

// NewRegistry builds a registry with the full command catalog. precision is
// the number of decimals for emitted numbers; a negative precision emits the
// shortest exact representation.
func NewRegistry(precision int) *Registry {
	r := &Registry{
		schemas: treemap.NewWithStringComparator(),
		fmt:     &Formatter{Precision: precision},
	}
	for _, s := range catalog() {
		r.Register(s)
	}
	return r
}

// Register adds a schema. A schema registered under an already-known type
// replaces the previous one.
func (r *Registry) Register(s *Schema) {
	r.schemas.Put(s.Type, s)
}

// Lookup returns the schema for a canonical command type.
func (r *Registry) Lookup(cmdType string) (*Schema, bool) {
	if v, ok := r.schemas.Get(cmdType); ok {
		return v.(*Schema), true
	}
	return nil, false
}

// Schemas returns all schemas sorted by command type.
func (r *Registry) Schemas() []*Schema {
	out := make([]*Schema, 0, r.schemas.Size())
	for _, v := range r.schemas.Values() {
		out = append(out, v.(*Schema))
	}
	return out
}

// Render produces the output text block for one command. It never fails:
// unknown command types yield a comment marker, missing parameters take the
// schema default, and mismatched kinds are coerced where possible and
// defaulted otherwise. The input command is not mutated.
func (r *Registry) Render(cmd parser.Command) string {
	schema, ok := r.Lookup(cmd.Type)
	if !ok {
		return "' UNRECOGNIZED COMMAND: " + cmd.Type
	}

	resolved := make(Resolved, len(schema.Params))
	for _, ps := range schema.Params {
		v, present := cmd.Params[ps.Name]
		if !present {
			resolved[ps.Name] = ps.Default
			continue
		}
		coerced, ok := Coerce(v, ps.Kind)
		if !ok {
			coerced = ps.Default
		}
		resolved[ps.Name] = coerced
	}
	return schema.Render(resolved, r.fmt)
}

// Coerce attempts a best-effort conversion of v to the wanted kind. The
// match over variants is exhaustive; unsupported conversions report false
// and the caller falls back to a default.
func Coerce(v value.Value, want value.Kind) (value.Value, bool) {
	if v.Kind() == want {
		return v, true
	}
	switch want {
	case value.KindNumber:
		switch t := v.(type) {
		case value.Boolean:
			if t {
				return value.Number(1), true
			}
			return value.Number(0), true
		case value.Text:
			if f, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64); err == nil {
				return value.Number(f), true
			}
		}
	case value.KindText:
		// Every variant has a literal notation.
		return value.Text(v.String()), true
	case value.KindBoolean:
		switch t := v.(type) {
		case value.Number:
			return value.Boolean(t != 0), true
		case value.Text:
			if strings.EqualFold(string(t), "true") {
				return value.Boolean(true), true
			}
			if strings.EqualFold(string(t), "false") {
				return value.Boolean(false), true
			}
		}
	case value.KindPoint:
		if t, ok := v.(value.Vector); ok {
			return value.Point{X: t.X, Y: t.Y, Z: t.Z}, true
		}
	case value.KindVector:
		if t, ok := v.(value.Point); ok {
			return value.Vector{X: t.X, Y: t.Y, Z: t.Z}, true
		}
	case value.KindColor:
		// No sensible conversion into a color triple.
	}
	return nil, false
}

// Formatter renders values in RhinoScript notation.
type Formatter struct {
	// Precision is the decimal count for numbers; negative means shortest
	// exact representation.
	Precision int
}

// Float formats one scalar.
func (f *Formatter) Float(x float64) string {
	if f.Precision < 0 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', f.Precision, 64)
}

// Num formats a Number value.
func (f *Formatter) Num(v value.Value) string {
	n, ok := v.(value.Number)
	if !ok {
		return f.Float(0)
	}
	return f.Float(float64(n))
}

// Int formats a Number value rounded to the nearest integer.
func (f *Formatter) Int(v value.Value) string {
	n, ok := v.(value.Number)
	if !ok {
		return "0"
	}
	return strconv.Itoa(int(math.Round(float64(n))))
}

// Str formats a Text value as a VBScript string literal.
func (f *Formatter) Str(v value.Value) string {
	t, ok := v.(value.Text)
	if !ok {
		t = value.Text(v.String())
	}
	return "\"" + strings.ReplaceAll(string(t), "\"", "\"\"") + "\""
}

// Bool formats a Boolean value as a VBScript boolean.
func (f *Formatter) Bool(v value.Value) string {
	if b, ok := v.(value.Boolean); ok && bool(b) {
		return "True"
	}
	return "False"
}

// Arr formats a Point or Vector as an Array(x, y, z) expression.
func (f *Formatter) Arr(v value.Value) string {
	var x, y, z float64
	switch t := v.(type) {
	case value.Point:
		x, y, z = t.X, t.Y, t.Z
	case value.Vector:
		x, y, z = t.X, t.Y, t.Z
	}
	return "Array(" + f.Float(x) + ", " + f.Float(y) + ", " + f.Float(z) + ")"
}

// RGB formats a Color value as an RGB(r, g, b) expression.
func (f *Formatter) RGB(v value.Value) string {
	c, ok := v.(value.Color)
	if !ok {
		c = value.Color{}
	}
	return "RGB(" + strconv.Itoa(c.R) + ", " + strconv.Itoa(c.G) + ", " + strconv.Itoa(c.B) + ")"
}
