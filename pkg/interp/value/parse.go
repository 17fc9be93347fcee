package value

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError reports a literal that matched the shape of a point, vector or
// color but had the wrong coordinate count or a non-numeric coordinate.
type FormatError struct {
	Literal string // the offending literal text
	Shape   string // "point", "vector" or "color"
	Reason  string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s literal %q: %s", e.Shape, e.Literal, e.Reason)
}

// Parse converts one trimmed literal into exactly one Value. Recognition
// rules are tried in order and the first match wins:
//
//  1. [a,b,c]    -> Point
//  2. <a,b,c>    -> Vector
//  3. RGB(r,g,b) -> Color (keyword case-insensitive, whitespace tolerated)
//  4. "..."      -> Text with the quotes stripped
//  5. true/false -> Boolean (case-insensitive)
//  6. number     -> Number
//  7. anything else -> Text holding the literal itself
//
// Once a bracket or keyword shape has matched, a bad coordinate count or a
// non-numeric coordinate is a *FormatError; the literal does not degrade to
// Text. Rule 7 makes parsing total over all other inputs so that unknown
// literal forms round-trip as plain strings.
func Parse(raw string) (Value, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) >= 2 {
		x, y, z, err := parseTriple(s, s[1:len(s)-1], "point")
		if err != nil {
			return nil, err
		}
		return Point{X: x, Y: y, Z: z}, nil
	}

	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") && len(s) >= 2 {
		x, y, z, err := parseTriple(s, s[1:len(s)-1], "vector")
		if err != nil {
			return nil, err
		}
		return Vector{X: x, Y: y, Z: z}, nil
	}

	if inner, ok := matchColorShape(s); ok {
		return parseColor(s, inner)
	}

	if len(s) >= 2 && strings.HasPrefix(s, "\"") && strings.HasSuffix(s, "\"") {
		return Text(s[1 : len(s)-1]), nil
	}

	if strings.EqualFold(s, "true") {
		return Boolean(true), nil
	}
	if strings.EqualFold(s, "false") {
		return Boolean(false), nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(f), nil
	}

	return Text(s), nil
}

// parseTriple parses the comma-separated interior of a point or vector
// literal. Exactly 3 numeric coordinates are required.
func parseTriple(literal, inner, shape string) (x, y, z float64, err error) {
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return 0, 0, 0, &FormatError{
			Literal: literal,
			Shape:   shape,
			Reason:  fmt.Sprintf("expected 3 coordinates, got %d", len(parts)),
		}
	}
	coords := make([]float64, 3)
	for i, p := range parts {
		f, perr := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if perr != nil {
			return 0, 0, 0, &FormatError{
				Literal: literal,
				Shape:   shape,
				Reason:  fmt.Sprintf("coordinate %q is not a number", strings.TrimSpace(p)),
			}
		}
		coords[i] = f
	}
	return coords[0], coords[1], coords[2], nil
}

// matchColorShape reports whether s has the RGB(...) shape and, if so,
// returns the text between the parentheses. A bare "RGB" prefix without the
// parenthesized list is not a shape match and falls through to the later
// rules.
func matchColorShape(s string) (inner string, ok bool) {
	if len(s) < 3 || !strings.EqualFold(s[:3], "RGB") {
		return "", false
	}
	rest := strings.TrimSpace(s[3:])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") || len(rest) < 2 {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}

// parseColor parses the interior of an RGB(...) literal. Exactly 3 integer
// components are required.
func parseColor(literal, inner string) (Value, error) {
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return nil, &FormatError{
			Literal: literal,
			Shape:   "color",
			Reason:  fmt.Sprintf("expected 3 components, got %d", len(parts)),
		}
	}
	comps := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, &FormatError{
				Literal: literal,
				Shape:   "color",
				Reason:  fmt.Sprintf("component %q is not an integer", strings.TrimSpace(p)),
			}
		}
		comps[i] = n
	}
	return Color{R: comps[0], G: comps[1], B: comps[2]}, nil
}
