// Package value defines the typed value model for InterpreCAD scripts and
// the parser that turns literal text into values.
package value

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant of Value is active.
type Kind int

// Value kinds
const (
	KindNumber Kind = iota
	KindText
	KindBoolean
	KindPoint
	KindVector
	KindColor
)

// kindNames maps Kind to its string representation.
var kindNames = map[Kind]string{
	KindNumber:  "number",
	KindText:    "text",
	KindBoolean: "boolean",
	KindPoint:   "point",
	KindVector:  "vector",
	KindColor:   "color",
}

// String returns a string representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is a closed union over the literal types the script language knows.
// Exactly one variant is active per instance. The set of implementations is
// fixed: Number, Text, Boolean, Point, Vector, Color.
type Value interface {
	Kind() Kind
	String() string
}

// Number is a floating point scalar. Coordinates carry no implicit unit.
type Number float64

// Text is a plain string, either quoted in the source or a bareword that
// matched no other literal form.
type Text string

// Boolean is a true/false flag.
type Boolean bool

// Point is a position in 3D space, written [x,y,z] in scripts.
type Point struct {
	X, Y, Z float64
}

// Vector is a direction in 3D space, written <x,y,z> in scripts.
type Vector struct {
	X, Y, Z float64
}

// Color is an RGB triple, written RGB(r,g,b) in scripts.
type Color struct {
	R, G, B int
}

// Kind implementations

func (Number) Kind() Kind  { return KindNumber }
func (Text) Kind() Kind    { return KindText }
func (Boolean) Kind() Kind { return KindBoolean }
func (Point) Kind() Kind   { return KindPoint }
func (Vector) Kind() Kind  { return KindVector }
func (Color) Kind() Kind   { return KindColor }

// String returns the value in script literal notation.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (t Text) String() string {
	return string(t)
}

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (p Point) String() string {
	return fmt.Sprintf("[%s,%s,%s]", fmtCoord(p.X), fmtCoord(p.Y), fmtCoord(p.Z))
}

func (v Vector) String() string {
	return fmt.Sprintf("<%s,%s,%s>", fmtCoord(v.X), fmtCoord(v.Y), fmtCoord(v.Z))
}

func (c Color) String() string {
	return fmt.Sprintf("RGB(%d,%d,%d)", c.R, c.G, c.B)
}

func fmtCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
