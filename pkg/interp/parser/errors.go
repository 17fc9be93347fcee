// Package parser recognizes InterpreCAD script lines and turns them into
// typed Command records.
package parser

import (
	"fmt"
	"strings"
)

// SyntaxError reports a line that does not match the expected
// identifier(args) shape, or an argument field without exactly one '='.
// Line is 1-based. Context, when present, is a source excerpt around the
// offending line with a '>' marker.
type SyntaxError struct {
	Line    int
	Message string
	Context string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("syntax error at line %d: %s\n%s", e.Line, e.Message, e.Context)
	}
	return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Message)
}

// lineError wraps a lower-layer error (typically a *value.FormatError) with
// the 1-based script line it occurred on. Unwrap keeps errors.As working on
// the underlying error. context, when present, is the same source excerpt
// that syntax errors carry.
type lineError struct {
	line    int
	err     error
	context string
}

func (e *lineError) Error() string {
	if e.context != "" {
		return fmt.Sprintf("line %d: %s\n%s", e.line, e.err, e.context)
	}
	return fmt.Sprintf("line %d: %s", e.line, e.err)
}

func (e *lineError) Unwrap() error {
	return e.err
}

// errorContext generates a source excerpt around an error line: up to 2
// lines before and after, with line numbers and the error line marked '>'.
//
// Example output:
//
//	  2 | VAR n = 5
//	> 3 | BOX(width=5
//	  4 | SPHERE(radius=1)
func errorContext(source string, line int) string {
	if source == "" || line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}

	start := line - 3
	if start < 0 {
		start = 0
	}
	end := line + 2
	if end > len(lines) {
		end = len(lines)
	}

	width := len(fmt.Sprintf("%d", end))

	var buf strings.Builder
	for i := start; i < end; i++ {
		n := i + 1
		if n == line {
			fmt.Fprintf(&buf, "> %*d | %s\n", width, n, lines[i])
		} else {
			fmt.Fprintf(&buf, "  %*d | %s\n", width, n, lines[i])
		}
	}
	return buf.String()
}
