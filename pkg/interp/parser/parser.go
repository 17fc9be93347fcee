package parser

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/lexer"
	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/value"
	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/vars"
)

// Command is one parsed script instruction. Type is the upper-cased command
// identifier used as the schema lookup key. Params maps parameter names to
// their parsed values; key order is irrelevant. Commands are immutable once
// built.
type Command struct {
	Type       string
	Params     map[string]value.Value
	SourceLine int
}

// ParseLine parses one script line against the variable table.
//
// Blank lines and // comment lines produce neither a command nor an error.
// A "VAR name = raw" line stores a binding in the table and produces no
// command. Anything else must match identifier(args): the identifier is
// upper-cased to the canonical command type, the argument text is split into
// fields, and each field's value is variable-substituted and then parsed
// into a typed value. Repeated parameter names overwrite, last write wins.
//
// lineNo is the 1-based line number recorded in the command and in any
// error.
func ParseLine(line string, lineNo int, table *vars.Table) (*Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}

	if isVarDecl(trimmed) {
		return nil, parseVarDecl(trimmed, lineNo, table)
	}

	open := strings.Index(trimmed, "(")
	if open < 0 || !strings.HasSuffix(trimmed, ")") {
		return nil, &SyntaxError{Line: lineNo, Message: "line is not a command invocation: expected identifier(arguments)"}
	}

	name := strings.TrimSpace(trimmed[:open])
	if !isIdentifier(name) {
		return nil, &SyntaxError{Line: lineNo, Message: "invalid command identifier " + strconv.Quote(name)}
	}

	args := trimmed[open+1 : len(trimmed)-1]
	params := make(map[string]value.Value)
	for _, field := range lexer.SplitArgs(args) {
		pname, raw, err := lexer.SplitAssign(field)
		if err != nil {
			return nil, &SyntaxError{Line: lineNo, Message: err.Error()}
		}
		substituted := table.Substitute(raw)
		v, err := value.Parse(substituted)
		if err != nil {
			return nil, &lineError{line: lineNo, err: err}
		}
		params[pname] = v
	}

	cmd := &Command{
		Type:       strings.ToUpper(name),
		Params:     params,
		SourceLine: lineNo,
	}
	slog.Debug("parsed command", "type", cmd.Type, "params", len(cmd.Params), "line", lineNo)
	return cmd, nil
}

// ParseScript parses a whole script, one instruction per line, and returns
// the ordered command list. The first error aborts the parse; it carries the
// 1-based line number and a source excerpt around the offending line. An
// empty script parses to an empty command list.
func ParseScript(src string, table *vars.Table) ([]Command, error) {
	var commands []Command
	for i, line := range strings.Split(src, "\n") {
		lineNo := i + 1
		cmd, err := ParseLine(line, lineNo, table)
		if err != nil {
			switch e := err.(type) {
			case *SyntaxError:
				if e.Context == "" {
					e.Context = errorContext(src, e.Line)
				}
			case *lineError:
				if e.context == "" {
					e.context = errorContext(src, e.line)
				}
			}
			return nil, err
		}
		if cmd != nil {
			commands = append(commands, *cmd)
		}
	}
	return commands, nil
}

// isVarDecl reports whether the trimmed line starts with the VAR keyword
// followed by whitespace. The keyword is matched case-insensitively, like
// command identifiers.
func isVarDecl(trimmed string) bool {
	if len(trimmed) < 4 || !strings.EqualFold(trimmed[:3], "VAR") {
		return false
	}
	return unicode.IsSpace(rune(trimmed[3]))
}

// parseVarDecl handles "VAR name = raw". The split is at the first '=' so
// the raw text may itself contain '='. The binding does not produce a
// command.
func parseVarDecl(trimmed string, lineNo int, table *vars.Table) error {
	rest := strings.TrimSpace(trimmed[3:])
	idx := strings.Index(rest, "=")
	if idx < 0 {
		return &SyntaxError{Line: lineNo, Message: "variable definition has no '='"}
	}
	name := strings.TrimSpace(rest[:idx])
	if name == "" {
		return &SyntaxError{Line: lineNo, Message: "variable definition has an empty name"}
	}
	raw := strings.TrimSpace(rest[idx+1:])
	table.Define(name, raw)
	slog.Debug("defined variable", "name", name, "raw", raw, "line", lineNo)
	return nil
}

// isIdentifier reports whether s is a non-empty run of letters, digits and
// underscores starting with a letter.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
