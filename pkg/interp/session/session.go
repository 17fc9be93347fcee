// Package session ties one variable table and one command list together
// into a parse lifecycle, and drives emission over the accumulated commands.
package session

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/emit"
	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/parser"
	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/vars"
)

// Session owns the mutable state of one parse lifecycle: the variable table
// and the ordered command list, reset together. A session is used by a
// single goroutine; independent scripts get independent sessions.
type Session struct {
	id       uuid.UUID
	table    *vars.Table
	commands []parser.Command
	registry *emit.Registry
	lineNo   int
}

// New creates an empty session rendering through the given registry.
func New(registry *emit.Registry) *Session {
	return &Session{
		id:       uuid.New(),
		table:    vars.New(),
		registry: registry,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// ParseScript replaces the session's command list with the result of
// parsing src. Variables defined by the script accumulate in the session
// table. On error the command list is left empty.
func (s *Session) ParseScript(src string) error {
	s.commands = nil
	s.lineNo = 0
	cmds, err := parser.ParseScript(src, s.table)
	if err != nil {
		return err
	}
	s.commands = cmds
	s.lineNo = strings.Count(src, "\n") + 1
	slog.Debug("script parsed", "session", s.ID(), "commands", len(cmds))
	return nil
}

// Feed parses a single line, appending any resulting command. Line numbers
// continue across calls, so interactive input gets accurate positions in
// errors. Rejected lines do not advance the command list.
func (s *Session) Feed(line string) error {
	s.lineNo++
	cmd, err := parser.ParseLine(line, s.lineNo, s.table)
	if err != nil {
		return err
	}
	if cmd != nil {
		s.commands = append(s.commands, *cmd)
	}
	return nil
}

// Commands returns the accumulated command list.
func (s *Session) Commands() []parser.Command {
	return s.commands
}

// DefineVariable stores a binding directly, bypassing script syntax.
func (s *Session) DefineVariable(name, raw string) {
	s.table.Define(name, raw)
}

// ListVariables returns the current bindings sorted by name.
func (s *Session) ListVariables() []vars.Binding {
	return s.table.List()
}

// Render emits one output block per command, in order, joined by newlines.
// Headers and footers are the caller's concern. Rendering never fails.
func (s *Session) Render() string {
	blocks := make([]string, len(s.commands))
	for i, cmd := range s.commands {
		blocks[i] = s.registry.Render(cmd)
	}
	return strings.Join(blocks, "\n")
}

// Clear resets the variable table and the command list together.
func (s *Session) Clear() {
	s.table.Clear()
	s.commands = nil
	s.lineNo = 0
	slog.Debug("session cleared", "session", s.ID())
}
