package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/value"
	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/vars"
)

func TestParseLineInvocation(t *testing.T) {
	table := vars.New()

	cmd, err := ParseLine("box(width=5, height=[1,2,3])", 7, table)
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if cmd == nil {
		t.Fatal("ParseLine returned no command")
	}
	if cmd.Type != "BOX" {
		t.Errorf("type wrong. expected=%q, got=%q", "BOX", cmd.Type)
	}
	if cmd.SourceLine != 7 {
		t.Errorf("source line wrong. expected=7, got=%d", cmd.SourceLine)
	}
	if len(cmd.Params) != 2 {
		t.Fatalf("expected 2 parameters, got %d: %v", len(cmd.Params), cmd.Params)
	}
	if cmd.Params["width"] != value.Number(5) {
		t.Errorf("width wrong. got=%#v", cmd.Params["width"])
	}
	if cmd.Params["height"] != (value.Point{X: 1, Y: 2, Z: 3}) {
		t.Errorf("height wrong. got=%#v", cmd.Params["height"])
	}
}

func TestParseLineSkipsBlankAndComments(t *testing.T) {
	table := vars.New()
	for i, line := range []string{"", "   ", "// a comment", "  // indented comment"} {
		cmd, err := ParseLine(line, i+1, table)
		if err != nil {
			t.Fatalf("line %q returned error: %v", line, err)
		}
		if cmd != nil {
			t.Fatalf("line %q produced a command: %#v", line, cmd)
		}
	}
}

func TestParseLineVarDecl(t *testing.T) {
	table := vars.New()

	cmd, err := ParseLine("VAR n = 5", 1, table)
	if err != nil {
		t.Fatalf("VAR line returned error: %v", err)
	}
	if cmd != nil {
		t.Fatalf("VAR line produced a command: %#v", cmd)
	}

	cmd, err = ParseLine("BOX(width=$n)", 2, table)
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if cmd.Params["width"] != value.Number(5) {
		t.Errorf("expected width=Number(5), got=%#v", cmd.Params["width"])
	}
}

func TestParseLineVarRawTextKeepsEquals(t *testing.T) {
	// Only the first '=' separates name from raw text.
	table := vars.New()
	if _, err := ParseLine(`VAR lbl = "a=b"`, 1, table); err != nil {
		t.Fatalf("VAR line returned error: %v", err)
	}
	cmd, err := ParseLine("TEXT(text=$lbl)", 2, table)
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if cmd.Params["text"] != value.Text("a=b") {
		t.Errorf("expected Text(\"a=b\"), got=%#v", cmd.Params["text"])
	}
}

func TestParseLineRepeatedParamLastWins(t *testing.T) {
	table := vars.New()
	cmd, err := ParseLine("BOX(width=1,width=2)", 1, table)
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if len(cmd.Params) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(cmd.Params))
	}
	if cmd.Params["width"] != value.Number(2) {
		t.Errorf("expected last write to win, got=%#v", cmd.Params["width"])
	}
}

func TestParseLineSyntaxErrors(t *testing.T) {
	tests := []string{
		"BOX(width=5",      // missing closing paren
		"BOX width=5",      // no parenthesized call
		"just some words",  // no call shape
		"(width=5)",        // empty identifier
		"B@X(width=5)",     // bad identifier
		"BOX(width)",       // field without '='
		"BOX(width=5=6)",   // field with two '='
		"BOX(=5)",          // empty parameter name
		"VAR n",            // variable definition without '='
		"VAR = 5",          // variable definition without name
	}

	table := vars.New()
	for i, line := range tests {
		_, err := ParseLine(line, i+1, table)
		if err == nil {
			t.Fatalf("tests[%d] - ParseLine(%q) expected SyntaxError, got nil", i, line)
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("tests[%d] - ParseLine(%q) error is not a *SyntaxError: %v", i, line, err)
		}
		if se.Line != i+1 {
			t.Errorf("tests[%d] - line number wrong. expected=%d, got=%d", i, i+1, se.Line)
		}
	}
}

func TestParseScript(t *testing.T) {
	src := `// drawing
VAR r = 2.5

CIRCLE(center=[0,0,0], radius=$r)
box(width=5,height=10)
`
	cmds, err := ParseScript(src, vars.New())
	if err != nil {
		t.Fatalf("ParseScript returned error: %v", err)
	}
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	if cmds[0].Type != "CIRCLE" || cmds[0].SourceLine != 4 {
		t.Errorf("first command wrong: %+v", cmds[0])
	}
	if cmds[0].Params["radius"] != value.Number(2.5) {
		t.Errorf("radius wrong: %#v", cmds[0].Params["radius"])
	}
	if cmds[1].Type != "BOX" || cmds[1].SourceLine != 5 {
		t.Errorf("second command wrong: %+v", cmds[1])
	}
}

func TestParseScriptEmpty(t *testing.T) {
	cmds, err := ParseScript("", vars.New())
	if err != nil {
		t.Fatalf("empty script returned error: %v", err)
	}
	if len(cmds) != 0 {
		t.Fatalf("expected empty command list, got %d", len(cmds))
	}
}

func TestParseScriptStopsAtFirstError(t *testing.T) {
	src := "POINT(position=[0,0,0])\nBOX(width=5\nSPHERE(radius=1)"
	_, err := ParseScript(src, vars.New())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error is not a *SyntaxError: %v", err)
	}
	if se.Line != 2 {
		t.Errorf("line number wrong. expected=2, got=%d", se.Line)
	}
	if se.Context == "" {
		t.Error("expected a source context excerpt")
	}
	if !strings.Contains(se.Context, "> 2 | BOX(width=5") {
		t.Errorf("context does not mark the error line:\n%s", se.Context)
	}
}

func TestParseScriptFormatErrorCarriesLine(t *testing.T) {
	src := "POINT(position=[0,0,0])\nLINE(start=[1,2])"
	_, err := ParseScript(src, vars.New())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var fe *value.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error does not wrap a *value.FormatError: %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error does not name line 2: %v", err)
	}
	if !strings.Contains(err.Error(), "> 2 | LINE(start=[1,2])") {
		t.Errorf("error does not carry a marked source excerpt: %v", err)
	}
}

func TestParseScriptIdempotent(t *testing.T) {
	src := `VAR n = 5
BOX(width=$n, height=[1,2,3])
SPHERE(center=[0,0,0], radius=2)
COLOR(color=RGB(10,20,30))
`
	first, err := ParseScript(src, vars.New())
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	second, err := ParseScript(src, vars.New())
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parses differ:\nfirst=%#v\nsecond=%#v", first, second)
	}
}
