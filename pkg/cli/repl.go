package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/emit"
	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/session"
	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/script"
)

const replHelp = `Starts an interactive session. DSL lines are parsed as you type them;
meta-commands control the session:

  HELP           list meta-commands
  VARS           list defined variables
  LIST           list accepted commands
  RENDER         print the generated RhinoScript so far
  LOAD <file>    feed a script file into the session
  SAVE <file>    save the accepted source lines
  CLEAR          reset variables and commands
  EXIT           leave`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive session",
	Long:  replHelp,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// repl drives one interactive session over in/out.
type repl struct {
	session *session.Session
	source  []string // accepted DSL lines, for SAVE
	out     io.Writer
}

func runRepl(cmd *cobra.Command, args []string) error {
	r := &repl{
		session: session.New(emit.NewRegistry(cfg.Output.Precision)),
		out:     os.Stdout,
	}
	fmt.Fprintln(r.out, infoStyle.Render("InterpreCAD interactive session "+r.session.ID()))
	fmt.Fprintln(r.out, infoStyle.Render(`type HELP for meta-commands, EXIT to leave`))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(r.out, promptStyle.Render("cad> "))
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if done := r.handle(scanner.Text()); done {
			return nil
		}
	}
}

// handle processes one input line and reports whether the loop should end.
func (r *repl) handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	word, rest, _ := strings.Cut(trimmed, " ")

	switch strings.ToUpper(word) {
	case "EXIT", "QUIT":
		return true
	case "HELP":
		fmt.Fprintln(r.out, replHelp)
	case "VARS":
		for _, b := range r.session.ListVariables() {
			fmt.Fprintf(r.out, "%s = %s\n", b.Name, b.Raw)
		}
	case "LIST":
		for _, c := range r.session.Commands() {
			fmt.Fprintf(r.out, "%4d  %s (%d parameters)\n", c.SourceLine, c.Type, len(c.Params))
		}
	case "RENDER":
		fmt.Fprint(r.out, wrapOutput(r.session.Render(), r.session.ID()))
	case "CLEAR":
		r.session.Clear()
		r.source = nil
		fmt.Fprintln(r.out, infoStyle.Render("session cleared"))
	case "LOAD":
		r.load(strings.TrimSpace(rest))
	case "SAVE":
		r.save(strings.TrimSpace(rest))
	default:
		r.feed(line)
	}
	return false
}

// feed hands one DSL line to the session. Parse errors are printed and the
// loop continues; the offending line is not kept.
func (r *repl) feed(line string) {
	if err := r.session.Feed(line); err != nil {
		fmt.Fprintln(r.out, errorStyle.Render(err.Error()))
		return
	}
	r.source = append(r.source, line)
}

func (r *repl) load(path string) {
	if path == "" {
		fmt.Fprintln(r.out, errorStyle.Render("usage: LOAD <file>"))
		return
	}
	s, err := script.Load(path)
	if err != nil {
		fmt.Fprintln(r.out, errorStyle.Render(err.Error()))
		return
	}
	for _, line := range strings.Split(s.Content, "\n") {
		r.feed(line)
	}
	fmt.Fprintln(r.out, infoStyle.Render(fmt.Sprintf("loaded %s, %d commands total", s.FileName, len(r.session.Commands()))))
}

func (r *repl) save(path string) {
	if path == "" {
		fmt.Fprintln(r.out, errorStyle.Render("usage: SAVE <file>"))
		return
	}
	content := strings.Join(r.source, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		fmt.Fprintln(r.out, errorStyle.Render(err.Error()))
		return
	}
	fmt.Fprintln(r.out, infoStyle.Render(fmt.Sprintf("saved %d lines to %s", len(r.source), path)))
}
