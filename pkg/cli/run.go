package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/emit"
	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/session"
	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/script"
)

var outputFile string

var runCmd = &cobra.Command{
	Use:   "run <script.cad | directory>",
	Short: "Parse a script and print the generated RhinoScript",
	Long: `Parses a .cad script and prints the generated RhinoScript. Given a
directory, every .cad file under it is processed in its own session.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

var renderCmd = &cobra.Command{
	Use:   "render <script.cad | directory>",
	Short: "Parse a script and write the generated RhinoScript to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(renderCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	paths := []string{args[0]}
	if info, statErr := os.Stat(args[0]); statErr == nil && info.IsDir() {
		var err error
		paths, err = script.FindScripts(args[0])
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no .cad scripts under %s", args[0])
		}
	}

	var blocks []string
	total := 0
	for _, path := range paths {
		src, err := script.Load(path)
		if err != nil {
			return err
		}
		s := session.New(emit.NewRegistry(cfg.Output.Precision))
		if err := s.ParseScript(src.Content); err != nil {
			return fmt.Errorf("%s: %w", src.FileName, err)
		}
		blocks = append(blocks, wrapOutput(s.Render(), s.ID()))
		total += len(s.Commands())
	}

	out := strings.Join(blocks, "\n")
	if outputFile == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("wrote %d commands to %s\n", total, outputFile)
	return nil
}
