package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/interp/emit"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the known drawing commands and their parameters",
	RunE:  runCommands,
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

func runCommands(cmd *cobra.Command, args []string) error {
	registry := emit.NewRegistry(cfg.Output.Precision)
	for _, s := range registry.Schemas() {
		fmt.Println(s.Type)
		for _, p := range s.Params {
			fmt.Printf("    %-12s %-8s default %s\n", p.Name, p.Kind, p.Default)
		}
	}
	return nil
}
