// Package cli implements the InterpreCAD command line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/config"
	"github.com/LuisCarlosOrobio/InterpreCAD/pkg/logger"
)

var (
	cfgFile  string
	logLevel string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "interprecad",
	Short: "InterpreCAD - CAD script generator",
	Long: `InterpreCAD turns a small drawing notation into RhinoScript source text.

Scripts are plain text, one instruction per line:

  VAR r = 2.5
  CIRCLE(center=[0,0,0], radius=$r)
  BOX(corner=[0,0,0], width=5, depth=5, height=10)
  COLOR(color=RGB(200,80,80))`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		return logger.Init(cfg.LogLevel)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
}

// wrapOutput surrounds the rendered blocks with the configured header and
// footer. The header's %s verb, when present, receives the session ID.
func wrapOutput(blocks, sessionID string) string {
	header := cfg.Output.Header
	if strings.Contains(header, "%s") {
		header = fmt.Sprintf(header, sessionID)
	}
	out := header
	if blocks != "" {
		if out != "" {
			out += "\n"
		}
		out += blocks
	}
	if cfg.Output.Footer != "" {
		if out != "" {
			out += "\n"
		}
		out += cfg.Output.Footer
	}
	return out + "\n"
}
