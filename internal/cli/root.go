package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeshift/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Preferences are loaded before any subcommand runs and the logger is
// attached to the command context, so commands can use loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Shapeshift arranges items into column-balanced grids",
		Long:         `Shapeshift lays out boards of containers as column-balanced grids and lets you drag items between them, from scripts or interactively in the terminal.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadPrefs()
		},
	}

	root.SetVersionTemplate(buildinfo.Get().Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "preferences file (default: $SHAPESHIFT_CONFIG or ~/.config/shapeshift/config.toml)")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}
