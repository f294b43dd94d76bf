package cli

import "github.com/spf13/cobra"

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose   bool
	StyleFile string
}

// NewRootCommand creates the root command for the magcheck CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "magcheck",
		Short: "Validate diagrammatic Monte Carlo magnetization results",
		Long: `magcheck compares sampled magnetization observables for a two-level
system against their closed-form analytic predictions and renders the
comparison as charts.`,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.StyleFile, "style", "", "path to a YAML plot style file")

	// Add subcommands
	cmd.AddCommand(NewConvCommand(opts))
	cmd.AddCommand(NewSweepCommand(opts))

	return cmd
}
