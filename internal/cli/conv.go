package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/diagmc/magcheck/internal/dataset"
	"github.com/diagmc/magcheck/internal/render"
)

// DefaultConvergenceInput is the conventional results file name the sampler
// writes for a convergence test.
const DefaultConvergenceInput = "results_conv_test.csv"

// NewConvCommand creates the conv command.
func NewConvCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conv [results-file]",
		Short: "Plot a convergence test against theory",
		Long: `Plot the results of a convergence test varying N_measures.

Loads a results file with constant physical parameters, computes the
theoretical magnetization once, and writes a two-panel chart of measured
m_z and m_x against N_measures with the theoretical values overlaid.

With no argument the conventional results file name is used:

  magcheck conv
  magcheck conv runs/results_conv_test.csv`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultConvergenceInput
			if len(args) == 1 {
				path = args[0]
			}
			return runConvergence(rootOpts, path, cmd)
		},
	}

	return cmd
}

func runConvergence(opts *RootOptions, path string, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)
	token := newRunToken()

	st, err := styleFor(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load plot style", err)
	}

	slog.Info("loading results", "run", token, "path", path)
	table, err := dataset.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load results", err)
	}
	recs, err := dataset.ConvergenceRecords(table)
	if err != nil {
		return WrapExitError(ExitCommandError, "results are not a convergence dataset", err)
	}
	slog.Debug("records loaded", "run", token, "rows", len(recs))

	params, err := dataset.ConstantParameters(recs)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to extract parameters", err)
	}
	if err := params.Validate(); err != nil {
		return WrapExitError(ExitFailure, "no theoretical prediction for parameters", err)
	}
	slog.Info("parameters extracted", "run", token,
		"beta", params.Beta, "h", params.H, "gamma", params.Gamma)

	fig, err := render.Convergence(recs, params, st)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to compose figure", err)
	}
	if err := render.Save(fig, render.ConvergenceArtifact); err != nil {
		return WrapExitError(ExitCommandError, "failed to write artifact", err)
	}

	slog.Info("artifact written", "run", token, "path", render.ConvergenceArtifact)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", render.ConvergenceArtifact)
	return nil
}
