package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/diagmc/magcheck/internal/dataset"
	"github.com/diagmc/magcheck/internal/grouping"
	"github.com/diagmc/magcheck/internal/render"
)

// DefaultSweepInput is the conventional results file name the sampler
// writes for an h/Γ sweep.
const DefaultSweepInput = "results_sweep.csv"

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep [results-file]",
		Short: "Plot an h/Γ sweep against theory",
		Long: `Plot the results of a sweep varying both H and GAMMA at fixed beta.

Records are grouped by GAMMA in first-appearance order; each group gets a
continuous theoretical curve and its measured points in a deterministic
group color. The output name embeds beta, e.g. sweep_beta=0.5.png.

With no argument the conventional results file name is used:

  magcheck sweep
  magcheck sweep runs/results_sweep.csv`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultSweepInput
			if len(args) == 1 {
				path = args[0]
			}
			return runSweep(rootOpts, path, cmd)
		},
	}

	return cmd
}

func runSweep(opts *RootOptions, path string, cmd *cobra.Command) error {
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
	recs, err := dataset.SweepRecords(table)
	if err != nil {
		return WrapExitError(ExitCommandError, "results are not a sweep dataset", err)
	}

	beta, err := dataset.SweepBeta(recs)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to extract beta", err)
	}

	groups, err := grouping.Discover(recs)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to group records", err)
	}
	slog.Info("groups discovered", "run", token, "beta", beta, "groups", len(groups))
	for _, g := range groups {
		slog.Debug("group", "run", token, "index", g.Index, "gamma", g.Gamma, "rows", len(g.Records))
	}

	fig, err := render.Sweep(groups, beta, st)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to compose figure", err)
	}

	artifact := render.SweepArtifact(beta)
	if err := render.Save(fig, artifact); err != nil {
		return WrapExitError(ExitCommandError, "failed to write artifact", err)
	}

	slog.Info("artifact written", "run", token, "path", artifact)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", artifact)
	return nil
}
