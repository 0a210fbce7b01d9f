package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgeo/bundle"
	"github.com/katalvlaran/lvlgeo/polygon"
)

// chainsOpts holds the command-line flags for the chains command.
type chainsOpts struct {
	input        string
	noPreprocess bool
}

func newChainsCmd() *cobra.Command {
	var opts chainsOpts

	cmd := &cobra.Command{
		Use:   "chains",
		Short: "Print the derived boundary chains and their rope labels",
		Long: `Derive the two boundary chains from the input file and print them, one
"x y rope" line per point, chains separated by a blank line. Useful for
checking side assignment before running the path sweep.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runChains(c.Context(), c.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "bundle description file")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().BoolVar(&opts.noPreprocess, "no-preprocess", false, "keep endpoints at their declared coordinates")

	return cmd
}

func runChains(ctx context.Context, out io.Writer, opts *chainsOpts) error {
	logger := loggerFromContext(ctx)

	seq, skipped, err := bundle.Load(opts.input, !opts.noPreprocess)
	if err != nil {
		return err
	}
	for _, e := range skipped {
		logger.Warnf("segment skipped: %v", e)
	}

	poly, err := polygon.FromBundles(seq, polygon.WithRopeLabels())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "P:")
	for i, p := range poly.P {
		fmt.Fprintf(out, "%g %g %d\n", p.X, p.Y, poly.RopeP[i])
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Q:")
	for i, p := range poly.Q {
		fmt.Fprintf(out, "%g %g %d\n", p.X, p.Y, poly.RopeQ[i])
	}

	return nil
}
