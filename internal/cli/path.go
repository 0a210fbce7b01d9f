package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgeo/bundle"
	"github.com/katalvlaran/lvlgeo/funnel"
	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/polygon"
)

// pathOpts holds the command-line flags for the path command.
type pathOpts struct {
	input        string // bundle description file
	start        string // chain the sweep starts on, P or Q
	prune        bool   // convex-rope pruning
	noPreprocess bool   // skip the global clearance clamp
	trace        string // tangent polyline stage file
}

func newPathCmd() *cobra.Command {
	var opts pathOpts

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Compute the shortest path through the bundled polygon",
		Long: `Compute the Euclidean shortest path between the skeleton's endpoints.

The input file is loaded, the boundary chains are derived, and the sweep is
run from the chosen chain. Segments that fail validation are logged and
skipped; the computation continues on the rest.

Examples:
  lvlgeo path -i bundles.txt
  lvlgeo path -i bundles.txt --start Q --prune
  lvlgeo path -i bundles.txt --trace stages.txt`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runPath(c.Context(), c.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "bundle description file")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVar(&opts.start, "start", "P", "chain to start the sweep on (P or Q)")
	cmd.Flags().BoolVar(&opts.prune, "prune", false, "skip redundant crossing scans via convex-rope labels")
	cmd.Flags().BoolVar(&opts.noPreprocess, "no-preprocess", false, "keep endpoints at their declared coordinates")
	cmd.Flags().StringVar(&opts.trace, "trace", "", "write tangent polyline stages to this file")

	return cmd
}

func runPath(ctx context.Context, out io.Writer, opts *pathOpts) error {
	logger := loggerFromContext(ctx)

	from, err := parseChain(opts.start)
	if err != nil {
		return err
	}

	seq, skipped, err := bundle.Load(opts.input, !opts.noPreprocess)
	if err != nil {
		return err
	}
	for _, e := range skipped {
		logger.Warnf("segment skipped: %v", e)
	}
	if !opts.noPreprocess {
		logger.Debugf("effective radius %g", seq.EffectiveRadius())
	}

	var polyOpts []polygon.Option
	if opts.prune {
		polyOpts = append(polyOpts, polygon.WithRopeLabels())
	}
	poly, err := polygon.FromBundles(seq, polyOpts...)
	if err != nil {
		return err
	}
	logger.Debugf("chains: %d points on P, %d on Q", len(poly.P), len(poly.Q))

	var funnelOpts []funnel.Option
	if opts.prune {
		funnelOpts = append(funnelOpts, funnel.WithRopePruning())
	}
	if opts.trace != "" {
		f, err := os.Create(opts.trace)
		if err != nil {
			return err
		}
		defer f.Close()
		funnelOpts = append(funnelOpts, funnel.WithTracer(funnel.StageWriter{W: f}))
	}

	path, err := funnel.ShortestPath(poly, from, funnelOpts...)
	if err != nil {
		return err
	}

	for _, p := range path {
		fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
	}
	fmt.Fprintf(out, "length: %g\n", geom.PathLength(path))

	return nil
}

// parseChain maps the --start flag onto a chain identifier.
func parseChain(s string) (funnel.ChainID, error) {
	switch strings.ToUpper(s) {
	case "P":
		return funnel.ChainP, nil
	case "Q":
		return funnel.ChainQ, nil
	default:
		return 0, fmt.Errorf("unknown chain %q: want P or Q", s)
	}
}
