package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the lvlgeo CLI. The root command wires the path and chains
// subcommands and attaches a logger to the context; --verbose (-v) switches
// it from info to debug level.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "lvlgeo",
		Short:        "lvlgeo computes shortest paths in polygons built from line-segment bundles",
		Long: `lvlgeo reads a skeleton polyline with bundles of line segments attached to
its vertices, derives the two boundary chains of the simple polygon they
describe, and computes the Euclidean shortest path between the skeleton's
endpoints.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lvlgeo %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPathCmd())
	root.AddCommand(newChainsCmd())

	return root.ExecuteContext(ctx)
}
