package funnel

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvlgeo/geom"
)

// StageWriter is a Tracer that writes each stage as one "x y" line per point
// followed by a blank line. The output replays the frontier's growth and
// feeds plotting scripts directly.
type StageWriter struct {
	W io.Writer
}

// Stage implements Tracer. Write errors are swallowed: tracing is
// best-effort illustration and never fails the search.
func (s StageWriter) Stage(points []geom.Point) {
	for _, p := range points {
		fmt.Fprintf(s.W, "%g %g\n", p.X, p.Y)
	}
	fmt.Fprintln(s.W)
}
