package funnel

import "github.com/katalvlaran/lvlgeo/geom"

// verifyLink reports whether the edge u->v separates the frontier from the
// crossing region: every frontier point weakly left of it for the current
// handedness, every crossing point weakly left for the opposite one.
func verifyLink(xs, ys []hullPoint, u, v geom.Point, direction bool) bool {
	for _, x := range xs {
		if !geom.IsLeftOn(u, v, x.pt, direction) {
			return false
		}
	}
	for _, y := range ys {
		if !geom.IsLeftOn(u, v, y.pt, !direction) {
			return false
		}
	}

	return true
}

// findLink scans every frontier/crossing pair for a separating edge and
// returns the positions of the first match within xs and ys. Quadratic in
// the candidate counts, which the sweep keeps small.
func findLink(xs, ys []hullPoint, direction bool) (int, int, bool) {
	for ui, u := range xs {
		for vi, v := range ys {
			if verifyLink(xs, ys, u.pt, v.pt, direction) {
				return ui, vi, true
			}
		}
	}

	return 0, 0, false
}
