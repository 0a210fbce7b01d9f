package funnel

import (
	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/polygon"
)

// hullPoint pairs a frontier point with its index in the chain it was taken
// from. Indices survive the chain swap on a bridge, so the resumed sweep
// never searches for a point by value.
type hullPoint struct {
	pt  geom.Point
	idx int
}

// ShortestPath returns the Euclidean shortest path between the shared start
// and goal of poly's boundary chains. from picks the chain the sweep walks
// first; both choices return a path of the same length.
//
// The sweep grows a tangent polyline (the convex frontier) along the current
// chain. Whenever the opposite chain crosses into the newly extended hull, a
// bridging edge u->v is located, the path is committed up to u, and the sweep
// resumes on the opposite chain at v with flipped handedness.
func ShortestPath(poly *polygon.Polygon, from ChainID, opts ...Option) ([]geom.Point, error) {
	if poly == nil {
		return nil, ErrNilPolygon
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.prune && (poly.RopeP == nil || poly.RopeQ == nil) {
		return nil, ErrMissingLabels
	}

	cur, dual := poly.P, poly.Q
	curLabels, dualLabels := poly.RopeP, poly.RopeQ
	direction := from == ChainP
	if from == ChainQ {
		cur, dual = dual, cur
		curLabels, dualLabels = dualLabels, curLabels
	}

	goal := poly.P[len(poly.P)-1]
	// Each bridge consumes at least one chain point, so more bridges than
	// points means the chains do not bound a simple polygon.
	maxBridges := len(poly.P) + len(poly.Q)

	var (
		path     []geom.Point
		start    int
		checking int
		bridges  int
	)
	for {
		if cur[start] == goal {
			return append(path, cur[start]), nil
		}
		if cur[start+1] == goal {
			return append(path, cur[start], cur[start+1]), nil
		}

		hull := []hullPoint{{cur[start], start}, {cur[start+1], start + 1}}
		lastLabel := 0

		for i := start + 2; i < len(cur); i++ {
			added := cur[i]
			lt := leftTangent(hull, added, direction)

			// While the sweep stays on one convex rope the opposite chain
			// cannot newly cross the frontier; the scan is redundant.
			skip := false
			if cfg.prune {
				if label := curLabels[i]; label != 0 {
					skip = label == lastLabel
					lastLabel = label
				}
			}

			var ys []hullPoint
			if !skip {
				ys = crossings(dual, checking, hull[lt].pt, added, direction)
			}

			if len(ys) > 0 {
				uPos, vPos, ok := findLink(hull[lt:], ys, direction)
				if !ok {
					return nil, ErrNoBridge
				}
				if bridges++; bridges > maxBridges {
					return nil, ErrNoBridge
				}
				uPos += lt

				if cfg.tracer != nil {
					cfg.tracer.Stage(points(hull))
				}
				path = append(path, points(hull[:uPos+1])...)

				start = ys[vPos].idx
				checking = hull[uPos].idx
				cur, dual = dual, cur
				curLabels, dualLabels = dualLabels, curLabels
				direction = !direction

				break
			}

			// No crossing: fold the frontier back to the tangent point and
			// take the added point in.
			hull = append(hull[:lt+1], hullPoint{added, i})
			if added == goal {
				if cfg.tracer != nil {
					cfg.tracer.Stage(points(hull))
				}

				return append(path, points(hull)...), nil
			}
		}
	}
}

// leftTangent walks the frontier back from its tip until the added point
// lies strictly left of the last retained edge.
func leftTangent(hull []hullPoint, added geom.Point, direction bool) int {
	lt := len(hull) - 1
	for lt > 0 && !geom.IsLeft(hull[lt-1].pt, hull[lt].pt, added, direction) {
		lt--
	}

	return lt
}

// crossings scans the opposite chain from index from for the run of points
// that crossed into the hull extension closed by the chord tangent->added.
// Entry and exit both require an edge of the chain to cut the chord; points
// between stay collected while the scan is inside the region.
func crossings(dual []geom.Point, from int, tangent, added geom.Point, direction bool) []hullPoint {
	var ys []hullPoint
	inside := false
	for j := from + 1; j < len(dual); j++ {
		prev, pt := dual[j-1], dual[j]
		ptLeft := geom.IsLeft(pt, tangent, added, direction)
		switch {
		case !geom.IsLeft(prev, tangent, added, direction) && ptLeft &&
			geom.SegmentsIntersect(prev, pt, tangent, added):
			inside = true
			ys = append(ys, hullPoint{pt, j})
		case ptLeft && inside:
			ys = append(ys, hullPoint{pt, j})
		case !ptLeft && geom.SegmentsIntersect(prev, pt, tangent, added):
			inside = false
		}
	}

	return ys
}

// points strips the chain indices off a frontier slice.
func points(hull []hullPoint) []geom.Point {
	out := make([]geom.Point, len(hull))
	for i, h := range hull {
		out[i] = h.pt
	}

	return out
}
