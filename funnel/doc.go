// Package funnel computes the Euclidean shortest path between the two
// shared endpoints of a simple polygon given as a pair of boundary chains.
//
// What:
//
//   - ShortestPath: an incremental sweep along one chain. The frontier is a
//     tangent polyline kept convex toward the polygon's interior; each chain
//     point folds the frontier back to its left tangent and extends it.
//     When the opposite chain cuts into the extension, a bridging edge u->v
//     is found, the path is committed through u, and the sweep continues on
//     the opposite chain from v with flipped handedness. The walk ends when
//     the frontier absorbs the goal.
//   - WithRopePruning: skips the crossing scan while consecutive points stay
//     on one convex rope of the skeleton (labels from polygon.WithRopeLabels).
//     Output is identical to the unpruned sweep.
//   - WithTracer / StageWriter: streams each completed tangent polyline,
//     one stage per bridge plus the final one, for plotting.
//
// Why:
//
// The path between two points inside a simple polygon is a funnel walk: it
// only ever turns at reflex boundary vertices, alternating between the two
// chains. Sweeping one chain and bridging on crossings finds exactly those
// turning points without triangulating the polygon first.
//
// Complexity: O(n*m) worst case over chain lengths n and m; near-linear on
// inputs whose chains cross few times.
//
// Errors:
//
//   - ErrNilPolygon: nil polygon.
//   - ErrMissingLabels: pruning requested without rope labels.
//   - ErrNoBridge: no separating edge exists, or bridging fails to make
//     progress; the chains do not bound a simple polygon.
package funnel
