// Package polygon derives the two boundary chains of a simple polygon from a
// finalized sequence of bundles.
//
// What:
//
//   - Polygon: chains P and Q, both starting at the skeleton's first vertex
//     and ending at its last, together bounding a simple polygon. Simplicity
//     is assumed from valid input, not verified.
//   - FromBundles: a single forward pass assigns each interior skeleton
//     vertex to the chain on the side it turns away from and injects the
//     vertex's bundle endpoints, in angular order, into the opposite chain.
//     Bundle-free vertices go to both chains unchanged.
//   - WithRopeLabels: per-entry convex-rope labels, the pruning hint for the
//     shortest-path engine. A rope is a maximal run of skeleton vertices
//     turning consistently one way; collinear vertices are tagged 0 and do
//     not break a run.
//
// Errors:
//
//   - ErrShortChain: a chain with fewer than two points.
//   - ErrChainEndpoints: chains that do not share their first and last point.
package polygon
