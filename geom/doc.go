// Package geom provides the 2-D geometry kernel shared by the bundle,
// polygon, and funnel packages.
//
// What:
//
//   - Point: an immutable value-type coordinate with explicit vector
//     arithmetic (Add, Sub, Scale, Div) and exact equality via ==.
//   - Orient: exact orientation of an ordered point triple (no tolerance).
//   - IsLeft / IsLeftOn: ε-tolerant turn predicates with a direction flag,
//     so the same predicate serves both boundary chains of a dual sweep.
//   - Angle: unsigned angle in degrees at a vertex, with a hard error on
//     zero-length rays (coincident input points).
//   - SegmentsIntersect: classic orientation test with collinear-overlap
//     special cases.
//   - GreaterAngle / EqualAngles / LessAngle: angle comparators on the
//     shared ε, so ordering and pruning logic agree on ties.
//
// Why:
//
//   - Funnel/rubberband shortest-path sweeps are built entirely from turn
//     predicates; keeping them in one place keeps every consumer on the
//     same tolerance.
//   - Exact Point equality doubles as an identity test ("is this the goal
//     vertex"), so coordinates are never recomputed or normalized here.
//
// Errors:
//
//   - ErrZeroLengthRay: Angle was asked about coincident points. This is a
//     precondition violation, never silently absorbed.
package geom
