// Package bundle models a sequence of line-segment bundles: an ordered
// skeleton of vertices where each interior vertex optionally fans out into
// alternative "outer endpoint" detours, kept in ascending angular order
// inside the vertex's interior sector.
//
// What:
//
//   - Sequence: immutable skeleton + per-interior-vertex endpoint lists.
//   - AddSegment / AddSegmentAt: validated endpoint insertion. Validation
//     failures are reported per call and leave the sequence unchanged;
//     construction continues.
//   - Preprocess: clamps every endpoint to half the minimum pairwise
//     skeleton distance, so bundles from distant vertices can never overlap.
//     This is a correctness safeguard for the derived polygon, not an
//     optimization.
//   - Parse / Load: the sectioned text description format
//     (Radius: / Vertices: / LineSegments: sections, # comments).
//
// Complexity:
//
//   - AddSegment: O(bundle size) per insert (linear angular scan; bundles
//     are small and bounded by local geometry).
//   - Preprocess: O(n²) over skeleton vertices.
//
// Errors:
//
//   - Per-call validation: ErrVertexNotFound, ErrTerminalVertex,
//     ErrSegmentTooLong, ErrOutsideSector, ErrDuplicateAngle.
//   - Construction: ErrShortSkeleton, ErrDuplicateVertex.
//   - Load (fatal, partial structure discarded): ErrMissingRadius,
//     ErrMissingVertices, ErrMalformedLine, ErrSegmentIndex.
package bundle
