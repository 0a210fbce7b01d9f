// Package lvlgeo is your in-memory toolkit for turning bundled line
// segments into simple polygons and walking the shortest path through them.
//
// 🚀 What is lvlgeo?
//
//	A small, focused computational-geometry library that brings together:
//		• Geometry kernel: exact orientation, tolerant side predicates, angles
//		• Sequences of bundles: a skeleton polyline with angularly ordered
//		  line segments attached to its vertices, plus a text loader
//		• Polygon derivation: the two boundary chains of the simple polygon
//		  a sequence describes, with convex-rope labels
//		• Shortest paths: an incremental tangent-polyline sweep that bridges
//		  between the chains and returns the geodesic between the endpoints
//
// ✨ Why choose lvlgeo?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – one shared epsilon across every predicate
//   - Pure Go core – the library has no dependencies beyond the CLI's
//   - Inspectable – stream every sweep stage to a plot-ready trace
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/    — points, predicates, angles, segment intersection
//	bundle/  — sequence-of-bundles model, validation & file loader
//	polygon/ — boundary-chain derivation & convex-rope labels
//	funnel/  — the shortest-path sweep, pruning & tracing
//
// Quick ASCII example:
//
//	    2,2     6,3
//	    ╱ ╲     ╱ ╲
//	 0,0   ╲   ╱   ╲
//	        4,1     8,0
//
//	a zigzag skeleton; bundles at the interior vertices fatten it into a
//	simple polygon, and the sweep threads the shortest path through it.
//
// The lvlgeo command wraps the pipeline: see cmd/lvlgeo.
//
//	go get github.com/katalvlaran/lvlgeo
package lvlgeo
