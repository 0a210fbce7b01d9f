package polygon

import (
	"errors"

	"github.com/katalvlaran/lvlgeo/bundle"
	"github.com/katalvlaran/lvlgeo/geom"
)

// Sentinel errors for polygon construction.
var (
	// ErrShortChain indicates a boundary chain with fewer than two points.
	ErrShortChain = errors.New("polygon: boundary chain needs at least two points")
	// ErrChainEndpoints indicates the chains do not share start and end point.
	ErrChainEndpoints = errors.New("polygon: chains must share their first and last point")
)

// Polygon holds the two boundary chains of a simple polygon. P and Q both
// run from the shared start to the shared goal vertex. All fields are
// read-only after construction; the shortest-path engine only ever reads
// them.
//
// RopeP and RopeQ carry the convex-rope label of the skeleton vertex each
// chain entry derives from; they are nil unless built WithRopeLabels.
type Polygon struct {
	P, Q         []geom.Point
	RopeP, RopeQ []int
}

// Option configures polygon derivation.
type Option func(*builderConfig)

type builderConfig struct {
	ropeLabels bool
}

// WithRopeLabels computes convex-rope labels alongside the chains, enabling
// the engine's pruned strategy.
func WithRopeLabels() Option {
	return func(c *builderConfig) {
		c.ropeLabels = true
	}
}

// New builds a Polygon from two raw chains. The chains must share their
// first and last points; nothing else is verified — the caller vouches that
// together they bound a simple polygon.
func New(p, q []geom.Point) (*Polygon, error) {
	if len(p) < 2 || len(q) < 2 {
		return nil, ErrShortChain
	}
	if p[0] != q[0] || p[len(p)-1] != q[len(q)-1] {
		return nil, ErrChainEndpoints
	}

	return &Polygon{P: p, Q: q}, nil
}

// FromBundles derives the boundary chains from a finalized sequence. For
// each interior vertex the first (lowest-angle) bundle endpoint decides the
// side: the vertex goes to the chain it turns away from, the endpoints fill
// the opposite chain in angular order. Vertices without a bundle keep the
// chains synchronized by appearing on both.
func FromBundles(seq *bundle.Sequence, opts ...Option) (*Polygon, error) {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	skeleton := seq.Skeleton()
	if len(skeleton) < 2 {
		return nil, ErrShortChain
	}

	var labels []int
	if cfg.ropeLabels {
		labels = ropeLabels(skeleton)
	}

	n := len(skeleton)
	p := []geom.Point{skeleton[0]}
	q := []geom.Point{skeleton[0]}
	var ropeP, ropeQ []int
	if cfg.ropeLabels {
		ropeP = []int{0}
		ropeQ = []int{0}
	}

	appendP := func(pt geom.Point, label int) {
		p = append(p, pt)
		if cfg.ropeLabels {
			ropeP = append(ropeP, label)
		}
	}
	appendQ := func(pt geom.Point, label int) {
		q = append(q, pt)
		if cfg.ropeLabels {
			ropeQ = append(ropeQ, label)
		}
	}

	for i := 1; i < n-1; i++ {
		endpoints := seq.Endpoints(i)
		label := 0
		if cfg.ropeLabels {
			label = labels[i]
		}

		if len(endpoints) == 0 {
			appendP(skeleton[i], label)
			appendQ(skeleton[i], label)

			continue
		}

		if geom.IsLeft(skeleton[i-1], skeleton[i], endpoints[0], true) {
			appendQ(skeleton[i], label)
			for _, e := range endpoints {
				appendP(e, label)
			}
		} else {
			appendP(skeleton[i], label)
			for _, e := range endpoints {
				appendQ(e, label)
			}
		}
	}

	appendP(skeleton[n-1], 0)
	appendQ(skeleton[n-1], 0)

	return &Polygon{P: p, Q: q, RopeP: ropeP, RopeQ: ropeQ}, nil
}

// ropeLabels decomposes the skeleton polyline into maximal runs of
// consistently turning vertices. Vertices inside the same run share a label;
// collinear vertices get 0 and do not break the surrounding run. Terminal
// vertices have no turn and stay 0.
func ropeLabels(skeleton []geom.Point) []int {
	labels := make([]int, len(skeleton))
	rope := 0
	prevTurn := geom.Collinear
	for i := 1; i < len(skeleton)-1; i++ {
		turn := geom.Orient(skeleton[i-1], skeleton[i], skeleton[i+1])
		if turn == geom.Collinear {
			continue
		}
		if turn != prevTurn {
			rope++
			prevTurn = turn
		}
		labels[i] = rope
	}

	return labels
}
