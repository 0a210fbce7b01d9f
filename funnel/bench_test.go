package funnel_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlgeo/funnel"
	"github.com/katalvlaran/lvlgeo/geom"
	"github.com/katalvlaran/lvlgeo/polygon"
)

// corridorPolygon is a flat corridor with n boundary points per chain; the
// geodesic is the single segment between the shared endpoints.
func corridorPolygon(n int) *polygon.Polygon {
	p := make([]geom.Point, 0, n+2)
	q := make([]geom.Point, 0, n+2)
	p = append(p, geom.Point{})
	q = append(q, geom.Point{})
	for i := 1; i <= n; i++ {
		p = append(p, geom.Point{X: float64(i), Y: 1})
		q = append(q, geom.Point{X: float64(i), Y: -1})
	}
	end := geom.Point{X: float64(n + 1)}
	poly, err := polygon.New(append(p, end), append(q, end))
	if err != nil {
		panic(err)
	}

	return poly
}

func BenchmarkShortestPath(b *testing.B) {
	for _, n := range []int{16, 128, 1024} {
		poly := corridorPolygon(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := funnel.ShortestPath(poly, funnel.ChainP); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
