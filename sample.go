package worldgen

import (
	"fmt"
	"math"
	"sort"

	"github.com/arl/worldgen/geo"
	"github.com/arl/worldgen/rng"
	"github.com/unixpickle/model3d/model2d"
)

const (
	// pointEps is the minimum separation between two sampled points, on
	// both axes at once, and the Y gap forced between the two topmost
	// points.
	pointEps = 1e-3

	// maxResamples bounds how often a colliding point is redrawn before
	// sampling gives up.
	maxResamples = 64
)

// SamplePoints returns count points uniformly distributed over
// [0, bounds.X) x [0, bounds.Y), ready for tessellation: no two points
// within pointEps of each other on both axes, sorted by ascending Y, and
// with the two largest Y values at least pointEps apart.
//
// It fails with ErrInvalidDomain when count > 0 over a non-positive domain
// and with ErrPointSetExhausted when a distinct point cannot be drawn
// within the retry budget.
func SamplePoints(count int, bounds geo.Vec2, src rng.Source) ([]model2d.Coord, error) {
	if count < 0 || (count > 0 && (bounds.X() <= 0 || bounds.Y() <= 0)) {
		return nil, fmt.Errorf("%w: count %d in %v", ErrInvalidDomain, count, bounds)
	}

	bx, by := float64(bounds.X()), float64(bounds.Y())
	draw := func() model2d.Coord {
		return model2d.Coord{X: src.Float64() * bx, Y: src.Float64() * by}
	}

	points := make([]model2d.Coord, 0, count)
	for i := 0; i < count; i++ {
		pt := draw()
		for retries := 0; containsApprox(points, pt); retries++ {
			if retries == maxResamples {
				return nil, fmt.Errorf("%w: %d retries placing point %d/%d",
					ErrPointSetExhausted, maxResamples, i, count)
			}
			pt = draw()
		}
		points = append(points, pt)
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})

	// The tessellator needs a strict Y gap at the top of the sweep.
	if n := len(points); n >= 2 && points[n-1].Y-points[n-2].Y < pointEps {
		points[n-1].Y += pointEps
	}
	return points, nil
}

// containsApprox reports whether pt lies within pointEps of any of points,
// on both axes.
func containsApprox(points []model2d.Coord, pt model2d.Coord) bool {
	for _, v := range points {
		if math.Abs(pt.X-v.X) < pointEps && math.Abs(pt.Y-v.Y) < pointEps {
			return true
		}
	}
	return false
}
