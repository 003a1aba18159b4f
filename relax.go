package worldgen

import (
	"fmt"
	"math"
	"sort"

	"github.com/arl/worldgen/geo"
	"github.com/arl/worldgen/rng"
	"github.com/arl/worldgen/voronoi"
	"github.com/unixpickle/model3d/model2d"
)

// RelaxAndTessellate samples count points over the domain and returns the
// Voronoi diagram obtained after lloyd relaxation iterations. lloyd == 0
// tessellates the initial sample directly. There is no convergence check:
// the iteration count is the sole termination criterion.
func RelaxAndTessellate(bounds geo.Vec2, count, lloyd int, src rng.Source) (*voronoi.DCEL, error) {
	return relaxAndTessellate(nil, voronoi.CellClipper{}, bounds, count, lloyd, src)
}

func relaxAndTessellate(ctx *BuildContext, tess voronoi.Tessellator, bounds geo.Vec2, count, lloyd int, src rng.Source) (*voronoi.DCEL, error) {
	if lloyd < 0 || (count == 0 && lloyd > 0) {
		return nil, fmt.Errorf("%w: count %d, %d lloyd iterations",
			ErrInvalidDomain, count, lloyd)
	}

	ctx.StartTimer(TimerSample)
	pts, err := SamplePoints(count, bounds, src)
	ctx.StopTimer(TimerSample)
	if err != nil {
		return nil, err
	}

	dims := model2d.Coord{X: float64(bounds.X()), Y: float64(bounds.Y())}
	for i := 0; i < lloyd; i++ {
		ctx.StartTimer(TimerTessellate)
		d, err := tess.Tessellate(pts, dims)
		ctx.StopTimer(TimerTessellate)
		if err != nil {
			return nil, err
		}

		ctx.StartTimer(TimerCentroids)
		pts = prepareSites(voronoi.Centroids(d))
		ctx.StopTimer(TimerCentroids)
		ctx.Progressf("lloyd iteration %d/%d: %d sites", i+1, lloyd, len(pts))
	}

	ctx.StartTimer(TimerTessellate)
	d, err := tess.Tessellate(pts, dims)
	ctx.StopTimer(TimerTessellate)
	return d, err
}

// prepareSites restores the tessellation preconditions on a relaxed site
// set: sites sorted by ascending Y, near-coincident sites merged (relaxation
// can pull two cell centroids arbitrarily close together) and the strict Y
// gap at the top of the sweep reinstated.
func prepareSites(sites []model2d.Coord) []model2d.Coord {
	sort.Slice(sites, func(i, j int) bool {
		if sites[i].Y != sites[j].Y {
			return sites[i].Y < sites[j].Y
		}
		return sites[i].X < sites[j].X
	})

	out := sites[:0]
	for _, s := range sites {
		merged := false
		// Only sites within pointEps in Y can collide, and those sit at
		// the tail of out thanks to the sort.
		for j := len(out) - 1; j >= 0 && s.Y-out[j].Y < pointEps; j-- {
			if math.Abs(s.X-out[j].X) < pointEps {
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, s)
		}
	}

	if n := len(out); n >= 2 && out[n-1].Y-out[n-2].Y < pointEps {
		out[n-1].Y += pointEps
	}
	return out
}
