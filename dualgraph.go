package worldgen

import (
	"fmt"

	"github.com/arl/worldgen/geo"
	"github.com/arl/worldgen/graph"
	"github.com/arl/worldgen/rng"
	"github.com/arl/worldgen/voronoi"
)

// RegionNode is a region of the generated world, one convex cell of the
// tessellation. Its payload slot Value is never read by the generator;
// downstream stages attach elevation, moisture and the like to it.
type RegionNode[T any] struct {
	// Borders lists the region's border nodes in boundary walk order:
	// consecutive entries (cyclically) are connected by a border edge.
	Borders []graph.NodeID

	// Pos is the centroid of the region's border vertices.
	Pos geo.Vec2

	// Value is the caller-attached payload.
	Value T
}

// BorderNode is a corner shared by adjacent regions.
type BorderNode[T any] struct {
	// Regions holds the regions incident to this corner, usually 2 or 3.
	// The exterior of the world is not a region and is not listed.
	Regions []graph.NodeID

	// Pos is the corner position.
	Pos geo.Vec2

	// Value is the caller-attached payload.
	Value T
}

// RegionEdge is an adjacency between two regions. Every region edge crosses
// exactly one border edge, its dual.
type RegionEdge struct {
	// BorderEdge is the dual border edge, always set on a fully built
	// graph.
	BorderEdge graph.EdgeID

	// Borders are the two endpoints of the dual border edge.
	Borders [2]graph.NodeID
}

// BorderEdge is one wall segment between two corners.
type BorderEdge struct {
	// RegionEdge is the dual region edge, or graph.InvalidEdge for hull
	// edges, which separate a single region from the exterior.
	RegionEdge graph.EdgeID

	// Regions holds the regions this wall borders: two for an interior
	// edge, one for a hull edge.
	Regions []graph.NodeID
}

// BuildDualGraph generates a world over [0, bounds.X) x [0, bounds.Y) from
// count seed points relaxed lloyd times, and returns its two coupled
// graphs: regions with their adjacency, and borders (corners) with their
// wall segments. The two graphs are dual: each region edge crosses exactly
// one interior border edge and vice versa, and each graph records the
// crossing in its edge payloads.
//
// RV and BV are the caller-chosen payload types attached to region and
// border nodes.
//
// Generation is deterministic for a fixed (bounds, count, lloyd) and source
// state; advancing src is its only side effect.
func BuildDualGraph[RV, BV any](bounds geo.Vec2, count, lloyd int, src rng.Source) (*graph.Graph[RegionNode[RV], RegionEdge], *graph.Graph[BorderNode[BV], BorderEdge], error) {
	return BuildDualGraphCtx[RV, BV](nil, bounds, count, lloyd, src)
}

// BuildDualGraphCtx is BuildDualGraph with build diagnostics gathered into
// ctx. A nil ctx disables them.
func BuildDualGraphCtx[RV, BV any](ctx *BuildContext, bounds geo.Vec2, count, lloyd int, src rng.Source) (*graph.Graph[RegionNode[RV], RegionEdge], *graph.Graph[BorderNode[BV], BorderEdge], error) {
	ctx.StartTimer(TimerTotal)
	defer ctx.StopTimer(TimerTotal)

	d, err := relaxAndTessellate(ctx, voronoi.CellClipper{}, bounds, count, lloyd, src)
	if err != nil {
		return nil, nil, err
	}

	ctx.StartTimer(TimerAssemble)
	defer ctx.StopTimer(TimerAssemble)
	regions, borders, err := assemble[RV, BV](d)
	if err != nil {
		return nil, nil, err
	}
	ctx.Progressf("dual graph: %d regions, %d adjacencies, %d borders, %d walls",
		regions.NodeCount(), regions.EdgeCount(), borders.NodeCount(), borders.EdgeCount())
	return regions, borders, nil
}

// assemble builds the two graphs from the diagram in three passes.
//
// Pass A walks every bounded face, allocating one region node per face and
// one border node per distinct diagram vertex, inserting each wall segment
// exactly once even though interior segments are walked from both sides.
// Pass B adds one region adjacency per interior border edge. Pass C
// back-links every border edge to its dual region edge.
func assemble[RV, BV any](d *voronoi.DCEL) (*graph.Graph[RegionNode[RV], RegionEdge], *graph.Graph[BorderNode[BV], BorderEdge], error) {
	numFaces := d.NumBoundedFaces()
	regions := graph.New[RegionNode[RV], RegionEdge](numFaces, 3*numFaces)
	borders := graph.New[BorderNode[BV], BorderEdge](len(d.Vertices), 3*numFaces)

	// Transient lookups, slices indexed by DCEL index. Faces map to
	// regions 1:1 in order, so only vertices need an explicit table.
	borderForVertex := make([]graph.NodeID, len(d.Vertices))
	for i := range borderForVertex {
		borderForVertex[i] = graph.InvalidNode
	}
	getBorder := func(v int32) graph.NodeID {
		if id := borderForVertex[v]; id != graph.InvalidNode {
			return id
		}
		c := d.Vertices[v].Coord
		id := borders.AddNode(BorderNode[BV]{
			Pos: geo.NewVec2XY(float32(c.X), float32(c.Y)),
		})
		borderForVertex[v] = id
		return id
	}

	// Pass A: regions, border nodes, wall segments.
	for f := 0; f < numFaces; f++ {
		regionID := regions.AddNode(RegionNode[RV]{})

		var (
			sumX, sumY float64
			numEdges   int
		)
		start := d.Faces[f].OuterComponent
		curr := start
		for {
			prev := curr
			curr = d.Halfedges[curr].Next
			currB := getBorder(d.Halfedges[curr].Origin)
			prevB := getBorder(d.Halfedges[prev].Origin)

			region := regions.Node(regionID)
			region.Borders = append(region.Borders, currB)
			bn := borders.Node(currB)
			bn.Regions = append(bn.Regions, regionID)

			edgeID, ok := borders.FindEdge(currB, prevB)
			if !ok {
				var err error
				edgeID, err = borders.AddEdge(currB, prevB, BorderEdge{
					RegionEdge: graph.InvalidEdge,
				})
				if err != nil {
					return nil, nil, fmt.Errorf("%w: face %d: %v",
						ErrInvariantViolation, f, err)
				}
			}
			be := borders.Edge(edgeID)
			if len(be.Regions) == 2 {
				return nil, nil, fmt.Errorf("%w: border edge %d claimed by a third region",
					ErrInvariantViolation, edgeID)
			}
			be.Regions = append(be.Regions, regionID)

			c := d.Vertices[d.Halfedges[curr].Origin].Coord
			sumX += c.X
			sumY += c.Y
			numEdges++
			if curr == start {
				break
			}
		}
		regions.Node(regionID).Pos = geo.NewVec2XY(
			float32(sumX/float64(numEdges)),
			float32(sumY/float64(numEdges)),
		)
	}

	// Pass B: one region adjacency per interior wall.
	for e := graph.EdgeID(0); int(e) < borders.EdgeCount(); e++ {
		be := borders.Edge(e)
		if len(be.Regions) < 2 {
			continue
		}
		ra, rb := be.Regions[0], be.Regions[1]
		if _, ok := regions.FindEdge(ra, rb); ok {
			continue
		}
		src, tgt := borders.Endpoints(e)
		if _, err := regions.AddEdge(ra, rb, RegionEdge{
			BorderEdge: e,
			Borders:    [2]graph.NodeID{src, tgt},
		}); err != nil {
			return nil, nil, fmt.Errorf("%w: regions %d-%d: %v",
				ErrInvariantViolation, ra, rb, err)
		}
	}

	// Pass C: back-link walls to their dual adjacency.
	for e := graph.EdgeID(0); int(e) < regions.EdgeCount(); e++ {
		re := regions.Edge(e)
		beID, ok := borders.FindEdge(re.Borders[0], re.Borders[1])
		if !ok {
			return nil, nil, fmt.Errorf("%w: no border edge between %d and %d",
				ErrInvariantViolation, re.Borders[0], re.Borders[1])
		}
		borders.Edge(beID).RegionEdge = e
	}

	return regions, borders, nil
}
