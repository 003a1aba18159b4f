package worldgen

import (
	"fmt"

	"github.com/arl/worldgen/geo"
	"github.com/arl/worldgen/graph"
)

// centroidTol is the tolerance of the centroid check, matching the f32
// precision of stored positions.
const centroidTol = 1e-3

// Validate checks the structural invariants binding a region graph to its
// border graph:
//
//   - every region edge is dual to an interior border edge and that edge
//     points back at it;
//   - every interior border edge (two incident regions) is dual to the
//     region edge connecting exactly those regions, and hull edges (one
//     incident region) have no dual;
//   - region/border incidence is symmetric;
//   - a region's position is the mean of its border positions.
//
// It returns nil on a consistent pair, or an error wrapping
// ErrInvariantViolation describing the first inconsistency found. A freshly
// built pair always validates; the check is meant for tests and for callers
// that mutate payloads and want to assert they did not touch topology.
func Validate[RV, BV any](regions *graph.Graph[RegionNode[RV], RegionEdge], borders *graph.Graph[BorderNode[BV], BorderEdge]) error {
	for e := graph.EdgeID(0); int(e) < regions.EdgeCount(); e++ {
		re := regions.Edge(e)
		if re.BorderEdge == graph.InvalidEdge {
			return fmt.Errorf("%w: region edge %d has no dual", ErrInvariantViolation, e)
		}
		be := borders.Edge(re.BorderEdge)
		if be.RegionEdge != e {
			return fmt.Errorf("%w: region edge %d dual border edge %d points back at %d",
				ErrInvariantViolation, e, re.BorderEdge, be.RegionEdge)
		}
		ra, rb := regions.Endpoints(e)
		if !sameUnorderedPair(be.Regions, ra, rb) {
			return fmt.Errorf("%w: border edge %d separates %v, not regions %d-%d",
				ErrInvariantViolation, re.BorderEdge, be.Regions, ra, rb)
		}
		ba, bb := borders.Endpoints(re.BorderEdge)
		if !(re.Borders == [2]graph.NodeID{ba, bb} || re.Borders == [2]graph.NodeID{bb, ba}) {
			return fmt.Errorf("%w: region edge %d endpoints %v differ from border edge %d-%d",
				ErrInvariantViolation, e, re.Borders, ba, bb)
		}
	}

	for e := graph.EdgeID(0); int(e) < borders.EdgeCount(); e++ {
		be := borders.Edge(e)
		switch len(be.Regions) {
		case 1:
			if be.RegionEdge != graph.InvalidEdge {
				return fmt.Errorf("%w: hull border edge %d has a dual", ErrInvariantViolation, e)
			}
		case 2:
			reID, ok := regions.FindEdge(be.Regions[0], be.Regions[1])
			if !ok {
				return fmt.Errorf("%w: interior border edge %d has no region adjacency",
					ErrInvariantViolation, e)
			}
			if be.RegionEdge != reID {
				return fmt.Errorf("%w: border edge %d dual is %d, expected %d",
					ErrInvariantViolation, e, be.RegionEdge, reID)
			}
		default:
			return fmt.Errorf("%w: border edge %d has %d incident regions",
				ErrInvariantViolation, e, len(be.Regions))
		}
	}

	for r := graph.NodeID(0); int(r) < regions.NodeCount(); r++ {
		rn := regions.Node(r)
		// Accumulate in float64: positions are f32 but the tolerance must
		// not be eaten by summation error.
		var sumX, sumY float64
		for _, b := range rn.Borders {
			bn := borders.Node(b)
			if !containsNode(bn.Regions, r) {
				return fmt.Errorf("%w: region %d lists border %d but not conversely",
					ErrInvariantViolation, r, b)
			}
			sumX += float64(bn.Pos.X())
			sumY += float64(bn.Pos.Y())
		}
		if len(rn.Borders) > 0 {
			n := float64(len(rn.Borders))
			mean := geo.NewVec2XY(float32(sumX/n), float32(sumY/n))
			if rn.Pos.Dist(mean) >= centroidTol {
				return fmt.Errorf("%w: region %d position %v is not its border centroid %v",
					ErrInvariantViolation, r, rn.Pos, mean)
			}
		}
	}

	for b := graph.NodeID(0); int(b) < borders.NodeCount(); b++ {
		for _, r := range borders.Node(b).Regions {
			if !containsNode(regions.Node(r).Borders, b) {
				return fmt.Errorf("%w: border %d lists region %d but not conversely",
					ErrInvariantViolation, b, r)
			}
		}
	}
	return nil
}

func sameUnorderedPair(set []graph.NodeID, a, b graph.NodeID) bool {
	if len(set) != 2 {
		return false
	}
	return (set[0] == a && set[1] == b) || (set[0] == b && set[1] == a)
}

func containsNode(s []graph.NodeID, id graph.NodeID) bool {
	for _, x := range s {
		if x == id {
			return true
		}
	}
	return false
}
