// Package worldgen generates the planar dual graph procedural worlds are
// built on.
//
// Given a rectangular domain and a random source, it partitions the plane
// into convex polygonal regions (a Voronoi tessellation, optionally
// equalized by Lloyd relaxation) and produces two coupled undirected
// graphs:
//
//   - the region graph: regions as nodes, adjacency as edges;
//   - the border graph: polygon corners as nodes, wall segments as edges.
//
// The two graphs are dual: every region edge crosses exactly one border
// edge and every interior border edge separates exactly two regions; each
// edge records its dual. Downstream stages (elevation, hydrology, wind)
// attach their data to the caller-chosen node payloads, which this package
// never reads.
//
// A typical generation is:
//
//	src := rng.NewFromString("a world seed")
//	regions, borders, err := worldgen.BuildDualGraph[Elevation, Moisture](
//		geo.NewVec2XY(1024, 1024), 8000, 2, src)
//
// Generation is a pure computation: for a fixed domain, point count,
// relaxation count and seed, the returned graphs are deterministic, and
// advancing the random source is the only external side effect.
package worldgen
