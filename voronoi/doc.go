// Package voronoi computes bounded Voronoi tessellations of a rectangular
// domain and exposes them as a doubly-connected edge list (DCEL).
//
// The tessellation pipeline is as follows:
//
//   - Compute, for every site, the set of sites that can contribute an edge
//     to its cell (the Delaunay neighbors).
//   - Clip the domain rectangle against the perpendicular-bisector
//     half-plane of each contributing site, leaving the convex cell polygon.
//   - Merge cell polygon corners shared between adjacent cells into single
//     diagram vertices.
//   - Assemble the DCEL: one bounded face per site, plus the unbounded face,
//     always last, which carries the halfedges of the outer boundary.
//
// Tessellate is the entry point; the Tessellator interface admits alternate
// backends producing the same DCEL shape.
package voronoi
