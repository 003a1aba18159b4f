package voronoi

import (
	"fmt"

	"github.com/fogleman/delaunay"
	"github.com/unixpickle/model3d/model2d"
)

// emptyHalfedge marks a triangulation halfedge with no adjacent triangle.
const emptyHalfedge = -1

// DelaunayDiagram is the product of the Delaunay-based diagnostic pipeline.
// Cells here are approximated from triangle centroids rather than derived
// from bisectors, and sites whose cell touches the convex hull are skipped,
// which is why this path feeds renderers but not dual-graph assembly.
type DelaunayDiagram struct {
	// Seeds are the site positions after relaxation.
	Seeds []model2d.Coord

	// Centers holds, for each interior site, the mean of the centroids of
	// its incident triangles.
	Centers []model2d.Coord

	// Polys holds, for each interior site, its approximate cell polygon:
	// the centroids of its incident triangles in rotation order.
	Polys [][]model2d.Coord
}

// RelaxDelaunay triangulates sites, relaxes them lloyd times by moving each
// interior site to the mean of its incident triangle centroids, and returns
// the final diagram. During relaxation, hull sites re-enter the site set
// unchanged so the boundary does not collapse inward.
func RelaxDelaunay(sites []model2d.Coord, lloyd int) (*DelaunayDiagram, error) {
	pts := make([]delaunay.Point, len(sites))
	for i, s := range sites {
		pts[i] = delaunay.Point{X: s.X, Y: s.Y}
	}

	for i := 0; ; i++ {
		tri, err := delaunay.Triangulate(pts)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTessellationFailed, err)
		}

		var (
			centers []model2d.Coord
			polys   [][]model2d.Coord
		)
		seen := make([]bool, len(tri.Triangles))

		// Each start halfedge identifies the cell of its origin site;
		// walking twin(next(next(e))) rotates around that site.
	cellLoop:
		for start := range tri.Triangles {
			if seen[start] {
				continue
			}
			var (
				sum  model2d.Coord
				n    int
				poly []model2d.Coord
			)
			curr := start
			for {
				seen[curr] = true
				a := pts[tri.Triangles[curr]]
				curr = nextHalfedge(curr)
				b := pts[tri.Triangles[curr]]
				curr = nextHalfedge(curr)
				c := pts[tri.Triangles[curr]]

				centroid := model2d.Coord{
					X: (a.X + b.X + c.X) / 3,
					Y: (a.Y + b.Y + c.Y) / 3,
				}
				sum = sum.Add(centroid)
				n++

				next := tri.Halfedges[curr]
				if next == emptyHalfedge {
					// Cell touches the hull, skip the site.
					continue cellLoop
				}
				if i == lloyd {
					poly = append(poly, centroid)
				}
				if next == start {
					break
				}
				curr = next
			}
			centers = append(centers, sum.Scale(1/float64(n)))
			if i == lloyd {
				polys = append(polys, poly)
			}
		}

		if i == lloyd {
			seeds := make([]model2d.Coord, len(pts))
			for j, p := range pts {
				seeds[j] = model2d.Coord{X: p.X, Y: p.Y}
			}
			return &DelaunayDiagram{Seeds: seeds, Centers: centers, Polys: polys}, nil
		}

		next := make([]delaunay.Point, 0, len(centers)+len(tri.ConvexHull))
		for _, c := range centers {
			next = append(next, delaunay.Point{X: c.X, Y: c.Y})
		}
		next = append(next, tri.ConvexHull...)
		pts = next
	}
}
