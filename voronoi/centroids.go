package voronoi

import "github.com/unixpickle/model3d/model2d"

// Centroids returns the vertex centroid of every bounded face of d, in face
// order. Driving a new tessellation with these centroids is one Lloyd
// relaxation step.
//
// All accumulation is in float64. A face no live halfedge refers to is
// skipped rather than dividing by zero, so the result may be shorter than
// NumBoundedFaces in degenerate diagrams.
func Centroids(d *DCEL) []model2d.Coord {
	sums := make([]model2d.Coord, len(d.Faces))
	counts := make([]int, len(d.Faces))
	for i := range d.Halfedges {
		he := &d.Halfedges[i]
		if !he.Alive {
			continue
		}
		sums[he.Face] = sums[he.Face].Add(d.Vertices[he.Origin].Coord)
		counts[he.Face]++
	}

	out := make([]model2d.Coord, 0, d.NumBoundedFaces())
	for f := 0; f < d.NumBoundedFaces(); f++ {
		if counts[f] == 0 {
			continue
		}
		out = append(out, sums[f].Scale(1/float64(counts[f])))
	}
	return out
}
