package voronoi

import "github.com/unixpickle/model3d/model2d"

// nullIdx marks an unset DCEL index.
const nullIdx int32 = -1

// Vertex is a diagram vertex, a corner shared by up to three cells (more in
// degenerate, co-circular configurations).
type Vertex struct {
	Coord model2d.Coord
}

// Face is a cell of the diagram. Walking Next from OuterComponent traverses
// the cell boundary counter-clockwise and returns to OuterComponent.
//
// The last face of a DCEL is the unbounded face; its OuterComponent walks
// the outer boundary of the diagram and its halfedges separate hull cells
// from the exterior.
type Face struct {
	OuterComponent int32
}

// Halfedge is one of the two directed halves of a diagram edge.
type Halfedge struct {
	Origin int32 // index of the vertex the halfedge leaves from
	Next   int32 // next halfedge around Face, counter-clockwise
	Twin   int32 // oppositely-directed halfedge of the same segment
	Face   int32 // face this halfedge borders
	Alive  bool  // dead halfedges are skipped by every walk
}

// DCEL is a doubly-connected edge list describing a bounded Voronoi
// diagram. It is the transient product of tessellation, consumed by centroid
// extraction and dual-graph assembly.
type DCEL struct {
	Vertices  []Vertex
	Faces     []Face
	Halfedges []Halfedge
}

// NumBoundedFaces returns the number of cell faces, excluding the unbounded
// face.
func (d *DCEL) NumBoundedFaces() int {
	if len(d.Faces) == 0 {
		return 0
	}
	return len(d.Faces) - 1
}

// UnboundedFace returns the index of the unbounded face, or -1 for an empty
// diagram.
func (d *DCEL) UnboundedFace() int32 {
	return int32(len(d.Faces)) - 1
}
