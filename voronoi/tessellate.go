package voronoi

import (
	"fmt"
	"math"

	"github.com/arl/assertgo"
	"github.com/fogleman/delaunay"
	"github.com/unixpickle/model3d/model2d"
)

const (
	// siteEps is the minimum site separation accepted by the tessellator,
	// on both axes at once. The point sampler guarantees it.
	siteEps = 1e-3

	// mergeEps is the tolerance under which cell polygon corners computed
	// by adjacent cells are considered the same diagram vertex.
	mergeEps = 1e-6
)

// Tessellator computes a bounded Voronoi diagram of a site set within the
// rectangle [0, bounds.X] x [0, bounds.Y].
//
// Preconditions on sites: sorted by ascending Y and pairwise distinct
// (no two sites within siteEps on both axes). Implementations must report
// violations, and any numerical breakdown, as errors wrapping
// ErrTessellationFailed.
type Tessellator interface {
	Tessellate(sites []model2d.Coord, bounds model2d.Coord) (*DCEL, error)
}

// CellClipper is the default Tessellator. It derives every cell
// independently, by clipping the domain rectangle against the
// perpendicular bisectors of the site's Delaunay neighbors, then stitches
// the cells into a single DCEL.
type CellClipper struct{}

// Tessellate computes the Voronoi diagram of sites, clipped to
// [0, bounds.X] x [0, bounds.Y].
func (CellClipper) Tessellate(sites []model2d.Coord, bounds model2d.Coord) (*DCEL, error) {
	if err := checkSites(sites, bounds); err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		// Only the unbounded face.
		return &DCEL{Faces: []Face{{OuterComponent: nullIdx}}}, nil
	}

	neighbors := siteNeighbors(sites)

	polys := make([][]model2d.Coord, len(sites))
	for i, site := range sites {
		polys[i] = cellPolygon(site, neighbors[i], sites, bounds)
	}
	verts, index := mergeVertices(polys)

	d := &DCEL{Vertices: verts, Faces: make([]Face, 0, len(sites)+1)}
	cells := make([][]int32, len(sites))
	for i, poly := range polys {
		ring := cellRing(poly, index)
		if len(ring) < 3 {
			return nil, fmt.Errorf("%w: degenerate cell for site %d %v",
				ErrTessellationFailed, i, sites[i])
		}
		cells[i] = ring
	}

	if err := stitch(d, cells); err != nil {
		return nil, err
	}
	return d, nil
}

// Tessellate computes the Voronoi diagram of sites with the default
// backend.
func Tessellate(sites []model2d.Coord, bounds model2d.Coord) (*DCEL, error) {
	return CellClipper{}.Tessellate(sites, bounds)
}

// checkSites validates the tessellation preconditions: positive domain,
// sites inside it, sorted by ascending Y, pairwise distinct.
func checkSites(sites []model2d.Coord, bounds model2d.Coord) error {
	if len(sites) > 0 && (bounds.X <= 0 || bounds.Y <= 0) {
		return fmt.Errorf("%w: non-positive bounds %v", ErrTessellationFailed, bounds)
	}
	for i, s := range sites {
		// The sampler may nudge the topmost site up by the separation
		// epsilon, hence the slack on the upper Y bound.
		if s.X < 0 || s.X > bounds.X || s.Y < 0 || s.Y > bounds.Y+siteEps {
			return fmt.Errorf("%w: site %d %v outside domain", ErrTessellationFailed, i, s)
		}
		if i > 0 && s.Y < sites[i-1].Y {
			return fmt.Errorf("%w: sites not sorted by Y at %d", ErrTessellationFailed, i)
		}
		// Distinctness only needs checking inside the window of sites
		// whose Y is within siteEps, thanks to the sort.
		for j := i - 1; j >= 0 && s.Y-sites[j].Y < siteEps; j-- {
			if math.Abs(s.X-sites[j].X) < siteEps {
				return fmt.Errorf("%w: sites %d and %d coincide", ErrTessellationFailed, j, i)
			}
		}
	}
	return nil
}

// siteNeighbors returns, for every site, the indices of the sites able to
// contribute an edge to its cell. For three or more sites in general
// position these are the Delaunay neighbors; collinear or tiny site sets
// fall back to all other sites, which over-approximates but clips to the
// same cells.
func siteNeighbors(sites []model2d.Coord) [][]int32 {
	n := len(sites)
	nb := make([][]int32, n)
	if n >= 3 {
		pts := make([]delaunay.Point, n)
		for i, s := range sites {
			pts[i] = delaunay.Point{X: s.X, Y: s.Y}
		}
		tri, err := delaunay.Triangulate(pts)
		if err == nil && len(tri.Triangles) > 0 {
			for e := 0; e < len(tri.Triangles); e++ {
				a := int32(tri.Triangles[e])
				b := int32(tri.Triangles[nextHalfedge(e)])
				addNeighbor(nb, a, b)
				addNeighbor(nb, b, a)
			}
			complete := true
			for i := range nb {
				if len(nb[i]) == 0 {
					complete = false
					break
				}
			}
			if complete {
				return nb
			}
		}
		// Triangulation only degenerates on collinear input; the
		// all-pairs fallback below still yields exact cells.
	}
	for i := range nb {
		nb[i] = make([]int32, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				nb[i] = append(nb[i], int32(j))
			}
		}
	}
	return nb
}

// nextHalfedge returns the next halfedge of the triangle containing
// halfedge e.
func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

func addNeighbor(nb [][]int32, a, b int32) {
	for _, x := range nb[a] {
		if x == b {
			return
		}
	}
	nb[a] = append(nb[a], b)
}

// cellPolygon computes the convex cell of site as the domain rectangle
// clipped against the bisector half-plane of each contributing neighbor.
// The returned polygon winds counter-clockwise.
func cellPolygon(site model2d.Coord, neighbors []int32, sites []model2d.Coord, bounds model2d.Coord) []model2d.Coord {
	poly := []model2d.Coord{
		{},
		{X: bounds.X},
		{X: bounds.X, Y: bounds.Y},
		{Y: bounds.Y},
	}
	for _, j := range neighbors {
		other := sites[j]
		if other.Dist(site) < mergeEps {
			// Degenerate bisector; checkSites should have caught this.
			continue
		}
		// Keep the half-plane closer to site: normal.p <= normal.mid,
		// with the normal pointing from site towards other.
		normal := other.Sub(site).Normalize()
		max := normal.Dot(site.Mid(other))
		poly = clipHalfPlane(poly, normal, max)
		if len(poly) == 0 {
			break
		}
	}
	return poly
}

// clipHalfPlane clips the convex counter-clockwise polygon poly against the
// half-plane {p : normal.p <= max}, preserving orientation.
func clipHalfPlane(poly []model2d.Coord, normal model2d.Coord, max float64) []model2d.Coord {
	out := make([]model2d.Coord, 0, len(poly)+1)
	for i, cur := range poly {
		next := poly[(i+1)%len(poly)]
		dc := normal.Dot(cur) - max
		dn := normal.Dot(next) - max
		if dc <= 0 {
			out = append(out, cur)
		}
		if (dc < 0 && dn > 0) || (dc > 0 && dn < 0) {
			t := dc / (dc - dn)
			out = append(out, cur.Add(next.Sub(cur).Scale(t)))
		}
	}
	return out
}

// mergeVertices collapses the cell polygon corners that adjacent cells
// computed within mergeEps of each other into single diagram vertices, so
// a shared wall references the same two vertices from both of its sides.
// Corners are indexed in a coordinate tree; each corner absorbs every
// not-yet-absorbed corner within mergeEps of it, in deterministic cell
// walk order. It returns the vertex arena and the corner to vertex index
// lookup.
func mergeVertices(polys [][]model2d.Coord) ([]Vertex, map[model2d.Coord]int32) {
	active := map[model2d.Coord]bool{}
	var coords []model2d.Coord
	for _, poly := range polys {
		for _, c := range poly {
			if !active[c] {
				active[c] = true
				coords = append(coords, c)
			}
		}
	}

	tree := model2d.NewCoordTree(coords)
	canonical := map[model2d.Coord]model2d.Coord{}
	for _, c := range coords {
		if !active[c] {
			// Already absorbed by an earlier corner.
			continue
		}
		for _, n := range neighborsInDistance(tree, c, mergeEps) {
			if active[n] {
				active[n] = false
				canonical[n] = c
			}
		}
	}

	verts := make([]Vertex, 0, len(coords))
	index := make(map[model2d.Coord]int32, len(coords))
	for _, c := range coords {
		if canonical[c] == c {
			index[c] = int32(len(verts))
			verts = append(verts, Vertex{Coord: c})
		}
	}
	for _, c := range coords {
		index[c] = index[canonical[c]]
	}
	return verts, index
}

// neighborsInDistance returns the tree coordinates within epsilon of c,
// c itself included.
func neighborsInDistance(tree *model2d.CoordTree, c model2d.Coord, epsilon float64) []model2d.Coord {
	for k := 2; ; k++ {
		neighbors := tree.KNN(k, c)
		if len(neighbors) < k {
			return neighbors
		}
		if neighbors[len(neighbors)-1].Dist(c) > epsilon {
			return neighbors[:len(neighbors)-1]
		}
	}
}

// cellRing maps a cell polygon to its merged vertex ring, dropping the
// zero-length edges merging can introduce.
func cellRing(poly []model2d.Coord, index map[model2d.Coord]int32) []int32 {
	ring := make([]int32, 0, len(poly))
	for _, c := range poly {
		idx := index[c]
		if len(ring) > 0 && ring[len(ring)-1] == idx {
			continue
		}
		ring = append(ring, idx)
	}
	for len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	return ring
}

// stitch assembles the DCEL halfedges from the per-cell vertex rings.
// Twins are matched through their unordered endpoint pair; segments left
// without a partner lie on the outer boundary and get their twin on the
// unbounded face.
func stitch(d *DCEL, cells [][]int32) error {
	type pairKey struct{ lo, hi int32 }

	unbounded := int32(len(cells))
	open := make(map[pairKey]int32) // segment -> halfedge awaiting its twin

	for f, ring := range cells {
		base := int32(len(d.Halfedges))
		n := int32(len(ring))
		d.Faces = append(d.Faces, Face{OuterComponent: base})
		for j := int32(0); j < n; j++ {
			va, vb := ring[j], ring[(j+1)%n]
			he := Halfedge{
				Origin: va,
				Next:   base + (j+1)%n,
				Twin:   nullIdx,
				Face:   int32(f),
				Alive:  true,
			}
			id := base + j
			d.Halfedges = append(d.Halfedges, he)

			key := pairKey{lo: va, hi: vb}
			if vb < va {
				key.lo, key.hi = vb, va
			}
			if other, ok := open[key]; ok {
				if d.Halfedges[other].Twin != nullIdx {
					return fmt.Errorf("%w: segment %d-%d shared by more than two cells",
						ErrTessellationFailed, key.lo, key.hi)
				}
				d.Halfedges[other].Twin = id
				d.Halfedges[id].Twin = other
			} else {
				open[key] = id
			}
		}
	}

	// Remaining unmatched halfedges bound the outer ring; give each a twin
	// on the unbounded face, then chain those twins by walking the ring.
	outerByOrigin := make(map[int32]int32)
	outerComponent := nullIdx
	for i := range d.Halfedges {
		if d.Halfedges[i].Twin != nullIdx {
			continue
		}
		inner := &d.Halfedges[i]
		dest := d.Halfedges[inner.Next].Origin
		id := int32(len(d.Halfedges))
		d.Halfedges = append(d.Halfedges, Halfedge{
			Origin: dest,
			Next:   nullIdx,
			Twin:   int32(i),
			Face:   unbounded,
			Alive:  true,
		})
		d.Halfedges[i].Twin = id
		outerByOrigin[dest] = id
		if outerComponent == nullIdx {
			outerComponent = id
		}
	}
	for i := range d.Halfedges {
		he := &d.Halfedges[i]
		if he.Face != unbounded {
			continue
		}
		dest := d.Halfedges[he.Twin].Origin
		next, ok := outerByOrigin[dest]
		if !ok {
			return fmt.Errorf("%w: outer boundary is not a closed ring",
				ErrTessellationFailed)
		}
		he.Next = next
	}
	assert.True(len(d.Faces) == len(cells), "one face per cell before the unbounded face")
	d.Faces = append(d.Faces, Face{OuterComponent: outerComponent})
	return nil
}
