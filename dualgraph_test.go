package worldgen

import (
	"errors"
	"testing"

	"github.com/arl/worldgen/geo"
	"github.com/arl/worldgen/graph"
	"github.com/arl/worldgen/rng"
)

func buildWorld(t *testing.T, bounds geo.Vec2, count, lloyd int, seed string) (*graph.Graph[RegionNode[struct{}], RegionEdge], *graph.Graph[BorderNode[struct{}], BorderEdge]) {
	t.Helper()
	regions, borders, err := BuildDualGraph[struct{}, struct{}](
		bounds, count, lloyd, rng.NewFromString(seed))
	if err != nil {
		t.Fatalf("BuildDualGraph(%v, %d, %d, %q): %v", bounds, count, lloyd, seed, err)
	}
	return regions, borders
}

// interiorWalls counts the border edges separating two regions.
func interiorWalls(borders *graph.Graph[BorderNode[struct{}], BorderEdge]) int {
	n := 0
	for e := graph.EdgeID(0); int(e) < borders.EdgeCount(); e++ {
		if len(borders.Edge(e).Regions) == 2 {
			n++
		}
	}
	return n
}

// regionArea computes the area of a region from its border ring, which
// winds counter-clockwise.
func regionArea(regions *graph.Graph[RegionNode[struct{}], RegionEdge], borders *graph.Graph[BorderNode[struct{}], BorderEdge], r graph.NodeID) float64 {
	ring := regions.Node(r).Borders
	var area float64
	for i, b := range ring {
		p := borders.Node(b).Pos
		q := borders.Node(ring[(i+1)%len(ring)]).Pos
		area += float64(p.X())*float64(q.Y()) - float64(q.X())*float64(p.Y())
	}
	return area / 2
}

func TestBuildDualGraphBasic(t *testing.T) {
	// 100 unrelaxed points on a 1024x1024 domain, fixed seed.
	bounds := geo.NewVec2XY(1024, 1024)
	src := rng.New([16]byte{1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4})
	regions, borders, err := BuildDualGraph[struct{}, struct{}](bounds, 100, 0, src)
	if err != nil {
		t.Fatal(err)
	}

	if regions.NodeCount() != 100 {
		t.Fatalf("want 100 regions, got %d", regions.NodeCount())
	}
	if borders.NodeCount() == 0 || borders.EdgeCount() == 0 {
		t.Fatal("empty border graph")
	}
	for r := graph.NodeID(0); int(r) < regions.NodeCount(); r++ {
		rn := regions.Node(r)
		if len(rn.Borders) < 3 {
			t.Errorf("region %d has %d borders", r, len(rn.Borders))
		}
		if !geoInDomain(rn.Pos, bounds) {
			t.Errorf("region %d position %v outside domain", r, rn.Pos)
		}
	}
	if err := Validate(regions, borders); err != nil {
		t.Fatal(err)
	}
}

func geoInDomain(pos, bounds geo.Vec2) bool {
	return pos.InRect(geo.NewVec2(), bounds.Add(geo.NewVec2XY(0, pointEps)))
}

func TestBuildDualGraphTwoRegions(t *testing.T) {
	regions, borders := buildWorld(t, geo.NewVec2XY(10, 10), 2, 0, "two-regions")

	if regions.NodeCount() != 2 {
		t.Fatalf("want 2 regions, got %d", regions.NodeCount())
	}
	if regions.EdgeCount() != 1 {
		t.Fatalf("want 1 region edge, got %d", regions.EdgeCount())
	}
	re := regions.Edge(0)
	if re.BorderEdge == graph.InvalidEdge {
		t.Fatal("region edge has no dual")
	}
	for e := graph.EdgeID(0); int(e) < borders.EdgeCount(); e++ {
		be := borders.Edge(e)
		if e == re.BorderEdge {
			if len(be.Regions) != 2 {
				t.Errorf("separating wall has %d regions", len(be.Regions))
			}
		} else if len(be.Regions) != 1 {
			t.Errorf("wall %d has %d regions, want 1", e, len(be.Regions))
		}
	}
	if err := Validate(regions, borders); err != nil {
		t.Fatal(err)
	}
}

func TestBuildDualGraphEmpty(t *testing.T) {
	regions, borders := buildWorld(t, geo.NewVec2XY(10, 10), 0, 0, "empty")
	if regions.NodeCount() != 0 || regions.EdgeCount() != 0 {
		t.Errorf("want empty region graph, got %d nodes, %d edges",
			regions.NodeCount(), regions.EdgeCount())
	}
	if borders.NodeCount() != 0 || borders.EdgeCount() != 0 {
		t.Errorf("want empty border graph, got %d nodes, %d edges",
			borders.NodeCount(), borders.EdgeCount())
	}
}

func TestBuildDualGraphErrors(t *testing.T) {
	errTests := []struct {
		name         string
		bounds       geo.Vec2
		count, lloyd int
		want         error
	}{
		{"flat domain", geo.NewVec2XY(0, 10), 10, 0, ErrInvalidDomain},
		{"relaxing nothing", geo.NewVec2XY(10, 10), 0, 2, ErrInvalidDomain},
		{"negative lloyd", geo.NewVec2XY(10, 10), 10, -1, ErrInvalidDomain},
	}
	for _, tt := range errTests {
		_, _, err := BuildDualGraph[struct{}, struct{}](
			tt.bounds, tt.count, tt.lloyd, rng.NewFromString(tt.name))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: want %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestDualGraphProperties(t *testing.T) {
	// Universal properties over several seeds, sizes and relaxation
	// counts: duality, incidence symmetry, conservation, and the region
	// areas summing back to the domain area.
	bounds := geo.NewVec2XY(512, 512)
	for _, seed := range []string{"prop-a", "prop-b", "prop-c"} {
		for _, count := range []int{50, 300} {
			for _, lloyd := range []int{0, 1, 2} {
				regions, borders := buildWorld(t, bounds, count, lloyd, seed)

				if err := Validate(regions, borders); err != nil {
					t.Errorf("%s/%d/%d: %v", seed, count, lloyd, err)
				}
				if walls := interiorWalls(borders); walls != regions.EdgeCount() {
					t.Errorf("%s/%d/%d: %d interior walls for %d region edges",
						seed, count, lloyd, walls, regions.EdgeCount())
				}
				if lloyd == 0 && regions.NodeCount() != count {
					t.Errorf("%s/%d/%d: %d regions for %d unrelaxed sites",
						seed, count, lloyd, regions.NodeCount(), count)
				}

				var total float64
				for r := graph.NodeID(0); int(r) < regions.NodeCount(); r++ {
					a := regionArea(regions, borders, r)
					if a <= 0 {
						t.Errorf("%s/%d/%d: region %d has area %v",
							seed, count, lloyd, r, a)
					}
					total += a
				}
				domain := float64(bounds.X()) * float64(bounds.Y())
				if total < 0.99*domain || total > 1.01*domain {
					t.Errorf("%s/%d/%d: region areas sum to %v, domain is %v",
						seed, count, lloyd, total, domain)
				}
			}
		}
	}
}

func TestBuildDualGraphDeterministic(t *testing.T) {
	bounds := geo.NewVec2XY(1024, 1024)
	r1, b1 := buildWorld(t, bounds, 400, 1, "determinism")
	r2, b2 := buildWorld(t, bounds, 400, 1, "determinism")

	if r1.NodeCount() != r2.NodeCount() || r1.EdgeCount() != r2.EdgeCount() ||
		b1.NodeCount() != b2.NodeCount() || b1.EdgeCount() != b2.EdgeCount() {
		t.Fatal("graph sizes diverged between identical runs")
	}
	for n := graph.NodeID(0); int(n) < r1.NodeCount(); n++ {
		if !r1.Node(n).Pos.Approx(r2.Node(n).Pos) {
			t.Fatalf("region %d position diverged", n)
		}
	}
	for n := graph.NodeID(0); int(n) < b1.NodeCount(); n++ {
		if !b1.Node(n).Pos.Approx(b2.Node(n).Pos) {
			t.Fatalf("border %d position diverged", n)
		}
	}
	for e := graph.EdgeID(0); int(e) < r1.EdgeCount(); e++ {
		s1, t1 := r1.Endpoints(e)
		s2, t2 := r2.Endpoints(e)
		if s1 != s2 || t1 != t2 {
			t.Fatalf("region edge %d endpoints diverged", e)
		}
	}
}

func TestBuildDualGraphPayloads(t *testing.T) {
	type elevation struct{ h float32 }
	type moisture struct{ m float32 }

	regions, borders, err := BuildDualGraph[elevation, moisture](
		geo.NewVec2XY(100, 100), 20, 0, rng.NewFromString("payloads"))
	if err != nil {
		t.Fatal(err)
	}
	regions.Node(3).Value = elevation{h: 42}
	borders.Node(0).Value = moisture{m: 0.5}
	if regions.Node(3).Value.h != 42 || borders.Node(0).Value.m != 0.5 {
		t.Error("payload mutation not visible through node access")
	}
}
