package worldgen

import (
	"errors"
	"math"
	"testing"

	"github.com/arl/worldgen/geo"
	"github.com/arl/worldgen/rng"
)

func TestSamplePointsDedupStress(t *testing.T) {
	// 1000 points on a unit domain leaves little slack around the 1e-3
	// separation; every pair must still differ on at least one axis.
	src := rng.NewFromString("dedup-stress")
	pts, err := SamplePoints(1000, geo.NewVec2XY(1, 1), src)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 1000 {
		t.Fatalf("want 1000 points, got %d", len(pts))
	}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			dx := math.Abs(pts[i].X - pts[j].X)
			dy := math.Abs(pts[i].Y - pts[j].Y)
			if dx < pointEps && dy < pointEps {
				t.Fatalf("points %d and %d coincide: %v %v", i, j, pts[i], pts[j])
			}
		}
	}
}

func TestSamplePointsSorted(t *testing.T) {
	src := rng.NewFromString("sorted")
	pts, err := SamplePoints(500, geo.NewVec2XY(1024, 1024), src)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Y < pts[i-1].Y {
			t.Fatalf("points not sorted by Y at %d: %v after %v", i, pts[i], pts[i-1])
		}
	}
	n := len(pts)
	if gap := pts[n-1].Y - pts[n-2].Y; gap < pointEps {
		t.Errorf("top two Y values %v apart, want >= %v", gap, pointEps)
	}
}

func TestSamplePointsInDomain(t *testing.T) {
	src := rng.NewFromString("domain")
	pts, err := SamplePoints(200, geo.NewVec2XY(64, 32), src)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range pts {
		// The topmost point may be nudged up by the separation epsilon.
		if p.X < 0 || p.X >= 64 || p.Y < 0 || p.Y >= 32+pointEps {
			t.Errorf("point %d %v outside domain", i, p)
		}
	}
}

func TestSamplePointsErrors(t *testing.T) {
	errTests := []struct {
		name   string
		count  int
		bounds geo.Vec2
		want   error
	}{
		{"zero width", 10, geo.NewVec2XY(0, 5), ErrInvalidDomain},
		{"negative height", 10, geo.NewVec2XY(5, -1), ErrInvalidDomain},
		{"negative count", -1, geo.NewVec2XY(5, 5), ErrInvalidDomain},
		{"unsatisfiable dedup", 2, geo.NewVec2XY(1e-3, 1e-3), ErrPointSetExhausted},
	}
	for _, tt := range errTests {
		src := rng.NewFromString(tt.name)
		if _, err := SamplePoints(tt.count, tt.bounds, src); !errors.Is(err, tt.want) {
			t.Errorf("%s: want %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestSamplePointsEmpty(t *testing.T) {
	src := rng.NewFromString("empty")
	pts, err := SamplePoints(0, geo.NewVec2XY(0, 0), src)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 0 {
		t.Fatalf("want no points, got %d", len(pts))
	}
}

func TestSamplePointsDeterministic(t *testing.T) {
	p1, err := SamplePoints(300, geo.NewVec2XY(512, 512), rng.NewFromString("det"))
	if err != nil {
		t.Fatal(err)
	}
	p2, err := SamplePoints(300, geo.NewVec2XY(512, 512), rng.NewFromString("det"))
	if err != nil {
		t.Fatal(err)
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("point %d diverged: %v != %v", i, p1[i], p2[i])
		}
	}
}
