package cmd

import (
	"image/color"
	"math"

	"github.com/arl/worldgen"
	"github.com/arl/worldgen/geo"
	"github.com/arl/worldgen/graph"
	"github.com/unixpickle/model3d/model2d"
)

// renderGraphs rasterizes both graphs to a PNG image: region centers as
// dots, region adjacency and border walls as line meshes.
func renderGraphs(path string, regions *graph.Graph[worldgen.RegionNode[struct{}], worldgen.RegionEdge], borders *graph.Graph[worldgen.BorderNode[struct{}], worldgen.BorderEdge], bounds geo.Vec2) error {
	coord := func(pos geo.Vec2) model2d.Coord {
		return model2d.Coord{X: float64(pos.X()), Y: float64(pos.Y())}
	}

	walls := model2d.NewMesh()
	for e := graph.EdgeID(0); int(e) < borders.EdgeCount(); e++ {
		a, b := borders.Endpoints(e)
		walls.Add(&model2d.Segment{
			coord(borders.Node(a).Pos),
			coord(borders.Node(b).Pos),
		})
	}

	adjacency := model2d.NewMesh()
	for e := graph.EdgeID(0); int(e) < regions.EdgeCount(); e++ {
		a, b := regions.Endpoints(e)
		adjacency.Add(&model2d.Segment{
			coord(regions.Node(a).Pos),
			coord(regions.Node(b).Pos),
		})
	}

	maxSize := math.Max(float64(bounds.X()), float64(bounds.Y()))
	centers := model2d.JoinedSolid{}
	for n := graph.NodeID(0); int(n) < regions.NodeCount(); n++ {
		centers = append(centers, &model2d.Circle{
			Center: coord(regions.Node(n).Pos),
			Radius: math.Max(2, maxSize/500),
		})
	}

	bg := model2d.NewRect(model2d.Coord{}, coord(bounds))
	return model2d.RasterizeColor(path, []interface{}{
		bg,
		model2d.IntersectedSolid{centers.Optimize(), bg},
		walls,
		adjacency,
	}, []color.Color{
		color.Gray{Y: 0xde},
		color.RGBA{G: 0xde, A: 0xff},
		color.RGBA{R: 0xde, A: 0xff},
		color.RGBA{B: 0xde, A: 0xff},
	}, 1.0)
}
