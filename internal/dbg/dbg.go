package main

import (
	"fmt"
	"log"
	"os"

	"github.com/arl/assertgo"
	"github.com/arl/worldgen"
	"github.com/arl/worldgen/geo"
	"github.com/arl/worldgen/graph"
	"github.com/arl/worldgen/rng"
)

func check(err error) {
	if err != nil {
		log.Fatalln(err)
		os.Exit(1)
	}
}

func main() {
	var (
		regions *graph.Graph[worldgen.RegionNode[struct{}], worldgen.RegionEdge]
		borders *graph.Graph[worldgen.BorderNode[struct{}], worldgen.BorderEdge]
		err     error
	)

	ctx := worldgen.NewBuildContext(true)
	src := rng.NewFromString("worldgen-dbg")
	regions, borders, err = worldgen.BuildDualGraphCtx[struct{}, struct{}](
		ctx, geo.NewVec2XY(1024, 1024), 100, 2, src)
	check(err)

	fmt.Println("dual graph generated successfully")
	ctx.DumpLog("build log:")
	fmt.Printf("regions: %d nodes, %d edges\n", regions.NodeCount(), regions.EdgeCount())
	fmt.Printf("borders: %d nodes, %d edges\n", borders.NodeCount(), borders.EdgeCount())

	check(worldgen.Validate(regions, borders))
	fmt.Println("invariants hold")

	neighborhood(regions, borders, 0)
}

// neighborhood walks region r's adjacencies through the dual links and
// prints the wall each one crosses.
func neighborhood(regions *graph.Graph[worldgen.RegionNode[struct{}], worldgen.RegionEdge], borders *graph.Graph[worldgen.BorderNode[struct{}], worldgen.BorderEdge], r graph.NodeID) {
	fmt.Printf("region %d at %v:\n", r, regions.Node(r).Pos)
	for _, e := range regions.Incident(r) {
		other := regions.Source(e)
		if other == r {
			other = regions.Target(e)
		}
		re := regions.Edge(e)
		assert.True(re.BorderEdge != graph.InvalidEdge, "region edge %d has no dual", e)
		wall := borders.Edge(re.BorderEdge)
		log.Printf("  -> region %d across wall %d (regions %v)\n",
			other, re.BorderEdge, wall.Regions)
	}
}
