package cmd

import (
	"fmt"

	"github.com/arl/worldgen"
	"github.com/arl/worldgen/geo"
	"github.com/arl/worldgen/graph"
	"github.com/arl/worldgen/rng"
	"github.com/spf13/cobra"
)

// infosCmd represents the infos command
var infosCmd = &cobra.Command{
	Use:   "infos",
	Short: "generate a world dual graph and show info about it",
	Long: `Generate the region/border dual graph from the settings file and
print its node and edge counts, its hull/interior wall split and the result
of the structural invariant check.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := worldgen.NewSettings()
		exists, err := fileExists(cfgVal)
		check(err)
		if exists {
			check(unmarshalYAMLFile(cfgVal, &settings))
		}

		src := rng.NewFromString(settings.Seed)
		bounds := geo.NewVec2XY(settings.Width, settings.Height)
		regions, borders, err := worldgen.BuildDualGraph[struct{}, struct{}](
			bounds, settings.Count, settings.LloydIterations, src)
		check(err)

		var hull, interior int
		for e := graph.EdgeID(0); int(e) < borders.EdgeCount(); e++ {
			if len(borders.Edge(e).Regions) == 2 {
				interior++
			} else {
				hull++
			}
		}

		fmt.Printf("seed:           %q\n", settings.Seed)
		fmt.Printf("regions:        %d (%d adjacencies)\n", regions.NodeCount(), regions.EdgeCount())
		fmt.Printf("borders:        %d (%d walls: %d interior, %d hull)\n",
			borders.NodeCount(), borders.EdgeCount(), interior, hull)
		if err := worldgen.Validate(regions, borders); err != nil {
			fmt.Printf("invariants:     BROKEN, %v\n", err)
			return
		}
		fmt.Println("invariants:     ok")
	},
}

func init() {
	RootCmd.AddCommand(infosCmd)

	infosCmd.Flags().StringVar(&cfgVal, "config", "worldgen.yml", "generation settings")
}
