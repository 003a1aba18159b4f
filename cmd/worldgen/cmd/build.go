package cmd

import (
	"fmt"

	"github.com/arl/worldgen"
	"github.com/arl/worldgen/geo"
	"github.com/arl/worldgen/rng"
	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build OUTFILE",
	Short: "generate a world dual graph and render it",
	Long: `Generate the region/border dual graph of a world from the seed
string and settings of a YAML settings file, then render both graphs to
OUTFILE as a PNG image.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			check(fmt.Errorf("missing OUTFILE argument"))
		}
		out := args[0]

		settings := worldgen.NewSettings()
		exists, err := fileExists(cfgVal)
		check(err)
		if exists {
			check(unmarshalYAMLFile(cfgVal, &settings))
		} else {
			fmt.Printf("no settings file '%s', using defaults\n", cfgVal)
		}

		ctx := worldgen.NewBuildContext(verboseVal)
		src := rng.NewFromString(settings.Seed)
		bounds := geo.NewVec2XY(settings.Width, settings.Height)
		regions, borders, err := worldgen.BuildDualGraphCtx[struct{}, struct{}](
			ctx, bounds, settings.Count, settings.LloydIterations, src)
		check(err)
		if verboseVal {
			ctx.DumpLog("graph generation for seed '%v':", settings.Seed)
			fmt.Printf("total time: %v\n", ctx.AccumulatedTime(worldgen.TimerTotal))
		}

		check(renderGraphs(out, regions, borders, bounds))
		fmt.Printf("%d regions, %d borders rendered to '%s'\n",
			regions.NodeCount(), borders.NodeCount(), out)
	},
}

var (
	cfgVal     string
	verboseVal bool
)

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&cfgVal, "config", "worldgen.yml", "generation settings")
	buildCmd.Flags().BoolVar(&verboseVal, "verbose", false, "log generation stages and timings")
}
