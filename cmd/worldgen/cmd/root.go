package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "worldgen",
	Short: "generate procedural world dual graphs",
	Long: `This is the command-line application accompanying worldgen:
	- generate region/border dual graphs from a seed string,
	- render them to PNG images for inspection,
	- easily tweak generation settings (YAML files),
	- show info about generated graphs.`,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
