package main

import "github.com/arl/worldgen/cmd/worldgen/cmd"

func main() {
	cmd.Execute()
}
