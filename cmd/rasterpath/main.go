// Command rasterpath finds least-cost routes across raster grids.
package main

import "github.com/katalvlaran/rasterpath/cmd/rasterpath/cmd"

func main() {
	cmd.Execute()
}
