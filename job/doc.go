// Package job loads routing jobs from HCL files and runs them.
//
// A job names up to three raster layers, the two endpoints in map
// coordinates, the search variant and the traversability and cost rules:
//
//	layer "dem"  { path = "dem.tif" }     # order defines val1, val2, val3
//	layer "land" { path = "land.png" }
//
//	extent {
//	  xmin = 0
//	  ymin = 0
//	  xmax = 1000
//	  ymax = 800
//	}
//	start {
//	  x = 10.5
//	  y = 20
//	}
//	end {
//	  x = 900
//	  y = 700
//	}
//
//	algorithm    = "any-angle"   # "astar" (default) or "any-angle"
//	max_frontier = 250000        # optional
//
//	traversability {
//	  layer = "dem"
//	  min   = 1
//	  max   = layer.dem.max - 5
//	}
//	cost {
//	  formula = "1 + val2 / 10"
//	}
//	output = "route.geojson"
//
// Decoding happens in two passes. The first reads the layer blocks and loads
// the rasters; the second decodes everything else with an evaluation context
// holding layer.<name>.{width,height,min,max,mean} and grid.{width,height},
// so thresholds can be written relative to the data. Relative paths are
// resolved against the directory of the job file.
//
// Without an extent block the map space is the pixel space of the first
// layer: (0,0) at the bottom-left corner, one unit per cell.
package job
