// Package rasterpath finds least-cost routes across raster grids.
//
// What is rasterpath?
//
//	A router for gridded data such as elevation models, land-cover images or
//	cost surfaces. It brings together:
//		• Grids of up to three float64 layers sampled per cell
//		• Traversability and cost rules: always, layer thresholds or formulas
//		• A small formula language over x, y, val1, val2 and val3
//		• 4-connected A* with a Manhattan or a Euclidean ("any-angle") heuristic
//		• Compact paths: one direction byte per cell, collinear runs collapsed
//		• Raster loading (PNG, JPEG, GIF, TIFF, int16 heightmaps, JSON)
//		• Map-coordinate extents and GeoJSON output
//		• HCL job files, a terminal viewer and a maze generator
//
// Packages:
//
//	grid/           Position and the multi-layer Grid
//	formula/        compile and evaluate formulas (participle grammar)
//	gridpolicy/     resolve traversability and cost rules for a grid
//	frontier/       deterministic priority queue for the search
//	astar/          FindPath, FindPathAnyAngle and trail reconstruction
//	raster/         decode and encode raster layers
//	geo/            extents, point↔cell conversion, GeoJSON
//	regions/        connected open regions and the gap between two of them
//	job/            HCL job files: load, validate, run
//	synth/          maze rasters for tests and demos
//	view/           tcell rendering of a route
//	cmd/rasterpath  the command line
//
// Quick example:
//
//	g, _ := grid.FromRows([][]float64{
//		{1, 1, 1, 1},
//		{0, 0, 1, 0},
//		{1, 1, 1, 1},
//	})
//	p, _ := gridpolicy.Resolve(g,
//		gridpolicy.TraversalConfig{Layer: gridpolicy.Int(0), Min: gridpolicy.Float(1)},
//		gridpolicy.CostConfig{Formula: "1 + y"})
//	res, _ := astar.FindPath(ctx, p, grid.Position{X: 0, Y: 0}, grid.Position{X: 0, Y: 2})
//	// res.Path holds the corner cells of the cheapest route.
//
//	go install github.com/katalvlaran/rasterpath/cmd/rasterpath@latest
package rasterpath
