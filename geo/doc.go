// Package geo converts between map coordinates and raster cells and writes
// routes as GeoJSON.
//
// An Extent is the map rectangle covered by a raster of W×H cells. Row 0 of
// the raster is the top (YMax) edge, so the y axis flips between the two
// spaces:
//
//	col = roundHalfEven((x - XMin) / (XMax - XMin) * W - 0.5)
//	row = H - 1 - roundHalfEven((y - YMin) / (YMax - YMin) * H - 0.5)
//
// PixelToPoint returns the centre of a cell. PixelToPoint followed by
// PointToPixel is the identity on every cell.
package geo
