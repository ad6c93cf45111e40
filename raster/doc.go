// Package raster loads single-band sample layers from image and data files.
//
// Every decoder produces a *Layer: Width×Height float64 samples in row-major
// order (index y*Width + x, y = 0 is the top row), ready for grid.New.
//
// Formats, chosen by file extension in Load:
//
//	.png .jpg .jpeg .gif   band 1: gray level for gray images, red otherwise
//	.tif .tiff             band 1 via golang.org/x/image/tiff; 16-bit gray kept as is
//	.hgt .bin              little-endian int16 width, int16 height, then int16 samples
//	.json                  {"width":W,"height":H,"values":[...]} or {"rows":[[...],...]}
//
// Multi-band inputs are reduced to their first band; selecting another band
// is not supported.
package raster
