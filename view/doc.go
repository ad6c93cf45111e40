// Package view draws a routing result in a terminal with tcell.
//
// The grid is scaled down to fit the screen below a one-line status bar:
// each screen cell stands for a square block of grid cells and shows the
// traversability of the block's top-left cell. Route cells are drawn over
// the terrain, with S and E marking the endpoints.
//
// Render draws a single frame. Show draws and then blocks on keyboard
// input, redrawing on resize, until q, Esc or Ctrl-C is pressed or the
// context ends. Callers own the screen's Init and Fini.
package view
