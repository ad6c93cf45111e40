package view

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/rasterpath/grid"
)

// Terrain is the part of a routing surface the view needs.
type Terrain interface {
	Width() int
	Height() int
	Traversable(p grid.Position) (bool, error)
}

// Scene is everything one frame shows.
type Scene struct {
	Terrain Terrain
	// Path holds route waypoints; consecutive waypoints share a row or column.
	Path       []grid.Position
	Start, End grid.Position
	// Status is printed on the top line.
	Status string
}

// Glyphs.
const (
	RuneOpen    = '·'
	RuneBlocked = '█'
	RuneError   = '?'
	RuneRoute   = '•'
	RuneStart   = 'S'
	RuneEnd     = 'E'
)

var (
	styleStatus  = tcell.StyleDefault.Reverse(true)
	styleOpen    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBlocked = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleRoute   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStart   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnd     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Scale returns how many grid cells per side one screen cell covers when a
// w×h grid is drawn on a sw×sh screen, status line included.
func Scale(w, h, sw, sh int) int {
	sh-- // status line
	if sw < 1 || sh < 1 {
		return 0
	}
	s := 1
	if k := (w + sw - 1) / sw; k > s {
		s = k
	}
	if k := (h + sh - 1) / sh; k > s {
		s = k
	}
	return s
}

// Render clears screen and draws s on it.
func Render(screen tcell.Screen, s Scene) {
	screen.Clear()
	sw, sh := screen.Size()
	drawText(screen, 0, 0, sw, s.Status, styleStatus)

	if s.Terrain == nil {
		screen.Show()
		return
	}
	w, h := s.Terrain.Width(), s.Terrain.Height()
	scale := Scale(w, h, sw, sh)
	if scale == 0 {
		screen.Show()
		return
	}

	// 1) Terrain.
	for sy := 0; sy+1 < sh && sy*scale < h; sy++ {
		for sx := 0; sx < sw && sx*scale < w; sx++ {
			ok, err := s.Terrain.Traversable(grid.Position{X: sx * scale, Y: sy * scale})
			switch {
			case err != nil:
				screen.SetContent(sx, sy+1, RuneError, nil, styleError)
			case ok:
				screen.SetContent(sx, sy+1, RuneOpen, nil, styleOpen)
			default:
				screen.SetContent(sx, sy+1, RuneBlocked, nil, styleBlocked)
			}
		}
	}

	// 2) Route, segment by segment.
	put := func(p grid.Position, r rune, st tcell.Style) {
		screen.SetContent(p.X/scale, p.Y/scale+1, r, nil, st)
	}
	for i := 1; i < len(s.Path); i++ {
		a, b := s.Path[i-1], s.Path[i]
		dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
		for p := a; p != b; p = p.Add(dx, dy) {
			put(p, RuneRoute, styleRoute)
		}
		put(b, RuneRoute, styleRoute)
	}

	// 3) Endpoints on top.
	put(s.Start, RuneStart, styleStart)
	put(s.End, RuneEnd, styleEnd)

	screen.Show()
}

// Show renders s and handles input until the user quits or ctx ends.
// Quitting returns nil; a finished context returns ctx.Err().
func Show(ctx context.Context, screen tcell.Screen, s Scene) error {
	Render(screen, s)

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quits(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				Render(screen, s)
			}
		}
	}
}

func quits(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// drawText writes text from (x, y), clipped to width, padding the rest of
// the line with the same style.
func drawText(screen tcell.Screen, x, y, width int, text string, st tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		screen.SetContent(col, y, r, nil, st)
		col++
	}
	for ; col < width; col++ {
		screen.SetContent(col, y, ' ', nil, st)
	}
}

// StatusLine formats the usual status text for a finished search.
func StatusLine(title string, cost float64, waypoints, expanded int) string {
	return fmt.Sprintf(" %s  cost=%g  waypoints=%d  expanded=%d  [q]uit", title, cost, waypoints, expanded)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
