package synth

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/rasterpath/grid"
	"github.com/katalvlaran/rasterpath/raster"
)

// Sentinel errors returned by Generate.
var (
	// ErrTooSmall indicates a width or height below 3.
	ErrTooSmall = errors.New("synth: maze must be at least 3×3")

	// ErrBraiding indicates Braiding outside [0, 1].
	ErrBraiding = errors.New("synth: braiding must be within [0, 1]")
)

const (
	wall    = 0
	passage = 1
)

// Config controls Generate.
type Config struct {
	Width, Height int
	// Braiding is the chance a dead end gets an extra connection.
	// 0 yields a perfect maze (a spanning tree).
	Braiding float64
	// MaxCost > 1 adds a cost layer with passages costing 1..MaxCost.
	MaxCost int
	// Seed 0 means time-based.
	Seed int64
}

// Maze is a generated raster pair.
type Maze struct {
	Width, Height int
	// Open holds 1 for passages and 0 for walls.
	Open []float64
	// Cost is nil unless Config.MaxCost > 1. Walls cost 1.
	Cost []float64
	// Start is the top-left room, End the bottom-right one.
	Start, End grid.Position
}

var jumps = [4]grid.Position{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}

// Generate builds a maze per cfg.
func Generate(cfg Config) (*Maze, error) {
	if cfg.Width < 3 || cfg.Height < 3 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrTooSmall, cfg.Width, cfg.Height)
	}
	if cfg.Braiding < 0 || cfg.Braiding > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBraiding, cfg.Braiding)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Carving works on the largest odd-sized prefix; an even edge stays wall.
	cols, rows := cfg.Width, cfg.Height
	if cols%2 == 0 {
		cols--
	}
	if rows%2 == 0 {
		rows--
	}
	m := &Maze{
		Width:  cfg.Width,
		Height: cfg.Height,
		Open:   make([]float64, cfg.Width*cfg.Height),
		Start:  grid.Position{X: 1, Y: 1},
		End:    grid.Position{X: cols - 2, Y: rows - 2},
	}

	m.carve(rng, cols, rows)
	if cfg.Braiding > 0 {
		m.braid(rng, cols, rows, cfg.Braiding)
	}
	if cfg.MaxCost > 1 {
		m.Cost = make([]float64, len(m.Open))
		for i, v := range m.Open {
			m.Cost[i] = 1
			if v == passage {
				m.Cost[i] = float64(1 + rng.Intn(cfg.MaxCost))
			}
		}
	}
	return m, nil
}

// carve runs the recursive backtracker from Start with an explicit stack.
func (m *Maze) carve(rng *rand.Rand, cols, rows int) {
	m.set(m.Start, passage)
	stack := []grid.Position{m.Start}
	candidates := make([]grid.Position, 0, len(jumps))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates = candidates[:0]
		for _, d := range jumps {
			next := cur.Add(d.X, d.Y)
			if next.X > 0 && next.X < cols-1 && next.Y > 0 && next.Y < rows-1 && m.at(next) == wall {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.Intn(len(candidates))]
		m.set(cur.Add(d.X/2, d.Y/2), passage)
		next := cur.Add(d.X, d.Y)
		m.set(next, passage)
		stack = append(stack, next)
	}
}

// braid opens a wall next to some dead ends, refusing any opening that
// would create a 2×2 block of passages.
func (m *Maze) braid(rng *rand.Rand, cols, rows int, p float64) {
	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			room := grid.Position{X: x, Y: y}
			if m.exits(room) != 1 || rng.Float64() >= p {
				continue
			}
			var options []grid.Position
			for _, d := range jumps {
				next := room.Add(d.X, d.Y)
				w := room.Add(d.X/2, d.Y/2)
				if next.X <= 0 || next.X >= cols-1 || next.Y <= 0 || next.Y >= rows-1 {
					continue
				}
				if m.at(w) == wall && m.at(next) == passage && !m.makesPlaza(w) {
					options = append(options, w)
				}
			}
			if len(options) > 0 {
				m.set(options[rng.Intn(len(options))], passage)
			}
		}
	}
}

func (m *Maze) exits(p grid.Position) int {
	n := 0
	for _, d := range jumps {
		if m.at(p.Add(d.X/2, d.Y/2)) == passage {
			n++
		}
	}
	return n
}

// makesPlaza reports whether opening p completes a 2×2 passage square.
func (m *Maze) makesPlaza(p grid.Position) bool {
	for _, q := range [4][2]int{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}} {
		all := true
		for _, c := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			cell := p.Add(q[0]+c[0], q[1]+c[1])
			if cell != p && m.at(cell) != passage {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// at treats everything outside the raster as wall.
func (m *Maze) at(p grid.Position) float64 {
	if p.X < 0 || p.Y < 0 || p.X >= m.Width || p.Y >= m.Height {
		return wall
	}
	return m.Open[p.Y*m.Width+p.X]
}

func (m *Maze) set(p grid.Position, v float64) {
	m.Open[p.Y*m.Width+p.X] = v
}

// Grid returns the maze as a grid: layer 0 is Open, layer 1 is Cost when present.
func (m *Maze) Grid() (*grid.Grid, error) {
	if m.Cost == nil {
		return grid.New(m.Width, m.Height, m.Open)
	}
	return grid.New(m.Width, m.Height, m.Open, m.Cost)
}

// Layers returns the maze as rasters, in the same order as Grid.
func (m *Maze) Layers() []*raster.Layer {
	out := []*raster.Layer{{Width: m.Width, Height: m.Height, Values: m.Open}}
	if m.Cost != nil {
		out = append(out, &raster.Layer{Width: m.Width, Height: m.Height, Values: m.Cost})
	}
	return out
}

// String draws the maze with '#' for walls and '.' for passages.
func (m *Maze) String() string {
	b := make([]byte, 0, (m.Width+1)*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := byte('#')
			if m.Open[y*m.Width+x] == passage {
				c = '.'
			}
			b = append(b, c)
		}
		b = append(b, '\n')
	}
	return string(b)
}
