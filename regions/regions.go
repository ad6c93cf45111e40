package regions

import (
	"container/list"
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rasterpath/grid"
)

// Sentinel errors.
var (
	// ErrOutOfBounds indicates a position outside the surface.
	ErrOutOfBounds = errors.New("regions: position out of bounds")

	// ErrBlocked indicates a Bridge endpoint that is not traversable.
	ErrBlocked = errors.New("regions: position is not traversable")
)

// None is the label of a blocked cell.
const None = -1

// Surface is the traversability view regions need.
type Surface interface {
	Width() int
	Height() int
	Traversable(p grid.Position) (bool, error)
}

var offsets = [4]grid.Position{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}

// Labels assigns every cell its region, or None when blocked.
type Labels struct {
	Width, Height int
	// IDs is row-major; regions are numbered 0.. in scan order.
	IDs []int
	// Sizes[i] is the cell count of region i.
	Sizes []int
}

// Label scans s row by row and flood-fills each unvisited open cell.
// ctx is checked once per row.
func Label(ctx context.Context, s Surface) (*Labels, error) {
	w, h := s.Width(), s.Height()
	l := &Labels{Width: w, Height: h, IDs: make([]int, w*h)}

	// 1) Traversability, once per cell.
	for y := 0; y < h; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for x := 0; x < w; x++ {
			ok, err := s.Traversable(grid.Position{X: x, Y: y})
			if err != nil {
				return nil, fmt.Errorf("regions: (%d,%d): %w", x, y, err)
			}
			l.IDs[y*w+x] = None
			if ok {
				l.IDs[y*w+x] = unvisited
			}
		}
	}

	// 2) BFS flood fill per region.
	queue := make([]int, 0, 64)
	for i0, id := range l.IDs {
		if id != unvisited {
			continue
		}
		region := len(l.Sizes)
		l.IDs[i0] = region
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := u%w, u/w
			for _, d := range offsets {
				vx, vy := ux+d.X, uy+d.Y
				if vx < 0 || vy < 0 || vx >= w || vy >= h {
					continue
				}
				if v := vy*w + vx; l.IDs[v] == unvisited {
					l.IDs[v] = region
					queue = append(queue, v)
				}
			}
		}
		l.Sizes = append(l.Sizes, len(queue))
	}
	return l, nil
}

// unvisited marks open cells during labelling; it never survives Label.
const unvisited = -2

// Count returns the number of regions.
func (l *Labels) Count() int { return len(l.Sizes) }

// Of returns the region of p, or None for blocked cells.
func (l *Labels) Of(p grid.Position) (int, error) {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width || p.Y >= l.Height {
		return None, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return l.IDs[p.Y*l.Width+p.X], nil
}

// Connected reports whether a and b are open and in the same region.
func (l *Labels) Connected(a, b grid.Position) (bool, error) {
	ra, err := l.Of(a)
	if err != nil {
		return false, err
	}
	rb, err := l.Of(b)
	if err != nil {
		return false, err
	}
	return ra != None && ra == rb, nil
}

// Largest returns the biggest region and its size, or (None, 0) when every
// cell is blocked. Ties go to the lower label.
func (l *Labels) Largest() (region, size int) {
	region = None
	for i, n := range l.Sizes {
		if n > size {
			region, size = i, n
		}
	}
	return region, size
}

// Gap is the result of Bridge.
type Gap struct {
	// Blocked is the number of blocked cells on Path.
	Blocked int
	// Path runs from a cell of a's region to a cell of b's region, both
	// included, crossing exactly Blocked blocked cells.
	Path []grid.Position
}

// Bridge finds the fewest blocked cells that must be opened to join the
// regions of a and b. It returns a zero Gap with a nil Path when they are
// already connected.
//
// Steps:
//  1. Label s and validate the endpoints.
//  2. Multi-source 0–1 BFS from every cell of a's region:
//     open cell → cost 0 (front of deque), blocked cell → cost 1 (back).
//  3. Stop at the first dequeued cell in b's region and rebuild the path.
func Bridge(ctx context.Context, s Surface, a, b grid.Position) (*Gap, error) {
	l, err := Label(ctx, s)
	if err != nil {
		return nil, err
	}
	ra, err := l.Of(a)
	if err != nil {
		return nil, err
	}
	rb, err := l.Of(b)
	if err != nil {
		return nil, err
	}
	if ra == None {
		return nil, fmt.Errorf("%w: %v", ErrBlocked, a)
	}
	if rb == None {
		return nil, fmt.Errorf("%w: %v", ErrBlocked, b)
	}
	if ra == rb {
		return &Gap{}, nil
	}

	w, h := l.Width, l.Height
	n := w * h
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i], prev[i] = inf, -1
	}

	dq := list.New()
	for i, id := range l.IDs {
		if id == ra {
			dist[i] = 0
			dq.PushBack(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if l.IDs[u] == rb {
			target = u
			break
		}
		ux, uy := u%w, u/w
		for _, d := range offsets {
			vx, vy := ux+d.X, uy+d.Y
			if vx < 0 || vy < 0 || vx >= w || vy >= h {
				continue
			}
			v := vy*w + vx
			step := 0
			if l.IDs[v] == None {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v], prev[v] = nd, u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	// Every cell is reachable at some cost, so target is always found.

	gap := &Gap{Blocked: dist[target]}
	for at := target; at >= 0; at = prev[at] {
		gap.Path = append(gap.Path, grid.Position{X: at % w, Y: at / w})
	}
	for i, j := 0, len(gap.Path)-1; i < j; i, j = i+1, j-1 {
		gap.Path[i], gap.Path[j] = gap.Path[j], gap.Path[i]
	}
	return gap, nil
}
