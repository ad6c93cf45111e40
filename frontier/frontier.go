package frontier

import (
	"container/heap"

	"github.com/katalvlaran/rasterpath/grid"
)

// item is one queue entry.
type item struct {
	pos      grid.Position
	priority float64
}

// itemHeap implements heap.Interface over item values.
type itemHeap []item

func (h itemHeap) Len() int { return len(h) }

// Less orders by priority, then X, then Y.
func (h itemHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.pos.X != b.pos.X {
		return a.pos.X < b.pos.X
	}
	return a.pos.Y < b.pos.Y
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(item)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Queue is a min-priority queue of grid positions. The zero value is ready
// to use. A Queue is not safe for concurrent use.
type Queue struct {
	h itemHeap
}

// New returns an empty queue with room for capacity entries.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue{h: make(itemHeap, 0, capacity)}
}

// Push inserts p with the given priority.
func (q *Queue) Push(p grid.Position, priority float64) {
	heap.Push(&q.h, item{pos: p, priority: priority})
}

// Pop removes and returns the entry with the lowest priority. It panics on
// an empty queue; check Empty first.
func (q *Queue) Pop() (grid.Position, float64) {
	it := heap.Pop(&q.h).(item)
	return it.pos, it.priority
}

// Peek returns the lowest entry without removing it. ok is false when the
// queue is empty.
func (q *Queue) Peek() (p grid.Position, priority float64, ok bool) {
	if len(q.h) == 0 {
		return grid.Position{}, 0, false
	}
	return q.h[0].pos, q.h[0].priority, true
}

// Len returns the number of entries, stale ones included.
func (q *Queue) Len() int { return len(q.h) }

// Empty reports whether the queue has no entries.
func (q *Queue) Empty() bool { return len(q.h) == 0 }
