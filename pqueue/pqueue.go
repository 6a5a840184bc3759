// Package pqueue provides the min-heap priority queue used as the search
// frontier by both the burrow engine and the grid companion.
//
// It follows the "lazy decrease-key" pattern: callers push a new item when
// they find a better priority instead of updating an existing one, and skip
// stale items when they are popped.
//
// Complexity:
//
//   - Push / Pop: O(log N)
//   - Peek / Len: O(1)
//
// A Queue is not safe for concurrent use; each search owns its own.
package pqueue

import "container/heap"

// LessFunc reports whether a must be popped before b.
type LessFunc[T any] func(a, b T) bool

// Queue is a binary min-heap of T ordered by a LessFunc.
type Queue[T any] struct {
	h items[T]
}

// New returns an empty Queue ordered by less, with room for capacity items.
func New[T any](less LessFunc[T], capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	q := &Queue[T]{h: items[T]{data: make([]T, 0, capacity), less: less}}
	heap.Init(&q.h)

	return q
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.h.Len() }

// Push adds x to the queue.
func (q *Queue[T]) Push(x T) { heap.Push(&q.h, x) }

// Pop removes and returns the smallest item. ok is false on an empty queue.
func (q *Queue[T]) Pop() (x T, ok bool) {
	if q.h.Len() == 0 {
		return x, false
	}

	return heap.Pop(&q.h).(T), true
}

// Peek returns the smallest item without removing it.
func (q *Queue[T]) Peek() (x T, ok bool) {
	if q.h.Len() == 0 {
		return x, false
	}

	return q.h.data[0], true
}

// Reset drops every item but keeps the allocated storage.
func (q *Queue[T]) Reset() {
	clear(q.h.data)
	q.h.data = q.h.data[:0]
}

// items adapts a slice to container/heap.
type items[T any] struct {
	data []T
	less LessFunc[T]
}

func (h items[T]) Len() int           { return len(h.data) }
func (h items[T]) Less(i, j int) bool { return h.less(h.data[i], h.data[j]) }
func (h items[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

// Push is called by heap.Push; x must be a T.
func (h *items[T]) Push(x any) { h.data = append(h.data, x.(T)) }

// Pop is called by heap.Pop and returns the last element.
func (h *items[T]) Pop() any {
	old := h.data
	n := len(old)
	x := old[n-1]
	var zero T
	old[n-1] = zero
	h.data = old[:n-1]

	return x
}
