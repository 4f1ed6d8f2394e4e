package frames

import "golang.org/x/exp/constraints"

// Number is any value a Window can sum.
type Number interface {
	constraints.Integer | constraints.Float
}

// Window keeps the most recent values up to a fixed capacity. When full, a
// push evicts the oldest value first.
type Window[T Number] struct {
	values   []T
	capacity int
}

// NewWindow returns an empty window holding at most capacity values.
func NewWindow[T Number](capacity int) *Window[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Window[T]{values: make([]T, 0, capacity), capacity: capacity}
}

// Push appends v, dropping the oldest value when the window is full.
func (w *Window[T]) Push(v T) {
	if len(w.values) == w.capacity {
		copy(w.values, w.values[1:])
		w.values[len(w.values)-1] = v
		return
	}
	w.values = append(w.values, v)
}

// Len returns the number of values held.
func (w *Window[T]) Len() int { return len(w.values) }

// Cap returns the window capacity.
func (w *Window[T]) Cap() int { return w.capacity }

// Sum adds up every value held.
func (w *Window[T]) Sum() T {
	var total T
	for _, v := range w.values {
		total += v
	}
	return total
}

// Values returns a copy of the held values, oldest first.
func (w *Window[T]) Values() []T {
	out := make([]T, len(w.values))
	copy(out, w.values)
	return out
}

// Reset empties the window.
func (w *Window[T]) Reset() { w.values = w.values[:0] }
