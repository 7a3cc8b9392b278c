// Package emoji tracks custom-emoji usage and resolves emoji references to
// images for cloud rendering.
//
// Usage tracking keeps a bounded window of recently seen emoji per place in
// an overwrite ring: once full, new sightings displace the oldest, so the
// ranking always reflects recent traffic without unbounded growth.
package emoji

import "sync"

// DefaultRingSize is the per-place window of recent emoji sightings.
const DefaultRingSize = 1000

// Ring is a fixed-capacity overwrite ring. Pushing beyond capacity wraps
// around and overwrites the oldest element. Safe for concurrent use.
type Ring[T comparable] struct {
	mu   sync.Mutex
	data []T
	pos  int
	full bool
}

// NewRing creates a ring with the given capacity.
func NewRing[T comparable](capacity int) *Ring[T] {
	return &Ring[T]{data: make([]T, capacity)}
}

// Push appends elem, overwriting the oldest element once the ring is full.
func (r *Ring[T]) Push(elem T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[r.pos] = elem
	r.pos++
	if r.pos >= len(r.data) {
		r.pos = 0
		r.full = true
	}
}

// Len returns the number of elements currently held.
func (r *Ring[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return len(r.data)
	}
	return r.pos
}

// Counts returns the multiset of elements currently in the window.
func (r *Ring[T]) Counts() map[T]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.pos
	if r.full {
		n = len(r.data)
	}
	counts := make(map[T]int, n)
	for _, elem := range r.data[:n] {
		counts[elem]++
	}
	return counts
}
