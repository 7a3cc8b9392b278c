package idiom

// Aging is the multiplicative decay applied to every slot when a new key
// evicts its way into a full tracker. Decay is amortized over insertions
// rather than driven by wall-clock time, so the ranking adapts at the pace
// of the update stream itself.
const Aging = 0.999

// Entry is one resident (key, salience) pair copied out of a Tracker.
type Entry[K comparable] struct {
	Key   K
	Value float32
}

// Tracker maintains an approximate top-K-by-cumulative-salience sketch over
// a stream of (key, increment) updates. It holds a fixed array of slots and
// scans linearly: for the capacities used here (200/500) that beats a heap
// or map on both memory and hot-path allocation.
//
// The zero value of K acts as a sentinel occupying unused slots with value
// zero. Tracker is not safe for concurrent use; the store wraps each one in
// a per-scope mutex.
type Tracker[K comparable] struct {
	slots []Entry[K]
}

// NewTracker creates a tracker with the given fixed capacity.
func NewTracker[K comparable](capacity int) *Tracker[K] {
	return &Tracker[K]{slots: make([]Entry[K], capacity)}
}

// Get returns the current salience for key, or 0 if the key is not resident.
func (t *Tracker[K]) Get(key K) float32 {
	for i := range t.slots {
		if t.slots[i].Key == key {
			return t.slots[i].Value
		}
	}
	return 0
}

// age decays every slot. Called only on eviction, never on a timer.
func (t *Tracker[K]) age() {
	for i := range t.slots {
		t.slots[i].Value *= Aging
	}
}

// Add accumulates increment onto key. An exact match wins immediately and
// is incremented in place without decay. Otherwise the minimum-value slot
// (ties broken by lowest index) is evicted: every slot is aged first, then
// the incoming key takes the slot with increment as its starting value.
// The incoming key always wins entry, even when its increment is below the
// pre-decay minimum.
func (t *Tracker[K]) Add(key K, increment float32) {
	match := -1
	evict := 0
	for i := range t.slots {
		if t.slots[i].Key == key {
			match = i
			break
		}
		if t.slots[i].Value < t.slots[evict].Value {
			evict = i
		}
	}
	if match >= 0 {
		t.slots[match].Value += increment
		return
	}
	t.age()
	t.slots[evict] = Entry[K]{Key: key, Value: increment}
}

// Entries returns an owned copy of every slot whose key differs from the
// zero-value sentinel. Order is the internal slot order and carries no
// meaning.
func (t *Tracker[K]) Entries() []Entry[K] {
	var zero K
	out := make([]Entry[K], 0, len(t.slots))
	for _, s := range t.slots {
		if s.Key != zero {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of resident non-sentinel keys.
func (t *Tracker[K]) Len() int {
	var zero K
	n := 0
	for i := range t.slots {
		if t.slots[i].Key != zero {
			n++
		}
	}
	return n
}

// Cap returns the fixed slot capacity.
func (t *Tracker[K]) Cap() int { return len(t.slots) }
