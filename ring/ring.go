// Package ring implements a fixed-capacity, lock-free, single-producer
// single-consumer ring buffer of position.Position values, used to
// pass cross-band notifications between neighboring pruner workers
// (§4.2, §4.3).
//
// The design is adapted down from a node-based MPMC ring (the
// lock-free pattern grounded on the retrieval pack's
// gsingh-ds-go-lock-free-ring-buffer) to the simpler array-of-T with
// plain head/tail atomics the specification actually calls for: one
// producer goroutine, one consumer goroutine, capacity a compile-time
// power of two, one slot permanently reserved to disambiguate empty
// from full without a separate counter.
//
// Violating single-producer or single-consumer (calling Push from two
// goroutines, or Pop from two goroutines) is a programmer error: the
// ring performs no synchronization to prevent it, by design (§5).
package ring

import (
	"sync/atomic"

	"github.com/azulmaze/mazerunner/position"
)

// DefaultCapacity is the ring size used by the solver's band
// boundaries: 2^13, per §3.
const DefaultCapacity = 1 << 13

// Ring is a fixed-capacity SPSC queue of Positions. The zero value is
// not usable; construct with New.
type Ring struct {
	mask uint64
	data []position.Position

	// head and tail are padded onto their own cache lines to avoid
	// false sharing between the producer and the consumer, mirroring
	// the original source's commented-out lock-free CircularData
	// alternative (alignas(64) std::atomic<size_t>).
	head paddedCounter
	tail paddedCounter
}

type paddedCounter struct {
	v   atomic.Uint64
	_   [7]uint64 // pad to a 64-byte cache line alongside the uint64 above
}

// New constructs a Ring whose capacity is the smallest power of two
// >= capacity (minimum 2, since one slot is always reserved).
func New(capacity int) *Ring {
	n := 2
	for n < capacity {
		n <<= 1
	}
	return &Ring{
		mask: uint64(n - 1),
		data: make([]position.Position, n),
	}
}

// Push attempts to enqueue p. It never blocks: if the ring is full it
// returns false immediately, leaving policy (retry later, drop) to
// the caller, per §4.2/§7.
func (r *Ring) Push(p position.Position) bool {
	head := r.head.v.Load() // relaxed: only the producer ever advances head
	tail := r.tail.v.Load() // acquire: synchronizes with the consumer's release store
	next := (head + 1) & r.mask
	if next == tail {
		return false // full
	}
	r.data[head] = p
	r.head.v.Store(next)
	return true
}

// Pop attempts to dequeue the oldest pushed Position. Returns
// (zero, false) if the ring is currently empty.
func (r *Ring) Pop() (position.Position, bool) {
	tail := r.tail.v.Load() // relaxed: only the consumer ever advances tail
	head := r.head.v.Load() // acquire: synchronizes with the producer's release store
	if tail == head {
		return position.Position{}, false // empty
	}
	p := r.data[tail]
	r.tail.v.Store((tail + 1) & r.mask)
	return p, true
}

// IsEmpty reports whether the ring currently holds no elements.
func (r *Ring) IsEmpty() bool {
	return r.head.v.Load() == r.tail.v.Load()
}

// Capacity returns the usable capacity (one less than the allocated
// slot count, since one slot is reserved).
func (r *Ring) Capacity() int {
	return int(r.mask) // mask == n-1, and n-1 usable slots
}
