package sim

import (
	"fmt"
	"iter"
	"math/bits"
)

// Pool is a fixed-capacity set of reusable slots.
//
// Spawn always claims the lowest-indexed free slot. Free slots are tracked
// in a bitset so a spawn scans one word per 64 slots instead of every slot.
// A full pool drops spawns without error.
type Pool[T any] struct {
	slots  []T
	free   []uint64 // bit set means the slot is free
	active int
}

// NewPool allocates a pool with the given capacity.
func NewPool[T any](capacity int) (*Pool[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCapacity, capacity)
	}
	p := &Pool[T]{
		slots: make([]T, capacity),
		free:  make([]uint64, (capacity+63)/64),
	}
	p.Clear()
	return p, nil
}

// Clear releases every slot and zeroes its contents.
func (p *Pool[T]) Clear() {
	for i := range p.free {
		p.free[i] = ^uint64(0)
	}
	if tail := len(p.slots) % 64; tail != 0 {
		p.free[len(p.free)-1] = (uint64(1) << tail) - 1
	}
	clear(p.slots)
	p.active = 0
}

// Spawn stores v in the first free slot and returns its index.
// When the pool is full it returns -1 and false and nothing changes.
func (p *Pool[T]) Spawn(v T) (int, bool) {
	if p == nil {
		return -1, false
	}
	for w, word := range p.free {
		if word == 0 {
			continue
		}
		b := bits.TrailingZeros64(word)
		p.free[w] &^= uint64(1) << b
		i := w*64 + b
		p.slots[i] = v
		p.active++
		return i, true
	}
	return -1, false
}

// Release returns slot i to the pool. Releasing a free slot is a no-op.
func (p *Pool[T]) Release(i int) {
	if !p.Active(i) {
		return
	}
	p.free[i/64] |= uint64(1) << (i % 64)
	p.active--
}

// Active reports whether slot i holds a live item.
func (p *Pool[T]) Active(i int) bool {
	if p == nil || i < 0 || i >= len(p.slots) {
		return false
	}
	return p.free[i/64]&(uint64(1)<<(i%64)) == 0
}

// Get returns a pointer to slot i, or nil if i is out of range.
// The pointer is valid for inactive slots too; their contents are stale.
func (p *Pool[T]) Get(i int) *T {
	if p == nil || i < 0 || i >= len(p.slots) {
		return nil
	}
	return &p.slots[i]
}

// All yields every active slot in index order. Releasing the current slot
// during iteration is allowed.
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		if p == nil {
			return
		}
		for i := range p.slots {
			if !p.Active(i) {
				continue
			}
			if !yield(i, &p.slots[i]) {
				return
			}
		}
	}
}

// Len returns the number of active slots.
func (p *Pool[T]) Len() int {
	if p == nil {
		return 0
	}
	return p.active
}

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int {
	if p == nil {
		return 0
	}
	return len(p.slots)
}

// Full reports whether a spawn would be dropped.
func (p *Pool[T]) Full() bool {
	return p.Len() == p.Cap()
}
