// Package pool implements a fixed-capacity object pool. Every value is
// created up front; the pool never grows, it only moves values between its
// free and active partitions.
package pool

import "slices"

// DefaultCapacity is used when a pool is built with a non-positive capacity.
const DefaultCapacity = 5

// Pool hands out values of type T from a fixed set.
// Free values are reused LIFO.
type Pool[T comparable] struct {
	reset    func(T)
	free     []T
	active   []T
	capacity int
}

// New creates a pool holding capacity values made by factory. reset is run
// on every value returned through Release.
func New[T comparable](factory func() T, reset func(T), capacity int) *Pool[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	p := &Pool[T]{
		reset:    reset,
		free:     make([]T, 0, capacity),
		active:   make([]T, 0, capacity),
		capacity: capacity,
	}
	for range capacity {
		p.free = append(p.free, factory())
	}
	return p
}

// Acquire moves one free value to the active set and returns it.
// ok is false when no free value is left; the pool does not allocate more.
func (p *Pool[T]) Acquire() (v T, ok bool) {
	if len(p.free) == 0 {
		return v, false
	}
	last := len(p.free) - 1
	v = p.free[last]
	var zero T
	p.free[last] = zero
	p.free = p.free[:last]
	p.active = append(p.active, v)
	return v, true
}

// Release resets v and returns it to the free set. Values that are not
// currently active (double release, foreign values) are ignored.
func (p *Pool[T]) Release(v T) bool {
	i := slices.Index(p.active, v)
	if i < 0 {
		return false
	}
	p.active = slices.Delete(p.active, i, i+1)
	if p.reset != nil {
		p.reset(v)
	}
	p.free = append(p.free, v)
	return true
}

// IsActive reports whether v is currently issued out by this pool.
func (p *Pool[T]) IsActive(v T) bool { return slices.Contains(p.active, v) }

func (p *Pool[T]) FreeCount() int   { return len(p.free) }
func (p *Pool[T]) ActiveCount() int { return len(p.active) }
func (p *Pool[T]) Capacity() int    { return p.capacity }

