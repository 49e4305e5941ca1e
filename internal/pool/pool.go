// Package pool provides a generic reuse allocator for short-lived game objects.
// The free list is capped; the set of handed-out objects is not.
package pool

// Pool recycles objects of type T. T is normally a pointer type so that
// identity, not value, decides membership.
type Pool[T comparable] struct {
	maxSize int
	factory func() T
	reset   func(T)

	free   []T
	active map[T]struct{}
}

// New creates a pool whose free list holds at most maxSize objects.
// factory builds a fresh object when none is free; reset prepares a
// released object for reuse and may be nil.
func New[T comparable](maxSize int, factory func() T, reset func(T)) *Pool[T] {
	if maxSize < 0 {
		maxSize = 0
	}
	return &Pool[T]{
		maxSize: maxSize,
		factory: factory,
		reset:   reset,
		free:    make([]T, 0, maxSize),
		active:  make(map[T]struct{}),
	}
}

// Obtain returns a recycled object if one is free, otherwise a new one
// from the factory. The object is marked active.
func (p *Pool[T]) Obtain() T {
	var obj T
	if n := len(p.free); n > 0 {
		obj = p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
	} else {
		obj = p.factory()
	}
	p.active[obj] = struct{}{}
	return obj
}

// Free releases an active object. If the free list has room the object is
// reset and kept for reuse, otherwise it is dropped. Freeing an object that
// is not active is a no-op.
func (p *Pool[T]) Free(obj T) {
	if _, ok := p.active[obj]; !ok {
		return
	}
	delete(p.active, obj)
	p.store(obj)
}

// FreeAll releases every active object following the same cap rule as Free.
func (p *Pool[T]) FreeAll() {
	for obj := range p.active {
		delete(p.active, obj)
		p.store(obj)
	}
}

func (p *Pool[T]) store(obj T) {
	if len(p.free) >= p.maxSize {
		return
	}
	if p.reset != nil {
		p.reset(obj)
	}
	p.free = append(p.free, obj)
}

// IsActive reports whether obj is currently handed out.
func (p *Pool[T]) IsActive(obj T) bool {
	_, ok := p.active[obj]
	return ok
}

// ActiveCount returns the number of handed-out objects.
func (p *Pool[T]) ActiveCount() int {
	return len(p.active)
}

// FreeCount returns the number of objects waiting for reuse.
func (p *Pool[T]) FreeCount() int {
	return len(p.free)
}

// MaxSize returns the free list cap.
func (p *Pool[T]) MaxSize() int {
	return p.maxSize
}
