package feed

import (
	"sync"
)

// Projection mirrors the latest snapshot of a live feed as an in-memory
// ordered list. Every delivery replaces the whole sequence; there is no
// merging across snapshot generations, so readers only ever observe one
// consistent snapshot at a time.
type Projection[T any] struct {
	mu    sync.RWMutex
	items []T
	seen  bool
}

func NewProjection[T any]() *Projection[T] {
	return &Projection[T]{}
}

// Replace swaps in a new snapshot wholesale, preserving its order.
func (p *Projection[T]) Replace(items []T) {
	next := make([]T, len(items))
	copy(next, items)

	p.mu.Lock()
	p.items = next
	p.seen = true
	p.mu.Unlock()
}

// Items returns a copy of the current snapshot; callers may read it at any
// time and re-read later to observe newer snapshots.
func (p *Projection[T]) Items() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Projection[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.items)
}

// Ready reports whether at least one snapshot has been delivered.
func (p *Projection[T]) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.seen
}
