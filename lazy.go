package culture

import "sync"

// lazy is a write-once cell. The first get that returns normally stores the
// loaded value; every later get returns it. A load that panics is retried.
type lazy[T any] struct {
	mu    sync.Mutex
	done  bool
	load  func() T
	value T
}

func newLazy[T any](load func() T) *lazy[T] {
	return &lazy[T]{load: load}
}

func fixed[T any](value T) *lazy[T] {
	return &lazy[T]{value: value, done: true}
}

func (l *lazy[T]) get() T {
	if l == nil {
		var zero T
		return zero
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.done {
		if l.load != nil {
			l.value = l.load()
			l.load = nil
		}
		l.done = true
	}
	return l.value
}
