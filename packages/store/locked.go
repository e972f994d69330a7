package store

import "sync"

// Locked serializes every call to the wrapped store.
type Locked[T any] struct {
	inner Store[T]
	lock  sync.Mutex
}

func (l *Locked[T]) Store(msg T) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.inner.Store(msg)
}

func (l *Locked[T]) Pop() (T, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.inner.Pop()
}

func (l *Locked[T]) Get() []T {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.inner.Get()
}

func (l *Locked[T]) Count() int {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.inner.Count()
}

// Do runs fn while holding the lock, so several calls on the inner store
// happen atomically.
func (l *Locked[T]) Do(fn func(inner Store[T]) error) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	return fn(l.inner)
}

func NewLocked[T any](inner Store[T]) *Locked[T] {
	return &Locked[T]{
		inner: inner,
	}
}
