package store

// Instrumented records every call on the wrapped store in Metrics.
// It reads the count before and after a store to detect evictions, so it must
// sit inside a Locked when shared between goroutines.
type Instrumented[T any] struct {
	inner   Store[T]
	metrics *Metrics
}

func (i *Instrumented[T]) Store(msg T) error {
	before := i.inner.Count()
	if err := i.inner.Store(msg); err != nil {
		return err
	}
	after := i.inner.Count()

	i.metrics.Stored.Inc()
	// a store that did not grow the count replaced the oldest message
	if after <= before {
		i.metrics.Evicted.Add(float64(before - after + 1))
	}
	i.metrics.Depth.Set(float64(after))
	return nil
}

func (i *Instrumented[T]) Pop() (T, bool) {
	msg, ok := i.inner.Pop()
	if !ok {
		i.metrics.EmptyPops.Inc()
		return msg, false
	}
	i.metrics.Popped.Inc()
	i.metrics.Depth.Set(float64(i.inner.Count()))
	return msg, true
}

func (i *Instrumented[T]) Get() []T {
	return i.inner.Get()
}

func (i *Instrumented[T]) Count() int {
	return i.inner.Count()
}

func NewInstrumented[T any](inner Store[T], metrics *Metrics) *Instrumented[T] {
	return &Instrumented[T]{
		inner:   inner,
		metrics: metrics,
	}
}
