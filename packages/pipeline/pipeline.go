package pipeline

import (
	"context"
	"log/slog"

	"github.com/l3montree-dev/sensor-errstack/packages/store"
	"github.com/l3montree-dev/sensor-errstack/packages/types"
)

// Generate emits n consecutive error codes starting at first.
// The channel is closed after the last code or when ctx is done.
func Generate(ctx context.Context, first types.ErrorCode, n int) <-chan types.ErrorCode {
	output := make(chan types.ErrorCode)
	go func() {
		defer close(output)
		for i := range n {
			select {
			case output <- first + types.ErrorCode(i):
			case <-ctx.Done():
				slog.Warn("code generation cancelled", "sent", i, "err", ctx.Err())
				return
			}
		}
	}()
	return output
}

// Sink stores every message of input in s, in arrival order.
// The returned channel receives the first store error, or nil once input is
// closed, and is closed afterwards.
func Sink[T any](input <-chan T, s store.Store[T]) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		var firstErr error
		for msg := range input {
			if firstErr != nil {
				// keep draining so the producer never blocks
				continue
			}
			if err := s.Store(msg); err != nil {
				slog.Error("could not store message", "err", err)
				firstErr = err
			}
		}
		done <- firstErr
	}()
	return done
}
