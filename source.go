package collutils

import (
	"context"
	"sync/atomic"
)

// Source returns a channel of elements to be consumed by a terminal operation such as Each or Reduce.
// A Source must stop producing elements and close the channel when ctx is canceled.
type Source[T any] func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T

// FromSlice returns a source that produces the elements of items, in order.
func FromSlice[T any](items []T) Source[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, elem := range items {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// FromSet returns a source that produces the elements of set, in undefined order.
func FromSet[T comparable](set Set[T]) Source[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for elem := range set {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// FromChannel returns a source that produces the elements received through ch, in order.
// The new source must not be called more than once, doing so will panic.
func FromChannel[T any](ch <-chan T) Source[T] {
	started := atomic.Bool{}

	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		if started.Swap(true) {
			panic("source called multiple times")
		}

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for elem := range ch {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}
