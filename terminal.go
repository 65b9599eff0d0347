package collutils

import (
	"context"
	"errors"
)

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the source.
type ConsumerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the source.
type AccumulatorFunc[T any, A any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc A) A

// Each calls each for each element produced by src.
// If src or each cancel the context, it returns the cause of the cancelation.
// Canceling with ErrShortCircuit stops the traversal without returning an error.
func Each[T any](ctx context.Context, src Source[T], each ConsumerFunc[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ch := src(ctx, cancel)

	index := uint64(0)

	for elem := range ch {
		each(ctx, cancel, elem, index)

		if contextDone(ctx) {
			break
		}

		index++
	}

	err := context.Cause(ctx)
	if errors.Is(err, ErrShortCircuit) {
		err = nil
	}

	return err
}

// Reduce calls reduce for each element produced by src, folding it into accumulator acc, returning the final accumulator.
// If src or reduce cancel the context, it returns the accumulator so far, and the cause of the cancelation.
func Reduce[T any, A any](ctx context.Context, src Source[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	err := Each(ctx, src, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		acc = reduce(ctx, cancel, elem, index, acc)
	})

	return acc, err
}

// CollectSource collects the elements produced by src using collector c, sequentially.
// It returns an error wrapping ErrInvalidArgument if c is incomplete, or the cause of the cancelation
// if the context is canceled.
func CollectSource[T any, A any, R any](ctx context.Context, src Source[T], c Collector[T, A, R]) (R, error) {
	var zero R

	if src == nil {
		return zero, invalidArgument("source")
	}

	if err := c.validate(); err != nil {
		return zero, err
	}

	acc, err := reduceCollector(ctx, src, c)
	if err != nil {
		return zero, err
	}

	return c.Finish(acc), nil
}

// reduceCollector folds all elements produced by src into a new accumulator supplied by c.
func reduceCollector[T any, A any, R any](ctx context.Context, src Source[T], c Collector[T, A, R]) (A, error) {
	return Reduce(ctx, src, c.Supply(), func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64, acc A) A {
		return c.Accumulate(acc, elem)
	})
}

// FindFirstSource returns the first element produced by src for which pred returns true.
// It stops consuming src as soon as an element matches. The result is absent if no element matches.
func FindFirstSource[T any](ctx context.Context, src Source[T], pred func(T) bool) (Optional[T], error) {
	result := None[T]()

	if src == nil {
		return result, invalidArgument("source")
	}

	if pred == nil {
		return result, invalidArgument("predicate")
	}

	err := Each(ctx, src, func(_ context.Context, cancel context.CancelCauseFunc, elem T, _ uint64) {
		if !pred(elem) {
			return
		}

		result = Some(elem)

		cancel(ErrShortCircuit)
	})

	return result, err
}
