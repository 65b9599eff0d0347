package collutils

import "context"

// checkInterval is the number of elements processed between two checks for context cancelation.
const checkInterval = 64

// Collector describes a reduction of elements of type T into a result of type R, using an intermediate
// accumulator of type A.
//
// Supply returns a new, empty accumulator. Accumulate folds an element into an accumulator, returning
// the accumulator, or a new one. Combine merges two partial accumulators produced from disjoint, adjacent
// parts of the input, with left preceding right. Finish turns an accumulator into the final result.
//
// The functions must be free of side effects. For parallel execution, Combine must be associative.
type Collector[T any, A any, R any] struct {
	Supply     func() A
	Accumulate func(acc A, elem T) A
	Combine    func(left A, right A) A
	Finish     func(acc A) R

	// err is set by constructors that were given invalid arguments.
	err error
}

// validate returns an error if c cannot be used.
func (c Collector[T, A, R]) validate() error {
	switch {
	case c.err != nil:
		return c.err

	case c.Supply == nil:
		return invalidArgument("supply function")

	case c.Accumulate == nil:
		return invalidArgument("accumulate function")

	case c.Combine == nil:
		return invalidArgument("combine function")

	case c.Finish == nil:
		return invalidArgument("finish function")

	default:
		return nil
	}
}

// invalidCollector returns a collector that fails validation with err.
func invalidCollector[T any, A any, R any](err error) Collector[T, A, R] {
	return Collector[T, A, R]{
		err: err,
	}
}

// Collect collects items using collector c.
// It returns an absent result if items is nil, and the result of finishing an empty accumulator
// if items is empty.
// It returns an error wrapping ErrInvalidArgument if c is incomplete, or the cause of the cancelation
// if ctx is canceled.
func Collect[T any, A any, R any](ctx context.Context, items []T, c Collector[T, A, R], opts ...Option) (Optional[R], error) {
	if err := c.validate(); err != nil {
		return None[R](), err
	}

	if items == nil {
		return None[R](), nil
	}

	if err := ctx.Err(); err != nil {
		return None[R](), context.Cause(ctx)
	}

	cfg := newConfig(opts...)

	var (
		acc A
		err error
	)

	if cfg.parallel(len(items)) {
		acc, err = reduceParallel(ctx, chunks(items, cfg.Workers), c)
	} else {
		acc, err = reduceSlice(ctx, items, c)
	}

	if err != nil {
		return None[R](), err
	}

	return Some(c.Finish(acc)), nil
}

// CollectSet collects the elements of set using collector c.
// It returns an absent result if set is nil. See Collect for details.
func CollectSet[T comparable, A any, R any](ctx context.Context, set Set[T], c Collector[T, A, R], opts ...Option) (Optional[R], error) {
	return Collect(ctx, set.Slice(), c, opts...)
}

// reduceSlice folds items into a new accumulator supplied by c.
// It stops with the cause of the cancelation if ctx is canceled.
func reduceSlice[T any, A any, R any](ctx context.Context, items []T, c Collector[T, A, R]) (A, error) {
	acc := c.Supply()

	for i, elem := range items {
		if i%checkInterval == 0 && contextDone(ctx) {
			var zero A
			return zero, context.Cause(ctx)
		}

		acc = c.Accumulate(acc, elem)
	}

	return acc, nil
}

// reduceParallel concurrently reduces each chunk into a partial accumulator, and combines the partial
// accumulators in chunk order.
func reduceParallel[T any, A any, R any](ctx context.Context, chunks [][]T, c Collector[T, A, R]) (A, error) {
	partials := make([]A, len(chunks))

	err := runChunks(ctx, len(chunks), func(ctx context.Context, i int) error {
		acc, err := reduceSlice(ctx, chunks[i], c)
		if err != nil {
			return err
		}

		partials[i] = acc

		return nil
	})

	if err != nil {
		var zero A
		return zero, err
	}

	acc := partials[0]
	for _, partial := range partials[1:] {
		acc = c.Combine(acc, partial)
	}

	return acc, nil
}
