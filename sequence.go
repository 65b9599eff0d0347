package collutils

import (
	"context"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// IsEmpty returns true if items is nil or has no elements.
func IsEmpty[T any](items []T) bool {
	return len(items) == 0
}

// IsNotEmpty returns true if items has at least one element.
func IsNotEmpty[T any](items []T) bool {
	return !IsEmpty(items)
}

// MapSlice returns the results of calling mapper for each element of items, in order.
func MapSlice[T any, U any](ctx context.Context, items []T, mapper func(T) U, opts ...Option) (Optional[[]U], error) {
	return Collect(ctx, items, Mapping(mapper, ToSlice[U]()), opts...)
}

// MapToSet returns the distinct results of calling mapper for each element of items.
func MapToSet[T any, U comparable](ctx context.Context, items []T, mapper func(T) U, opts ...Option) (Optional[Set[U]], error) {
	return Collect(ctx, items, Mapping(mapper, ToSet[U]()), opts...)
}

// FilterSlice returns the elements of items for which pred returns true, in order.
func FilterSlice[T any](ctx context.Context, items []T, pred func(T) bool, opts ...Option) (Optional[[]T], error) {
	return Collect(ctx, items, Filtering(pred, ToSlice[T]()), opts...)
}

// FilterToSet returns the distinct elements of items for which pred returns true.
func FilterToSet[T comparable](ctx context.Context, items []T, pred func(T) bool, opts ...Option) (Optional[Set[T]], error) {
	return Collect(ctx, items, Filtering(pred, ToSet[T]()), opts...)
}

// Distinct returns the distinct elements of items.
func Distinct[T comparable](ctx context.Context, items []T, opts ...Option) (Optional[Set[T]], error) {
	return Collect(ctx, items, ToSet[T](), opts...)
}

// DistinctBy returns the distinct results of calling value for each element of items.
func DistinctBy[T any, V comparable](ctx context.Context, items []T, value func(T) V, opts ...Option) (Optional[Set[V]], error) {
	return MapToSet(ctx, items, value, opts...)
}

// DistinctSlice returns the distinct elements of items, in order of their first occurrence.
// It returns nil if items is nil.
func DistinctSlice[T comparable](items []T) []T {
	if items == nil {
		return nil
	}

	seen := make(Set[T], len(items))
	result := make([]T, 0, len(items))

	for _, elem := range items {
		if seen.Contains(elem) {
			continue
		}

		seen.Add(elem)
		result = append(result, elem)
	}

	return result
}

// Sum sums the numbers returned by value for each element of items.
// The sum of empty items is 0.
func Sum[T any, N Number](ctx context.Context, items []T, value func(T) N, opts ...Option) (Optional[N], error) {
	return Collect(ctx, items, Summing(value), opts...)
}

// Average computes the arithmetic mean of the numbers returned by value for each element of items.
// The mean of empty items is 0.
func Average[T any, N Number](ctx context.Context, items []T, value func(T) N, opts ...Option) (Optional[float64], error) {
	return Collect(ctx, items, Averaging(value), opts...)
}

// Min returns the smallest element of items.
// It returns ErrNoElements if items is nil or empty.
func Min[T constraints.Ordered](items []T) (T, error) {
	return MinBy(items, func(elem T) T {
		return elem
	})
}

// Max returns the largest element of items.
// It returns ErrNoElements if items is nil or empty.
func Max[T constraints.Ordered](items []T) (T, error) {
	return MaxBy(items, func(elem T) T {
		return elem
	})
}

// MinBy returns the element of items for which value returns the smallest value.
// If multiple elements are minimal, the first one wins.
// It returns ErrNoElements if items is nil or empty.
func MinBy[T any, V constraints.Ordered](items []T, value func(T) V) (T, error) {
	return extremumOf(items, MinimumByValue(value))
}

// MaxBy returns the element of items for which value returns the largest value.
// If multiple elements are maximal, the first one wins.
// It returns ErrNoElements if items is nil or empty.
func MaxBy[T any, V constraints.Ordered](items []T, value func(T) V) (T, error) {
	return extremumOf(items, MaximumByValue(value))
}

func extremumOf[T any](items []T, c Collector[T, Optional[T], Optional[T]]) (T, error) {
	result, err := Collect(context.Background(), items, c)
	if err != nil {
		var zero T
		return zero, err
	}

	return result.OrElse(None[T]()).OrError()
}

// OrderBy returns a copy of items, stably sorted in ascending order of the values returned by value.
// It returns nil if items is nil.
func OrderBy[T any, V constraints.Ordered](items []T, value func(T) V) []T {
	return sortedCopy(items, func(a T, b T) bool {
		return value(a) < value(b)
	})
}

// OrderByDesc returns a copy of items, stably sorted in descending order of the values returned by value.
// It returns nil if items is nil.
func OrderByDesc[T any, V constraints.Ordered](items []T, value func(T) V) []T {
	return sortedCopy(items, func(a T, b T) bool {
		return value(b) < value(a)
	})
}

func sortedCopy[T any](items []T, less func(a T, b T) bool) []T {
	if items == nil {
		return nil
	}

	result := slices.Clone(items)
	slices.SortStableFunc(result, less)

	return result
}

// Take returns the first n elements of items, or all elements if items has fewer than n elements.
// It returns nil if items is nil.
func Take[T any](items []T, n int) []T {
	if items == nil {
		return nil
	}

	if n < 0 {
		n = 0
	}

	if n > len(items) {
		n = len(items)
	}

	return slices.Clone(items[:n])
}

// KeyBy returns a map of the elements of items, keyed by the results of key.
// It returns a *DuplicateKeyError if key returns the same key for multiple elements.
// The result is absent if items is nil.
func KeyBy[T any, K comparable](ctx context.Context, items []T, key func(T) K) (Optional[map[K]T], error) {
	if key == nil {
		return None[map[K]T](), invalidArgument("key function")
	}

	if items == nil {
		return None[map[K]T](), nil
	}

	result := make(map[K]T, len(items))

	err := Each(ctx, FromSlice(items), func(_ context.Context, cancel context.CancelCauseFunc, elem T, _ uint64) {
		k := key(elem)

		if _, ok := result[k]; ok {
			cancel(&DuplicateKeyError[T, K]{
				Element: elem,
				Key:     k,
			})

			return
		}

		result[k] = elem
	})

	if err != nil {
		return None[map[K]T](), err
	}

	return Some(result), nil
}

// FindFirst returns the first element of items for which pred returns true.
// The result is absent if no element matches.
// In parallel execution, chunks are searched concurrently, and the match with the lowest position wins.
func FindFirst[T any](ctx context.Context, items []T, pred func(T) bool, opts ...Option) (Optional[T], error) {
	if pred == nil {
		return None[T](), invalidArgument("predicate")
	}

	cfg := newConfig(opts...)

	if !cfg.parallel(len(items)) {
		return findFirstSlice(ctx, items, pred)
	}

	parts := chunks(items, cfg.Workers)
	results := make([]Optional[T], len(parts))

	err := runChunks(ctx, len(parts), func(ctx context.Context, i int) error {
		result, err := findFirstSlice(ctx, parts[i], pred)
		if err != nil {
			return err
		}

		results[i] = result

		return nil
	})

	if err != nil {
		return None[T](), err
	}

	for _, result := range results {
		if result.present {
			return result, nil
		}
	}

	return None[T](), nil
}

// findFirstSlice returns the first element of items for which pred returns true.
func findFirstSlice[T any](ctx context.Context, items []T, pred func(T) bool) (Optional[T], error) {
	for i, elem := range items {
		if i%checkInterval == 0 && contextDone(ctx) {
			return None[T](), context.Cause(ctx)
		}

		if pred(elem) {
			return Some(elem), nil
		}
	}

	return None[T](), nil
}

// Exists returns true if pred returns true for any element of items.
// It returns false if items is nil or empty.
func Exists[T any](ctx context.Context, items []T, pred func(T) bool, opts ...Option) (bool, error) {
	result, err := FindFirst(ctx, items, pred, opts...)
	return result.present, err
}
