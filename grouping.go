package collutils

import (
	"context"

	"golang.org/x/exp/constraints"
)

type partition[A any] struct {
	matching    A
	nonMatching A
}

// GroupingBy returns a collector that groups elements according to key, and collects each group using downstream.
// Only keys returned by key for at least one element are present in the result.
func GroupingBy[T any, K comparable, A any, R any](key func(T) K, downstream Collector[T, A, R]) Collector[T, map[K]A, map[K]R] {
	if key == nil {
		return invalidCollector[T, map[K]A, map[K]R](invalidArgument("key function"))
	}

	if err := downstream.validate(); err != nil {
		return invalidCollector[T, map[K]A, map[K]R](err)
	}

	return Collector[T, map[K]A, map[K]R]{
		Supply: func() map[K]A {
			return map[K]A{}
		},

		Accumulate: func(acc map[K]A, elem T) map[K]A {
			k := key(elem)

			group, ok := acc[k]
			if !ok {
				group = downstream.Supply()
			}

			acc[k] = downstream.Accumulate(group, elem)

			return acc
		},

		Combine: func(left map[K]A, right map[K]A) map[K]A {
			for k, rightGroup := range right {
				if leftGroup, ok := left[k]; ok {
					left[k] = downstream.Combine(leftGroup, rightGroup)
					continue
				}

				left[k] = rightGroup
			}

			return left
		},

		Finish: func(acc map[K]A) map[K]R {
			result := make(map[K]R, len(acc))
			for k, group := range acc {
				result[k] = downstream.Finish(group)
			}

			return result
		},
	}
}

// PartitioningBy returns a collector that partitions elements according to pred, and collects each partition
// using downstream.
// The result always contains both the true and false keys.
func PartitioningBy[T any, A any, R any](pred func(T) bool, downstream Collector[T, A, R]) Collector[T, partition[A], map[bool]R] {
	if pred == nil {
		return invalidCollector[T, partition[A], map[bool]R](invalidArgument("predicate"))
	}

	if err := downstream.validate(); err != nil {
		return invalidCollector[T, partition[A], map[bool]R](err)
	}

	return Collector[T, partition[A], map[bool]R]{
		Supply: func() partition[A] {
			return partition[A]{
				matching:    downstream.Supply(),
				nonMatching: downstream.Supply(),
			}
		},

		Accumulate: func(acc partition[A], elem T) partition[A] {
			if pred(elem) {
				acc.matching = downstream.Accumulate(acc.matching, elem)
			} else {
				acc.nonMatching = downstream.Accumulate(acc.nonMatching, elem)
			}

			return acc
		},

		Combine: func(left partition[A], right partition[A]) partition[A] {
			return partition[A]{
				matching:    downstream.Combine(left.matching, right.matching),
				nonMatching: downstream.Combine(left.nonMatching, right.nonMatching),
			}
		},

		Finish: func(acc partition[A]) map[bool]R {
			return map[bool]R{
				true:  downstream.Finish(acc.matching),
				false: downstream.Finish(acc.nonMatching),
			}
		},
	}
}

// GroupByCollect groups items according to key, and collects each group using downstream.
func GroupByCollect[T any, K comparable, A any, R any](ctx context.Context, items []T, key func(T) K,
	downstream Collector[T, A, R], opts ...Option,
) (Optional[map[K]R], error) {
	return Collect(ctx, items, GroupingBy(key, downstream), opts...)
}

// GroupBy groups items according to key. Each group is a slice of items, in encounter order.
func GroupBy[T any, K comparable](ctx context.Context, items []T, key func(T) K, opts ...Option) (Optional[map[K][]T], error) {
	return GroupByCollect(ctx, items, key, ToSlice[T](), opts...)
}

// GroupBySet groups the elements of set according to key. Each group is a set of elements.
func GroupBySet[T comparable, K comparable](ctx context.Context, set Set[T], key func(T) K, opts ...Option) (Optional[map[K]Set[T]], error) {
	return CollectSet(ctx, set, GroupingBy(key, ToSet[T]()), opts...)
}

// GroupByDistinct groups items according to key. Each group is a set of items, without duplicates.
func GroupByDistinct[T comparable, K comparable](ctx context.Context, items []T, key func(T) K, opts ...Option) (Optional[map[K]Set[T]], error) {
	return GroupByCollect(ctx, items, key, ToSet[T](), opts...)
}

// GroupByMapping groups items according to key. Each group is a slice of the results of value, in encounter order.
func GroupByMapping[T any, K comparable, V any](ctx context.Context, items []T, key func(T) K, value func(T) V,
	opts ...Option,
) (Optional[map[K][]V], error) {
	return GroupByCollect(ctx, items, key, Mapping(value, ToSlice[V]()), opts...)
}

// GroupByMappingDistinct groups items according to key. Each group is a set of the results of value.
func GroupByMappingDistinct[T any, K comparable, V comparable](ctx context.Context, items []T, key func(T) K, value func(T) V,
	opts ...Option,
) (Optional[map[K]Set[V]], error) {
	return GroupByCollect(ctx, items, key, Mapping(value, ToSet[V]()), opts...)
}

// GroupByCount groups items according to key, and counts the items in each group.
func GroupByCount[T any, K comparable](ctx context.Context, items []T, key func(T) K, opts ...Option) (Optional[map[K]int], error) {
	return GroupByCollect(ctx, items, key, Counting[T](), opts...)
}

// GroupBySum groups items according to key, and sums the numbers returned by value for each group.
// Float sums may differ between sequential and parallel execution, see Summing.
func GroupBySum[T any, K comparable, N Number](ctx context.Context, items []T, key func(T) K, value func(T) N,
	opts ...Option,
) (Optional[map[K]N], error) {
	return GroupByCollect(ctx, items, key, Summing(value), opts...)
}

// GroupByAverage groups items according to key, and computes the arithmetic mean of the numbers
// returned by value for each group. Like GroupBySum, results may differ slightly in parallel execution.
func GroupByAverage[T any, K comparable, N Number](ctx context.Context, items []T, key func(T) K, value func(T) N,
	opts ...Option,
) (Optional[map[K]float64], error) {
	return GroupByCollect(ctx, items, key, Averaging(value), opts...)
}

// GroupByMin groups items according to key, and finds the smallest value returned by value for each group.
func GroupByMin[T any, K comparable, V constraints.Ordered](ctx context.Context, items []T, key func(T) K, value func(T) V,
	opts ...Option,
) (Optional[map[K]V], error) {
	return GroupByCollect(ctx, items, key, groupValue(Mapping(value, MinimumByValue(identityFinish[V]))), opts...)
}

// GroupByMax groups items according to key, and finds the largest value returned by value for each group.
func GroupByMax[T any, K comparable, V constraints.Ordered](ctx context.Context, items []T, key func(T) K, value func(T) V,
	opts ...Option,
) (Optional[map[K]V], error) {
	return GroupByCollect(ctx, items, key, groupValue(Mapping(value, MaximumByValue(identityFinish[V]))), opts...)
}

// GroupByMinBy groups items according to key, and finds the item for which value returns the smallest
// value for each group. If multiple items are minimal, the first one encountered wins.
func GroupByMinBy[T any, K comparable, V constraints.Ordered](ctx context.Context, items []T, key func(T) K, value func(T) V,
	opts ...Option,
) (Optional[map[K]T], error) {
	return GroupByCollect(ctx, items, key, groupValue(MinimumByValue(value)), opts...)
}

// GroupByMaxBy groups items according to key, and finds the item for which value returns the largest
// value for each group. If multiple items are maximal, the first one encountered wins.
func GroupByMaxBy[T any, K comparable, V constraints.Ordered](ctx context.Context, items []T, key func(T) K, value func(T) V,
	opts ...Option,
) (Optional[map[K]T], error) {
	return GroupByCollect(ctx, items, key, groupValue(MaximumByValue(value)), opts...)
}

// GroupByJoin groups items according to key, and concatenates the strings returned by value for each group,
// as configured by joiner.
// In parallel execution, the order of the strings is the same as in sequential execution only because
// partial results are merged in chunk order.
func GroupByJoin[T any, K comparable](ctx context.Context, items []T, key func(T) K, value func(T) string, joiner Joiner,
	opts ...Option,
) (Optional[map[K]string], error) {
	return GroupByCollect(ctx, items, key, Joining(value, joiner), opts...)
}

// Partition splits items into those for which pred returns true, and those for which it returns false.
func Partition[T any](ctx context.Context, items []T, pred func(T) bool, opts ...Option) (Optional[map[bool][]T], error) {
	return Collect(ctx, items, PartitioningBy(pred, ToSlice[T]()), opts...)
}

// PartitionDistinct is like Partition, but collects each partition into a set.
func PartitionDistinct[T comparable](ctx context.Context, items []T, pred func(T) bool, opts ...Option) (Optional[map[bool]Set[T]], error) {
	return Collect(ctx, items, PartitioningBy(pred, ToSet[T]()), opts...)
}

// groupValue unwraps the result of an extremum collector. A group always has at least one element,
// so the result is always present.
func groupValue[T any, A any, V any](c Collector[T, A, Optional[V]]) Collector[T, A, V] {
	return CollectingAndThen(c, func(o Optional[V]) V {
		return o.value
	})
}
