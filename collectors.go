package collutils

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a constraint that permits any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Accumulation folds values of type V.
// Zero returns the identity value, and Combine must be associative.
type Accumulation[V any] interface {
	Zero() V
	Combine(a V, b V) V
}

// Addition is an Accumulation that adds numbers, using the type's own addition semantics.
// Overflow is not checked.
type Addition[N Number] struct{}

var _ Accumulation[int] = Addition[int]{}

// Zero implements Accumulation.
func (Addition[N]) Zero() N {
	return 0
}

// Combine implements Accumulation.
func (Addition[N]) Combine(a N, b N) N {
	return a + b
}

type accumulationFuncs[V any] struct {
	zero    V
	combine func(a V, b V) V
}

// NewAccumulation returns an Accumulation with identity value zero that folds values using combine.
func NewAccumulation[V any](zero V, combine func(a V, b V) V) Accumulation[V] {
	return accumulationFuncs[V]{
		zero:    zero,
		combine: combine,
	}
}

func (a accumulationFuncs[V]) Zero() V {
	return a.zero
}

func (a accumulationFuncs[V]) Combine(x V, y V) V {
	return a.combine(x, y)
}

// Joiner configures how Joining concatenates strings.
type Joiner struct {
	// Delimiter is placed between consecutive strings.
	Delimiter string

	// Prefix is placed before the first string.
	Prefix string

	// Suffix is placed after the last string.
	Suffix string
}

type average struct {
	sum   float64
	count int
}

// Counting returns a collector that counts elements.
func Counting[T any]() Collector[T, int, int] {
	return Collector[T, int, int]{
		Supply: func() int {
			return 0
		},

		Accumulate: func(acc int, _ T) int {
			return acc + 1
		},

		Combine: func(left int, right int) int {
			return left + right
		},

		Finish: identityFinish[int],
	}
}

// Folding returns a collector that folds the values returned by value using acc.
func Folding[T any, V any](value func(T) V, acc Accumulation[V]) Collector[T, V, V] {
	if value == nil {
		return invalidCollector[T, V, V](invalidArgument("value function"))
	}

	if acc == nil {
		return invalidCollector[T, V, V](invalidArgument("accumulation"))
	}

	return Collector[T, V, V]{
		Supply: acc.Zero,

		Accumulate: func(a V, elem T) V {
			return acc.Combine(a, value(elem))
		},

		Combine: acc.Combine,

		Finish: identityFinish[V],
	}
}

// Summing returns a collector that sums the numbers returned by value.
// Partial sums are added in chunk order in parallel execution, so float sums may differ from sequential ones.
func Summing[T any, N Number](value func(T) N) Collector[T, N, N] {
	return Folding[T, N](value, Addition[N]{})
}

// Averaging returns a collector that computes the arithmetic mean of the numbers returned by value.
// The sum is kept as a float64, see Summing for parallel execution.
// The mean of no elements is 0.
func Averaging[T any, N Number](value func(T) N) Collector[T, average, float64] {
	if value == nil {
		return invalidCollector[T, average, float64](invalidArgument("value function"))
	}

	return Collector[T, average, float64]{
		Supply: func() average {
			return average{}
		},

		Accumulate: func(acc average, elem T) average {
			acc.sum += float64(value(elem))
			acc.count++

			return acc
		},

		Combine: func(left average, right average) average {
			return average{
				sum:   left.sum + right.sum,
				count: left.count + right.count,
			}
		},

		Finish: func(acc average) float64 {
			if acc.count == 0 {
				return 0
			}

			return acc.sum / float64(acc.count)
		},
	}
}

// MinimumBy returns a collector that finds the minimum element according to less.
// If multiple elements are minimal, the first one encountered wins.
// The result is absent if there are no elements.
func MinimumBy[T any](less func(a T, b T) bool) Collector[T, Optional[T], Optional[T]] {
	if less == nil {
		return invalidCollector[T, Optional[T], Optional[T]](invalidArgument("less function"))
	}

	return extremum(func(current T, candidate T) bool {
		return less(candidate, current)
	})
}

// MaximumBy returns a collector that finds the maximum element according to less.
// If multiple elements are maximal, the first one encountered wins.
// The result is absent if there are no elements.
func MaximumBy[T any](less func(a T, b T) bool) Collector[T, Optional[T], Optional[T]] {
	if less == nil {
		return invalidCollector[T, Optional[T], Optional[T]](invalidArgument("less function"))
	}

	return extremum(less)
}

// MinimumByValue returns a collector that finds the element for which value returns the smallest value.
// See MinimumBy.
func MinimumByValue[T any, V constraints.Ordered](value func(T) V) Collector[T, Optional[T], Optional[T]] {
	if value == nil {
		return invalidCollector[T, Optional[T], Optional[T]](invalidArgument("value function"))
	}

	return MinimumBy(byValue(value))
}

// MaximumByValue returns a collector that finds the element for which value returns the largest value.
// See MaximumBy.
func MaximumByValue[T any, V constraints.Ordered](value func(T) V) Collector[T, Optional[T], Optional[T]] {
	if value == nil {
		return invalidCollector[T, Optional[T], Optional[T]](invalidArgument("value function"))
	}

	return MaximumBy(byValue(value))
}

// extremum returns a collector that keeps the current element unless replace returns true for a candidate.
func extremum[T any](replace func(current T, candidate T) bool) Collector[T, Optional[T], Optional[T]] {
	return Collector[T, Optional[T], Optional[T]]{
		Supply: None[T],

		Accumulate: func(acc Optional[T], elem T) Optional[T] {
			if !acc.present || replace(acc.value, elem) {
				return Some(elem)
			}

			return acc
		},

		Combine: func(left Optional[T], right Optional[T]) Optional[T] {
			if !left.present {
				return right
			}

			if right.present && replace(left.value, right.value) {
				return right
			}

			return left
		},

		Finish: identityFinish[Optional[T]],
	}
}

// Joining returns a collector that concatenates the strings returned by value, as configured by joiner.
func Joining[T any](value func(T) string, joiner Joiner) Collector[T, []string, string] {
	if value == nil {
		return invalidCollector[T, []string, string](invalidArgument("value function"))
	}

	return Collector[T, []string, string]{
		Supply: func() []string {
			return nil
		},

		Accumulate: func(acc []string, elem T) []string {
			return append(acc, value(elem))
		},

		Combine: func(left []string, right []string) []string {
			return append(left, right...)
		},

		Finish: func(acc []string) string {
			return joiner.Prefix + strings.Join(acc, joiner.Delimiter) + joiner.Suffix
		},
	}
}

// ToSlice returns a collector that collects elements into a slice, in encounter order.
func ToSlice[T any]() Collector[T, []T, []T] {
	return Collector[T, []T, []T]{
		Supply: func() []T {
			return []T{}
		},

		Accumulate: func(acc []T, elem T) []T {
			return append(acc, elem)
		},

		Combine: func(left []T, right []T) []T {
			return append(left, right...)
		},

		Finish: identityFinish[[]T],
	}
}

// ToSet returns a collector that collects elements into a set.
func ToSet[T comparable]() Collector[T, Set[T], Set[T]] {
	return Collector[T, Set[T], Set[T]]{
		Supply: func() Set[T] {
			return NewSet[T]()
		},

		Accumulate: func(acc Set[T], elem T) Set[T] {
			acc.Add(elem)
			return acc
		},

		Combine: func(left Set[T], right Set[T]) Set[T] {
			return left.union(right)
		},

		Finish: identityFinish[Set[T]],
	}
}

// ToMap returns a collector that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func ToMap[T any, K comparable, V any](key func(T) K, value func(T) V) Collector[T, map[K]V, map[K]V] {
	if key == nil {
		return invalidCollector[T, map[K]V, map[K]V](invalidArgument("key function"))
	}

	if value == nil {
		return invalidCollector[T, map[K]V, map[K]V](invalidArgument("value function"))
	}

	return Collector[T, map[K]V, map[K]V]{
		Supply: func() map[K]V {
			return map[K]V{}
		},

		Accumulate: func(acc map[K]V, elem T) map[K]V {
			acc[key(elem)] = value(elem)
			return acc
		},

		Combine: func(left map[K]V, right map[K]V) map[K]V {
			for k, v := range right {
				left[k] = v
			}

			return left
		},

		Finish: identityFinish[map[K]V],
	}
}

// Mapping adapts downstream to accept elements of type T by applying mapper to each element.
func Mapping[T any, U any, A any, R any](mapper func(T) U, downstream Collector[U, A, R]) Collector[T, A, R] {
	if mapper == nil {
		return invalidCollector[T, A, R](invalidArgument("mapper function"))
	}

	if err := downstream.validate(); err != nil {
		return invalidCollector[T, A, R](err)
	}

	return Collector[T, A, R]{
		Supply: downstream.Supply,

		Accumulate: func(acc A, elem T) A {
			return downstream.Accumulate(acc, mapper(elem))
		},

		Combine: downstream.Combine,
		Finish:  downstream.Finish,
	}
}

// Filtering adapts downstream to only accept elements for which pred returns true.
func Filtering[T any, A any, R any](pred func(T) bool, downstream Collector[T, A, R]) Collector[T, A, R] {
	if pred == nil {
		return invalidCollector[T, A, R](invalidArgument("predicate"))
	}

	if err := downstream.validate(); err != nil {
		return invalidCollector[T, A, R](err)
	}

	return Collector[T, A, R]{
		Supply: downstream.Supply,

		Accumulate: func(acc A, elem T) A {
			if !pred(elem) {
				return acc
			}

			return downstream.Accumulate(acc, elem)
		},

		Combine: downstream.Combine,
		Finish:  downstream.Finish,
	}
}

// CollectingAndThen adapts downstream by applying finish to its result.
func CollectingAndThen[T any, A any, R any, U any](downstream Collector[T, A, R], finish func(R) U) Collector[T, A, U] {
	if finish == nil {
		return invalidCollector[T, A, U](invalidArgument("finish function"))
	}

	if err := downstream.validate(); err != nil {
		return invalidCollector[T, A, U](err)
	}

	return Collector[T, A, U]{
		Supply:     downstream.Supply,
		Accumulate: downstream.Accumulate,
		Combine:    downstream.Combine,

		Finish: func(acc A) U {
			return finish(downstream.Finish(acc))
		},
	}
}

func identityFinish[T any](acc T) T {
	return acc
}

// byValue returns a less function that compares the values returned by value.
func byValue[T any, V constraints.Ordered](value func(T) V) func(a T, b T) bool {
	return func(a T, b T) bool {
		return value(a) < value(b)
	}
}
