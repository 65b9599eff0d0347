// Package collutils provides generic utilities over slices and sets: mapping, filtering, distinct values,
// sums, minimum and maximum, ordering, and most importantly grouping elements by a key and aggregating
// each group.
//
// Aggregations are described by a Collector, which knows how to create an accumulator, fold an element
// into it, combine two partial accumulators, and finish the accumulator into a result. Collectors compose:
// GroupingBy takes a downstream collector that is applied to each group, and Mapping and Filtering adapt
// the elements a downstream collector receives.
//
// Operations distinguish between absent and empty input. A nil slice or set is absent, and results in an
// absent Optional. A non-nil slice or set without elements is empty, and results in a present Optional
// holding the collector's empty result, for example an empty map.
//
// Operations run sequentially by default. WithParallel splits the input into disjoint chunks that are
// reduced concurrently and merged in chunk order. Counting and integer sums produce the same results in
// both modes. Floating-point addition is not associative, so sums and averages of floats may differ in
// the last bits between the modes, or more when values of very different magnitude cancel out. Order-sensitive aggregations (joining strings, collecting into slices, ties in MinimumBy and MaximumBy)
// only produce the same results if the collector's Combine function preserves order, which is true
// for the collectors in this package but is not guaranteed for custom collectors.
//
// Functions receive a context.Context. Canceling the context stops processing, and the cause of the
// cancelation is returned.
package collutils
