package cli

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	collutils "github.com/deadlyengineer/go-collection-utils"
	"github.com/deadlyengineer/go-collection-utils/internal/records"
)

// Aggregation names accepted by the group command.
const (
	AggCount    = "count"
	AggSum      = "sum"
	AggAvg      = "avg"
	AggMin      = "min"
	AggMax      = "max"
	AggJoin     = "join"
	AggList     = "list"
	AggDistinct = "distinct"
)

// Aggregations lists all supported aggregation names.
var Aggregations = []string{AggCount, AggSum, AggAvg, AggMin, AggMax, AggJoin, AggList, AggDistinct}

// groupQuery describes a group-by aggregation over records.
type groupQuery struct {
	key    string
	agg    string
	field  string
	joiner collutils.Joiner
	opts   []collutils.Option
}

// row is a record reduced to the values an aggregation needs.
type row struct {
	key    string
	text   string
	number float64
}

func rowKey(r row) string {
	return r.key
}

func rowText(r row) string {
	return r.text
}

func rowNumber(r row) float64 {
	return r.number
}

// needsField returns true if agg aggregates a field value.
func needsField(agg string) bool {
	return agg != AggCount
}

// numeric returns true if agg aggregates numeric field values.
func numeric(agg string) bool {
	return agg == AggSum || agg == AggAvg || agg == AggMin || agg == AggMax
}

// aggregate runs the aggregation described by query over recs.
// The result maps each key to its aggregated value.
func aggregate(ctx context.Context, recs []records.Record, query groupQuery) (map[string]any, error) {
	if !slices.Contains(Aggregations, query.agg) {
		return nil, fmt.Errorf("unknown aggregation %q, expected one of %v", query.agg, Aggregations)
	}

	if needsField(query.agg) && query.field == "" {
		return nil, fmt.Errorf("aggregation %q requires a field", query.agg)
	}

	rows, err := extractRows(recs, query)
	if err != nil {
		return nil, err
	}

	switch query.agg {
	case AggCount:
		result, err := collutils.GroupByCount(ctx, rows, rowKey, query.opts...)
		return run(result, err)

	case AggSum:
		result, err := collutils.GroupBySum(ctx, rows, rowKey, rowNumber, query.opts...)
		return run(result, err)

	case AggAvg:
		result, err := collutils.GroupByAverage(ctx, rows, rowKey, rowNumber, query.opts...)
		return run(result, err)

	case AggMin:
		result, err := collutils.GroupByMin(ctx, rows, rowKey, rowNumber, query.opts...)
		return run(result, err)

	case AggMax:
		result, err := collutils.GroupByMax(ctx, rows, rowKey, rowNumber, query.opts...)
		return run(result, err)

	case AggJoin:
		result, err := collutils.GroupByJoin(ctx, rows, rowKey, rowText, query.joiner, query.opts...)
		return run(result, err)

	case AggList:
		result, err := collutils.GroupByMapping(ctx, rows, rowKey, rowText, query.opts...)
		return run(result, err)

	default:
		sets, err := collutils.GroupByMappingDistinct(ctx, rows, rowKey, rowText, query.opts...)

		return run(sortedSets(sets), err)
	}
}

// extractRows converts recs into rows, failing on the first record that lacks a required value.
func extractRows(recs []records.Record, query groupQuery) ([]row, error) {
	rows := make([]row, 0, len(recs))

	for i, rec := range recs {
		key, err := rec.String(query.key)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		r := row{
			key: key,
		}

		switch {
		case numeric(query.agg):
			r.number, err = rec.Number(query.field)

		case needsField(query.agg):
			r.text, err = rec.String(query.field)
		}

		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		rows = append(rows, r)
	}

	return rows, nil
}

// sortedSets converts each set of strings into a sorted slice.
func sortedSets(sets collutils.Optional[map[string]collutils.Set[string]]) collutils.Optional[map[string][]string] {
	groups, ok := sets.Get()
	if !ok {
		return collutils.None[map[string][]string]()
	}

	result := make(map[string][]string, len(groups))
	for key, set := range groups {
		values := set.Slice()
		slices.Sort(values)

		result[key] = values
	}

	return collutils.Some(result)
}

// run converts the result of a group-by function into a generic map.
func run[V any](result collutils.Optional[map[string]V], err error) (map[string]any, error) {
	if err != nil {
		return nil, err
	}

	groups := result.OrElse(nil)

	out := make(map[string]any, len(groups))
	for key, value := range groups {
		out[key] = value
	}

	return out, nil
}
