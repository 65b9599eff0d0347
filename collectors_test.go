package collutils

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

type item struct {
	sku      string
	category string
	price    int
}

var items = []item{
	{sku: "12", category: "mobile", price: 10},
	{sku: "13", category: "mobile", price: 20},
	{sku: "14", category: "laptop", price: 300},
	{sku: "15", category: "laptop", price: 100},
	{sku: "16", category: "tablet", price: 100},
	{sku: "17", category: "laptop", price: 100},
}

func sku(i item) string {
	return i.sku
}

func category(i item) string {
	return i.category
}

func price(i item) int {
	return i.price
}

func collectAll[T any, A any, R any](c Collector[T, A, R], elems ...T) R {
	acc := c.Supply()
	for _, elem := range elems {
		acc = c.Accumulate(acc, elem)
	}

	return c.Finish(acc)
}

func TestCounting(t *testing.T) {
	is := is.New(t)

	is.Equal(collectAll(Counting[int]()), 0)
	is.Equal(collectAll(Counting[int](), 1, 2, 3), 3)
}

func TestSumming(t *testing.T) {
	is := is.New(t)

	is.Equal(collectAll(Summing(price), items...), 630)
	is.Equal(collectAll(Summing(func(f float64) float64 { return f }), 0.5, 0.25), 0.75)
}

func TestAddition(t *testing.T) {
	is := is.New(t)

	add := Addition[float64]{}

	is.Equal(add.Zero(), 0.0)
	is.Equal(add.Combine(0.5, 0.25), 0.75)

	sum, err := Sum(context.Background(), []float64{0.5, 0.25}, func(f float64) float64 {
		return f
	})

	is.NoErr(err)
	is.Equal(sum, Some(0.75))
}

func TestSumming_Overflow(t *testing.T) {
	is := is.New(t)

	result := collectAll(Summing(func(i int8) int8 { return i }), 100, 100)

	is.Equal(result, int8(-56))
}

func TestFolding(t *testing.T) {
	is := is.New(t)

	product := NewAccumulation(1, func(a int, b int) int {
		return a * b
	})

	is.Equal(collectAll(Folding(func(i int) int { return i }, product), 2, 3, 4), 24)
}

func TestAveraging(t *testing.T) {
	is := is.New(t)

	is.Equal(collectAll(Averaging(price)), 0.0)
	is.Equal(collectAll(Averaging(price), items[:2]...), 15.0)
}

func TestMinimumBy_FirstWins(t *testing.T) {
	is := is.New(t)

	result := collectAll(MinimumByValue(price), items[2:]...)

	is.Equal(result, Some(items[3]))
}

func TestMaximumBy_FirstWins(t *testing.T) {
	is := is.New(t)

	result := collectAll(MaximumByValue(price), items[3:]...)

	is.Equal(result, Some(items[3]))
}

func TestMinimumBy_Empty(t *testing.T) {
	is := is.New(t)

	result := collectAll(MinimumByValue(price))

	is.True(!result.IsPresent())
}

func TestExtremum_Combine(t *testing.T) {
	is := is.New(t)

	c := MinimumByValue(price)

	left := c.Accumulate(c.Supply(), items[3])
	right := c.Accumulate(c.Supply(), items[4])

	is.Equal(c.Combine(left, right), Some(items[3]))
	is.Equal(c.Combine(c.Supply(), right), Some(items[4]))
	is.Equal(c.Combine(left, c.Supply()), Some(items[3]))
}

func TestJoining(t *testing.T) {
	tests := []struct {
		joiner Joiner
		given  []int
		want   string
	}{
		{
			joiner: Joiner{},
			given:  []int{1, 2, 3},
			want:   "123",
		},
		{
			joiner: Joiner{Delimiter: ", "},
			given:  []int{1, 2, 3},
			want:   "1, 2, 3",
		},
		{
			joiner: Joiner{Delimiter: ", ", Prefix: "[", Suffix: "]"},
			given:  []int{1, 2, 3},
			want:   "[1, 2, 3]",
		},
		{
			joiner: Joiner{Delimiter: ", ", Prefix: "[", Suffix: "]"},
			given:  []int{},
			want:   "[]",
		},
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			is := is.New(t)

			is.Equal(collectAll(Joining(strconv.Itoa, test.joiner), test.given...), test.want)
		})
	}
}

func TestToSet(t *testing.T) {
	is := is.New(t)

	is.Equal(collectAll(ToSet[int](), 1, 2, 2, 3, 1), NewSet(1, 2, 3))
}

func TestToMap(t *testing.T) {
	is := is.New(t)

	result := collectAll(ToMap(category, sku), items...)

	is.Equal(result, map[string]string{
		"mobile": "13",
		"laptop": "17",
		"tablet": "16",
	})
}

func TestMapping(t *testing.T) {
	is := is.New(t)

	is.Equal(collectAll(Mapping(sku, ToSlice[string]()), items[:3]...), []string{"12", "13", "14"})
}

func TestFiltering(t *testing.T) {
	is := is.New(t)

	expensive := func(i item) bool {
		return i.price >= 100
	}

	is.Equal(collectAll(Filtering(expensive, Counting[item]()), items...), 4)
}

func TestCollectingAndThen(t *testing.T) {
	is := is.New(t)

	c := CollectingAndThen(Counting[int](), strconv.Itoa)

	is.Equal(collectAll(c, 1, 2, 3), "3")
}

func TestCollector_InvalidArguments(t *testing.T) {
	ctx := context.Background()

	tests := map[string]func() error{
		"folding value": func() error {
			_, err := Collect(ctx, []int{1}, Folding[int, int](nil, Addition[int]{}))
			return err
		},
		"folding accumulation": func() error {
			_, err := Collect(ctx, []int{1}, Folding[int, int](func(i int) int { return i }, nil))
			return err
		},
		"averaging": func() error {
			_, err := Collect(ctx, []int{1}, Averaging[int, int](nil))
			return err
		},
		"minimum": func() error {
			_, err := Collect(ctx, []int{1}, MinimumBy[int](nil))
			return err
		},
		"maximum by value": func() error {
			_, err := Collect(ctx, []int{1}, MaximumByValue[int, int](nil))
			return err
		},
		"joining": func() error {
			_, err := Collect(ctx, []int{1}, Joining[int](nil, Joiner{}))
			return err
		},
		"to map": func() error {
			_, err := Collect(ctx, []int{1}, ToMap[int, int, int](nil, nil))
			return err
		},
		"mapping downstream": func() error {
			_, err := Collect(ctx, []int{1}, Mapping(strconv.Itoa, Joining[string](nil, Joiner{})))
			return err
		},
		"filtering": func() error {
			_, err := Collect(ctx, []int{1}, Filtering(nil, Counting[int]()))
			return err
		},
		"collecting and then": func() error {
			_, err := Collect(ctx, []int{1}, CollectingAndThen[int, int, int, string](Counting[int](), nil))
			return err
		},
		"grouping key": func() error {
			_, err := Collect(ctx, []int{1}, GroupingBy[int, int](nil, Counting[int]()))
			return err
		},
		"partitioning downstream": func() error {
			_, err := Collect(ctx, []int{1}, PartitioningBy(func(int) bool { return true }, Collector[int, int, int]{}))
			return err
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			is.True(errors.Is(test(), ErrInvalidArgument))
		})
	}
}
