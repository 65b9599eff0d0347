package collutils

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"golang.org/x/exp/slices"
)

func TestFromSlice(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	ints := []int{}
	for i := range FromSlice([]int{1, 2, 3, 4, 5})(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestFromSlice_Cancel(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	ints := []int{}
	for i := range FromSlice([]int{1, 2, 3, 4, 5})(ctx, cancel) {
		ints = append(ints, i)

		if i == 2 {
			cancel(nil)
			break
		}
	}

	is.Equal(ints, []int{1, 2})
}

func TestFromSet(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	ints := []int{}
	for i := range FromSet(NewSet(3, 1, 2))(ctx, cancel) {
		ints = append(ints, i)
	}

	slices.Sort(ints)

	is.Equal(ints, []int{1, 2, 3})
}

func TestFromChannel(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	src := FromChannel(ch)

	ints := []int{}
	for i := range src(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3})

	defer func() {
		is.True(recover() != nil)
	}()

	src(ctx, cancel)
}
