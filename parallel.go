package collutils

import (
	"context"
	"errors"
	"sync"
)

// errWorkerPanic cancels the remaining workers after one of them panicked.
var errWorkerPanic = errors.New("parallel worker panicked")

// workerPanic holds the first value recovered from a panicking worker.
type workerPanic struct {
	once  sync.Once
	value any
	ok    bool
}

func (p *workerPanic) set(value any) {
	p.once.Do(func() {
		p.value = value
		p.ok = true
	})
}

// runChunks calls work for each index in [0, n) on its own goroutine and waits for all of them.
// The first error returned by work cancels the context passed to the others and is returned.
// If work panics, the panic is raised again on the calling goroutine once all workers are done.
func runChunks(ctx context.Context, n int, work func(ctx context.Context, i int) error) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	panicked := workerPanic{}

	grp := sync.WaitGroup{}
	grp.Add(n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer grp.Done()

			defer func() {
				if r := recover(); r != nil {
					panicked.set(r)
					cancel(errWorkerPanic)
				}
			}()

			if err := work(ctx, i); err != nil {
				cancel(err)
			}
		}(i)
	}

	grp.Wait()

	if panicked.ok {
		panic(panicked.value)
	}

	return context.Cause(ctx)
}
