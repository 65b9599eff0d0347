package collutils

import "runtime"

// Execution selects how an operation traverses its input.
type Execution int

const (
	// Sequential traverses the input in order on the calling goroutine.
	Sequential Execution = iota

	// Parallel splits the input into disjoint chunks that are processed concurrently.
	Parallel
)

// Config configures how an operation is executed.
type Config struct {
	// Execution selects sequential or parallel execution.
	Execution Execution

	// Workers is the maximum number of goroutines used for parallel execution.
	// Values less than 1 mean runtime.GOMAXPROCS(0).
	Workers int

	// MinParallel is the minimum number of elements for parallel execution to be used.
	// Smaller inputs are processed sequentially even if Execution is Parallel.
	MinParallel int
}

// Option configures a Config.
type Option func(cfg *Config)

// WithExecution sets the execution mode.
func WithExecution(execution Execution) Option {
	return func(cfg *Config) {
		cfg.Execution = execution
	}
}

// WithParallel enables parallel execution.
func WithParallel() Option {
	return WithExecution(Parallel)
}

// WithWorkers sets the maximum number of goroutines used for parallel execution.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		cfg.Workers = workers
	}
}

// WithMinParallel sets the minimum number of elements for parallel execution to be used.
func WithMinParallel(min int) Option {
	return func(cfg *Config) {
		cfg.MinParallel = min
	}
}

func newConfig(opts ...Option) Config {
	cfg := Config{
		Execution:   Sequential,
		MinParallel: 1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.Workers < 1 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return cfg
}

// parallel returns true if an input of size elements should be processed in parallel.
func (c Config) parallel(size int) bool {
	return c.Execution == Parallel && c.Workers > 1 && size > 1 && size >= c.MinParallel
}

// chunks splits items into at most workers contiguous chunks of roughly equal size.
func chunks[T any](items []T, workers int) [][]T {
	if workers > len(items) {
		workers = len(items)
	}

	if workers < 1 {
		return nil
	}

	size := (len(items) + workers - 1) / workers

	result := make([][]T, 0, workers)

	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}

		result = append(result, items[start:end])
	}

	return result
}
