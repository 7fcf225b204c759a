package spline

import (
	"context"
	"fmt"
	"runtime"

	"github.com/remeh/sizedwaitgroup"
)

// ParallelConfig controls batch evaluation in EvaluateParallel.
// The zero value selects defaults for every field.
type ParallelConfig struct {
	// Workers is the maximum number of goroutines evaluating at once.
	// Zero uses runtime.GOMAXPROCS(0).
	Workers int

	// ChunkSize is the number of positions handed to a worker at a time.
	// Zero uses 4096.
	ChunkSize int
}

// Validate checks if the configuration is valid.
func (c *ParallelConfig) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk size must not be negative", ErrInvalidConfig)
	}
	return nil
}

// withDefaults returns a copy with zero fields replaced by defaults.
func (c ParallelConfig) withDefaults() ParallelConfig {
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = defaultChunkSize
	}
	return c
}

// EvaluateParallel evaluates the spline at every position in ts using a
// bounded pool of goroutines. A nil cfg uses defaults.
//
// The result is identical to calling Evaluate for each position in order.
// Batches spanning fewer than two chunks are evaluated on the calling
// goroutine. When ctx is cancelled no further chunks are scheduled and
// ctx.Err() is returned once in-flight chunks finish.
func (s *Spline) EvaluateParallel(ctx context.Context, ts []float64, cfg *ParallelConfig) ([]float64, error) {
	var c ParallelConfig
	if cfg != nil {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		c = *cfg
	}
	c = c.withDefaults()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]float64, len(ts))

	// Sequential path for small batches or a single worker
	chunks := (len(ts) + c.ChunkSize - 1) / c.ChunkSize
	if chunks < minParallelSize || c.Workers == 1 {
		s.EvaluateInto(out, ts)
		return out, nil
	}

	swg := sizedwaitgroup.New(c.Workers)
	for start := 0; start < len(ts); start += c.ChunkSize {
		if ctx.Err() != nil {
			break
		}
		end := min(start+c.ChunkSize, len(ts))

		swg.Add()
		go func(lo, hi int) {
			defer swg.Done()
			s.EvaluateInto(out[lo:hi], ts[lo:hi])
		}(start, end)
	}
	swg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
