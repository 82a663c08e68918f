package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/utkarsh5026/parlist/parallel"
)

// operation runs one parallel operation over data and returns its value in a
// form that can be compared across strategies.
type operation struct {
	name string
	run  func(ctx context.Context, r *parallel.Runner, threads int, data []int) (any, error)
}

type extreme struct {
	Value int
	OK    bool
}

func operations() []operation {
	even := func(n int) bool { return n%2 == 0 }

	return []operation{
		{"join", func(ctx context.Context, r *parallel.Runner, threads int, data []int) (any, error) {
			return parallel.Join(ctx, r, threads, data)
		}},
		{"filter", func(ctx context.Context, r *parallel.Runner, threads int, data []int) (any, error) {
			return parallel.Filter(ctx, r, threads, data, even)
		}},
		{"map", func(ctx context.Context, r *parallel.Runner, threads int, data []int) (any, error) {
			return parallel.Map(ctx, r, threads, data, func(n int) int64 { return int64(n) * int64(n) })
		}},
		{"maximum", func(ctx context.Context, r *parallel.Runner, threads int, data []int) (any, error) {
			v, ok, err := parallel.Maximum(ctx, r, threads, data, cmp.Compare[int])
			return extreme{v, ok}, err
		}},
		{"minimum", func(ctx context.Context, r *parallel.Runner, threads int, data []int) (any, error) {
			v, ok, err := parallel.Minimum(ctx, r, threads, data, cmp.Compare[int])
			return extreme{v, ok}, err
		}},
		{"all", func(ctx context.Context, r *parallel.Runner, threads int, data []int) (any, error) {
			return parallel.All(ctx, r, threads, data, func(n int) bool { return n > -1_000_001 })
		}},
		{"any", func(ctx context.Context, r *parallel.Runner, threads int, data []int) (any, error) {
			return parallel.Any(ctx, r, threads, data, func(n int) bool { return n == 0 })
		}},
	}
}

// result is the outcome of one operation at one thread count on both strategies.
type result struct {
	operation string
	threads   int
	pooled    time.Duration
	direct    time.Duration
	match     bool
}

func timed(ctx context.Context, op operation, r *parallel.Runner, threads int, data []int) (any, time.Duration, error) {
	start := time.Now()
	v, err := op.run(ctx, r, threads, data)
	if err != nil {
		return nil, 0, fmt.Errorf("%s on %s with %d threads: %w", op.name, r.Strategy(), threads, err)
	}
	return v, time.Since(start), nil
}

// runScenarios runs every operation with every thread count on both runners.
// progress is called after each scenario with the number completed so far.
func runScenarios(
	ctx context.Context,
	pooled, direct *parallel.Runner,
	ops []operation,
	threads []int,
	data []int,
	progress func(done int, r result),
) ([]result, error) {
	results := make([]result, 0, len(ops)*len(threads))

	for _, t := range threads {
		for _, op := range ops {
			pv, pd, err := timed(ctx, op, pooled, t, data)
			if err != nil {
				return nil, err
			}
			dv, dd, err := timed(ctx, op, direct, t, data)
			if err != nil {
				return nil, err
			}

			r := result{
				operation: op.name,
				threads:   t,
				pooled:    pd,
				direct:    dd,
				match:     gocmp.Equal(pv, dv),
			}
			results = append(results, r)
			if progress != nil {
				progress(len(results), r)
			}
		}
	}
	return results, nil
}

func countMismatches(results []result) int {
	n := 0
	for _, r := range results {
		if !r.match {
			n++
		}
	}
	return n
}
