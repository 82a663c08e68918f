package parallel

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Join concatenates the default string form (fmt.Sprint) of every element,
// without a separator. Empty input yields "".
func Join[T any](ctx context.Context, r *Runner, threads int, elements []T) (string, error) {
	return Process(ctx, r, threads, elements,
		func(chunk []T) string {
			return strings.Join(lo.Map(chunk, func(v T, _ int) string {
				return fmt.Sprint(v)
			}), "")
		},
		func(parts []string) string {
			return strings.Join(parts, "")
		},
	)
}

// Filter returns the elements matching predicate, in input order.
// Empty input yields an empty, non-nil slice.
func Filter[T any](ctx context.Context, r *Runner, threads int, elements []T, predicate func(T) bool) ([]T, error) {
	return Process(ctx, r, threads, elements,
		func(chunk []T) []T {
			return lo.Filter(chunk, func(v T, _ int) bool {
				return predicate(v)
			})
		},
		flatten[T],
	)
}

// Map returns f applied to every element, in input order.
// Empty input yields an empty, non-nil slice.
func Map[T any, R any](ctx context.Context, r *Runner, threads int, elements []T, f func(T) R) ([]R, error) {
	return Process(ctx, r, threads, elements,
		func(chunk []T) []R {
			return lo.Map(chunk, func(v T, _ int) R {
				return f(v)
			})
		},
		flatten[R],
	)
}

// Maximum returns the greatest element under cmp, which follows the
// cmp.Compare convention. Among equal elements the earliest one wins.
// The second result is false for empty input.
func Maximum[T any](ctx context.Context, r *Runner, threads int, elements []T, cmp func(a, b T) int) (T, bool, error) {
	greater := func(a, b T) bool { return cmp(a, b) > 0 }
	return extremum(ctx, r, threads, elements, greater)
}

// Minimum returns the least element under cmp, which follows the cmp.Compare
// convention. Among equal elements the earliest one wins.
// The second result is false for empty input.
func Minimum[T any](ctx context.Context, r *Runner, threads int, elements []T, cmp func(a, b T) int) (T, bool, error) {
	less := func(a, b T) bool { return cmp(a, b) < 0 }
	return extremum(ctx, r, threads, elements, less)
}

// All reports whether every element matches predicate. Empty input yields true.
func All[T any](ctx context.Context, r *Runner, threads int, elements []T, predicate func(T) bool) (bool, error) {
	return Process(ctx, r, threads, elements,
		func(chunk []T) bool {
			return lo.EveryBy(chunk, predicate)
		},
		func(parts []bool) bool {
			return !lo.Contains(parts, false)
		},
	)
}

// Any reports whether at least one element matches predicate. Empty input
// yields false.
func Any[T any](ctx context.Context, r *Runner, threads int, elements []T, predicate func(T) bool) (bool, error) {
	return Process(ctx, r, threads, elements,
		func(chunk []T) bool {
			return lo.SomeBy(chunk, predicate)
		},
		func(parts []bool) bool {
			return lo.Contains(parts, true)
		},
	)
}

func flatten[T any](parts [][]T) []T {
	out := lo.Flatten(parts)
	if out == nil {
		return []T{}
	}
	return out
}

// optional is a per-chunk extremum; an empty chunk has none.
type optional[T any] struct {
	value T
	ok    bool
}

// extremum returns the element preferred by better, keeping the earliest
// among equals. lo.MaxBy replaces its running pick only when better holds.
func extremum[T any](ctx context.Context, r *Runner, threads int, elements []T, better func(a, b T) bool) (T, bool, error) {
	best, err := Process(ctx, r, threads, elements,
		func(chunk []T) optional[T] {
			if len(chunk) == 0 {
				return optional[T]{}
			}
			return optional[T]{value: lo.MaxBy(chunk, better), ok: true}
		},
		func(parts []optional[T]) optional[T] {
			present := lo.Filter(parts, func(p optional[T], _ int) bool {
				return p.ok
			})
			if len(present) == 0 {
				return optional[T]{}
			}
			return lo.MaxBy(present, func(a, b optional[T]) bool {
				return better(a.value, b.value)
			})
		},
	)
	return best.value, best.ok, err
}
