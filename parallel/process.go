package parallel

import (
	"context"
	"strconv"

	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"
)

// Process splits elements into at most threads chunks, applies perChunk to
// every chunk concurrently and returns combine applied to the partial results
// in chunk order.
//
// With empty input no chunk is dispatched and combine receives an empty
// slice, so it must return the identity of the reduction.
//
// perChunk receives a sub-slice aliasing elements; it must not modify it.
func Process[T any, P any, R any](
	ctx context.Context,
	r *Runner,
	threads int,
	elements []T,
	perChunk func(chunk []T) P,
	combine func(partials []P) R,
) (R, error) {
	var zero R
	if threads <= 0 {
		return zero, errorc.With(ErrInvalidArgument, errorc.String("threads", strconv.Itoa(threads)))
	}

	r = r.orDefault()
	chunks := Split(len(elements), threads)
	if len(chunks) == 0 {
		return combine([]P{}), nil
	}

	r.logger.Debug("dispatching chunks",
		zap.String("strategy", r.strategy.name()),
		zap.Int("threads", threads),
		zap.Int("chunks", len(chunks)),
		zap.Int("elements", len(elements)),
	)

	parts := partition(elements, chunks)
	partials := make([]P, len(parts))
	err := r.strategy.run(ctx, len(parts), func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		partials[i] = perChunk(parts[i])
		return nil
	})
	if err != nil {
		return zero, err
	}

	return combine(partials), nil
}
