package pool

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PreservesInputOrder(t *testing.T) {
	runConfigTest(t, 4, func(t *testing.T, p *Pool) {
		elements := intRange(200)

		results, err := Map(context.Background(), p, elements, func(n int) int {
			// Scramble completion order.
			time.Sleep(time.Duration(rand.Intn(200)) * time.Microsecond)
			return n * 2
		})
		require.NoError(t, err)

		want := make([]int, len(elements))
		for i, n := range elements {
			want[i] = n * 2
		}
		if diff := cmp.Diff(want, results); diff != "" {
			t.Errorf("Map results mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestMap_EmptyInput(t *testing.T) {
	p := newTestPool(t, 2)

	results, err := Map(context.Background(), p, []string{}, func(s string) int { return len(s) })
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	assert.Zero(t, p.Stats().Submitted)
}

func TestMap_SingleElement(t *testing.T) {
	p := newTestPool(t, 4)

	results, err := Map(context.Background(), p, []int{21}, func(n int) int { return n * 2 })
	require.NoError(t, err)
	assert.Equal(t, []int{42}, results)
}

func TestMap_NilPool(t *testing.T) {
	_, err := Map(context.Background(), nil, []int{1}, func(n int) int { return n })
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMap_ClosedPool(t *testing.T) {
	p := newTestPool(t, 2)
	require.NoError(t, p.Close())

	_, err := Map(context.Background(), p, []int{1, 2, 3}, func(n int) int { return n })
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestMapErr_FailsFast(t *testing.T) {
	t.Run("returns the element error", func(t *testing.T) {
		p := newTestPool(t, 4)
		boom := errors.New("boom")

		results, err := MapErr(context.Background(), p, intRange(10), func(_ context.Context, n int) (int, error) {
			if n == 3 {
				return 0, boom
			}
			return n, nil
		})
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "element 3")
		assert.Nil(t, results)
	})

	t.Run("converts panics", func(t *testing.T) {
		p := newTestPool(t, 4)

		_, err := Map(context.Background(), p, intRange(10), func(n int) int {
			if n == 7 {
				panic("bad element")
			}
			return n
		})
		require.ErrorIs(t, err, ErrTaskPanicked)
		assert.Contains(t, err.Error(), "bad element")

		// The worker that ran the panicking task must still be serving.
		results, err := Map(context.Background(), p, intRange(8), func(n int) int { return n })
		require.NoError(t, err)
		assert.Equal(t, intRange(8), results)
	})

	t.Run("skips tasks that have not started", func(t *testing.T) {
		// A single worker runs tasks strictly in order, so every task after
		// the failing one observes the failure before running.
		p := newTestPool(t, 1)
		var executed atomic.Int32

		_, err := MapErr(context.Background(), p, intRange(100), func(_ context.Context, n int) (int, error) {
			executed.Add(1)
			if n == 0 {
				return 0, errors.New("first fails")
			}
			return n, nil
		})
		require.Error(t, err)
		assert.Equal(t, int32(1), executed.Load())
		assert.Equal(t, int64(100), p.Stats().Submitted)
	})

	t.Run("cancels the batch context for running siblings", func(t *testing.T) {
		p := newTestPool(t, 2)
		boom := errors.New("boom")
		waiting := make(chan struct{})

		_, err := MapErr(context.Background(), p, []int{0, 1}, func(ctx context.Context, n int) (int, error) {
			if n == 0 {
				close(waiting)
				select {
				case <-ctx.Done():
					return 0, ctx.Err()
				case <-time.After(5 * time.Second):
					return 0, errors.New("batch context was not cancelled")
				}
			}
			<-waiting
			return 0, boom
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestMap_Interrupted(t *testing.T) {
	t.Run("cancelled while waiting", func(t *testing.T) {
		p := newTestPool(t, 1)
		release := make(chan struct{})
		var executed atomic.Int32

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			_, err := Map(ctx, p, intRange(5), func(n int) int {
				<-release
				executed.Add(1)
				return n
			})
			errCh <- err
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			require.ErrorIs(t, err, ErrInterrupted)
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("Map did not return after cancellation")
		}

		// Already queued tasks still run to completion.
		close(release)
		require.NoError(t, p.Close())
		assert.Equal(t, int32(5), executed.Load())
	})

	t.Run("cancelled before dispatch", func(t *testing.T) {
		p := newTestPool(t, 2)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Map(ctx, p, intRange(5), func(n int) int { return n })
		require.ErrorIs(t, err, ErrInterrupted)
		assert.Zero(t, p.Stats().Submitted)
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		p := newTestPool(t, 1)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := Map(ctx, p, intRange(3), func(n int) int {
			time.Sleep(50 * time.Millisecond)
			return n
		})
		require.ErrorIs(t, err, ErrInterrupted)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestMap_ConcurrentBatchesDoNotInterfere(t *testing.T) {
	runConfigTest(t, 4, func(t *testing.T, p *Pool) {
		const (
			batches = 8
			size    = 300
		)

		var wg sync.WaitGroup
		wg.Add(batches)
		for b := range batches {
			go func() {
				defer wg.Done()
				sentinel := (b + 1) * 1_000_000

				results, err := Map(context.Background(), p, intRange(size), func(n int) int {
					return sentinel + n
				})
				if !assert.NoError(t, err) {
					return
				}
				for i, v := range results {
					if v != sentinel+i {
						t.Errorf("batch %d slot %d = %d, want %d", b, i, v, sentinel+i)
						return
					}
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(batches*size), p.Stats().Submitted)
	})
}

func TestMap_PassesContextValues(t *testing.T) {
	type key struct{}
	p := newTestPool(t, 2)
	ctx := context.WithValue(context.Background(), key{}, "trace-1")

	results, err := MapErr(ctx, p, intRange(3), func(ctx context.Context, _ int) (string, error) {
		v, _ := ctx.Value(key{}).(string)
		return v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"trace-1", "trace-1", "trace-1"}, results)
}
