package parallel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/parlist/pool"
)

type runnerConfig struct {
	name   string
	runner func(t *testing.T) *Runner
}

// getAllRunners returns one Runner per execution strategy.
func getAllRunners() []runnerConfig {
	return []runnerConfig{
		{
			name: "Goroutines",
			runner: func(*testing.T) *Runner {
				return New()
			},
		},
		{
			name: "Pool",
			runner: func(t *testing.T) *Runner {
				t.Helper()
				p, err := pool.New(4)
				require.NoError(t, err)
				t.Cleanup(func() { _ = p.Close() })
				return New(WithPool(p))
			},
		},
	}
}

// runRunnerTest runs testFunc once per execution strategy.
func runRunnerTest(t *testing.T, testFunc func(t *testing.T, r *Runner)) {
	t.Helper()
	for _, rc := range getAllRunners() {
		t.Run(rc.name, func(t *testing.T) {
			testFunc(t, rc.runner(t))
		})
	}
}

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
