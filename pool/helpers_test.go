package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// poolConfig names a set of options every behavioural test should hold under.
type poolConfig struct {
	name string
	opts []Option
}

func getAllConfigs() []poolConfig {
	return []poolConfig{
		{name: "Default"},
		{name: "Named", opts: []Option{WithName("test-pool")}},
		{name: "CPUAffinity", opts: []Option{WithCPUAffinity()}},
		{name: "RateLimited", opts: []Option{WithRateLimit(1e6, 1000)}},
	}
}

// runConfigTest runs testFunc once per configuration against a fresh pool
// that is closed when the subtest ends.
func runConfigTest(t *testing.T, workers int, testFunc func(t *testing.T, p *Pool)) {
	t.Helper()
	for _, c := range getAllConfigs() {
		t.Run(c.name, func(t *testing.T) {
			testFunc(t, newTestPool(t, workers, c.opts...))
		})
	}
}

// newTestPool creates a pool and closes it on cleanup unless the test closed
// it already.
func newTestPool(t *testing.T, workers int, opts ...Option) *Pool {
	t.Helper()
	p, err := New(workers, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func intRange(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
