package benchmark_test

// ============================================================================
// Benchmark Configuration
// ============================================================================

const benchSeed = 42

// Arena sizes used across benchmarks.
var sizes = []int{1, 100, 10_000}

// payload is a medium-sized value so copies are not free.
type payload struct {
	id    int
	score float64
	tags  [4]uint32
}

func newPayload(i int) payload {
	return payload{id: i, score: float64(i) * 0.5}
}
