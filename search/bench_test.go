package search_test

import (
	"testing"

	"github.com/dungenlab/dungen/search"
)

// BenchmarkSolve measures full runs on the varied fixture; each iteration
// uses a distinct seed so the search explores different topologies.
func BenchmarkSolve(b *testing.B) {
	origin, exit, pool := variedSet()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Solve(origin, exit, pool,
			search.WithMaxRooms(6),
			search.WithMaxSpan(6),
			search.WithMinPathLength(2),
			search.WithIterationBudget(200000),
			search.WithSeed(int64(i+1)),
		)
	}
}
