package ids_test

import (
	"testing"

	"github.com/hanzikit/radicalgebra/ids"
)

// benchmarkEnumerate runs Enumerate(n) repeatedly, optionally resetting
// the memo cache each iteration to measure cold-start cost.
func benchmarkEnumerate(b *testing.B, n int, cold bool) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if cold {
			ids.ResetCache()
		}
		if _, err := ids.Enumerate(n); err != nil {
			b.Fatalf("Enumerate(%d): %v", n, err)
		}
	}
}

// BenchmarkEnumerate_Warm4 measures the per-call deep copy once T(4) is cached.
func BenchmarkEnumerate_Warm4(b *testing.B) { benchmarkEnumerate(b, 4, false) }

// BenchmarkEnumerate_Cold4 measures full recomputation of T(4) (5100 shapes).
func BenchmarkEnumerate_Cold4(b *testing.B) { benchmarkEnumerate(b, 4, true) }

// BenchmarkEnumerate_Warm5 measures the per-call deep copy of T(5) (144212 shapes).
func BenchmarkEnumerate_Warm5(b *testing.B) { benchmarkEnumerate(b, 5, false) }

// BenchmarkBuildString_Rank3 serializes all 202 3-component shapes per iteration.
func BenchmarkBuildString_Rank3(b *testing.B) {
	shapes, err := ids.Enumerate(3)
	if err != nil {
		b.Fatal(err)
	}
	radicals := []rune("金木水")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, s := range shapes {
			if _, err = ids.BuildString(s, radicals); err != nil {
				b.Fatal(err)
			}
		}
	}
}
