package quadrature

import (
	"math"
	"testing"
)

func BenchmarkIntegrateFinite(b *testing.B) {
	in, _ := New(DefaultConfig())
	f := func(x float64) float64 { return math.Sin(x) * math.Exp(-x) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = in.Integrate(f, 0, 10)
	}
}

func BenchmarkIntegrateSemiInfinite(b *testing.B) {
	in, _ := New(DefaultConfig())
	f := func(x float64) float64 {
		if x == 0 {
			return 0
		}
		return x * x * x / math.Expm1(x)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = in.Integrate(f, 0, math.Inf(1))
	}
}
