package triangular_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/figural/render"
	"github.com/katalvlaran/figural/triangular"
)

// BenchmarkIth measures the closed-form generator.
func BenchmarkIth(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := triangular.Ith(10_000_000); err != nil {
			b.Fatalf("Ith failed: %v", err)
		}
	}
}

// BenchmarkIsTriangular measures the inverse-formula membership test
// at a large magnitude, where the re-substitution guard matters.
func BenchmarkIsTriangular(b *testing.B) {
	v, err := triangular.Ith(10_000_000)
	if err != nil {
		b.Fatalf("setup Ith failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !triangular.IsTriangular(v) {
			b.Fatal("expected member")
		}
	}
}

// BenchmarkArange_1e6 measures range generation for a million terms,
// the cumulative-sum fast path.
func BenchmarkArange_1e6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := triangular.Arange(1_000_000); err != nil {
			b.Fatalf("Arange failed: %v", err)
		}
	}
}

// BenchmarkIsTriangularAll_1e5 measures vectorized membership over the
// first 10^5 terms.
func BenchmarkIsTriangularAll_1e5(b *testing.B) {
	vs, err := triangular.Arange(100_000)
	if err != nil {
		b.Fatalf("setup Arange failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = triangular.IsTriangularAll(vs)
	}
}

// BenchmarkDrawIth_TikZ measures geometry plus text encoding for a
// mid-size arrangement.
func BenchmarkDrawIth_TikZ(b *testing.B) {
	opts := render.DefaultOptions()
	opts.TikZ = true
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := triangular.DrawIth(io.Discard, 50, opts); err != nil {
			b.Fatalf("DrawIth failed: %v", err)
		}
	}
}
