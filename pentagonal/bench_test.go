package pentagonal_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/figural/pentagonal"
	"github.com/katalvlaran/figural/render"
)

// BenchmarkIth measures the closed-form generator.
func BenchmarkIth(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := pentagonal.Ith(10_000_000); err != nil {
			b.Fatalf("Ith failed: %v", err)
		}
	}
}

// BenchmarkIsPentagonal measures the inverse-formula membership test
// at a large magnitude, where the re-substitution guard matters.
func BenchmarkIsPentagonal(b *testing.B) {
	v, err := pentagonal.Ith(10_000_000)
	if err != nil {
		b.Fatalf("setup Ith failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !pentagonal.IsPentagonal(v) {
			b.Fatal("expected member")
		}
	}
}

// BenchmarkArange_1e6 measures range generation for a million terms.
func BenchmarkArange_1e6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := pentagonal.Arange(1_000_000); err != nil {
			b.Fatalf("Arange failed: %v", err)
		}
	}
}

// BenchmarkDrawIth_TikZ measures geometry plus text encoding for a
// mid-size arrangement.
func BenchmarkDrawIth_TikZ(b *testing.B) {
	opts := render.DefaultOptions()
	opts.TikZ = true
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := pentagonal.DrawIth(io.Discard, 30, opts); err != nil {
			b.Fatalf("DrawIth failed: %v", err)
		}
	}
}
