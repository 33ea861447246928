package editdist_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/editdist"
	"github.com/katalvlaran/seqalign/seqs"
)

// benchmarkDistance runs Distance on two synthetic integer sequences of
// lengths n and m using opts. The sequences disagree on every fourth
// element so bounded runs stay busy without aborting.
func benchmarkDistance(b *testing.B, n, m int, opts editdist.Options[int]) {
	a := make(seqs.Slice[int], n)
	bSeq := make(seqs.Slice[int], m)
	for i := 0; i < n; i++ {
		a[i] = i
	}
	for j := 0; j < m; j++ {
		bSeq[j] = j
		if j%4 == 0 {
			bSeq[j] = -j
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := editdist.Distance(a, bSeq, opts)
		if err != nil && err != editdist.ErrBoundExceeded {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

// BenchmarkDistance_UnboundedSmall benchmarks the full band on 100×100.
func BenchmarkDistance_UnboundedSmall(b *testing.B) {
	benchmarkDistance(b, 100, 100, editdist.DefaultOptions[int]())
}

// BenchmarkDistance_UnboundedMedium benchmarks the full band on 500×500.
func BenchmarkDistance_UnboundedMedium(b *testing.B) {
	benchmarkDistance(b, 500, 500, editdist.DefaultOptions[int]())
}

// BenchmarkDistance_BoundedMedium benchmarks a narrow band: the bound
// keeps the fill to O(k·N) cells.
func BenchmarkDistance_BoundedMedium(b *testing.B) {
	opts := editdist.DefaultOptions[int]()
	opts.MaxDistance = 8
	benchmarkDistance(b, 500, 500, opts)
}

// BenchmarkDistance_Transpositions benchmarks the Damerau variant.
func BenchmarkDistance_Transpositions(b *testing.B) {
	opts := editdist.DefaultOptions[int]()
	opts.Transpositions = true
	benchmarkDistance(b, 100, 100, opts)
}

// BenchmarkDistance_WithScript benchmarks distance plus backtrace.
func BenchmarkDistance_WithScript(b *testing.B) {
	opts := editdist.DefaultOptions[int]()
	opts.ReturnScript = true
	benchmarkDistance(b, 100, 100, opts)
}
