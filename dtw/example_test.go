package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/dtw"
	"github.com/katalvlaran/seqalign/seqs"
)

// Scenario:
//
//	Two identical signals: the optimal warping path is the diagonal and
//	the distance is zero.
//
// Complexity: O(N·M) time, O(N·M) memory (ReturnPath=true).
func ExampleDTW() {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	a := seqs.Of(0.0, 1.0, 2.0)
	dist, path, err := dtw.DTW[float64](a, a, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.1f path=%v\n", dist, path)
	// Output:
	// distance=0.0 path=[{0 0} {1 1} {2 2}]
}

// Scenario:
//
//	A duplicated sample in the second signal. Free warping absorbs it;
//	a slope penalty makes the extra step visible in the distance.
func ExampleDTW_slopePenalty() {
	a := seqs.Of(1.0, 2.0, 3.0)
	b := seqs.Of(1.0, 1.0, 2.0, 3.0)

	opts := dtw.DefaultOptions()
	free, _, _ := dtw.DTW[float64](a, b, opts)

	opts.SlopePenalty = 0.5
	charged, _, _ := dtw.DTW[float64](a, b, opts)

	fmt.Printf("free=%.1f charged=%.1f\n", free, charged)
	// Output:
	// free=0.0 charged=0.5
}

// Scenario:
//
//	Long signals where only the distance matters: TwoRows storage keeps
//	memory at O(M).
func ExampleDTW_twoRows() {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows

	a := seqs.Of(0.0, 3.0, 1.0, 4.0)
	b := seqs.Of(0.0, 3.0, 3.0, 1.0, 4.0)
	dist, _, err := dtw.DTW[float64](a, b, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.1f\n", dist)
	// Output:
	// distance=0.0
}
