package dtw

import (
	"math"

	"github.com/katalvlaran/seqalign/seqs"
)

// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary in pace
//	by finding an optimal "warping path". Elementwise cost is injected,
//	so elements can be samples, tokens, feature vectors — anything a
//	Cost function can compare.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = a.Len(), m = b.Len(). Allocate the (n+1)×(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i = 1..n
//     D[0][j] = +∞ for j = 1..m
//  3. For i = 1..n, j = 1..m (and |i−j| ≤ Window, if constrained):
//     cost  = Cost(a[i-1], b[j-1])
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     match = D[i-1][j-1]
//     D[i][j] = cost + min(ins, del, match)
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n, m) to (0, 0) following the
//     predecessor that reproduces the stored value, vertical first,
//     then horizontal, then diagonal.
//
// Returns (distance, path, error); path is nil unless ReturnPath.
//
// Errors:
//   - ErrEmptyInput      — either input is empty.
//   - ErrNilCost         — Options.Cost is nil.
//   - ErrBadWindow       — Window < Unlimited.
//   - ErrPathNeedsMatrix — ReturnPath=true with MemoryMode=TwoRows.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows)
func DTW[E any](a, b seqs.Sequence[E], opts Options[E]) (distance float64, path []Coord, err error) {
	n, m := a.Len(), b.Len()
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	if opts.Cost == nil {
		return 0, nil, ErrNilCost
	}
	if opts.Window < Unlimited {
		return 0, nil, ErrBadWindow
	}
	if opts.ReturnPath && opts.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	if opts.MemoryMode == TwoRows {
		return dtwTwoRows(a, b, opts), nil, nil
	}

	dp := fillFull(a, b, opts)
	distance = dp[n][m]
	if opts.ReturnPath {
		path = backtrack(a, b, dp, opts)
	}

	return distance, path, nil
}

// fillFull builds the complete (n+1)×(m+1) DP matrix.
func fillFull[E any](a, b seqs.Sequence[E], opts Options[E]) [][]float64 {
	n, m := a.Len(), b.Len()
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outsideWindow(i, j, opts.Window) {
				dp[i][j] = inf
				continue
			}
			cost := opts.Cost(a.At(i-1), b.At(j-1))
			ins := dp[i-1][j] + opts.SlopePenalty
			del := dp[i][j-1] + opts.SlopePenalty
			match := dp[i-1][j-1]
			dp[i][j] = cost + min3(ins, del, match)
		}
	}

	return dp
}

// dtwTwoRows computes the distance with rolling two-row storage.
func dtwTwoRows[E any](a, b seqs.Sequence[E], opts Options[E]) float64 {
	n, m := a.Len(), b.Len()
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outsideWindow(i, j, opts.Window) {
				curr[j] = inf
				continue
			}
			cost := opts.Cost(a.At(i-1), b.At(j-1))
			ins := prev[j] + opts.SlopePenalty
			del := curr[j-1] + opts.SlopePenalty
			match := prev[j-1]
			curr[j] = cost + min3(ins, del, match)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack recovers one optimal warping path from the full matrix,
// vertical predecessor first, then horizontal, then diagonal.
func backtrack[E any](a, b seqs.Sequence[E], dp [][]float64, opts Options[E]) []Coord {
	n, m := a.Len(), b.Len()

	path := make([]Coord, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 0 {
			j--
			continue
		}
		if j == 0 {
			i--
			continue
		}
		base := dp[i][j] - opts.Cost(a.At(i-1), b.At(j-1))
		switch {
		case dp[i-1][j]+opts.SlopePenalty == base:
			i--
		case dp[i][j-1]+opts.SlopePenalty == base:
			j--
		default:
			i--
			j--
		}
	}

	// Built back-to-front; reverse in place to reading order.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// outsideWindow reports whether cell (i, j) violates the Sakoe–Chiba band.
func outsideWindow(i, j, window int) bool {
	if window == Unlimited {
		return false
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d > window
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
