package editdist

import "github.com/katalvlaran/seqalign/seqs"

// Distance — bounded edit distance (Ukkonen's banded algorithm)
//
// Description:
//
//	Distance computes the minimal number of single-element edits turning
//	a into b: insertions, deletions, substitutions, and — when
//	Transpositions is enabled — swaps of two adjacent elements, each at
//	cost 1. With a MaxDistance bound only a diagonal band of the matrix
//	is filled, and the search aborts as soon as an entire column exceeds
//	the bound.
//
// Algorithm Outline:
//  1. Let n = a.Len(), m = b.Len(), k = MaxDistance (n+m when Unbounded).
//     If |n−m| > k the distance provably exceeds the bound: return
//     ErrBoundExceeded without allocating anything.
//  2. Allocate the (n+1)×(m+1) matrix (script calls) or three rolling
//     columns (distance-only), every cell set to the infinity sentinel
//     n+m+1; boundary dist[i][0] = i, dist[0][j] = j.
//  3. Half-band p = ⌈(k−|n−m|)/2⌉. For each column j = 1..m fill only
//     rows i in [lo(j), hi(j)], where
//     lo(j) = max(1, j − max(0, m−n) − p, p1)
//     hi(j) = min(n, j + max(0, n−m) + p)
//     and p1 is the first row of the previous column still ≤ k. Cells
//     never filled keep the infinity sentinel and are skipped by min.
//  4. Recurrence inside the band:
//     dist[i][j] = min(dist[i-1][j]+1,          // delete a[i-1]
//     dist[i][j-1]+1,                           // insert b[j-1]
//     dist[i-1][j-1] + (0 if equal else 1),     // match / substitute
//     dist[i-2][j-2]+1)                         // adjacent transposition,
//     the last only when Transpositions is set and
//     a[i-2]==b[j-1] && a[i-1]==b[j-2].
//  5. Track the first row (p1) of the column with a value ≤ k; if the
//     column has none, abort with ErrBoundExceeded.
//  6. The result is dist[n][m] when ≤ k, else ErrBoundExceeded.
//  7. If ReturnScript, backtrack from (n, m) preferring, in order, the
//     vertical (deletion), horizontal (insertion), diagonal
//     (match/substitution), then transposition predecessor that
//     reproduces the stored value; emit one Edit per step (two for a
//     transposition) and reverse.
//
// The tie-breaking order is part of the contract: for fixed inputs and
// options the returned script is always the same.
//
// Returns (distance, script, error); script is nil unless ReturnScript.
//
// Errors:
//   - ErrBoundExceeded — the distance exceeds MaxDistance (normal outcome).
//   - ErrBadBound      — MaxDistance < Unbounded.
//   - ErrNilEquals     — Options.Eq is nil.
//
// Complexity:
//
//	Time   = O(k·min(n,m)) bounded, O(n·m) unbounded
//	Memory = O(n) distance-only, O(n·m) with ReturnScript
func Distance[E any](a, b seqs.Sequence[E], opts Options[E]) (int, []Edit[E], error) {
	// Fail fast on contract violations, before any allocation.
	if opts.Eq == nil {
		return 0, nil, ErrNilEquals
	}
	if opts.MaxDistance < Unbounded {
		return 0, nil, ErrBadBound
	}

	n, m := a.Len(), b.Len()
	diff := n - m
	if diff < 0 {
		diff = -diff
	}

	k := opts.MaxDistance
	if k == Unbounded {
		k = n + m
	} else if diff > k {
		// The length difference alone needs more than k edits.
		return 0, nil, ErrBoundExceeded
	}

	if !opts.ReturnScript {
		d, err := scoreBand(a, b, opts, k)
		if err != nil {
			return 0, nil, err
		}

		return d, nil, nil
	}

	dist, err := fillBand(a, b, opts, k)
	if err != nil {
		return 0, nil, err
	}
	if dist[n][m] > k {
		return 0, nil, ErrBoundExceeded
	}

	return dist[n][m], backtrace(a, b, dist, opts), nil
}

// scoreBand computes the distance with three rolling columns instead of
// the full matrix; the recurrence reads back at most two columns
// (transpositions). The band bounds never move backwards from one column
// to the next, so resetting a reused buffer's read window to the
// infinity sentinel keeps every out-of-band read exact.
func scoreBand[E any](a, b seqs.Sequence[E], opts Options[E], k int) (int, error) {
	n, m := a.Len(), b.Len()
	inf := n + m + 1

	prev2 := make([]int, n+1) // column j-2
	prev := make([]int, n+1)  // column j-1
	curr := make([]int, n+1)  // column j
	for i := range prev2 {
		prev2[i] = inf
		curr[i] = inf
	}
	for i := 0; i <= n; i++ {
		prev[i] = i
	}
	if m == 0 {
		// The caller already checked n = |n-m| ≤ k.
		return n, nil
	}

	diff := n - m
	if diff < 0 {
		diff = -diff
	}
	p := (k - diff + 1) / 2
	above := maxInt(0, m-n)
	below := maxInt(0, n-m)

	p1 := 0
	final := inf
	for j := 1; j <= m; j++ {
		lo := maxInt(maxInt(1, j-above-p), p1)
		hi := minInt(n, j+below+p)

		// Stale values from two columns ago must not leak into the band:
		// reset the rows the next two columns may read.
		for i := maxInt(1, lo-2); i <= minInt(n, hi+1); i++ {
			curr[i] = inf
		}
		curr[0] = j

		first := -1
		if j <= k {
			first = 0
		}
		for i := lo; i <= hi; i++ {
			cost := 1
			if opts.Eq(a.At(i-1), b.At(j-1)) {
				cost = 0
			}
			best := prev[i-1] + cost
			if v := curr[i-1] + 1; v < best {
				best = v
			}
			if v := prev[i] + 1; v < best {
				best = v
			}
			if opts.Transpositions && i >= 2 && j >= 2 &&
				opts.Eq(a.At(i-2), b.At(j-1)) && opts.Eq(a.At(i-1), b.At(j-2)) {
				if v := prev2[i-2] + 1; v < best {
					best = v
				}
			}
			curr[i] = best

			if best <= k && first < 0 {
				first = i
			}
		}

		if first < 0 {
			// No reachable cell within the bound remains: the true
			// distance exceeds k on every path through this column.
			return 0, ErrBoundExceeded
		}
		p1 = first

		if j == m {
			final = curr[n]
		}
		prev2, prev, curr = prev, curr, prev2
	}
	if final > k {
		return 0, ErrBoundExceeded
	}

	return final, nil
}

// fillBand fills the diagonal band of the distance matrix column by
// column, aborting with ErrBoundExceeded once no cell of a column stays
// within k. Cells outside the band keep the infinity sentinel.
func fillBand[E any](a, b seqs.Sequence[E], opts Options[E], k int) ([][]int, error) {
	n, m := a.Len(), b.Len()
	inf := n + m + 1

	dist := make([][]int, n+1)
	for i := range dist {
		row := make([]int, m+1)
		for j := range row {
			row[j] = inf
		}
		dist[i] = row
	}
	for i := 0; i <= n; i++ {
		dist[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dist[0][j] = j
	}

	diff := n - m
	if diff < 0 {
		diff = -diff
	}
	// Half-band width beyond the mandatory length-difference diagonals.
	p := (k - diff + 1) / 2
	// Band offsets: which diagonals a ≤k path may visit depends on which
	// sequence is longer.
	above := maxInt(0, m-n) // rows above the target diagonal, per column
	below := maxInt(0, n-m) // rows below it

	p1 := 0 // first row of the previous column with a value ≤ k
	for j := 1; j <= m; j++ {
		lo := maxInt(maxInt(1, j-above-p), p1)
		hi := minInt(n, j+below+p)

		// Row 0 is boundary: dist[0][j] = j counts toward the band
		// whenever it is still within the bound.
		first := -1
		if j <= k {
			first = 0
		}

		for i := lo; i <= hi; i++ {
			cost := 1
			if opts.Eq(a.At(i-1), b.At(j-1)) {
				cost = 0
			}
			best := dist[i-1][j-1] + cost
			if v := dist[i-1][j] + 1; v < best {
				best = v
			}
			if v := dist[i][j-1] + 1; v < best {
				best = v
			}
			if opts.Transpositions && i >= 2 && j >= 2 &&
				opts.Eq(a.At(i-2), b.At(j-1)) && opts.Eq(a.At(i-1), b.At(j-2)) {
				if v := dist[i-2][j-2] + 1; v < best {
					best = v
				}
			}
			dist[i][j] = best

			if best <= k && first < 0 {
				first = i
			}
		}

		if first < 0 {
			// No reachable cell within the bound remains: the true
			// distance exceeds k on every path through this column.
			return nil, ErrBoundExceeded
		}
		p1 = first
	}

	return dist, nil
}

// backtrace walks dist from (n, m) to (0, 0), preferring deletion, then
// insertion, then match/substitution, then transposition, and returns
// the edit script in reading order.
func backtrace[E any](a, b seqs.Sequence[E], dist [][]int, opts Options[E]) []Edit[E] {
	n, m := a.Len(), b.Len()

	script := make([]Edit[E], 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && dist[i][j] == dist[i-1][j]+1:
			// Vertical: a[i-1] was deleted.
			script = append(script, Edit[E]{Op: OpDelete, A: a.At(i - 1)})
			i--
		case j > 0 && dist[i][j] == dist[i][j-1]+1:
			// Horizontal: b[j-1] was inserted.
			script = append(script, Edit[E]{Op: OpInsert, B: b.At(j - 1)})
			j--
		default:
			cost := 1
			if opts.Eq(a.At(i-1), b.At(j-1)) {
				cost = 0
			}
			if dist[i][j] == dist[i-1][j-1]+cost {
				op := OpSubstitute
				if cost == 0 {
					op = OpMatch
				}
				script = append(script, Edit[E]{Op: op, A: a.At(i - 1), B: b.At(j - 1)})
				i--
				j--
			} else {
				// Adjacent transposition was the minimizer at this cell;
				// it covers two columns of the script.
				script = append(script, Edit[E]{Op: OpTranspose, A: a.At(i - 1), B: b.At(j - 1)})
				script = append(script, Edit[E]{Op: OpTranspose, A: a.At(i - 2), B: b.At(j - 2)})
				i -= 2
				j -= 2
			}
		}
	}

	// Built back-to-front; reverse in place to reading order.
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return script
}

// maxInt returns the larger of two ints.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
