package align

import "github.com/katalvlaran/seqalign/seqs"

// Align — Needleman–Wunsch family sequence alignment
//
// Description:
//
//	Align computes the best score for lining a up against b column by
//	column, where each column is either a pair of elements (scored by
//	Similarity) or a gap in one of the two sequences (scored by
//	GapPenalty). The Mode decides which boundary gaps are free.
//
// Algorithm Outline:
//  1. Let n = a.Len(), m = b.Len(). Allocate an (n+1)×(m+1) score matrix.
//  2. Initialize:
//     cell[0][0] = 0
//     cell[i][0] = i·GapPenalty for i = 1..n
//     cell[0][j] = 0 for j = 1..m when leading gaps are free
//     (Suffix/Infix), else j·GapPenalty
//  3. For i = 1..n, j = 1..m:
//     vert  = cell[i-1][j]   + GapPenalty
//     horiz = cell[i][j-1]   + hGap
//     diag  = cell[i-1][j-1] + Similarity(a[i-1], b[j-1])
//     cell[i][j] = max(vert, horiz, diag)
//     where hGap = 0 on the last row when trailing gaps are free
//     (Prefix/Infix), else GapPenalty.
//  4. score = cell[n][m].
//  5. If ReturnAlignment, backtrack from (n, m) to (0, 0) preferring, in
//     order, the vertical, horizontal, then diagonal predecessor that
//     reproduces the stored score; emit one Pair per step and reverse.
//
// The tie-breaking order is part of the contract: for fixed inputs and
// options the returned alignment is always the same.
//
// Returns (score, pairs, error); pairs is nil unless ReturnAlignment.
// Score-only calls keep two rows instead of the full matrix.
//
// Errors:
//   - ErrUnknownMode    — Options.Mode is not a declared Mode.
//   - ErrNilSimilarity  — Options.Similarity is nil.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(m) score-only, O(n·m) with ReturnAlignment
func Align[E any](a, b seqs.Sequence[E], opts Options[E]) (score float64, pairs []Pair[E], err error) {
	// Fail fast on contract violations, before any allocation.
	pol, err := policyFor(opts.Mode)
	if err != nil {
		return 0, nil, err
	}
	if opts.Similarity == nil {
		return 0, nil, ErrNilSimilarity
	}

	if !opts.ReturnAlignment {
		return alignScore(a, b, opts, pol), nil, nil
	}

	n, m := a.Len(), b.Len()
	cell := fillMatrix(a, b, opts, pol)

	return cell[n][m], backtrace(a, b, cell, opts, pol), nil
}

// fillMatrix builds the full (n+1)×(m+1) score matrix for backtracing.
func fillMatrix[E any](a, b seqs.Sequence[E], opts Options[E], pol policy) [][]float64 {
	n, m := a.Len(), b.Len()
	gap := opts.GapPenalty

	cell := make([][]float64, n+1)
	for i := range cell {
		cell[i] = make([]float64, m+1)
	}

	// Boundary rows: column 0 is always charged; row 0 depends on mode.
	for i := 1; i <= n; i++ {
		cell[i][0] = float64(i) * gap
	}
	if !pol.freeLead {
		for j := 1; j <= m; j++ {
			cell[0][j] = float64(j) * gap
		}
	}

	for i := 1; i <= n; i++ {
		hGap := gap
		if pol.freeTail && i == n {
			hGap = 0
		}
		for j := 1; j <= m; j++ {
			vert := cell[i-1][j] + gap
			horiz := cell[i][j-1] + hGap
			diag := cell[i-1][j-1] + opts.Similarity(a.At(i-1), b.At(j-1))
			cell[i][j] = max3(vert, horiz, diag)
		}
	}

	return cell
}

// alignScore computes cell[n][m] with two-row rolling storage.
func alignScore[E any](a, b seqs.Sequence[E], opts Options[E], pol policy) float64 {
	n, m := a.Len(), b.Len()
	gap := opts.GapPenalty

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	if !pol.freeLead {
		for j := 1; j <= m; j++ {
			prev[j] = float64(j) * gap
		}
	}

	for i := 1; i <= n; i++ {
		hGap := gap
		if pol.freeTail && i == n {
			hGap = 0
		}
		curr[0] = float64(i) * gap
		for j := 1; j <= m; j++ {
			vert := prev[j] + gap
			horiz := curr[j-1] + hGap
			diag := prev[j-1] + opts.Similarity(a.At(i-1), b.At(j-1))
			curr[j] = max3(vert, horiz, diag)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrace walks cell from (n, m) to (0, 0), preferring vertical, then
// horizontal, then diagonal predecessors, and returns the alignment in
// reading order.
func backtrace[E any](a, b seqs.Sequence[E], cell [][]float64, opts Options[E], pol policy) []Pair[E] {
	n, m := a.Len(), b.Len()
	gap := opts.GapPenalty

	pairs := make([]Pair[E], 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		hGap := gap
		if pol.freeTail && i == n {
			hGap = 0
		}
		switch {
		case j == 0 || (i > 0 && cell[i][j] == cell[i-1][j]+gap):
			// Vertical: consume a[i-1] against a gap in b.
			pairs = append(pairs, Pair[E]{A: a.At(i - 1), BGap: true})
			i--
		case i == 0 || cell[i][j] == cell[i][j-1]+hGap:
			// Horizontal: consume b[j-1] against a gap in a.
			pairs = append(pairs, Pair[E]{B: b.At(j - 1), AGap: true})
			j--
		default:
			// Diagonal: consume one element from each sequence.
			pairs = append(pairs, Pair[E]{A: a.At(i - 1), B: b.At(j - 1)})
			i--
			j--
		}
	}

	// Built back-to-front; reverse in place to reading order.
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}

	return pairs
}

// max3 returns the maximum of three float64 values.
func max3(a, b, c float64) float64 {
	if a > b {
		if a > c {
			return a
		}

		return c
	}
	if b > c {
		return b
	}

	return c
}
