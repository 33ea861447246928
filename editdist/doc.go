// Package editdist computes the edit distance between two sequences with
// Ukkonen's diagonally banded dynamic program, optionally bounded and
// optionally counting adjacent transpositions as single edits.
//
// 🚀 What is bounded edit distance?
//
//	The edit distance is the minimal number of insertions, deletions and
//	substitutions (plus adjacent swaps, when enabled) turning one sequence
//	into the other. With a bound k, only a band of ~k diagonals of the
//	matrix is ever touched, and the search aborts as soon as no cell
//	within the bound remains reachable. Widely used for:
//	  • Spelling correction and fuzzy lookup
//	  • Deduplication of near-identical records
//	  • Approximate token matching with a cut-off
//
// ✨ Key features:
//   - MaxDistance bound with O(k·min(N,M)) work and early abort
//   - Unbounded mode (MaxDistance = Unbounded)
//   - Damerau adjacent transpositions (Transpositions = true)
//   - full edit scripts with deterministic tie-breaking
//     (deletion, then insertion, then match/substitution, then transposition)
//   - exceeding the bound is a normal outcome: ErrBoundExceeded, not a bug
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/seqalign/editdist"
//	  "github.com/katalvlaran/seqalign/seqs"
//	)
//
//	opts := editdist.DefaultOptions[rune]()
//	opts.MaxDistance = 2
//	opts.Transpositions = true
//
//	d, _, err := editdist.Distance(seqs.Runes("banana"), seqs.Runes("abnana"), opts)
//	if errors.Is(err, editdist.ErrBoundExceeded) {
//	  // more than 2 edits apart
//	}
//
// Performance:
//
//   - Time:   O(k·min(N,M)) bounded, O(N·M) unbounded
//   - Memory: O(N) distance-only (three rolling columns), O(N·M) with
//     ReturnScript
//
// See example_test.go for bounded, unbounded and transposition walkthroughs.
package editdist
