// Package align computes optimal pairwise alignments of two sequences
// via the Needleman–Wunsch dynamic program, with pluggable similarity,
// configurable gap penalty and four boundary modes.
//
// 🚀 What is alignment?
//
//	An alignment lines the two sequences up column by column, inserting
//	gaps where one sequence has an element the other lacks, so that the
//	summed column similarity minus gap penalties is maximal. Widely used
//	for:
//	  • Biological sequence comparison (DNA, proteins)
//	  • Fuzzy string and token matching
//	  • Diffing ordered records of any element type
//
// ✨ Key features:
//   - pluggable Similarity(a, b) and GapPenalty (defaults: ±1 and −1)
//   - four modes: Global (all gaps charged), Prefix (trailing skip of the
//     second sequence is free), Suffix (leading skip is free), Infix (both)
//   - score-only calls use a two-row rolling fill: O(M) memory
//   - full alignments with deterministic, fixed tie-breaking
//     (vertical gap, then horizontal gap, then diagonal)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/seqalign/align"
//	  "github.com/katalvlaran/seqalign/seqs"
//	)
//
//	opts := align.DefaultOptions[rune]()
//	opts.Mode = align.Infix
//	opts.ReturnAlignment = true
//
//	score, pairs, err := align.Align(seqs.Runes("abc"), seqs.Runes("xabcx"), opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(M) score-only, O(N·M) with ReturnAlignment
//
// See example_test.go for mode-by-mode walkthroughs.
package align
