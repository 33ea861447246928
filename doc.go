// Package seqalign is an in-memory toolkit for comparing two finite
// ordered sequences — scoring, aligning and editing them element by element.
//
// 🚀 What is seqalign?
//
//	A small, deterministic, generics-based library that brings together:
//		• Sequence collaborators: length & indexed access over slices and text
//		• Global & semi-global alignment: Needleman–Wunsch with pluggable
//		  similarity, gap penalty and Global/Prefix/Suffix/Infix modes
//		• Bounded edit distance: Ukkonen's banded algorithm with optional
//		  adjacent transpositions and full edit scripts
//		• Time-series comparison: Dynamic Time Warping with windowing and
//		  memory modes
//
// ✨ Why choose seqalign?
//
//   - Representation-agnostic – algorithms see only Len/At plus an injected
//     comparator; characters, tokens and arbitrary objects all work
//   - Deterministic – fixed backtrace tie-breaking, no randomness, no globals
//   - Pure Go – no cgo, single third-party dependency (testify, tests only)
//   - Safe by contract – strict sentinel errors, fail-fast validation before
//     any matrix is allocated
//
// Under the hood, everything is organized under four subpackages:
//
//	seqs/     — Sequence interface, slice & text adapters, convenience wrappers
//	align/    — similarity-scored alignment with mode-dependent boundaries
//	editdist/ — diagonally banded edit distance with early bound abort
//	dtw/      — Dynamic Time Warping over arbitrary elements
//
// Quick ASCII example (Infix alignment of "abc" against "xabcx"):
//
//	seq1:  -  a  b  c  -
//	seq2:  x  a  b  c  x
//
//	leading and trailing columns are free; score = 3.
//
// Dive into the per-package doc.go files and example_test.go files for
// runnable walkthroughs.
//
//	go get github.com/katalvlaran/seqalign
package seqalign
