// Package dtw computes Dynamic Time Warping (DTW) distances between two
// sequences of arbitrary elements, with optional alignment path, window
// constraint and memory optimizations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the index
//	axis to minimize cumulative elementwise cost. It's widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - pluggable Cost(a, b) — elements need not be numbers (AbsDiff is the
//     float64 default)
//   - full-matrix mode: exact O(N·M) time & memory, supports ReturnPath
//   - two-row mode: O(M) memory when only the distance is needed
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/seqalign/dtw"
//	  "github.com/katalvlaran/seqalign/seqs"
//	)
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10        // Sakoe–Chiba band ±10
//	opts.SlopePenalty = 0.5 // penalty for insertion/deletion steps
//	opts.ReturnPath = true
//
//	dist, path, err := dtw.DTW(seqs.Of(a...), seqs.Of(b...), opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
//
// See examples in example_test.go.
package dtw
