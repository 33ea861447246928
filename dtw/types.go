// Package dtw defines options, modes and error definitions for Dynamic
// Time Warping.
package dtw

import (
	"errors"
	"math"
)

// Unlimited disables the Sakoe–Chiba window constraint.
const Unlimited = -1

// Sentinel errors for DTW execution.
var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrNilCost is returned when Options.Cost is nil.
	ErrNilCost = errors.New("dtw: Cost function must not be nil")

	// ErrBadWindow is returned when Window is negative and not Unlimited.
	ErrBadWindow = errors.New("dtw: Window must be Unlimited or non-negative")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)×(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(N·M).
//
//   - TwoRows — only keep two rows (current and previous).
//     Reduces memory to O(M), but cannot recover the path.
//     Use when you only need the distance.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery.
	TwoRows
)

// Coord is one step of the warping path: the pair of 0-based element
// indices matched at that step.
type Coord struct {
	I, J int
}

// Options configures a DTW call.
//
// Fields:
//   - Cost         — elementwise local cost; must not be nil.
//   - Window       — maximum deviation |i−j| allowed (Sakoe–Chiba band);
//     Unlimited (−1) disables the constraint. Other negative values are
//     rejected with ErrBadWindow.
//   - SlopePenalty — extra cost for insertion/deletion steps (controls
//     locality bias).
//   - ReturnPath   — if true, DTW backtracks and returns the optimal
//     warping path. Requires MemoryMode = FullMatrix.
//   - MemoryMode   — FullMatrix or TwoRows storage.
type Options[E any] struct {
	Cost         func(a, b E) float64
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns Options for float64 elements with the documented
// defaults: AbsDiff cost, no window, no slope penalty, distance-only,
// FullMatrix storage.
func DefaultOptions() Options[float64] {
	return Options[float64]{
		Cost:         AbsDiff,
		Window:       Unlimited,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}

// AbsDiff is the default local cost for numeric sequences.
func AbsDiff(a, b float64) float64 { return math.Abs(a - b) }
