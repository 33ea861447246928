// Package align defines modes, options and error definitions for
// pairwise sequence alignment.
package align

import "errors"

// Sentinel errors for alignment execution.
var (
	// ErrUnknownMode is returned when Options.Mode is not one of the
	// declared Mode constants. Detected before any matrix is allocated.
	ErrUnknownMode = errors.New("align: unknown alignment mode")

	// ErrNilSimilarity is returned when Options.Similarity is nil.
	ErrNilSimilarity = errors.New("align: Similarity function must not be nil")
)

// Mode selects the boundary policy of the alignment.
//
//   - Global — every leading and trailing gap is charged GapPenalty
//     (standard Needleman–Wunsch).
//   - Prefix — trailing elements of the second sequence may be skipped
//     free of charge (align seq1 against a prefix of seq2).
//   - Suffix — leading elements of the second sequence may be skipped
//     free of charge (align seq1 against a suffix of seq2).
//   - Infix — both ends of the second sequence are free (local at the
//     ends; align seq1 anywhere inside seq2).
type Mode int

const (
	// Global charges the gap penalty everywhere.
	Global Mode = iota

	// Prefix makes trailing gaps in the second sequence free.
	Prefix

	// Suffix makes leading gaps in the second sequence free.
	Suffix

	// Infix makes both leading and trailing gaps in the second sequence free.
	Infix
)

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	switch m {
	case Global:
		return "Global"
	case Prefix:
		return "Prefix"
	case Suffix:
		return "Suffix"
	case Infix:
		return "Infix"
	default:
		return "Mode(?)"
	}
}

// DefaultGapPenalty is the score contributed by a single gap column.
const DefaultGapPenalty = -1.0

// Pair is one column of an alignment, read left to right.
// Exactly one of AGap/BGap is set for an insertion or deletion column;
// neither is set for a match/substitution column. A gapped side holds
// the zero value of E and stands for the gap marker.
type Pair[E any] struct {
	A, B E

	// AGap marks a column where the first sequence contributes no element.
	AGap bool

	// BGap marks a column where the second sequence contributes no element.
	BGap bool
}

// Options configures an Align call.
//
// Fields:
//   - Similarity      — elementwise score; must not be nil.
//   - GapPenalty      — score of a single gap column (usually negative).
//   - Mode            — boundary policy; see Mode.
//   - ReturnAlignment — if true, Align backtraces and returns the column
//     list; if false only the score is computed, using two-row storage.
type Options[E any] struct {
	Similarity      func(a, b E) float64
	GapPenalty      float64
	Mode            Mode
	ReturnAlignment bool
}

// DefaultOptions returns Options with the documented defaults:
// MatchMismatch(+1, −1) similarity, DefaultGapPenalty, Global mode,
// score-only.
func DefaultOptions[E comparable]() Options[E] {
	return Options[E]{
		Similarity:      MatchMismatch[E](1, -1),
		GapPenalty:      DefaultGapPenalty,
		Mode:            Global,
		ReturnAlignment: false,
	}
}

// MatchMismatch builds a similarity function that scores match for equal
// elements and mismatch otherwise.
func MatchMismatch[E comparable](match, mismatch float64) func(a, b E) float64 {
	return func(a, b E) float64 {
		if a == b {
			return match
		}

		return mismatch
	}
}

// policy is the closed set of boundary effects implied by a Mode,
// resolved once before the fill loop.
type policy struct {
	// freeLead zeroes row 0: leading elements of seq2 cost nothing.
	freeLead bool

	// freeTail zeroes horizontal gap cost on the last row: trailing
	// elements of seq2 cost nothing.
	freeTail bool
}

// policyFor resolves m into its boundary effects, or ErrUnknownMode.
func policyFor(m Mode) (policy, error) {
	switch m {
	case Global:
		return policy{}, nil
	case Prefix:
		return policy{freeTail: true}, nil
	case Suffix:
		return policy{freeLead: true}, nil
	case Infix:
		return policy{freeLead: true, freeTail: true}, nil
	default:
		return policy{}, ErrUnknownMode
	}
}
