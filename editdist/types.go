// Package editdist defines options, edit operations and error definitions
// for bounded edit distance.
package editdist

import "errors"

// Unbounded disables the distance bound.
const Unbounded = -1

// Sentinel errors for edit distance execution.
var (
	// ErrBoundExceeded reports that the true distance exceeds
	// Options.MaxDistance. It is an expected outcome, not a failure;
	// check it with errors.Is.
	ErrBoundExceeded = errors.New("editdist: distance exceeds MaxDistance")

	// ErrBadBound is returned when MaxDistance is negative and not
	// Unbounded.
	ErrBadBound = errors.New("editdist: MaxDistance must be Unbounded or non-negative")

	// ErrNilEquals is returned when Options.Eq is nil.
	ErrNilEquals = errors.New("editdist: Eq function must not be nil")
)

// Op identifies one step of an edit script.
type Op int

const (
	// OpMatch keeps an element unchanged.
	OpMatch Op = iota

	// OpSubstitute replaces an element of the first sequence with one
	// of the second.
	OpSubstitute

	// OpDelete removes an element of the first sequence; the B side of
	// the Edit is the gap.
	OpDelete

	// OpInsert adds an element of the second sequence; the A side of
	// the Edit is the gap.
	OpInsert

	// OpTranspose swaps two adjacent elements; it always appears as two
	// consecutive Edit steps covering the swapped pair.
	OpTranspose
)

// String implements fmt.Stringer for diagnostics.
func (op Op) String() string {
	switch op {
	case OpMatch:
		return "match"
	case OpSubstitute:
		return "substitute"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpTranspose:
		return "transpose"
	default:
		return "op(?)"
	}
}

// Edit is one column of an edit script, read left to right.
// A holds an element of the first sequence except for OpInsert, where it
// is the zero value standing for the gap; B holds an element of the
// second sequence except for OpDelete. Projecting the non-gap A sides
// reproduces the first input exactly, and likewise B the second.
type Edit[E any] struct {
	Op   Op
	A, B E
}

// Options configures a Distance call.
//
// Fields:
//   - Eq             — element equality; must not be nil.
//   - MaxDistance    — abort once the distance provably exceeds this
//     bound; Unbounded (−1) disables the bound. Other negative values
//     are rejected with ErrBadBound.
//   - Transpositions — count a swap of two adjacent elements as one edit
//     (Damerau variant; adjacent pairs only).
//   - ReturnScript   — if true, Distance backtraces and returns the edit
//     script.
type Options[E any] struct {
	Eq             func(a, b E) bool
	MaxDistance    int
	Transpositions bool
	ReturnScript   bool
}

// DefaultOptions returns Options with the documented defaults:
// == equality, Unbounded, no transpositions, distance-only.
func DefaultOptions[E comparable]() Options[E] {
	return Options[E]{
		Eq:             func(a, b E) bool { return a == b },
		MaxDistance:    Unbounded,
		Transpositions: false,
		ReturnScript:   false,
	}
}
