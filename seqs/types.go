// Package seqs provides sequence representations and error definitions
// shared by every engine in seqalign.
package seqs

import "errors"

// ErrBadRange is returned when a subsequence range violates
// 0 ≤ start ≤ end ≤ Len().
var ErrBadRange = errors.New("seqs: subsequence bounds out of range")

// Sequence is a finite ordered collection with O(1) random access.
// It is the only view of their inputs the engines ever see.
//
// Implementations must be immutable for the duration of a call:
// Len must stay constant and At(i) must be stable for 0 ≤ i < Len().
type Sequence[E any] interface {
	// Len reports the number of elements.
	Len() int

	// At returns the element at position i, 0-based.
	// Behavior outside [0, Len()) follows the implementation
	// (Slice panics, like the built-in indexing it wraps).
	At(i int) E
}

// Slice adapts a Go slice to the Sequence contract without copying.
type Slice[E any] []E

// Len reports the number of elements.
func (s Slice[E]) Len() int { return len(s) }

// At returns the element at position i.
func (s Slice[E]) At(i int) E { return s[i] }

// Of wraps the given elements as a Slice.
func Of[E any](elems ...E) Slice[E] { return elems }

// Runes adapts a string to a sequence of its code points.
func Runes(s string) Slice[rune] { return Slice[rune]([]rune(s)) }

// Bytes adapts a string to a sequence of its raw bytes.
func Bytes(s string) Slice[byte] { return Slice[byte]([]byte(s)) }
