// Package seqs defines the sequence abstraction consumed by the align,
// editdist and dtw engines, together with the small convenience wrappers
// that surround them.
//
// The engines depend on nothing but length, O(1) indexed access and an
// injected element comparator; Sequence captures exactly that contract.
// Concrete representations (contiguous slices via Slice, text via Runes
// and Bytes) never leak into the algorithms.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/seqs"
//
//	words := seqs.Of("lorem", "ipsum", "dolor")
//	text  := seqs.Runes("alignment")
//
//	head, _ := seqs.Subseq[rune](text, 0, 5) // "align" as runes
//	both := seqs.Concat[rune](head, seqs.Runes("ed"))
//
// The wrappers (Take, Drop, Map, Filter, Partition, Uniq) are thin, total
// adaptations of host-language primitives; all heavy lifting lives in the
// engine packages.
package seqs
