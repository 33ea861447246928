package seqs

// Collect materializes any Sequence into a fresh Slice.
// Complexity: O(n) time, O(n) space.
func Collect[E any](s Sequence[E]) Slice[E] {
	out := make(Slice[E], s.Len())
	for i := range out {
		out[i] = s.At(i)
	}

	return out
}

// Subseq returns a fresh copy of s[start:end).
// Returns ErrBadRange unless 0 ≤ start ≤ end ≤ s.Len().
func Subseq[E any](s Sequence[E], start, end int) (Slice[E], error) {
	if start < 0 || end < start || end > s.Len() {
		return nil, ErrBadRange
	}
	out := make(Slice[E], end-start)
	for i := range out {
		out[i] = s.At(start + i)
	}

	return out, nil
}

// Concat concatenates any number of sequences into a single Slice,
// preserving order. Concat() returns an empty, non-nil Slice.
func Concat[E any](parts ...Sequence[E]) Slice[E] {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	out := make(Slice[E], 0, total)
	for _, p := range parts {
		for i := 0; i < p.Len(); i++ {
			out = append(out, p.At(i))
		}
	}

	return out
}

// Equal reports whether a and b have the same length and equal elements
// at every position.
func Equal[E comparable](a, b Sequence[E]) bool {
	return EqualFunc(a, b, func(x, y E) bool { return x == y })
}

// EqualFunc is Equal with an injected equality predicate.
func EqualFunc[E any](a, b Sequence[E], eq func(x, y E) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.At(i), b.At(i)) {
			return false
		}
	}

	return true
}

// Take returns the first n elements of s as a fresh Slice.
// n < 0 yields an empty Slice; n ≥ s.Len() yields all of s.
func Take[E any](s Sequence[E], n int) Slice[E] {
	n = clamp(n, s.Len())
	out := make(Slice[E], n)
	for i := range out {
		out[i] = s.At(i)
	}

	return out
}

// Drop returns s without its first n elements, as a fresh Slice.
// n < 0 drops nothing; n ≥ s.Len() drops everything.
func Drop[E any](s Sequence[E], n int) Slice[E] {
	n = clamp(n, s.Len())
	out := make(Slice[E], s.Len()-n)
	for i := range out {
		out[i] = s.At(n + i)
	}

	return out
}

// Map applies f to every element of s.
func Map[E, U any](s Sequence[E], f func(E) U) Slice[U] {
	out := make(Slice[U], s.Len())
	for i := range out {
		out[i] = f(s.At(i))
	}

	return out
}

// Filter keeps the elements of s for which pred returns true,
// preserving order.
func Filter[E any](s Sequence[E], pred func(E) bool) Slice[E] {
	out := make(Slice[E], 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		if v := s.At(i); pred(v) {
			out = append(out, v)
		}
	}

	return out
}

// Partition splits s into the elements satisfying pred and the rest,
// each side preserving the original order.
func Partition[E any](s Sequence[E], pred func(E) bool) (yes, no Slice[E]) {
	yes = make(Slice[E], 0, s.Len())
	no = make(Slice[E], 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		if v := s.At(i); pred(v) {
			yes = append(yes, v)
		} else {
			no = append(no, v)
		}
	}

	return yes, no
}

// Uniq removes duplicate elements, keeping the first occurrence of each.
func Uniq[E comparable](s Sequence[E]) Slice[E] {
	seen := make(map[E]struct{}, s.Len())
	out := make(Slice[E], 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		v := s.At(i)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// clamp restricts n to [0, limit].
func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}

	return n
}
