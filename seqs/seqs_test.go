package seqs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/seqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSlice_Adapters verifies the zero-copy slice view and the string
// adapters.
func TestSlice_Adapters(t *testing.T) {
	s := seqs.Of(10, 20, 30)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 10, s.At(0))
	assert.Equal(t, 30, s.At(2))

	r := seqs.Runes("héllo")
	assert.Equal(t, 5, r.Len(), "Runes counts code points, not bytes")
	assert.Equal(t, 'é', r.At(1))

	bs := seqs.Bytes("héllo")
	assert.Equal(t, 6, bs.Len(), "Bytes counts raw bytes")

	assert.Zero(t, seqs.Runes("").Len())
}

// TestCollect verifies materialization produces an equal, independent copy.
func TestCollect(t *testing.T) {
	src := seqs.Of("a", "b", "c")
	got := seqs.Collect[string](src)
	assert.Equal(t, seqs.Slice[string]{"a", "b", "c"}, got)

	got[0] = "z"
	assert.Equal(t, "a", src.At(0), "Collect must copy, not alias")
}

// TestSubseq covers valid windows and every bound violation.
func TestSubseq(t *testing.T) {
	s := seqs.Runes("abcdef")

	mid, err := seqs.Subseq[rune](s, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, seqs.Runes("bcd"), mid)

	empty, err := seqs.Subseq[rune](s, 3, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)

	whole, err := seqs.Subseq[rune](s, 0, s.Len())
	require.NoError(t, err)
	assert.Equal(t, seqs.Collect[rune](s), whole)

	for _, tc := range []struct{ start, end int }{
		{-1, 2}, {2, 1}, {0, 7}, {7, 7},
	} {
		_, err = seqs.Subseq[rune](s, tc.start, tc.end)
		assert.ErrorIs(t, err, seqs.ErrBadRange, "start=%d end=%d", tc.start, tc.end)
	}
}

// TestConcat verifies order preservation and the empty-call contract.
func TestConcat(t *testing.T) {
	got := seqs.Concat[rune](seqs.Runes("ab"), seqs.Runes(""), seqs.Runes("cd"))
	assert.Equal(t, seqs.Runes("abcd"), got)

	empty := seqs.Concat[int]()
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

// TestEqual verifies Equal and EqualFunc over lengths and contents.
func TestEqual(t *testing.T) {
	assert.True(t, seqs.Equal[rune](seqs.Runes("abc"), seqs.Runes("abc")))
	assert.False(t, seqs.Equal[rune](seqs.Runes("abc"), seqs.Runes("abd")))
	assert.False(t, seqs.Equal[rune](seqs.Runes("abc"), seqs.Runes("ab")))
	assert.True(t, seqs.Equal[rune](seqs.Runes(""), seqs.Runes("")))

	caseless := func(x, y string) bool { return strings.EqualFold(x, y) }
	a := seqs.Of("Foo", "BAR")
	b := seqs.Of("foo", "bar")
	assert.False(t, seqs.Equal[string](a, b))
	assert.True(t, seqs.EqualFunc[string](a, b, caseless))
}

// TestTakeDrop verifies clamping at both ends and the splitting identity
// Concat(Take(s, n), Drop(s, n)) == s.
func TestTakeDrop(t *testing.T) {
	s := seqs.Runes("abcde")

	assert.Equal(t, seqs.Runes("ab"), seqs.Take[rune](s, 2))
	assert.Equal(t, seqs.Runes("cde"), seqs.Drop[rune](s, 2))
	assert.Empty(t, seqs.Take[rune](s, -3))
	assert.Equal(t, seqs.Collect[rune](s), seqs.Take[rune](s, 99))
	assert.Equal(t, seqs.Collect[rune](s), seqs.Drop[rune](s, -3))
	assert.Empty(t, seqs.Drop[rune](s, 99))

	for n := -1; n <= s.Len()+1; n++ {
		joined := seqs.Concat[rune](seqs.Take[rune](s, n), seqs.Drop[rune](s, n))
		assert.True(t, seqs.Equal[rune](s, joined), "n=%d", n)
	}
}

// TestMapFilter verifies element transforms and predicate filtering.
func TestMapFilter(t *testing.T) {
	s := seqs.Of(1, 2, 3, 4)

	doubled := seqs.Map[int, int](s, func(v int) int { return v * 2 })
	assert.Equal(t, seqs.Slice[int]{2, 4, 6, 8}, doubled)

	lengths := seqs.Map[string, int](seqs.Of("a", "bb"), func(v string) int { return len(v) })
	assert.Equal(t, seqs.Slice[int]{1, 2}, lengths)

	even := seqs.Filter[int](s, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, seqs.Slice[int]{2, 4}, even)

	none := seqs.Filter[int](s, func(int) bool { return false })
	assert.Empty(t, none)
}

// TestPartition verifies both sides keep the original order and cover s.
func TestPartition(t *testing.T) {
	s := seqs.Of(3, 1, 4, 1, 5, 9, 2, 6)

	small, big := seqs.Partition[int](s, func(v int) bool { return v < 4 })
	assert.Equal(t, seqs.Slice[int]{3, 1, 1, 2}, small)
	assert.Equal(t, seqs.Slice[int]{4, 5, 9, 6}, big)
	assert.Equal(t, s.Len(), small.Len()+big.Len())
}

// TestUniq verifies duplicates collapse to their first occurrence.
func TestUniq(t *testing.T) {
	got := seqs.Uniq[rune](seqs.Runes("banana"))
	assert.Equal(t, seqs.Runes("ban"), got)

	assert.Empty(t, seqs.Uniq[rune](seqs.Runes("")))
	assert.Equal(t, seqs.Runes("abc"), seqs.Uniq[rune](seqs.Runes("abc")))
}
