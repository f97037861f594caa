package glyphranges

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/unicode/rangetable"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, []uint16{0x0020, 0x00FF, 0}, Default())
}

func TestBuild(t *testing.T) {
	t.Run("Contiguous runs collapse to one pair", func(t *testing.T) {
		got := Build(rangetable.New('a', 'b', 'c', 'd'))
		assert.Equal(t, []uint16{'a', 'd', 0}, got)
	})

	t.Run("Disjoint runs", func(t *testing.T) {
		got := Build(rangetable.New('0', '1', 'A', 'B'))
		assert.Equal(t, []uint16{'0', '1', 'A', 'B', 0}, got)
	})

	t.Run("Overlapping tables merge", func(t *testing.T) {
		got := Build(rangetable.New('a', 'b'), rangetable.New('b', 'c'))
		assert.Equal(t, []uint16{'a', 'c', 0}, got)
	})

	t.Run("Supplementary plane is dropped", func(t *testing.T) {
		got := Build(rangetable.New('𝔸'))
		assert.Equal(t, []uint16{0}, got)
	})

	t.Run("Empty input still terminates", func(t *testing.T) {
		assert.Equal(t, []uint16{0}, Build())
	})
}

func TestLatin(t *testing.T) {
	got := Latin()
	require.NotEmpty(t, got)
	assert.Equal(t, uint16(0), got[len(got)-1], "list must be zero-terminated")
	assert.Equal(t, 1, len(got)%2, "pairs plus terminator give an odd length")
}

func containsPair(pairs []uint16, c uint16) bool {
	for i := 0; i+1 < len(pairs)-1; i += 2 {
		if pairs[i] <= c && c <= pairs[i+1] {
			return true
		}
	}
	return false
}

func TestLatinCoversASCIILetters(t *testing.T) {
	pairs := Latin()
	assert.True(t, containsPair(pairs, 'A'))
	assert.True(t, containsPair(pairs, 'z'))
	assert.False(t, containsPair(pairs, '0'), "digits are not in the Latin script")
	assert.True(t, unicode.Is(unicode.Latin, 'é'))
	assert.True(t, containsPair(pairs, 0x00E9))
}
