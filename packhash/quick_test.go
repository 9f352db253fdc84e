package packhash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickAnagrams(t *testing.T) {
	assert.True(t, QuickAnagrams("store", "rotes"))
	assert.True(t, QuickAnagrams("listen", "silent"))
	assert.True(t, QuickAnagrams("Dormitory", "dirty room"))
	assert.False(t, QuickAnagrams("store", "stare"))
	assert.False(t, QuickAnagrams("cat", "dog"))
	assert.False(t, QuickAnagrams("aa", "a"))
}

func TestQuickHash_Layout(t *testing.T) {
	table := Quick().Table()
	assert.Equal(t, 78, table.TotalBits())
	assert.Equal(t, 2, table.Registers())

	assert.Equal(t, []uint64{1, 0}, QuickHash("a").Registers())
	assert.Equal(t, []uint64{1 << 60, 0}, QuickHash("u").Registers())
	assert.Equal(t, []uint64{0, 1 << 12}, QuickHash("z").Registers())
	assert.Equal(t, []uint64{7, 0}, QuickHash("aaaaaaa").Registers())
}

func TestQuickHash_MatchesHasher(t *testing.T) {
	for _, w := range []string{"", "store", "zyzzyva", "Quick-Brown-Fox"} {
		fp, err := Quick().Hash(w)
		require.NoError(t, err)
		assert.Equal(t, fp, QuickHash(w))
	}
}

func TestQuickHash_EightOccurrencesOverflow(t *testing.T) {
	// Eight a's carry out of a's 3-bit field into b's.
	assert.Equal(t, QuickHash("b"), QuickHash(strings.Repeat("a", 8)))
}
